package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	productSearch   string
	productCritical bool
	productOutput   string
)

var productsCmd = &cobra.Command{
	Use:   "products",
	Short: "List the product catalog",
	Long: `List the products of the catalog. --search matches name or category,
case-insensitively. Products below the critical stock level are marked with "!".`,
	Args: cobra.NoArgs,
	RunE: listProducts,
}

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List the product categories",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, c := range app.catalog.ListCategories() {
			fmt.Fprintln(cmd.OutOrStdout(), c)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(productsCmd)
	rootCmd.AddCommand(categoriesCmd)

	productsCmd.Flags().StringVar(&productSearch, "search", "", "filter by name or category")
	productsCmd.Flags().BoolVar(&productCritical, "critical", false, "only products with critical stock")
	productsCmd.Flags().StringVarP(&productOutput, "output", "o", outputTable, "output format (table|json)")
}

func listProducts(cmd *cobra.Command, args []string) error {
	if err := checkOutput(productOutput); err != nil {
		return err
	}
	products := app.catalog.ListProducts(productSearch)
	if productCritical {
		products = app.catalog.CriticalStock()
	}
	return printProducts(cmd.OutOrStdout(), productOutput, products)
}
