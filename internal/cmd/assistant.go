package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/olprint/backoffice/internal/dashboard"
	"github.com/spf13/cobra"
)

const generationTimeout = 60 * time.Second

var (
	describeName     string
	describeCategory string
	describeKeywords string
)

var describeCmd = &cobra.Command{
	Use:   "describe",
	Short: "Generate marketing copy for a product",
	Args:  cobra.NoArgs,
	RunE:  describeProduct,
}

var insightCmd = &cobra.Command{
	Use:   "insight",
	Short: "Print a one-line business tip for the current data",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), generationTimeout)
		defer cancel()

		summary := dashboard.Digest(app.catalog.Snapshot(), app.orders.Snapshot())
		fmt.Fprintf(cmd.OutOrStdout(), "💡 %s\n", app.assistant.GenerateBusinessInsight(ctx, summary))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(describeCmd)
	rootCmd.AddCommand(insightCmd)

	describeCmd.Flags().StringVar(&describeName, "name", "", "product name (required)")
	describeCmd.Flags().StringVar(&describeCategory, "category", "", "product category (required)")
	describeCmd.Flags().StringVar(&describeKeywords, "keywords", "", "features to highlight")
}

func describeProduct(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), generationTimeout)
	defer cancel()

	text, err := app.assistant.GenerateProductDescription(ctx, describeName, describeCategory, describeKeywords)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), text)
	return nil
}
