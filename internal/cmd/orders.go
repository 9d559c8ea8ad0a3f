package cmd

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/olprint/backoffice/internal/models"
	"github.com/olprint/backoffice/internal/orders"
	"github.com/spf13/cobra"
)

var (
	orderStatus string
	orderFrom   string
	orderTo     string
	orderOutput string
	forceDelete bool
)

var ordersCmd = &cobra.Command{
	Use:   "orders",
	Short: "List orders",
	Long: `List orders filtered by status and an inclusive date window.

Status accepts the label ("Em Produção") or the key ("in_production");
"all" or "Todos" disables the status filter. Dates are YYYY-MM-DD.`,
	Args: cobra.NoArgs,
	RunE: listOrders,
}

var setStatusCmd = &cobra.Command{
	Use:   "set-status <order-id> <status>",
	Short: "Move an order to another status",
	Args:  cobra.ExactArgs(2),
	RunE:  setOrderStatus,
}

var deleteOrderCmd = &cobra.Command{
	Use:   "delete-order <order-id>",
	Short: "Delete an order",
	Args:  cobra.ExactArgs(1),
	RunE:  deleteOrder,
}

func init() {
	rootCmd.AddCommand(ordersCmd)
	rootCmd.AddCommand(setStatusCmd)
	rootCmd.AddCommand(deleteOrderCmd)

	ordersCmd.Flags().StringVar(&orderStatus, "status", "all", "status label or key")
	ordersCmd.Flags().StringVar(&orderFrom, "from", "", "earliest date, inclusive")
	ordersCmd.Flags().StringVar(&orderTo, "to", "", "latest date, inclusive")
	ordersCmd.Flags().StringVarP(&orderOutput, "output", "o", outputTable, "output format (table|json)")

	deleteOrderCmd.Flags().BoolVar(&forceDelete, "force", false, "skip confirmation")
}

func listOrders(cmd *cobra.Command, args []string) error {
	if err := checkOutput(orderOutput); err != nil {
		return err
	}
	status, err := models.ParseStatusFilter(orderStatus)
	if err != nil {
		return err
	}
	list, err := app.orders.ListOrders(orders.Filter{Status: status, From: orderFrom, To: orderTo})
	if err != nil {
		return err
	}
	if len(list) == 0 && orderOutput == outputTable {
		fmt.Fprintln(cmd.OutOrStdout(), "Nenhum pedido encontrado.")
		return nil
	}
	return printOrders(cmd.OutOrStdout(), orderOutput, list)
}

func setOrderStatus(cmd *cobra.Command, args []string) error {
	status, err := models.ParseOrderStatus(args[1])
	if err != nil {
		return err
	}
	o, err := app.orders.UpdateStatus(args[0], status)
	if models.IsNotFound(err) {
		fmt.Fprintln(cmd.ErrOrStderr(), err)
		return nil
	}
	if err != nil {
		return err
	}
	app.logger.Info("order status updated", "order_id", o.ID, "status", o.Status.Key())
	fmt.Fprintf(cmd.OutOrStdout(), "✅ %s -> %s\n", o.ID, o.Status)
	return nil
}

func deleteOrder(cmd *cobra.Command, args []string) error {
	id := args[0]
	if !forceDelete {
		fmt.Fprintf(cmd.OutOrStdout(), "Delete order %s? (y/N): ", id)
		line, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
		if resp := strings.TrimSpace(line); resp != "y" && resp != "Y" {
			fmt.Fprintln(cmd.OutOrStdout(), "aborted")
			return nil
		}
	}

	if err := app.orders.DeleteOrder(id); err != nil {
		if models.IsNotFound(err) {
			fmt.Fprintln(cmd.ErrOrStderr(), err)
			return nil
		}
		return err
	}
	app.logger.Info("order deleted", "order_id", id)
	fmt.Fprintln(cmd.OutOrStdout(), "deleted")
	return nil
}
