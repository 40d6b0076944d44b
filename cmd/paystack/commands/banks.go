package commands

import (
	"context"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/paystack/pkg/paystack"
)

// NewBanksCommand creates the banks command group.
func NewBanksCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "banks",
		Aliases: []string{"bank"},
		Short:   "Query supported banks",
	}

	cmd.AddCommand(newBanksListCommand())

	return cmd
}

func newBanksListCommand() *cobra.Command {
	var (
		country  string
		currency string
		perPage  int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List banks",
		Long:  "List the banks Paystack supports, optionally filtered by country or currency.",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			resp, err := client.Miscellaneous().ListBanks(context.Background(), &paystack.BankListParams{
				Country:  country,
				Currency: currency,
				PerPage:  perPage,
			})
			if err != nil {
				return err
			}

			banks, err := paystack.DecodeData[[]paystack.Bank](resp)
			if err != nil {
				return err
			}

			handled, err := renderStructured(cmd, banks)
			if handled {
				return err
			}

			if len(*banks) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No banks found")

				return nil
			}

			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.Header("Name", "Code", "Country", "Currency", "Type", "Active")

			for _, bank := range *banks {
				_ = table.Append(bank.Name, bank.Code, bank.Country, bank.Currency, bank.Type, formatCell(paystack.Bool(bank.Active)))
			}

			_ = table.Render()

			return nil
		},
	}

	cmd.Flags().StringVar(&country, "country", "", "filter by country (e.g. nigeria, ghana, kenya)")
	cmd.Flags().StringVar(&currency, "currency", "", "filter by currency (e.g. NGN, GHS)")
	cmd.Flags().IntVar(&perPage, "per-page", 0, "results per page")

	return cmd
}
