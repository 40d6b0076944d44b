package commands

import (
	"context"
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/paystack/internal/constants"
	"github.com/fivetwenty-io/paystack/pkg/paystack"
)

// NewTransactionsCommand creates the transactions command group.
func NewTransactionsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "transactions",
		Aliases: []string{"transaction", "tx"},
		Short:   "Inspect transactions",
	}

	cmd.AddCommand(newTransactionsInitializeCommand())
	cmd.AddCommand(newTransactionsVerifyCommand())
	cmd.AddCommand(newTransactionsListCommand())

	return cmd
}

func newTransactionsInitializeCommand() *cobra.Command {
	var (
		email       string
		amount      int64
		currency    string
		reference   string
		callbackURL string
	)

	cmd := &cobra.Command{
		Use:   "initialize",
		Short: "Initialize a transaction",
		Long:  "Start a payment and print the checkout URL. A reference is generated when none is given.",
		Example: `  paystack transactions initialize --email ada@example.com --amount 50000
  paystack transactions initialize --email ada@example.com --amount 2000 --currency GHS --reference order-17`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if reference == "" {
				reference = uuid.NewString()
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			resp, err := client.Transactions().Initialize(context.Background(), &paystack.TransactionInitializeRequest{
				Email:       email,
				Amount:      amount,
				Currency:    currency,
				Reference:   reference,
				CallbackURL: callbackURL,
			})
			if err != nil {
				return err
			}

			authorization, err := paystack.DecodeData[paystack.TransactionAuthorization](resp)
			if err != nil {
				return err
			}

			handled, err := renderStructured(cmd, authorization)
			if handled {
				return err
			}

			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.Header("Property", "Value")

			_ = table.Append("Reference", authorization.Reference)
			_ = table.Append("Access Code", authorization.AccessCode)
			_ = table.Append("Authorization URL", authorization.AuthorizationURL)

			_ = table.Render()

			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "customer email address")
	cmd.Flags().Int64Var(&amount, "amount", 0, "amount in the currency's subunit (kobo, pesewas, cents)")
	cmd.Flags().StringVar(&currency, "currency", "", "currency code (defaults to the integration's currency)")
	cmd.Flags().StringVar(&reference, "reference", "", "unique transaction reference")
	cmd.Flags().StringVar(&callbackURL, "callback-url", "", "URL to redirect to after payment")

	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func newTransactionsVerifyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "verify REFERENCE",
		Short: "Verify a transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			resp, err := client.Transactions().Verify(context.Background(), args[0])
			if err != nil {
				return err
			}

			transaction, err := paystack.DecodeData[paystack.Transaction](resp)
			if err != nil {
				return err
			}

			handled, err := renderStructured(cmd, transaction)
			if handled {
				return err
			}

			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.Header("Property", "Value")

			_ = table.Append("ID", strconv.FormatInt(transaction.ID, 10))
			_ = table.Append("Reference", transaction.Reference)
			_ = table.Append("Status", transaction.Status)
			_ = table.Append("Amount", formatAmount(transaction.Amount, transaction.Currency))
			_ = table.Append("Fees", formatAmount(transaction.Fees, transaction.Currency))
			_ = table.Append("Channel", transaction.Channel)
			_ = table.Append("Gateway Response", transaction.GatewayResponse)
			_ = table.Append("Paid At", transaction.PaidAt)
			_ = table.Append("Created", transaction.CreatedAt)

			_ = table.Render()

			return nil
		},
	}
}

func newTransactionsListCommand() *cobra.Command {
	var (
		status   string
		customer string
		perPage  int
		page     int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List transactions",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			params := &paystack.TransactionListParams{
				Status:   status,
				Customer: customer,
			}
			params.PerPage = perPage
			params.Page = page

			resp, err := client.Transactions().List(context.Background(), params)
			if err != nil {
				return err
			}

			transactions, err := paystack.DecodeData[[]paystack.Transaction](resp)
			if err != nil {
				return err
			}

			handled, err := renderStructured(cmd, transactions)
			if handled {
				return err
			}

			out := cmd.OutOrStdout()

			if len(*transactions) == 0 {
				_, _ = fmt.Fprintln(out, "No transactions found")

				return nil
			}

			table := tablewriter.NewWriter(out)
			table.Header("ID", "Reference", "Status", "Amount", "Channel", "Created")

			for _, transaction := range *transactions {
				_ = table.Append(
					strconv.FormatInt(transaction.ID, 10),
					transaction.Reference,
					transaction.Status,
					formatAmount(transaction.Amount, transaction.Currency),
					transaction.Channel,
					transaction.CreatedAt,
				)
			}

			_ = table.Render()

			meta, err := paystack.DecodeMeta(resp)
			if err == nil {
				_, _ = fmt.Fprintf(out, "Page %d of %d (%d total)\n", meta.Page, meta.PageCount, meta.Total)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "filter by status (success, failed, abandoned)")
	cmd.Flags().StringVar(&customer, "customer", "", "filter by customer ID")
	cmd.Flags().IntVar(&perPage, "per-page", constants.StandardPageSize, "results per page")
	cmd.Flags().IntVar(&page, "page", 1, "page number")

	return cmd
}

// formatAmount renders an amount held in the currency's subunit.
func formatAmount(subunits int64, currency string) string {
	const subunitsPerUnit = 100

	sign := ""
	if subunits < 0 {
		sign = "-"
		subunits = -subunits
	}

	amount := fmt.Sprintf("%s%d.%02d", sign, subunits/subunitsPerUnit, subunits%subunitsPerUnit)
	if currency == "" {
		return amount
	}

	return amount + " " + currency
}
