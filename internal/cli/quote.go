package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	cliadapter "github.com/example/bindery/internal/adapters/cli"
	"github.com/example/bindery/internal/models"
	"github.com/example/bindery/internal/wire"
)

var quoteCmd = &cobra.Command{
	Use:   "quote",
	Short: "Manage quotes",
	Long:  "Create, revise and track quotes with their quantity tiers",
}

var quoteCreateCmd = &cobra.Command{
	Use:   "create [customer-id] [job-title]",
	Short: "Create a new quote",
	Long: `Create a new draft quote numbered YYMM-NNNN for the current month.

Each --option is one quantity tier written QTY@UNITPRICE.

Examples:
  bindery quote create CUST-ID "Annual Report" --option 500@0.45 --option 1000@0.35
  bindery quote create CUST-ID "Catalogue" --size "8.5x11" --stock "80# gloss" --option 2500@0.22`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		rawOptions, _ := cmd.Flags().GetStringArray("option")
		options, err := parseOptions(rawOptions)
		if err != nil {
			return err
		}

		customerNumber, _ := cmd.Flags().GetString("customer-number")
		description, _ := cmd.Flags().GetString("description")
		size, _ := cmd.Flags().GetString("size")
		stock, _ := cmd.Flags().GetString("stock")
		notes, _ := cmd.Flags().GetString("notes")

		return wire.QuoteAdapter().Create(cmd.Context(), models.CreateQuoteInput{
			CustomerID:      args[0],
			CustomerNumber:  customerNumber,
			JobTitle:        args[1],
			Description:     description,
			FinishedSize:    size,
			PaperStock:      stock,
			QuantityOptions: options,
			Notes:           notes,
		})
	},
}

var quoteListCmd = &cobra.Command{
	Use:   "list",
	Short: "List quotes",
	RunE: func(cmd *cobra.Command, args []string) error {
		status, _ := cmd.Flags().GetString("status")
		customerID, _ := cmd.Flags().GetString("customer")
		number, _ := cmd.Flags().GetString("number")

		return wire.QuoteAdapter().List(cmd.Context(), cliadapter.QuoteFilters{
			Status:     status,
			CustomerID: customerID,
			Number:     number,
		})
	},
}

var quoteShowCmd = &cobra.Command{
	Use:   "show [quote-id]",
	Short: "Show quote details and tiers",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return wire.QuoteAdapter().Show(cmd.Context(), args[0])
	},
}

var quoteUpdateCmd = &cobra.Command{
	Use:   "update [quote-id]",
	Short: "Update quote fields",
	Long: `Update quote fields. Passing any --option replaces every tier.

The customer of a quote cannot be changed.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		input := models.UpdateQuoteInput{
			CustomerNumber: changedString(cmd, "customer-number"),
			JobTitle:       changedString(cmd, "title"),
			Description:    changedString(cmd, "description"),
			FinishedSize:   changedString(cmd, "size"),
			PaperStock:     changedString(cmd, "stock"),
			Notes:          changedString(cmd, "notes"),
		}
		if cmd.Flags().Changed("option") {
			rawOptions, _ := cmd.Flags().GetStringArray("option")
			options, err := parseOptions(rawOptions)
			if err != nil {
				return err
			}
			input.QuantityOptions = options
		}

		return wire.QuoteAdapter().Update(cmd.Context(), args[0], input)
	},
}

var quoteStatusCmd = &cobra.Command{
	Use:   "status [quote-id] [draft|sent|accepted|declined]",
	Short: "Set a quote's status",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return wire.QuoteAdapter().UpdateStatus(cmd.Context(), args[0], args[1])
	},
}

var quoteReviseCmd = &cobra.Command{
	Use:   "revise [quote-id]",
	Short: "Create a new draft revision of a quote",
	Long: `Copy a quote into a new draft revision sharing its quote number.

The revision gets the next free version number (shown as NUMBER-vN) and is
not linked to any job.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return wire.QuoteAdapter().Revise(cmd.Context(), args[0])
	},
}

var quoteDeleteCmd = &cobra.Command{
	Use:   "delete [quote-id]",
	Short: "Delete a quote",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return wire.QuoteAdapter().Delete(cmd.Context(), args[0])
	},
}

// QuoteCmd returns the quote command
func QuoteCmd() *cobra.Command {
	for _, c := range []*cobra.Command{quoteCreateCmd, quoteUpdateCmd} {
		c.Flags().StringArrayP("option", "o", nil, "Quantity tier as QTY@UNITPRICE (repeatable)")
		c.Flags().String("customer-number", "", "Customer's own reference number")
		c.Flags().StringP("description", "d", "", "Job description")
		c.Flags().String("size", "", "Finished size")
		c.Flags().String("stock", "", "Paper stock")
		c.Flags().String("notes", "", "Free-form notes")
	}
	quoteUpdateCmd.Flags().StringP("title", "t", "", "New job title")
	quoteListCmd.Flags().StringP("status", "s", "", fmt.Sprintf("Filter by status (%s)", joinStatuses(models.QuoteStatuses)))
	quoteListCmd.Flags().StringP("customer", "c", "", "Filter by customer ID")
	quoteListCmd.Flags().StringP("number", "n", "", "Show every revision of a quote number")

	quoteCmd.AddCommand(quoteCreateCmd)
	quoteCmd.AddCommand(quoteListCmd)
	quoteCmd.AddCommand(quoteShowCmd)
	quoteCmd.AddCommand(quoteUpdateCmd)
	quoteCmd.AddCommand(quoteStatusCmd)
	quoteCmd.AddCommand(quoteReviseCmd)
	quoteCmd.AddCommand(quoteDeleteCmd)

	return quoteCmd
}
