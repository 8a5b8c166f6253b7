// Package cli holds the cobra commands of the bindery binary.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/bindery/internal/models"
	"github.com/example/bindery/internal/wire"
)

var customerCmd = &cobra.Command{
	Use:   "customer",
	Short: "Manage customers",
	Long:  "Create, list, search and de-duplicate the customer book",
}

var customerCreateCmd = &cobra.Command{
	Use:   "create [name]",
	Short: "Create a new customer",
	Long: `Create a new customer.

Email addresses must be unique (case-insensitive). A customer with the same
name is allowed but produces a warning.

Examples:
  bindery customer create "Acme Press" --email ops@acme.test
  bindery customer create "Birch Books" --contact "Dana Birch" --phone 555-0100`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		contact, _ := cmd.Flags().GetString("contact")
		email, _ := cmd.Flags().GetString("email")
		phone, _ := cmd.Flags().GetString("phone")
		address, _ := cmd.Flags().GetString("address")
		notes, _ := cmd.Flags().GetString("notes")

		return wire.CustomerAdapter().Create(cmd.Context(), models.CreateCustomerInput{
			Name:        args[0],
			ContactName: contact,
			Email:       email,
			Phone:       phone,
			Address:     address,
			Notes:       notes,
		})
	},
}

var customerListCmd = &cobra.Command{
	Use:   "list",
	Short: "List customers",
	RunE: func(cmd *cobra.Command, args []string) error {
		return wire.CustomerAdapter().List(cmd.Context())
	},
}

var customerSearchCmd = &cobra.Command{
	Use:   "search [text]",
	Short: "Find customers whose name contains text",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return wire.CustomerAdapter().Search(cmd.Context(), args[0])
	},
}

var customerShowCmd = &cobra.Command{
	Use:   "show [customer-id]",
	Short: "Show customer details",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return wire.CustomerAdapter().Show(cmd.Context(), args[0])
	},
}

var customerUpdateCmd = &cobra.Command{
	Use:   "update [customer-id]",
	Short: "Update customer fields",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return wire.CustomerAdapter().Update(cmd.Context(), args[0], models.UpdateCustomerInput{
			Name:        changedString(cmd, "name"),
			ContactName: changedString(cmd, "contact"),
			Email:       changedString(cmd, "email"),
			Phone:       changedString(cmd, "phone"),
			Address:     changedString(cmd, "address"),
			Notes:       changedString(cmd, "notes"),
		})
	},
}

var customerDeleteCmd = &cobra.Command{
	Use:   "delete [customer-id]",
	Short: "Delete a customer",
	Long: `Delete a customer.

Quotes and jobs keep their copy of the customer name; nothing else is removed.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return wire.CustomerAdapter().Delete(cmd.Context(), args[0])
	},
}

var customerDuplicatesCmd = &cobra.Command{
	Use:   "duplicates",
	Short: "List customers sharing an email address",
	RunE: func(cmd *cobra.Command, args []string) error {
		return wire.CustomerAdapter().Duplicates(cmd.Context())
	},
}

var customerDedupeCmd = &cobra.Command{
	Use:   "dedupe",
	Short: "Merge customers sharing an email address",
	Long: `Merge every group of customers sharing an email address.

The oldest customer of each group is kept and gains any contact details it
was missing; the others are deleted.

Examples:
  bindery customer dedupe --dry-run
  bindery customer dedupe`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dryRun, _ := cmd.Flags().GetBool("dry-run")
		return wire.CustomerAdapter().Dedupe(cmd.Context(), dryRun)
	},
}

// CustomerCmd returns the customer command
func CustomerCmd() *cobra.Command {
	for _, c := range []*cobra.Command{customerCreateCmd, customerUpdateCmd} {
		c.Flags().String("contact", "", "Contact name")
		c.Flags().StringP("email", "e", "", "Email address")
		c.Flags().String("phone", "", "Phone number")
		c.Flags().String("address", "", "Postal address")
		c.Flags().String("notes", "", "Free-form notes")
	}
	customerUpdateCmd.Flags().StringP("name", "n", "", "New customer name")
	customerDedupeCmd.Flags().Bool("dry-run", false, "Report what would be merged without changing anything")

	customerCmd.AddCommand(customerCreateCmd)
	customerCmd.AddCommand(customerListCmd)
	customerCmd.AddCommand(customerSearchCmd)
	customerCmd.AddCommand(customerShowCmd)
	customerCmd.AddCommand(customerUpdateCmd)
	customerCmd.AddCommand(customerDeleteCmd)
	customerCmd.AddCommand(customerDuplicatesCmd)
	customerCmd.AddCommand(customerDedupeCmd)

	return customerCmd
}
