package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/example/bindery/internal/adapters/xlsx"
	"github.com/example/bindery/internal/models"
	"github.com/example/bindery/internal/wire"
)

var runListCmd = &cobra.Command{
	Use:     "runlist",
	Aliases: []string{"run"},
	Short:   "Manage the production run list",
	Long:    "Schedule jobs on the shop-floor run list, sorted by category then due-out date",
}

var runListAddCmd = &cobra.Command{
	Use:   "add [job-id]",
	Short: "Add a job to the run list",
	Long: `Add a job to the run list. A job can appear on the run list only once.

Examples:
  bindery runlist add JOB-ID --category "Perfect Bind" --due-out 2026-03-20 --op fold --op trim`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		category, _ := cmd.Flags().GetString("category")
		dueOut, _ := cmd.Flags().GetString("due-out")
		dueIn, _ := cmd.Flags().GetString("due-in")
		ops, _ := cmd.Flags().GetStringArray("op")

		return wire.RunListAdapter().Add(cmd.Context(), models.CreateRunListItemInput{
			JobID:      args[0],
			Category:   category,
			DueOut:     dueOut,
			DueIn:      dueIn,
			Operations: ops,
		})
	},
}

var runListListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the run list in default order",
	RunE: func(cmd *cobra.Command, args []string) error {
		status, _ := cmd.Flags().GetString("status")
		active, _ := cmd.Flags().GetBool("active")
		return wire.RunListAdapter().List(cmd.Context(), status, active)
	},
}

var runListShowCmd = &cobra.Command{
	Use:   "show [item-id]",
	Short: "Show run list item details",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return wire.RunListAdapter().Show(cmd.Context(), args[0])
	},
}

var runListUpdateCmd = &cobra.Command{
	Use:   "update [item-id]",
	Short: "Update run list fields",
	Long: `Update run list fields. Passing any --op replaces the operations list.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		input := models.UpdateRunListItemInput{
			Category:          changedString(cmd, "category"),
			DueOut:            changedString(cmd, "due-out"),
			DueIn:             changedString(cmd, "due-in"),
			CustomerPO:        changedString(cmd, "po"),
			CustomerJobNumber: changedString(cmd, "customer-job"),
			Quantity:          changedInt(cmd, "quantity"),
			Description:       changedString(cmd, "description"),
		}
		if cmd.Flags().Changed("op") {
			ops, _ := cmd.Flags().GetStringArray("op")
			input.Operations = ops
		}
		return wire.RunListAdapter().Update(cmd.Context(), args[0], input)
	},
}

var runListStatusCmd = &cobra.Command{
	Use:   "status [item-id] [planned|in|hold|complete]",
	Short: "Set a run list item's status",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return wire.RunListAdapter().UpdateStatus(cmd.Context(), args[0], args[1])
	},
}

var runListDeleteCmd = &cobra.Command{
	Use:   "delete [item-id]",
	Short: "Remove an item from the run list",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return wire.RunListAdapter().Delete(cmd.Context(), args[0])
	},
}

var runListExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the run list to an Excel workbook",
	Long: `Write the run list, in default order, to an .xlsx file.

Examples:
  bindery runlist export
  bindery runlist export --active --out floor.xlsx`,
	RunE: func(cmd *cobra.Command, args []string) error {
		status, _ := cmd.Flags().GetString("status")
		active, _ := cmd.Flags().GetBool("active")
		out, _ := cmd.Flags().GetString("out")

		items, err := wire.RunListAdapter().Items(cmd.Context(), status, active)
		if err != nil {
			return err
		}

		f, filename, err := xlsx.ExportRunList(items, time.Now())
		if err != nil {
			return err
		}
		defer f.Close()

		if out == "" {
			out = filename
		}
		if err := f.SaveAs(out); err != nil {
			return fmt.Errorf("failed to write %s: %w", out, err)
		}

		fmt.Printf("✓ Exported %d run list item(s) to %s\n", len(items), out)
		return nil
	},
}

// RunListCmd returns the runlist command
func RunListCmd() *cobra.Command {
	for _, c := range []*cobra.Command{runListAddCmd, runListUpdateCmd} {
		c.Flags().String("category", "", "Binding category")
		c.Flags().String("due-out", "", "Date the job must ship")
		c.Flags().String("due-in", "", "Date the job arrives in the bindery")
		c.Flags().StringArray("op", nil, "Operation (repeatable)")
	}
	runListUpdateCmd.Flags().String("po", "", "Customer PO")
	runListUpdateCmd.Flags().String("customer-job", "", "Customer job number")
	runListUpdateCmd.Flags().Int("quantity", 0, "Quantity")
	runListUpdateCmd.Flags().StringP("description", "d", "", "Description")

	for _, c := range []*cobra.Command{runListListCmd, runListExportCmd} {
		c.Flags().StringP("status", "s", "", fmt.Sprintf("Filter by status (%s)", joinStatuses(models.RunListStatuses)))
		c.Flags().Bool("active", false, "Only items not yet complete")
	}
	runListExportCmd.Flags().StringP("out", "o", "", "Output file (default run-list_DATE.xlsx)")

	runListCmd.AddCommand(runListAddCmd)
	runListCmd.AddCommand(runListListCmd)
	runListCmd.AddCommand(runListShowCmd)
	runListCmd.AddCommand(runListUpdateCmd)
	runListCmd.AddCommand(runListStatusCmd)
	runListCmd.AddCommand(runListDeleteCmd)
	runListCmd.AddCommand(runListExportCmd)

	return runListCmd
}
