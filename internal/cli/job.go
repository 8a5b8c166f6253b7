package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	cliadapter "github.com/example/bindery/internal/adapters/cli"
	"github.com/example/bindery/internal/models"
	"github.com/example/bindery/internal/wire"
)

var jobCmd = &cobra.Command{
	Use:   "job",
	Short: "Manage jobs",
	Long:  "Promote accepted quotes into jobs and track them through production",
}

var jobCreateCmd = &cobra.Command{
	Use:   "create [quote-id] [quantity]",
	Short: "Create a job from an accepted quote",
	Long: `Create a job from an accepted quote at one of its quantity tiers.

The job takes the quote's number and the tier's unit price. A quote can be
promoted only once.

Examples:
  bindery job create QUOTE-ID 1000`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		quantity, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid quantity %q", args[1])
		}
		return wire.JobAdapter().Create(cmd.Context(), args[0], quantity)
	},
}

var jobListCmd = &cobra.Command{
	Use:   "list",
	Short: "List jobs",
	Long: `List jobs, optionally filtered.

Examples:
  bindery job list --status in_progress
  bindery job list --due-from 2026-03-01 --due-to 2026-03-31`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return listJobs(cmd, false)
	},
}

var jobActiveCmd = &cobra.Command{
	Use:   "active",
	Short: "List jobs that are neither complete nor cancelled",
	RunE: func(cmd *cobra.Command, args []string) error {
		return listJobs(cmd, true)
	},
}

func listJobs(cmd *cobra.Command, activeOnly bool) error {
	status, _ := cmd.Flags().GetString("status")
	customerID, _ := cmd.Flags().GetString("customer")
	from, err := parseDateFlag(cmd, "due-from")
	if err != nil {
		return err
	}
	to, err := parseEndDateFlag(cmd, "due-to")
	if err != nil {
		return err
	}

	return wire.JobAdapter().List(cmd.Context(), cliadapter.JobFilters{
		Status:     status,
		CustomerID: customerID,
		ActiveOnly: activeOnly,
		DueFrom:    from,
		DueTo:      to,
	})
}

var jobShowCmd = &cobra.Command{
	Use:   "show [job-id]",
	Short: "Show job details",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return wire.JobAdapter().Show(cmd.Context(), args[0])
	},
}

var jobUpdateCmd = &cobra.Command{
	Use:   "update [job-id]",
	Short: "Update job-only fields",
	Long: `Update the fields a job adds on top of its quote.

Title, quantity and price come from the quote and cannot be changed here.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return wire.JobAdapter().Update(cmd.Context(), args[0], models.UpdateJobInput{
			CustomerJobNumber:   changedString(cmd, "customer-job"),
			PONumber:            changedString(cmd, "po"),
			PartNumber:          changedString(cmd, "part"),
			ExpectedInDate:      changedString(cmd, "expected-in"),
			DueDate:             changedString(cmd, "due"),
			AllowedSamples:      changedInt(cmd, "samples"),
			AllowedOvers:        changedFloat(cmd, "overs"),
			DeliveryInformation: changedString(cmd, "delivery"),
			MiscellaneousNotes:  changedString(cmd, "notes"),
		})
	},
}

var jobStatusCmd = &cobra.Command{
	Use:   "status [job-id] [status]",
	Short: "Set a job's status",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return wire.JobAdapter().UpdateStatus(cmd.Context(), args[0], args[1])
	},
}

var jobStartCmd = &cobra.Command{
	Use:   "start [job-id]",
	Short: "Mark a job in progress",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return wire.JobAdapter().Start(cmd.Context(), args[0])
	},
}

var jobCompleteCmd = &cobra.Command{
	Use:   "complete [job-id]",
	Short: "Mark a job complete",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return wire.JobAdapter().Complete(cmd.Context(), args[0])
	},
}

var jobHoldCmd = &cobra.Command{
	Use:   "hold [job-id]",
	Short: "Put a job on hold",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return wire.JobAdapter().Hold(cmd.Context(), args[0])
	},
}

var jobCancelCmd = &cobra.Command{
	Use:   "cancel [job-id]",
	Short: "Cancel a job",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return wire.JobAdapter().Cancel(cmd.Context(), args[0])
	},
}

var jobDeleteCmd = &cobra.Command{
	Use:   "delete [job-id]",
	Short: "Delete a job",
	Long: `Delete a job. Its source quote is unlinked and can be promoted again.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return wire.JobAdapter().Delete(cmd.Context(), args[0])
	},
}

// JobCmd returns the job command
func JobCmd() *cobra.Command {
	for _, c := range []*cobra.Command{jobListCmd, jobActiveCmd} {
		c.Flags().StringP("customer", "c", "", "Filter by customer ID")
		c.Flags().String("due-from", "", "Only jobs due on or after this date")
		c.Flags().String("due-to", "", "Only jobs due on or before this date")
	}
	jobListCmd.Flags().StringP("status", "s", "", fmt.Sprintf("Filter by status (%s)", joinStatuses(models.JobStatuses)))

	jobUpdateCmd.Flags().String("customer-job", "", "Customer's job number")
	jobUpdateCmd.Flags().String("po", "", "Purchase order number")
	jobUpdateCmd.Flags().String("part", "", "Part number")
	jobUpdateCmd.Flags().String("expected-in", "", "Date material is expected in")
	jobUpdateCmd.Flags().String("due", "", "Due date")
	jobUpdateCmd.Flags().Int("samples", 0, "Allowed samples")
	jobUpdateCmd.Flags().Float64("overs", 0, "Allowed overs (percent)")
	jobUpdateCmd.Flags().String("delivery", "", "Delivery information")
	jobUpdateCmd.Flags().String("notes", "", "Miscellaneous notes")

	jobCmd.AddCommand(jobCreateCmd)
	jobCmd.AddCommand(jobListCmd)
	jobCmd.AddCommand(jobActiveCmd)
	jobCmd.AddCommand(jobShowCmd)
	jobCmd.AddCommand(jobUpdateCmd)
	jobCmd.AddCommand(jobStatusCmd)
	jobCmd.AddCommand(jobStartCmd)
	jobCmd.AddCommand(jobCompleteCmd)
	jobCmd.AddCommand(jobHoldCmd)
	jobCmd.AddCommand(jobCancelCmd)
	jobCmd.AddCommand(jobDeleteCmd)

	return jobCmd
}
