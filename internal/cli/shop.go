package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/bindery/internal/wire"
)

// StatusCmd returns the status command
func StatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show record counts for the shop",
		RunE: func(cmd *cobra.Command, args []string) error {
			return wire.ShopAdapter().Status(cmd.Context(), wire.Services().Summary)
		},
	}
}

// SeedCmd returns the seed command
func SeedCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load demo customers, quotes and jobs",
		Long: `Load a demo data set: customers, quotes at every status, jobs promoted
from the accepted quotes and a few run list entries.

Does nothing when customers already exist unless --force is given.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return wire.ShopAdapter().Seed(cmd.Context(), wire.Services().Seed, force)
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Seed even if customers already exist")
	return cmd
}

// DoctorCmd returns the doctor command for data consistency checks
func DoctorCmd() *cobra.Command {
	var repair bool

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check quote/job links for inconsistencies",
		Long: `Scan quotes and jobs for broken links.

Finds:
- jobs whose quote does not point back at them (repairable)
- quotes linked to a job that no longer exists (repairable)
- quotes whose customer is gone, jobs whose quote is gone (reported only)

Examples:
  bindery doctor            # report only
  bindery doctor --repair   # fix what can be fixed`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return wire.ShopAdapter().Doctor(cmd.Context(), wire.Services().Reconcile, repair)
		},
	}
	cmd.Flags().BoolVar(&repair, "repair", false, "Fix repairable findings")
	return cmd
}

// BackupCmd returns the backup command
func BackupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "backup",
		Short: "Snapshot every collection to the configured backup sink",
		Long: `Write a timestamped JSON snapshot of customers, quotes, jobs and the run
list to a local directory or an S3 bucket, as set in .bindery/config.json.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := wire.Services().BackupService(cmd.Context())
			if err != nil {
				return err
			}
			return wire.ShopAdapter().Backup(cmd.Context(), svc)
		},
	}
}
