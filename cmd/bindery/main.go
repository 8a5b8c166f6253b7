package main

import (
	"fmt"
	"os"
	"os/user"

	"github.com/spf13/cobra"

	"github.com/example/bindery/internal/cli"
	"github.com/example/bindery/internal/ctxutil"
	"github.com/example/bindery/internal/version"
	"github.com/example/bindery/internal/wire"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "bindery",
		Short:   "Bindery - quoting and production tracking for a print finishing shop",
		Version: version.String(),
		Long: `Bindery keeps the customer book, prices quotes at several quantity tiers,
promotes accepted quotes into jobs and schedules them on the run list.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(ctxutil.WithActor(cmd.Context(), currentActor()))
			if cmd.Name() == "init" {
				return nil
			}
			return wire.Init()
		},
	}
	rootCmd.PersistentFlags().StringVar(&wire.DataDirOverride, "data-dir", "", "Override the configured data directory")

	rootCmd.AddCommand(cli.InitCmd())
	rootCmd.AddCommand(cli.StatusCmd())
	rootCmd.AddCommand(cli.DoctorCmd())
	rootCmd.AddCommand(cli.BackupCmd())
	rootCmd.AddCommand(cli.SeedCmd())

	// Entity commands
	rootCmd.AddCommand(cli.CustomerCmd())
	rootCmd.AddCommand(cli.QuoteCmd())
	rootCmd.AddCommand(cli.JobCmd())
	rootCmd.AddCommand(cli.RunListCmd())

	err := rootCmd.Execute()
	wire.Shutdown()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// currentActor names who is running the command: BINDERY_ACTOR, else the OS user.
func currentActor() string {
	if actor := os.Getenv("BINDERY_ACTOR"); actor != "" {
		return actor
	}
	if u, err := user.Current(); err == nil {
		return u.Username
	}
	return ""
}
