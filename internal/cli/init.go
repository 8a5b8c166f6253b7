package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/bindery/internal/config"
)

// InitCmd returns the init command
func InitCmd() *cobra.Command {
	var driver string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create .bindery/config.json in the current directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to get working directory: %w", err)
			}

			if _, err := config.LoadConfig(dir); err == nil {
				return fmt.Errorf("already initialized: .bindery/config.json exists")
			} else if !errors.Is(err, fs.ErrNotExist) {
				return err
			}

			cfg := config.Default()
			cfg.StoreDriver = driver
			if err := cfg.Validate(); err != nil {
				return err
			}
			if err := os.MkdirAll(config.ResolvePath(dir, cfg.DataDir), 0755); err != nil {
				return fmt.Errorf("failed to create data directory: %w", err)
			}
			if err := config.SaveConfig(dir, cfg); err != nil {
				return err
			}

			fmt.Printf("✓ Initialized bindery in %s (store: %s)\n", dir, cfg.StoreDriver)
			fmt.Println()
			fmt.Println("Next steps:")
			fmt.Println("  bindery customer create \"My First Customer\"")
			fmt.Println("  bindery status")
			return nil
		},
	}
	cmd.Flags().StringVar(&driver, "store", config.StoreJSON, "Record store (json or sqlite)")
	return cmd
}
