/* cmd/config.go */

package cmd

import (
	"fmt"

	"github.com/CodeMonkeyCybersecurity/chronicle/pkg/config"
	"github.com/CodeMonkeyCybersecurity/chronicle/pkg/logger"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

func newConfigCmd() *cobra.Command {
	cfg := &cobra.Command{
		Use:   "config",
		Short: "Manage the chronicle config file",
	}

	cfg.AddCommand(&cobra.Command{
		Use:   "init [PATH]",
		Short: "Write a starter config file",
		Args:  cobra.MaximumNArgs(1),
		RunE: wrap(func(cmd *cobra.Command, args []string) error {
			path := config.DefaultPath()
			if len(args) == 1 {
				path = args[0]
			}
			if err := config.WriteSample(afero.NewOsFs(), logger.L(), path); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Wrote", path)
			return nil
		}),
	})
	return cfg
}
