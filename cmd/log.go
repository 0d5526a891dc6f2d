/* cmd/log.go */

package cmd

import (
	"strings"

	"github.com/CodeMonkeyCybersecurity/chronicle/pkg/chronicle"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func newLogCmd(rt *runtime) *cobra.Command {
	var typ string
	var toFile, overwrite bool

	cmd := &cobra.Command{
		Use:   "log MESSAGE...",
		Short: "Log one or more messages under a type",
		Example: `  chronicle log "service started"
  chronicle log --type error --file "disk full"`,
		Args: cobra.MinimumNArgs(1),
		RunE: wrap(func(cmd *cobra.Command, args []string) error {
			c, err := rt.open(cmd)
			if err != nil {
				return err
			}

			var opts []chronicle.CallOption
			if cmd.Flags().Changed("file") {
				opts = append(opts, chronicle.WithFile(toFile))
			}
			if cmd.Flags().Changed("overwrite") {
				opts = append(opts, chronicle.WithOverwrite(overwrite))
			}

			var g errgroup.Group
			for _, msg := range args {
				done, err := c.Log(typ, strings.TrimSpace(msg), opts...)
				if err != nil {
					return err
				}
				g.Go(done.Wait)
			}
			return g.Wait()
		}),
	}

	cmd.Flags().StringVarP(&typ, "type", "t", "info", "log type to write under")
	cmd.Flags().BoolVarP(&toFile, "file", "f", false, "also write to the type's log file")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "replace the log file instead of appending")
	return cmd
}
