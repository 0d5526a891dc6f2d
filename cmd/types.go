/* cmd/types.go */

package cmd

import (
	"fmt"

	"github.com/CodeMonkeyCybersecurity/chronicle/pkg/colour"
	cerr "github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newTypesCmd(rt *runtime) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "types",
		Short: "List registered log types and where they write",
		Args:  cobra.NoArgs,
		RunE: wrap(func(cmd *cobra.Command, args []string) error {
			c, err := rt.open(cmd)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			switch output {
			case "yaml":
				enc := yaml.NewEncoder(out)
				defer enc.Close()
				return enc.Encode(c.Types())
			case "text":
				for _, ti := range c.Types() {
					fn, err := c.ColorOf(ti.Name)
					if err != nil {
						return err
					}
					fmt.Fprintf(out, "%s\t%s\n", fn(ti.Name), c.LogFile(ti.Name))
				}
				return nil
			default:
				return cerr.Newf("unknown output format %q (want text or yaml)", output)
			}
		}),
	}

	cmd.Flags().StringVarP(&output, "output", "o", "text", "output format: text or yaml")
	return cmd
}

func newColoursCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "colours",
		Aliases: []string{"colors"},
		Short:   "List the colour names accepted in type definitions",
		Args:    cobra.NoArgs,
		RunE: wrap(func(cmd *cobra.Command, args []string) error {
			for _, name := range colour.Names() {
				fn, err := colour.Resolve(name)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), fn(name))
			}
			return nil
		}),
	}
}
