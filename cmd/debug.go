/* cmd/debug.go */

package cmd

import (
	"github.com/CodeMonkeyCybersecurity/chronicle/pkg/chronicle"
	cerr "github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newDebugCmd(rt *runtime) *cobra.Command {
	var toFile, overwrite bool

	cmd := &cobra.Command{
		Use:   "debug VALUE",
		Short: "Dump a JSON or YAML value to the console and optionally to debug.log",
		Example: `  chronicle debug '{"foo": "bar", "x": 6}' --file`,
		Args: cobra.ExactArgs(1),
		RunE: wrap(func(cmd *cobra.Command, args []string) error {
			var value interface{}
			if err := yaml.Unmarshal([]byte(args[0]), &value); err != nil {
				return cerr.Wrap(err, "parse debug value")
			}

			c, err := rt.open(cmd)
			if err != nil {
				return err
			}

			opts := []chronicle.CallOption{chronicle.WithFile(toFile)}
			if cmd.Flags().Changed("overwrite") {
				opts = append(opts, chronicle.WithOverwrite(overwrite))
			}
			return c.Debug(value, opts...).Wait()
		}),
	}

	cmd.Flags().BoolVarP(&toFile, "file", "f", false, "also write to debug.log")
	cmd.Flags().BoolVar(&overwrite, "overwrite", true, "replace debug.log instead of appending")
	return cmd
}
