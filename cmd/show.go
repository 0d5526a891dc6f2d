/* cmd/show.go */

package cmd

import (
	"fmt"

	cerr "github.com/cockroachdb/errors"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

func newShowCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "show TYPE",
		Short: "Print the log file of a type",
		Args:  cobra.ExactArgs(1),
		RunE: wrap(func(cmd *cobra.Command, args []string) error {
			c, err := rt.open(cmd)
			if err != nil {
				return err
			}

			path := c.LogFile(args[0])
			data, err := afero.ReadFile(afero.NewOsFs(), path)
			if err != nil {
				return cerr.Wrapf(err, "read log file %s", path)
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), string(data))
			return err
		}),
	}
}
