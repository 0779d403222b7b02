package cmd

import (
	"fmt"

	"github.com/go-faster/errors"
	"github.com/spf13/cobra"

	"github.com/yacchi/mapskey/internal/cmdutil"
)

var getCmd = &cobra.Command{
	Use:   "get <name>",
	Short: "Print a single resolved value",
	Long: `Print a single resolved value, looked up by binding name or
placeholder name.

Examples:
  mapskey get maps_api_key
  mapskey get GOOGLE_MAPS_MAP_ID`,
	Args: cobra.ExactArgs(1),
	RunE: runGet,
}

func init() {
	rootCmd.AddCommand(getCmd)
}

func runGet(cmd *cobra.Command, args []string) error {
	resolved, _, err := cmdutil.Resolve(cmd)
	if err != nil {
		return err
	}

	value, ok := resolved.Get(args[0])
	if !ok {
		return errors.Wrapf(cmdutil.ErrNotFound, "no binding or placeholder named %q", args[0])
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), value)
	return err
}
