package config

import (
	"fmt"

	"github.com/go-faster/errors"
	"github.com/spf13/cobra"

	"github.com/yacchi/mapskey/internal/cmdutil"
)

var getCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Long: `Get a configuration value.

Examples:
  mapskey config get source.root
  mapskey config get output.format
  mapskey config get bindings.maps_api_key.placeholder`,
	Args: cobra.ExactArgs(1),
	RunE: runGet,
}

func runGet(cmd *cobra.Command, args []string) error {
	key := args[0]

	cfg, err := cmdutil.GetConfigStore(cmd)
	if err != nil {
		return err
	}

	value := cfg.Get(key)
	if value == nil {
		return errors.Wrapf(cmdutil.ErrNotFound, "unknown config key: %s", key)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), value)
	return err
}
