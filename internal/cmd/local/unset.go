package local

import (
	"os"

	"github.com/go-faster/errors"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/yacchi/mapskey/internal/cmdutil"
	"github.com/yacchi/mapskey/internal/properties"
	"github.com/yacchi/mapskey/internal/ui"
)

var unsetYes bool

var unsetCmd = &cobra.Command{
	Use:   "unset <key>",
	Short: "Remove a value from local.properties",
	Long: `Remove a value from local.properties so that the built-in fallback
is used again.

Examples:
  mapskey local unset maps_api_key
  mapskey local unset GOOGLE_MAPS_MAP_ID_ANDROID --yes`,
	Args: cobra.ExactArgs(1),
	RunE: runUnset,
}

func init() {
	unsetCmd.Flags().BoolVarP(&unsetYes, "yes", "y", false, "Skip confirmation prompt")
}

func runUnset(cmd *cobra.Command, args []string) error {
	cfg, err := cmdutil.GetConfigStore(cmd)
	if err != nil {
		return err
	}

	key, err := propertyKey(cfg, args[0])
	if err != nil {
		return errors.Wrapf(cmdutil.ErrConfig, "%v", err)
	}

	path := cfg.PropertiesPath()
	src := properties.Load(path)
	if _, ok := src.Get(key); !ok {
		ui.Info("%s is not set in %s", key, path)
		return nil
	}

	if !unsetYes {
		if f, ok := cmd.InOrStdin().(*os.File); !ok || !term.IsTerminal(int(f.Fd())) {
			return errors.Wrap(cmdutil.ErrUsage, "refusing to remove without a terminal; pass --yes")
		}
		confirmed, err := ui.Confirm("Remove "+key+" from "+path+"?", false)
		if err != nil {
			return errors.Wrap(err, "confirm")
		}
		if !confirmed {
			ui.Info("Cancelled")
			return nil
		}
	}

	if err := properties.Unset(path, key); err != nil {
		return err
	}
	ui.Success("Removed %s from %s", key, path)
	return nil
}
