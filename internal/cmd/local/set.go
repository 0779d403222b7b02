package local

import (
	"bufio"
	"os"
	"strings"

	"github.com/go-faster/errors"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/yacchi/mapskey/internal/cmdutil"
	"github.com/yacchi/mapskey/internal/properties"
	"github.com/yacchi/mapskey/internal/ui"
)

var setCmd = &cobra.Command{
	Use:   "set <key> [value]",
	Short: "Store a value in local.properties",
	Long: `Store a value in local.properties.

The key may be a binding name (maps_api_key), a placeholder name
(GOOGLE_MAPS_API_KEY) or a raw properties key.

If value is omitted it is read from the terminal (hidden input) or
from stdin when piped.

Examples:
  mapskey local set maps_api_key AIza...
  mapskey local set GOOGLE_MAPS_MAP_ID_ANDROID 71ed63eff6a1ac4f
  mapskey local set maps_api_key             # prompts for the key
  echo "AIza..." | mapskey local set maps_api_key`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runSet,
}

func runSet(cmd *cobra.Command, args []string) error {
	cfg, err := cmdutil.GetConfigStore(cmd)
	if err != nil {
		return err
	}

	key, err := propertyKey(cfg, args[0])
	if err != nil {
		return errors.Wrapf(cmdutil.ErrConfig, "%v", err)
	}

	var value string
	if len(args) == 2 {
		value = args[1]
	} else {
		value, err = readValue(cmd, key)
		if err != nil {
			return err
		}
	}
	if value == "" {
		return errors.New("value cannot be empty")
	}

	path := cfg.PropertiesPath()
	if err := properties.Set(path, key, value); err != nil {
		return err
	}

	ui.Success("Set %s in %s", key, path)
	return nil
}

// readValue は端末なら非表示入力、パイプなら1行読み込む
func readValue(cmd *cobra.Command, key string) (string, error) {
	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		value, err := ui.Password("Value for " + key + ":")
		if err != nil {
			return "", errors.Wrap(err, "read value")
		}
		return strings.TrimSpace(value), nil
	}

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && line == "" {
		return "", errors.Wrap(err, "read value from stdin")
	}
	return strings.TrimSpace(line), nil
}
