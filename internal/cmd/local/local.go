// Package local implements the "mapskey local" commands that edit the
// developer-specific local.properties file.
package local

import (
	"github.com/spf13/cobra"

	"github.com/yacchi/mapskey/internal/config"
)

var LocalCmd = &cobra.Command{
	Use:   "local",
	Short: "Manage local.properties overrides",
	Long: `Manage the developer-specific values in local.properties.

local.properties is not committed to version control. Values stored
there override the built-in fallbacks for this machine only.`,
}

func init() {
	LocalCmd.AddCommand(setCmd)
	LocalCmd.AddCommand(unsetCmd)
	LocalCmd.AddCommand(pathCmd)
}

// propertyKey は論理名（maps_api_key）またはプレースホルダー名を
// local.properties のキーに変換する。該当しなければそのまま返す
func propertyKey(cfg *config.Store, name string) (string, error) {
	bindings, err := cfg.Bindings()
	if err != nil {
		return "", err
	}
	for _, b := range bindings {
		if b.Name == name || b.Placeholder == name {
			return b.Key, nil
		}
	}
	return name, nil
}
