package config

import (
	"github.com/spf13/cobra"
)

var ConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long: `Get and set mapskey configuration.

Configuration is layered. Later layers win:
  defaults  built-in values
  user      ~/.config/mapskey/config.yaml
  project   .mapskey.yaml in the project root
  env       MAPSKEY_* environment variables
  args      command-line flags`,
}

func init() {
	ConfigCmd.AddCommand(getCmd)
	ConfigCmd.AddCommand(setCmd)
	ConfigCmd.AddCommand(listCmd)
	ConfigCmd.AddCommand(pathCmd)
}
