package config

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yacchi/mapskey/internal/cmdutil"
)

var pathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show configuration file paths",
	Args:  cobra.NoArgs,
	RunE:  runPath,
}

func runPath(cmd *cobra.Command, _ []string) error {
	cfg, err := cmdutil.GetConfigStore(cmd)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Config:      %s\n", cfg.GetUserConfigPath())
	if projectPath := cfg.GetProjectConfigPath(); projectPath != "" {
		fmt.Fprintf(w, "Project:     %s\n", projectPath)
	}
	fmt.Fprintf(w, "Properties:  %s\n", cfg.PropertiesPath())
	return nil
}
