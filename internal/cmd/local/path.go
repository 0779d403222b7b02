package local

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/yacchi/mapskey/internal/cmdutil"
	"github.com/yacchi/mapskey/internal/properties"
)

var pathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show the local.properties path and whether it exists",
	Args:  cobra.NoArgs,
	RunE:  runPath,
}

func runPath(cmd *cobra.Command, _ []string) error {
	cfg, err := cmdutil.GetConfigStore(cmd)
	if err != nil {
		return err
	}

	path := cfg.PropertiesPath()
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}

	src := properties.Load(path)
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s (%s, %d keys)\n", path, src.Status(), src.Len())
	return err
}
