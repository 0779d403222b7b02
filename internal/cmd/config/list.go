package config

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/yacchi/mapskey/internal/cmdutil"
	"github.com/yacchi/mapskey/internal/config"
	"github.com/yacchi/mapskey/internal/ui"
)

var listAllFlag bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List configuration values",
	Long: `List configuration values.

By default, shows only values that differ from the built-in defaults.
Use --all to show all configuration values including defaults.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	listCmd.Flags().BoolVarP(&listAllFlag, "all", "a", false, "Show all configuration values including defaults")
}

type listEntry struct {
	path         string
	value        string
	layer        string
	defaultValue string
}

func runList(cmd *cobra.Command, _ []string) error {
	cfg, err := cmdutil.GetConfigStore(cmd)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()

	if userPath := cfg.GetUserConfigPath(); userPath != "" {
		fmt.Fprintf(w, "# User config: %s\n", userPath)
	}
	if projectPath := cfg.GetProjectConfigPath(); projectPath != "" {
		fmt.Fprintf(w, "# Project config: %s\n", projectPath)
	}

	var entries []listEntry
	cfg.Walk(func(e config.WalkEntry) bool {
		if !listAllFlag && e.Layer == config.LayerDefaults {
			return true
		}
		entry := listEntry{
			path:  e.Path,
			value: fmt.Sprintf("%v", e.Value),
			layer: e.Layer,
		}
		if e.DefaultValue != nil {
			entry.defaultValue = fmt.Sprintf("%v", e.DefaultValue)
		}
		entries = append(entries, entry)
		return true
	})

	if len(entries) == 0 {
		if listAllFlag {
			fmt.Fprintln(w, "No configuration values found.")
		} else {
			fmt.Fprintln(w, "No modified configuration values.")
			fmt.Fprintln(w, "Use --all to show all configuration values including defaults.")
		}
		return nil
	}

	writeEntries(w, entries)
	return nil
}

// writeEntries は縦位置を揃えて key=value # layer 形式で出力する
func writeEntries(w io.Writer, entries []listEntry) {
	maxWidth := 0
	for _, e := range entries {
		if n := len(e.path) + 1 + len(e.value); n > maxWidth {
			maxWidth = n
		}
	}
	for _, e := range entries {
		line := e.path + "=" + e.value
		comment := e.layer
		if e.defaultValue != "" && e.value != e.defaultValue {
			comment = fmt.Sprintf("%s, default: %s", e.layer, e.defaultValue)
		}
		fmt.Fprintf(w, "%-*s  %s\n", maxWidth, line, ui.Gray("# "+comment))
	}
}
