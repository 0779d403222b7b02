package cmd

import (
	"github.com/spf13/cobra"

	"github.com/yacchi/mapskey/internal/cmdutil"
	"github.com/yacchi/mapskey/internal/properties"
	"github.com/yacchi/mapskey/internal/render"
	"github.com/yacchi/mapskey/internal/ui"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Print the resolved manifest placeholders",
	Long: `Print the manifest placeholders resolved from local.properties.

Keys missing from the file, or a missing file, resolve to the built-in
fallback values.

Examples:
  mapskey resolve
  mapskey resolve -o gradle
  mapskey resolve -o env --mask
  mapskey resolve --file ../secrets/maps.properties`,
	Args: cobra.NoArgs,
	RunE: runResolve,
}

func init() {
	resolveCmd.Flags().Bool("mask", false, "Hide values and print a fingerprint instead")
	rootCmd.AddCommand(resolveCmd)
}

func runResolve(cmd *cobra.Command, _ []string) error {
	resolved, cfg, err := cmdutil.Resolve(cmd)
	if err != nil {
		return err
	}

	format, err := cmdutil.OutputFormat(cfg)
	if err != nil {
		return err
	}

	switch resolved.Status() {
	case properties.StatusMissing:
		// table 以外はパイプで使われるので警告を出さない
		if format == render.FormatTable {
			ui.Info("%s not found, using built-in defaults", resolved.Path())
		}
	case properties.StatusUnreadable:
		ui.Warning("%s could not be read, using built-in defaults", resolved.Path())
	}

	return render.Write(cmd.OutOrStdout(), resolved, format, render.Options{
		Mask: cmdutil.MaskEnabled(cmd, cfg),
	})
}
