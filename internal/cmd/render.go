package cmd

import (
	"os"

	"github.com/go-faster/errors"
	"github.com/spf13/cobra"

	"github.com/yacchi/mapskey/internal/cmdutil"
	"github.com/yacchi/mapskey/internal/render"
	"github.com/yacchi/mapskey/internal/ui"
)

var (
	renderTemplate string
	renderOut      string
	renderStrict   bool
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Expand ${NAME} placeholders in a manifest template",
	Long: `Expand ${NAME} placeholders in a manifest template with the resolved
values, the way the Android Gradle Plugin fills manifestPlaceholders.

Placeholders with no resolved value are left untouched, unless --strict
is given.

Examples:
  mapskey render --template android/app/src/main/AndroidManifest.xml
  mapskey render -t AndroidManifest.xml --out build/AndroidManifest.xml --strict`,
	Args: cobra.NoArgs,
	RunE: runRender,
}

func init() {
	renderCmd.Flags().StringVarP(&renderTemplate, "template", "t", "", "Manifest template to expand (required)")
	renderCmd.Flags().StringVar(&renderOut, "out", "", "Write the result to a file instead of stdout")
	renderCmd.Flags().BoolVar(&renderStrict, "strict", false, "Fail on placeholders with no resolved value")
	_ = renderCmd.MarkFlagRequired("template")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, _ []string) error {
	tmpl, err := os.ReadFile(renderTemplate)
	if err != nil {
		return errors.Wrap(err, "read template")
	}

	resolved, _, err := cmdutil.Resolve(cmd)
	if err != nil {
		return err
	}

	out, err := render.ExpandManifest(tmpl, resolved.Placeholders(), renderStrict)
	if err != nil {
		return err
	}

	if renderOut == "" {
		_, err = cmd.OutOrStdout().Write(out)
		return err
	}

	// 生成物にAPIキーが入るため所有者のみ読み書き可能にする
	if err := os.WriteFile(renderOut, out, 0o600); err != nil {
		return errors.Wrap(err, "write output")
	}
	ui.Success("Wrote %s", renderOut)
	return nil
}
