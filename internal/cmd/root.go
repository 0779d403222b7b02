package cmd

import (
	"strings"

	"github.com/go-faster/errors"
	"github.com/spf13/cobra"
	"github.com/yacchi/jubako"

	configcmd "github.com/yacchi/mapskey/internal/cmd/config"
	"github.com/yacchi/mapskey/internal/cmd/local"
	"github.com/yacchi/mapskey/internal/cmdutil"
	"github.com/yacchi/mapskey/internal/config"
	"github.com/yacchi/mapskey/internal/debug"
	"github.com/yacchi/mapskey/internal/ui"
)

var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "mapskey",
	Short: "Resolve Google Maps manifest placeholders for Android builds",
	Long: `mapskey resolves the Google Maps API key and Map ID that an Android
build injects into AndroidManifest.xml as manifest placeholders.

Values come from local.properties when present, and fall back to the
built-in defaults otherwise. A missing or unreadable file never fails.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// デバッグモードの有効化
		if debugFlag, _ := cmd.Flags().GetBool("debug"); debugFlag {
			debug.Enable()
		}

		cfg, err := config.Load(cmd.Context())
		if err != nil {
			return err
		}

		// カラー設定
		if noColor, _ := cmd.Flags().GetBool("no-color"); noColor {
			ui.SetColorEnabled(false)
		} else {
			switch strings.ToLower(cfg.Display().Color) {
			case "never":
				ui.SetColorEnabled(false)
			case "always":
				ui.SetColorEnabled(true)
			}
		}

		// グローバルフラグを取得してArgsレイヤーに適用
		var setOptions []jubako.SetOption

		if root, _ := cmd.Flags().GetString("root"); root != "" {
			setOptions = append(setOptions, jubako.String(config.PathSourceRoot, root))
		}
		if file, _ := cmd.Flags().GetString("file"); file != "" {
			setOptions = append(setOptions, jubako.String(config.PathSourceFile, file))
		}
		if output, _ := cmd.Flags().GetString("output"); output != "" {
			setOptions = append(setOptions, jubako.String(config.PathOutputFormat, output))
		}

		if len(setOptions) > 0 {
			return cfg.SetFlagsLayer(setOptions)
		}
		return nil
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// グローバルフラグ
	rootCmd.PersistentFlags().String("root", "", "Android build root (default \"android\")")
	rootCmd.PersistentFlags().String("file", "", "Properties file, relative to the build root (default \"../local.properties\")")
	rootCmd.PersistentFlags().StringP("output", "o", "", "Output format (table, json, yaml, properties, env, gradle)")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable color output")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")

	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return errors.Wrapf(cmdutil.ErrUsage, "%v", err)
	})

	// サブコマンド登録
	rootCmd.AddCommand(configcmd.ConfigCmd)
	rootCmd.AddCommand(local.LocalCmd)
}
