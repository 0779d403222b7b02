package config

import (
	"strings"

	"github.com/go-faster/errors"
	"github.com/spf13/cobra"

	"github.com/yacchi/mapskey/internal/cmdutil"
	"github.com/yacchi/mapskey/internal/config"
	"github.com/yacchi/mapskey/internal/render"
	"github.com/yacchi/mapskey/internal/ui"
)

var (
	setGlobal  bool
	setProject bool
)

var setCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long: `Set a configuration value.

By default, saves to user config (~/.config/mapskey/config.yaml).
Use --project to save to project config. That is the nearest existing
.mapskey.yaml, or .mapskey.yaml at the git root when none exists yet.

Examples:
  mapskey config set output.format json
  mapskey config set output.mask true
  mapskey config set --project source.root app
  mapskey config set --project bindings.places_key.key PLACES_API_KEY_ANDROID`,
	Args: cobra.ExactArgs(2),
	RunE: runSet,
}

func init() {
	setCmd.Flags().BoolVarP(&setGlobal, "global", "g", false, "Save to user config (default)")
	setCmd.Flags().BoolVarP(&setProject, "project", "p", false, "Save to project config (.mapskey.yaml)")
	setCmd.MarkFlagsMutuallyExclusive("global", "project")
}

func runSet(cmd *cobra.Command, args []string) error {
	key := args[0]
	value := parseConfigValue(key, args[1])

	ctx := cmd.Context()
	cfg, err := cmdutil.GetConfigStore(cmd)
	if err != nil {
		return err
	}

	if err := validateValue(key, value); err != nil {
		return errors.Wrapf(cmdutil.ErrConfig, "%v", err)
	}

	// 書き込み先の決定
	if setProject {
		ui.Info("Writing to project config: %s", cfg.GetProjectConfigPath())

		if err := cfg.SetToLayer(config.LayerProject, key, value); err != nil {
			return errors.Wrapf(cmdutil.ErrConfig, "%v", err)
		}
	} else {
		if err := cfg.Set(key, value); err != nil {
			return errors.Wrapf(cmdutil.ErrConfig, "%v", err)
		}
	}

	// 不正なバインディングは保存しない
	if _, err := cfg.Bindings(); err != nil {
		return errors.Wrapf(cmdutil.ErrConfig, "%v", err)
	}

	if err := cfg.Save(ctx); err != nil {
		return errors.Wrap(err, "save config")
	}

	ui.Success("Set %s = %v", key, value)
	return nil
}

// parseConfigValue は bool 型のキーだけ true/false を変換する
// bindings.* などの文字列フィールドはそのまま保存する
func parseConfigValue(key, value string) any {
	if key != config.DotPathOutputMask {
		return value
	}
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "true":
		return true
	case "false":
		return false
	default:
		return value
	}
}

// validateValue は値の形式が決まっているキーを検証する
func validateValue(key string, value any) error {
	switch key {
	case config.DotPathOutputFormat:
		s, _ := value.(string)
		_, err := render.ParseFormat(s)
		return err
	case config.DotPathDisplayColor:
		switch value {
		case "auto", "always", "never":
			return nil
		}
		return errors.Errorf("display.color must be auto, always or never: %v", value)
	case config.DotPathOutputMask:
		if _, ok := value.(bool); !ok {
			return errors.Errorf("output.mask must be true or false: %v", value)
		}
	}
	return nil
}
