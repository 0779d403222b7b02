package cmdutil

import (
	"github.com/go-faster/errors"
	"github.com/spf13/cobra"

	"github.com/yacchi/mapskey/internal/config"
	"github.com/yacchi/mapskey/internal/debug"
	"github.com/yacchi/mapskey/internal/render"
	"github.com/yacchi/mapskey/internal/resolver"
)

// ErrConfig marks errors caused by the tool's own configuration.
var ErrConfig = errors.New("configuration error")

// ErrUsage はコマンドラインの誤りを示す
var ErrUsage = errors.New("usage error")

// ErrNotFound は指定された名前のバインディングがないことを示す
var ErrNotFound = errors.New("not found")

// GetConfigStore はConfigStoreを取得する
// グローバルフラグはrootCmd.PersistentPreRunEで適用済み
func GetConfigStore(cmd *cobra.Command) (*config.Store, error) {
	cfg, err := config.Load(cmd.Context())
	if err != nil {
		return nil, errors.Wrapf(ErrConfig, "failed to load config: %v", err)
	}
	return cfg, nil
}

// Resolve は設定に従ってプロパティファイルを読み、プレースホルダーを解決する
func Resolve(cmd *cobra.Command) (*resolver.Resolved, *config.Store, error) {
	cfg, err := GetConfigStore(cmd)
	if err != nil {
		return nil, nil, err
	}

	bindings, err := cfg.Bindings()
	if err != nil {
		return nil, nil, errors.Wrapf(ErrConfig, "%v", err)
	}

	path := cfg.PropertiesPath()
	debug.Log("resolving placeholders", "path", path, "bindings", len(bindings))
	return resolver.Resolve(path, bindings), cfg, nil
}

// OutputFormat は --output フラグ（PersistentPreRunE で args レイヤーに反映済み）
// または設定の output.format を返す
func OutputFormat(cfg *config.Store) (render.Format, error) {
	return render.ParseFormat(cfg.Output().Format)
}

// MaskEnabled は --mask フラグまたは output.mask 設定でマスクが有効か判定する
func MaskEnabled(cmd *cobra.Command, cfg *config.Store) bool {
	if f := cmd.Flags().Lookup("mask"); f != nil && f.Changed {
		mask, _ := cmd.Flags().GetBool("mask")
		return mask
	}
	return cfg.Output().Mask
}
