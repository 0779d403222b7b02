package config

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/yacchi/mapskey/internal/resolver"
)

// ResolvedConfig は全レイヤーをマージした設定
// jubakoのmaterializationはJSONを使用するため、jsonタグが必須
type ResolvedConfig struct {
	Source  ResolvedSource  `json:"source"`
	Output  ResolvedOutput  `json:"output"`
	Display ResolvedDisplay `json:"display"`

	// バインディング（キーは論理名）
	// 環境変数からは変更できない。フォールバック値はファイル設定でのみ上書きする
	Bindings map[string]*ResolvedBinding `json:"bindings" jubako:"/bindings"`
}

// ResolvedSource はプロパティファイルの場所
// env: ディレクティブで環境変数からの自動マッピングを定義
type ResolvedSource struct {
	Root string `json:"root" jubako:"/source/root,env:SOURCE_ROOT"`
	File string `json:"file" jubako:"/source/file,env:SOURCE_FILE"`
}

// ResolvedOutput は出力設定
type ResolvedOutput struct {
	Format string `json:"format" jubako:"/output/format,env:OUTPUT_FORMAT"`
	Mask   bool   `json:"mask" jubako:"/output/mask,env:OUTPUT_MASK"`
}

// ResolvedDisplay は表示設定
type ResolvedDisplay struct {
	Color string `json:"color" jubako:"/display/color,env:DISPLAY_COLOR"`
}

// ResolvedBinding はバインディング1件分の設定
type ResolvedBinding struct {
	Key         string `json:"key"`
	Placeholder string `json:"placeholder"`
	Fallback    string `json:"fallback"`
}

// envShortcuts は環境変数のショートカットマッピング
// MAPSKEY_FILE などの省略形を完全形式に展開する
var envShortcuts = map[string]string{
	"MAPSKEY_ROOT":   "MAPSKEY_SOURCE_ROOT",
	"MAPSKEY_FILE":   "MAPSKEY_SOURCE_FILE",
	"MAPSKEY_OUTPUT": "MAPSKEY_OUTPUT_FORMAT",
	"MAPSKEY_MASK":   "MAPSKEY_OUTPUT_MASK",
	"MAPSKEY_COLOR":  "MAPSKEY_DISPLAY_COLOR",
}

// expandEnvShortcuts は環境変数のショートカットを展開した環境変数リストを返す
// 完全形式が既に設定されている場合は、完全形式を優先する
func expandEnvShortcuts() []string {
	envs := os.Environ()

	for shortKey, fullKey := range envShortcuts {
		if value := os.Getenv(shortKey); value != "" {
			if os.Getenv(fullKey) == "" {
				envs = append(envs, fullKey+"="+value)
			}
		}
	}

	// NO_COLOR (https://no-color.org) は値に関係なく色を無効化する
	if _, ok := os.LookupEnv("NO_COLOR"); ok && os.Getenv("MAPSKEY_DISPLAY_COLOR") == "" {
		envs = append(envs, "MAPSKEY_DISPLAY_COLOR=never")
	}

	return envs
}

// PropertiesPath はプロパティファイルのパスを返す
// File が絶対パスならそのまま、相対パスなら Root からの相対として解決する
func (r *ResolvedConfig) PropertiesPath() string {
	if filepath.IsAbs(r.Source.File) {
		return filepath.Clean(r.Source.File)
	}
	return filepath.Join(r.Source.Root, r.Source.File)
}

// BindingList returns the configured bindings. The compiled-in bindings
// come first in their usual order, any additional ones follow sorted by
// name.
func (r *ResolvedConfig) BindingList() ([]resolver.Binding, error) {
	order := make([]string, 0, len(r.Bindings))
	seen := make(map[string]bool, len(r.Bindings))
	for _, b := range resolver.DefaultBindings() {
		if _, ok := r.Bindings[b.Name]; ok {
			order = append(order, b.Name)
			seen[b.Name] = true
		}
	}
	var extra []string
	for name := range r.Bindings {
		if !seen[name] {
			extra = append(extra, name)
		}
	}
	sort.Strings(extra)
	order = append(order, extra...)

	bindings := make([]resolver.Binding, 0, len(order))
	for _, name := range order {
		b := r.Bindings[name]
		if b == nil {
			continue
		}
		bindings = append(bindings, resolver.Binding{
			Name:        name,
			Key:         b.Key,
			Placeholder: b.Placeholder,
			Fallback:    b.Fallback,
		})
	}

	if err := resolver.ValidateBindings(bindings); err != nil {
		return nil, err
	}
	return bindings, nil
}
