package config

import (
	_ "embed"
)

// レイヤー名定数
const (
	LayerDefaults = "defaults"
	LayerUser     = "user"
	LayerProject  = "project"
	LayerEnv      = "env"
	LayerArgs     = "args"
)

// EnvPrefix は環境変数のプレフィックス
const EnvPrefix = "MAPSKEY_"

// JSON Pointer パス（フラグレイヤーから設定する項目）
const (
	PathSourceRoot   = "/source/root"
	PathSourceFile   = "/source/file"
	PathOutputFormat = "/output/format"
	PathDisplayColor = "/display/color"
	PathBindings     = "/bindings"
)

// ドット区切りのキー（config get/set で使う形式）
const (
	DotPathOutputFormat = "output.format"
	DotPathOutputMask   = "output.mask"
	DotPathDisplayColor = "display.color"
)

// PathBinding は指定バインディングのフィールドへのパスを返す
func PathBinding(name, field string) string {
	return PathBindings + "/" + name + "/" + field
}

//go:embed defaults.yaml
var defaultConfigYAML []byte
