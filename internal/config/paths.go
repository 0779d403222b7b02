package config

import (
	"os"
	"path/filepath"
	"strings"
)

// AppName is the application name used for config directories
const AppName = "mapskey"

// ProjectConfigFiles は検索するファイル名の優先順
var ProjectConfigFiles = []string{
	".mapskey.yaml",
	".mapskey.yml",
}

// DefaultProjectConfigFile はデフォルトのプロジェクト設定ファイル名
const DefaultProjectConfigFile = ".mapskey.yaml"

// configDir returns the config directory path (~/.config/mapskey)
// Uses XDG_CONFIG_HOME if set, otherwise falls back to ~/.config
func configDir() (string, error) {
	// XDG_CONFIG_HOME を優先
	if xdgConfigHome := os.Getenv("XDG_CONFIG_HOME"); xdgConfigHome != "" {
		return filepath.Join(xdgConfigHome, AppName), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", AppName), nil
}

// configPath returns the user config file path (~/.config/mapskey/config.yaml)
func configPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// findProjectConfigPath はカレントディレクトリから上に向かって
// .mapskey.yaml を検索し、パスを返す
func findProjectConfigPath() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		for _, name := range ProjectConfigFiles {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err == nil {
				return path, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// ルートに到達、見つからず
			return "", nil
		}
		dir = parent
	}
}

// findGitRoot はカレントディレクトリから上に向かって
// .git ディレクトリを検索し、見つかったディレクトリを返す
func findGitRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		gitPath := filepath.Join(dir, ".git")
		if info, err := os.Stat(gitPath); err == nil {
			// .gitはディレクトリまたはファイル（worktreeの場合）
			if info.IsDir() || info.Mode().IsRegular() {
				return dir, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

// GetProjectConfigPathForRoot は指定されたルートディレクトリのプロジェクト設定ファイルパスを返す
func GetProjectConfigPathForRoot(root string) string {
	for _, name := range ProjectConfigFiles {
		path := filepath.Join(root, name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return filepath.Join(root, DefaultProjectConfigFile)
}

// defaultProjectConfigPath はプロジェクトレイヤーのファイルパスを決める
// 既存の設定ファイル、git ルート、カレントディレクトリの順
func defaultProjectConfigPath() string {
	if path, _ := findProjectConfigPath(); path != "" {
		return path
	}
	if root, _ := findGitRoot(); root != "" {
		return GetProjectConfigPathForRoot(root)
	}
	if abs, err := filepath.Abs(DefaultProjectConfigFile); err == nil {
		return abs
	}
	return DefaultProjectConfigFile
}

// DotToPointer converts a dot-separated path to a JSON Pointer.
// Example: "bindings.maps_api_key.fallback" -> "/bindings/maps_api_key/fallback"
func DotToPointer(dotPath string) string {
	return "/" + strings.ReplaceAll(dotPath, ".", "/")
}
