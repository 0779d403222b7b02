package config

import (
	"context"
	"strings"
	"sync"

	"github.com/go-faster/errors"
	"github.com/yacchi/jubako"
	"github.com/yacchi/jubako/format/yaml"
	"github.com/yacchi/jubako/layer"
	"github.com/yacchi/jubako/layer/env"
	"github.com/yacchi/jubako/layer/mapdata"
	"github.com/yacchi/jubako/source/bytes"
	"github.com/yacchi/jubako/source/fs"

	"github.com/yacchi/mapskey/internal/debug"
	"github.com/yacchi/mapskey/internal/resolver"
)

// Store は設定のレイヤー管理を行うjubakoベースの実装
type Store struct {
	mu sync.RWMutex

	store *jubako.Store[ResolvedConfig]

	// プロジェクト設定ファイルのパス
	projectConfigPath string
}

// newConfigStore は新しいStoreを作成する
// すべてのレイヤーを静的に追加する。ファイルが存在しない場合は空として扱う。
func newConfigStore() (*Store, error) {
	store := jubako.New[ResolvedConfig]()

	// Layer 1: Defaults (embedded YAML)
	if err := store.Add(
		layer.New(
			LayerDefaults,
			bytes.FromString(string(defaultConfigYAML)),
			yaml.New(),
		),
		jubako.WithReadOnly(),
		jubako.WithNoWatch(),
	); err != nil {
		return nil, errors.Wrap(err, "add defaults layer")
	}

	// Layer 2: User config (~/.config/mapskey/config.yaml)
	userConfigPath, err := configPath()
	if err != nil {
		return nil, errors.Wrap(err, "resolve user config path")
	}
	if err := store.Add(
		layer.New(
			LayerUser,
			fs.New(userConfigPath),
			yaml.New(),
		),
		jubako.WithOptional(),
	); err != nil {
		return nil, errors.Wrap(err, "add user layer")
	}

	// Layer 3: Project config (.mapskey.yaml)
	// 見つからなければ git ルート、それもなければカレントディレクトリに作る
	projectConfigPath := defaultProjectConfigPath()
	if err := store.Add(
		layer.New(
			LayerProject,
			fs.New(projectConfigPath),
			yaml.New(),
		),
		jubako.WithOptional(),
	); err != nil {
		return nil, errors.Wrap(err, "add project layer")
	}

	// Layer 4: Environment variables
	if err := store.Add(
		env.NewWithAutoSchema(LayerEnv, EnvPrefix,
			env.WithEnvironFunc(expandEnvShortcuts),
		),
		jubako.WithReadOnly(),
	); err != nil {
		return nil, errors.Wrap(err, "add env layer")
	}

	// Layer 5: Command-line flags
	// 静的に空のレイヤーを追加。SetFlagsLayer で値を設定
	if err := store.Add(
		mapdata.New(LayerArgs, nil),
	); err != nil {
		return nil, errors.Wrap(err, "add args layer")
	}

	return &Store{
		store:             store,
		projectConfigPath: projectConfigPath,
	}, nil
}

// LoadAll は全レイヤーを読み込む
func (s *Store) LoadAll(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Load(ctx); err != nil {
		return errors.Wrap(err, "load config")
	}
	debug.Log("config loaded", "project_config", s.projectConfigPath)
	return nil
}

// SetFlagsLayer はコマンドラインフラグからのオーバーライドを設定する
func (s *Store) SetFlagsLayer(options []jubako.SetOption) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Set(LayerArgs, options...)
}

// Reload は設定を再読み込みする
func (s *Store) Reload(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Reload(ctx)
}

// ====================
// アクセサ（読み取り）
// ====================

// Resolved は解決済み設定を返す
func (s *Store) Resolved() *ResolvedConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()

	resolved := s.store.Get()
	return &resolved
}

// Source はプロパティファイルの場所の設定を返す
func (s *Store) Source() *ResolvedSource {
	return &s.Resolved().Source
}

// Output は出力設定を返す
func (s *Store) Output() *ResolvedOutput {
	return &s.Resolved().Output
}

// Display は表示設定を返す
func (s *Store) Display() *ResolvedDisplay {
	return &s.Resolved().Display
}

// PropertiesPath returns the path of the properties file to resolve from.
func (s *Store) PropertiesPath() string {
	return s.Resolved().PropertiesPath()
}

// Bindings returns the validated bindings in resolution order.
func (s *Store) Bindings() ([]resolver.Binding, error) {
	bindings, err := s.Resolved().BindingList()
	if err != nil {
		return nil, errors.Wrap(err, "invalid bindings")
	}
	return bindings, nil
}

// GetProjectConfigPath はプロジェクト設定ファイルのパスを返す
func (s *Store) GetProjectConfigPath() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.projectConfigPath
}

// GetUserConfigPath はユーザー設定ファイルのパスを返す
func (s *Store) GetUserConfigPath() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if info := s.store.GetLayerInfo(LayerUser); info != nil {
		return info.Path()
	}
	return ""
}

// ====================
// CLIコマンド用メソッド
// ====================

// Get は指定キーの値を取得する（CLIコマンド用）
func (s *Store) Get(key string) any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rv := s.store.GetAt(DotToPointer(key))
	if rv.Exists {
		return rv.Value
	}
	return nil
}

// Set はドット区切りのキーで値を設定する（ユーザーレイヤー）
func (s *Store) Set(key string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.store.SetTo(LayerUser, DotToPointer(key), value)
}

// SetToLayer は指定レイヤーに値を設定する（CLIコマンド用）
func (s *Store) SetToLayer(layerName, key string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.store.SetTo(layer.Name(layerName), DotToPointer(key), value)
}

// Save は更新があったレイヤーを保存する
func (s *Store) Save(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.store.Save(ctx)
}

// WalkEntry は Walk で返されるエントリ情報
type WalkEntry struct {
	Path         string // ドット区切りのパス
	Value        any
	Layer        string // 値の出所となるレイヤー名
	DefaultValue any    // デフォルト値（存在しない場合は nil）
}

// WalkFunc は Walk で使用するコールバック関数の型
// fn が false を返すとイテレーションを停止する
type WalkFunc func(entry WalkEntry) bool

// Walk は全設定パスをイテレートする
func (s *Store) Walk(fn WalkFunc) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	s.store.Walk(func(ctx jubako.WalkContext) bool {
		rv := ctx.Value()
		if !rv.Exists {
			return true
		}
		// /bindings/maps_api_key/key → bindings.maps_api_key.key
		key := strings.ReplaceAll(ctx.Path[1:], "/", ".")
		layerName := ""
		if rv.Layer != nil {
			layerName = string(rv.Layer.Name())
		}

		var defaultValue any
		for _, v := range ctx.AllValues() {
			if v.Layer != nil && string(v.Layer.Name()) == LayerDefaults {
				defaultValue = v.Value
				break
			}
		}

		return fn(WalkEntry{
			Path:         key,
			Value:        rv.Value,
			Layer:        layerName,
			DefaultValue: defaultValue,
		})
	})
}

// ====================
// グローバルストア管理
// ====================

var (
	globalStore   *Store
	globalStoreMu sync.RWMutex
)

// Load はグローバル設定ストアを初期化してロードする
// すでにロード済みの場合は既存のストアを返す
func Load(ctx context.Context) (*Store, error) {
	globalStoreMu.Lock()
	defer globalStoreMu.Unlock()

	if globalStore != nil {
		return globalStore, nil
	}

	store, err := newConfigStore()
	if err != nil {
		return nil, err
	}

	if err := store.LoadAll(ctx); err != nil {
		return nil, err
	}

	globalStore = store
	return globalStore, nil
}

// ResetConfig はグローバル設定ストアをリセットする（テスト用）
func ResetConfig() {
	globalStoreMu.Lock()
	defer globalStoreMu.Unlock()
	globalStore = nil
}
