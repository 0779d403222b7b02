// Package debug provides opt-in diagnostic logging for the CLI.
package debug

import (
	"io"
	"log/slog"
	"os"
	"sync"
)

var (
	enabled bool
	mu      sync.RWMutex
	logger  *slog.Logger
)

func init() {
	// デフォルトは無効。--debug で有効化する
	logger = newLogger(os.Stderr)
}

func newLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
}

// Enable はデバッグモードを有効化する
func Enable() {
	mu.Lock()
	defer mu.Unlock()
	enabled = true
}

// Disable はデバッグモードを無効化する
func Disable() {
	mu.Lock()
	defer mu.Unlock()
	enabled = false
}

// IsEnabled はデバッグモードが有効かどうかを返す
func IsEnabled() bool {
	mu.RLock()
	defer mu.RUnlock()
	return enabled
}

// SetOutput はログの出力先を差し替える（テスト用）
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	logger = newLogger(w)
}

// Log はデバッグモード時に構造化ログを出力する
func Log(msg string, args ...any) {
	mu.RLock()
	l, on := logger, enabled
	mu.RUnlock()
	if !on {
		return
	}
	l.Debug(msg, args...)
}
