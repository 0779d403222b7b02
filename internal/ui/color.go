package ui

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

var colorEnabled = true
var hyperlinkEnabled = false

// 出力先（テストで差し替える）
var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

func init() {
	// 色が使えるかチェック
	colorEnabled = term.IsTerminal(int(os.Stdout.Fd()))
	hyperlinkEnabled = colorEnabled
}

// SetColorEnabled は色の有効/無効を設定する
func SetColorEnabled(enabled bool) {
	colorEnabled = enabled
}

// IsColorEnabled は色が有効かどうかを返す
func IsColorEnabled() bool {
	return colorEnabled
}

// IsHyperlinkEnabled はハイパーリンクが有効かどうかを返す
func IsHyperlinkEnabled() bool {
	return hyperlinkEnabled && colorEnabled
}

// SetOutput はメッセージ出力先を差し替える
func SetOutput(out, errOut io.Writer) {
	stdout = out
	stderr = errOut
}

const (
	reset  = "\033[0m"
	bold   = "\033[1m"
	red    = "\033[31m"
	green  = "\033[32m"
	yellow = "\033[33m"
	blue   = "\033[34m"
	gray   = "\033[90m"
)

func paint(code, s string) string {
	if !colorEnabled {
		return s
	}
	return code + s + reset
}

// Bold は太字にする
func Bold(s string) string { return paint(bold, s) }

// Red は赤色にする
func Red(s string) string { return paint(red, s) }

// Green は緑色にする
func Green(s string) string { return paint(green, s) }

// Yellow は黄色にする
func Yellow(s string) string { return paint(yellow, s) }

// Blue は青色にする
func Blue(s string) string { return paint(blue, s) }

// Gray はグレーにする
func Gray(s string) string { return paint(gray, s) }

// OriginColor は値の出所に応じた色を返す
// ファイル由来は緑、組み込みのフォールバックは黄色
func OriginColor(origin string) string {
	switch origin {
	case "file":
		return Green(origin)
	case "default":
		return Yellow(origin)
	default:
		return origin
	}
}

// Success は成功メッセージを出力する
func Success(format string, args ...interface{}) {
	fmt.Fprintf(stdout, Green("✓ ")+format+"\n", args...)
}

// Error はエラーメッセージを出力する
func Error(format string, args ...interface{}) {
	fmt.Fprintf(stderr, Red("✗ ")+format+"\n", args...)
}

// Warning は警告メッセージを出力する
// 標準出力は resolve の結果に使うため stderr に出す
func Warning(format string, args ...interface{}) {
	fmt.Fprintf(stderr, Yellow("! ")+format+"\n", args...)
}

// Info は情報メッセージを出力する
func Info(format string, args ...interface{}) {
	fmt.Fprintf(stderr, Blue("ℹ ")+format+"\n", args...)
}

// Hyperlink はターミナルハイパーリンク（OSC 8）を生成する
// フォーマット: \e]8;;URL\e\\LABEL\e]8;;\e\\
func Hyperlink(url, label string) string {
	if !IsHyperlinkEnabled() {
		return label
	}
	return fmt.Sprintf("\033]8;;%s\033\\%s\033]8;;\033\\", url, label)
}
