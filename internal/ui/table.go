package ui

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
	"text/tabwriter"
	"unicode/utf8"
)

// Table はテーブル出力
type Table struct {
	headers []string
	rows    [][]string
}

// NewTable は新しいテーブルを作成する
func NewTable(headers ...string) *Table {
	return &Table{
		headers: headers,
		rows:    make([][]string, 0),
	}
}

// AddRow は行を追加する
func (t *Table) AddRow(values ...string) {
	t.rows = append(t.rows, values)
}

// Render はテーブルを出力する
// 色が有効な場合はANSIエスケープシーケンスを考慮してカラム幅を揃える
func (t *Table) Render(w io.Writer) {
	if w == nil {
		w = os.Stdout
	}
	if !colorEnabled {
		t.renderPlain(w)
		return
	}

	colWidths := t.calculateColumnWidths()

	// ヘッダー出力（太字）
	for i, h := range t.headers {
		if i > 0 {
			_, _ = fmt.Fprint(w, "  ")
		}
		_, _ = fmt.Fprint(w, padRight(Bold(h), colWidths[i], displayWidth(h)))
	}
	_, _ = fmt.Fprintln(w)

	for _, row := range t.rows {
		for i, cell := range row {
			if i > 0 {
				_, _ = fmt.Fprint(w, "  ")
			}
			if i < len(colWidths) {
				_, _ = fmt.Fprint(w, padRight(cell, colWidths[i], displayWidth(cell)))
			} else {
				_, _ = fmt.Fprint(w, cell)
			}
		}
		_, _ = fmt.Fprintln(w)
	}
}

func (t *Table) renderPlain(w io.Writer) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, strings.Join(t.headers, "\t"))
	for _, row := range t.rows {
		_, _ = fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	_ = tw.Flush()
}

// calculateColumnWidths は各カラムの最大表示幅を計算する
func (t *Table) calculateColumnWidths() []int {
	if len(t.headers) == 0 {
		return nil
	}

	widths := make([]int, len(t.headers))
	for i, h := range t.headers {
		widths[i] = displayWidth(h)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			if i < len(widths) {
				if w := displayWidth(cell); w > widths[i] {
					widths[i] = w
				}
			}
		}
	}
	return widths
}

// ansiEscapeRegex はANSIエスケープシーケンスにマッチする正規表現
var ansiEscapeRegex = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// osc8Regex はOSC 8ハイパーリンクのエスケープシーケンスにマッチする正規表現
var osc8Regex = regexp.MustCompile(`\x1b\]8;;[^\x1b]*\x1b\\`)

// displayWidth はエスケープシーケンスを除いた表示幅を返す
// 全角文字は幅2としてカウント
func displayWidth(s string) int {
	clean := osc8Regex.ReplaceAllString(s, "")
	clean = ansiEscapeRegex.ReplaceAllString(clean, "")

	width := 0
	for _, r := range clean {
		if utf8.RuneLen(r) >= 3 {
			width += 2
		} else {
			width++
		}
	}
	return width
}

// padRight は文字列を指定幅まで右側にスペースでパディングする
func padRight(s string, targetWidth, currentWidth int) string {
	if currentWidth >= targetWidth {
		return s
	}
	return s + strings.Repeat(" ", targetWidth-currentWidth)
}
