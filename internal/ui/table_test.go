package ui

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func TestTableRenderPlain(t *testing.T) {
	SetColorEnabled(false)

	tbl := NewTable("NAME", "VALUE")
	tbl.AddRow("maps_api_key", "XYZ123")
	tbl.AddRow("maps_style_id", "71ed63eff6a1ac4fe8b35b3d")

	var buf bytes.Buffer
	tbl.Render(&buf)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3:\n%s", len(lines), buf.String())
	}
	// 2列目の開始位置が揃っていること
	col := strings.Index(lines[0], "VALUE")
	if strings.Index(lines[1], "XYZ123") != col {
		t.Errorf("columns not aligned:\n%s", buf.String())
	}
}

func TestTableRenderColorAligned(t *testing.T) {
	SetColorEnabled(true)
	defer SetColorEnabled(false)

	tbl := NewTable("NAME", "ORIGIN", "VALUE")
	tbl.AddRow("maps_api_key", OriginColor("file"), "a")
	tbl.AddRow("maps_style_id", OriginColor("default"), "b")

	var buf bytes.Buffer
	tbl.Render(&buf)

	out := buf.String()
	if !strings.Contains(out, green) {
		t.Errorf("expected ANSI color in output: %q", out)
	}
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if w1, w2 := displayWidth(lines[1]), displayWidth(lines[2]); w1 != w2 {
		t.Errorf("row widths differ: %d vs %d", w1, w2)
	}
}

func TestDisplayWidth(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"abc", 3},
		{"\x1b[32mabc\x1b[0m", 3},
		{"日本", 4},
		{"\x1b]8;;https://example.com\x1b\\link\x1b]8;;\x1b\\", 4},
	}
	for _, tt := range tests {
		if got := displayWidth(tt.in); got != tt.want {
			t.Errorf("displayWidth(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestMessagesGoToWriters(t *testing.T) {
	SetColorEnabled(false)
	var out, errOut bytes.Buffer
	SetOutput(&out, &errOut)
	defer SetOutput(os.Stdout, os.Stderr)

	Success("saved %s", "x")
	Warning("careful")
	Error("failed")

	if out.String() != "✓ saved x\n" {
		t.Errorf("stdout = %q", out.String())
	}
	if !strings.Contains(errOut.String(), "! careful") || !strings.Contains(errOut.String(), "✗ failed") {
		t.Errorf("stderr = %q", errOut.String())
	}
}
