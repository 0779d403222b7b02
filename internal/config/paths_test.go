package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDotToPointer(t *testing.T) {
	tests := []struct{ in, want string }{
		{"source.file", "/source/file"},
		{"bindings.maps_api_key.fallback", "/bindings/maps_api_key/fallback"},
		{"output", "/output"},
	}
	for _, tt := range tests {
		if got := DotToPointer(tt.in); got != tt.want {
			t.Errorf("DotToPointer(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestConfigPathUsesXDG(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)

	got, err := configPath()
	if err != nil {
		t.Fatalf("configPath() error = %v", err)
	}
	if want := filepath.Join(xdg, AppName, "config.yaml"); got != want {
		t.Errorf("configPath() = %q, want %q", got, want)
	}
}

func TestGetProjectConfigPathForRoot(t *testing.T) {
	root := t.TempDir()
	if got, want := GetProjectConfigPathForRoot(root), filepath.Join(root, DefaultProjectConfigFile); got != want {
		t.Errorf("GetProjectConfigPathForRoot() = %q, want %q", got, want)
	}
}

func TestPathBinding(t *testing.T) {
	if got := PathBinding("maps_api_key", "fallback"); got != "/bindings/maps_api_key/fallback" {
		t.Errorf("PathBinding() = %q", got)
	}
}

func TestDefaultProjectConfigPath(t *testing.T) {
	sameDir := func(t *testing.T, got, want string) {
		t.Helper()
		g, err := filepath.EvalSymlinks(filepath.Dir(got))
		if err != nil {
			t.Fatalf("EvalSymlinks(%q) error = %v", got, err)
		}
		w, err := filepath.EvalSymlinks(want)
		if err != nil {
			t.Fatalf("EvalSymlinks(%q) error = %v", want, err)
		}
		if g != w || filepath.Base(got) != DefaultProjectConfigFile {
			t.Errorf("defaultProjectConfigPath() = %q, want %s in %q", got, DefaultProjectConfigFile, want)
		}
	}

	t.Run("git root", func(t *testing.T) {
		dir := isolate(t)
		if err := os.Mkdir(filepath.Join(dir, ".git"), 0o755); err != nil {
			t.Fatal(err)
		}
		sub := filepath.Join(dir, "android", "app")
		if err := os.MkdirAll(sub, 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.Chdir(sub); err != nil {
			t.Fatal(err)
		}

		sameDir(t, defaultProjectConfigPath(), dir)
	})

	t.Run("no git", func(t *testing.T) {
		dir := isolate(t)
		got := defaultProjectConfigPath()
		if !filepath.IsAbs(got) {
			t.Errorf("defaultProjectConfigPath() = %q, want absolute", got)
		}
		sameDir(t, got, dir)
	})

	t.Run("existing file wins", func(t *testing.T) {
		dir := isolate(t)
		if err := os.Mkdir(filepath.Join(dir, ".git"), 0o755); err != nil {
			t.Fatal(err)
		}
		sub := filepath.Join(dir, "android")
		if err := os.Mkdir(sub, 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(filepath.Join(sub, DefaultProjectConfigFile), []byte("output:\n  format: json\n"), 0o600); err != nil {
			t.Fatal(err)
		}
		if err := os.Chdir(sub); err != nil {
			t.Fatal(err)
		}

		sameDir(t, defaultProjectConfigPath(), sub)
	})
}
