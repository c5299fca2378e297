// ABOUTME: Tests for settings loading, global/project merge and resolution into style defaults
// ABOUTME: Uses TERMDRAW_HOME and temp dirs so no real home config is read

package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/mauromedda/termdraw/pkg/draw/color"
	"github.com/mauromedda/termdraw/pkg/draw/layout"
	"github.com/mauromedda/termdraw/pkg/draw/style"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadFile_Missing(t *testing.T) {
	t.Parallel()

	s, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("err = %v; want fs.ErrNotExist", err)
	}
	if s == nil || *s != (Settings{}) {
		t.Errorf("settings = %+v; want empty", s)
	}
}

func TestLoadFile_Invalid(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yaml")
	writeFile(t, path, "border: [unclosed\n")
	if _, err := LoadFile(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestLoadFile_RelativeStyleFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	writeFile(t, path, "style_file: theme.toml\nborder: double\n")

	s, err := LoadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(dir, "theme.toml"); s.StyleFile != want {
		t.Errorf("StyleFile = %q; want %q", s.StyleFile, want)
	}
	if s.Border != "double" {
		t.Errorf("Border = %q; want double", s.Border)
	}
}

func TestLoad_ProjectOverridesGlobal(t *testing.T) {
	home := t.TempDir()
	t.Setenv("TERMDRAW_HOME", home)
	writeFile(t, filepath.Join(home, "config.yaml"),
		"border: double\nfont: big\nforeground: red\nlog_level: debug\n")

	root := t.TempDir()
	writeFile(t, ProjectConfigFile(root), "border: rounded\nno_color: true\n")

	s, err := Load(root)
	if err != nil {
		t.Fatal(err)
	}
	want := Settings{
		Border:     "rounded",
		Font:       "big",
		Foreground: "red",
		LogLevel:   "debug",
		NoColor:    true,
	}
	if *s != want {
		t.Errorf("Load = %+v; want %+v", *s, want)
	}
}

func TestLoad_NoFiles(t *testing.T) {
	t.Setenv("TERMDRAW_HOME", t.TempDir())

	s, err := Load(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if *s != (Settings{}) {
		t.Errorf("Load = %+v; want empty", *s)
	}
}

func TestLoad_BrokenProjectFile(t *testing.T) {
	t.Setenv("TERMDRAW_HOME", t.TempDir())

	root := t.TempDir()
	writeFile(t, ProjectConfigFile(root), ":\n  - [")
	if _, err := Load(root); err == nil {
		t.Fatal("expected error for malformed project config")
	}
}

func TestMerge_NilInputs(t *testing.T) {
	t.Parallel()

	if got := merge(nil, nil); *got != (Settings{}) {
		t.Errorf("merge(nil, nil) = %+v", *got)
	}
	g := &Settings{Border: "heavy"}
	if got := merge(g, nil); got.Border != "heavy" {
		t.Errorf("merge(g, nil).Border = %q", got.Border)
	}
}

func TestResolve(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		s       Settings
		check   func(t *testing.T, d style.Defaults)
		wantErr bool
	}{
		{
			name: "empty keeps base",
			s:    Settings{},
			check: func(t *testing.T, d style.Defaults) {
				if d.Border.Name != "single" || d.Font != style.DefaultFont || !d.Style.UseColor {
					t.Errorf("defaults = %+v", d)
				}
			},
		},
		{
			name: "fields applied",
			s:    Settings{Border: "double", Font: "small", Foreground: "green", TitleAlign: "right"},
			check: func(t *testing.T, d style.Defaults) {
				if d.Border.Name != "double" {
					t.Errorf("Border = %q", d.Border.Name)
				}
				if d.Border.TitleAlign != layout.AlignRight {
					t.Errorf("TitleAlign = %v", d.Border.TitleAlign)
				}
				if d.Font != "small" {
					t.Errorf("Font = %q", d.Font)
				}
				if d.Style.Colors.Foreground != color.ANSI(2) {
					t.Errorf("Foreground = %v", d.Style.Colors.Foreground)
				}
			},
		},
		{
			name: "no color",
			s:    Settings{NoColor: true},
			check: func(t *testing.T, d style.Defaults) {
				if d.Style.UseColor {
					t.Error("UseColor still set")
				}
			},
		},
		{name: "bad border", s: Settings{Border: "wavy"}, wantErr: true},
		{name: "missing style file", s: Settings{StyleFile: "/nonexistent/theme.yaml"}, wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			d, err := tt.s.Resolve(style.Builtin())
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			tt.check(t, d)
		})
	}
}

func TestResolve_StyleFileThenSettings(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "theme.yaml")
	writeFile(t, path, "border: heavy\nfont: big\n")

	s := Settings{StyleFile: path, Font: "small"}
	d, err := s.Resolve(style.Builtin())
	if err != nil {
		t.Fatal(err)
	}
	if d.Border.Name != "heavy" {
		t.Errorf("Border = %q; want heavy from style file", d.Border.Name)
	}
	if d.Font != "small" {
		t.Errorf("Font = %q; settings should win over style file", d.Font)
	}
}

func TestWatchPaths(t *testing.T) {
	t.Setenv("TERMDRAW_HOME", "/cfg")

	s := Settings{StyleFile: "/themes/a.yaml"}
	got := s.WatchPaths("/proj")
	want := []string{
		filepath.Join("/cfg", "config.yaml"),
		filepath.Join("/proj", ".termdraw", "config.yaml"),
		"/themes/a.yaml",
	}
	if len(got) != len(want) {
		t.Fatalf("WatchPaths = %v; want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("WatchPaths[%d] = %q; want %q", i, got[i], want[i])
		}
	}
}
