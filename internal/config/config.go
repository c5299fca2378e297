// ABOUTME: Settings loading with global + project YAML config merge
// ABOUTME: Resolves settings into style defaults: style file first, then individual overrides

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/mauromedda/termdraw/pkg/draw/style"
)

// Settings holds the merged configuration.
type Settings struct {
	// StyleFile is a YAML, TOML or JSON style file. Relative paths are
	// relative to the config file that names them.
	StyleFile  string `yaml:"style_file,omitempty"`
	Border     string `yaml:"border,omitempty"`
	TitleAlign string `yaml:"title_align,omitempty"`
	Font       string `yaml:"font,omitempty"`
	Foreground string `yaml:"foreground,omitempty"`
	Background string `yaml:"background,omitempty"`
	Profile    string `yaml:"profile,omitempty"`
	NoColor    bool   `yaml:"no_color,omitempty"`
	LogLevel   string `yaml:"log_level,omitempty"`
}

// Load reads and merges global and project-local settings.
// Project settings override global settings.
func Load(projectRoot string) (*Settings, error) {
	global, err := LoadFile(GlobalConfigFile())
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading global config: %w", err)
	}

	project, err := LoadFile(ProjectConfigFile(projectRoot))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading project config: %w", err)
	}

	return merge(global, project), nil
}

// LoadFile reads one settings file. A missing file returns empty Settings
// together with an error matching fs.ErrNotExist.
func LoadFile(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return &Settings{}, err
	}
	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	ResolveEnvVars(&s)
	if s.StyleFile != "" && !filepath.IsAbs(s.StyleFile) {
		s.StyleFile = filepath.Join(filepath.Dir(path), s.StyleFile)
	}
	return &s, nil
}

// merge layers project settings onto global settings.
// Non-zero project values override global values.
func merge(global, project *Settings) *Settings {
	if global == nil {
		global = &Settings{}
	}
	if project == nil {
		return global
	}

	result := *global
	override := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	override(&result.StyleFile, project.StyleFile)
	override(&result.Border, project.Border)
	override(&result.TitleAlign, project.TitleAlign)
	override(&result.Font, project.Font)
	override(&result.Foreground, project.Foreground)
	override(&result.Background, project.Background)
	override(&result.Profile, project.Profile)
	override(&result.LogLevel, project.LogLevel)
	if project.NoColor {
		result.NoColor = true
	}
	return &result
}

// Overrides converts the per-field settings into style overrides.
func (s *Settings) Overrides() style.Overrides {
	o := style.Overrides{
		Border:     s.Border,
		TitleAlign: s.TitleAlign,
		Foreground: s.Foreground,
		Background: s.Background,
		Profile:    s.Profile,
		Font:       s.Font,
	}
	if s.NoColor {
		off := false
		o.Color = &off
	}
	return o
}

// Resolve applies the style file and then the individual settings to base.
func (s *Settings) Resolve(base style.Defaults) (style.Defaults, error) {
	d := base
	if s.StyleFile != "" {
		var err error
		if d, err = style.LoadFileOver(s.StyleFile, base); err != nil {
			return base, err
		}
	}
	d, err := d.With(s.Overrides())
	if err != nil {
		return base, fmt.Errorf("applying settings: %w", err)
	}
	return d, nil
}

// WatchPaths lists the files whose changes should trigger a reload.
func (s *Settings) WatchPaths(projectRoot string) []string {
	paths := []string{GlobalConfigFile(), ProjectConfigFile(projectRoot)}
	if s.StyleFile != "" {
		paths = append(paths, s.StyleFile)
	}
	return paths
}
