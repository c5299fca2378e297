// ABOUTME: Style file loading in YAML, TOML or JSON, chosen by file extension
// ABOUTME: Unset fields inherit from the base defaults; glyph overrides are mapped by name

package style

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/mauromedda/termdraw/pkg/draw/color"
	"github.com/mauromedda/termdraw/pkg/draw/layout"
)

// Overrides are the user-facing knobs layered over a Defaults value. Empty
// strings and nil pointers leave the base untouched.
type Overrides struct {
	Border     string `yaml:"border" toml:"border" json:"border"`
	TitleAlign string `yaml:"title_align" toml:"title_align" json:"title_align"`
	Foreground string `yaml:"foreground" toml:"foreground" json:"foreground"`
	Background string `yaml:"background" toml:"background" json:"background"`
	Color      *bool  `yaml:"color" toml:"color" json:"color"`
	Profile    string `yaml:"profile" toml:"profile" json:"profile"`
	Font       string `yaml:"font" toml:"font" json:"font"`
}

// fileGlyphs overrides individual glyphs of the selected border.
type fileGlyphs struct {
	UpperLeft  string `yaml:"upper_left" toml:"upper_left" json:"upper_left"`
	UpperRight string `yaml:"upper_right" toml:"upper_right" json:"upper_right"`
	LowerLeft  string `yaml:"lower_left" toml:"lower_left" json:"lower_left"`
	LowerRight string `yaml:"lower_right" toml:"lower_right" json:"lower_right"`
	Horizontal string `yaml:"horizontal" toml:"horizontal" json:"horizontal"`
	Vertical   string `yaml:"vertical" toml:"vertical" json:"vertical"`
	TitleLeft  string `yaml:"title_left" toml:"title_left" json:"title_left"`
	TitleRight string `yaml:"title_right" toml:"title_right" json:"title_right"`
}

type fileStyle struct {
	Overrides `yaml:",inline"`
	Glyphs    fileGlyphs `yaml:"glyphs" toml:"glyphs" json:"glyphs"`
}

// LoadFile reads a style file over the built-in defaults. The format follows
// the extension: .yaml/.yml, .toml, or .json.
func LoadFile(path string) (Defaults, error) {
	return LoadFileOver(path, Builtin())
}

// LoadFileOver reads a style file over base.
func LoadFileOver(path string, base Defaults) (Defaults, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("reading style file: %w", err)
	}
	d, err := Decode(data, filepath.Ext(path), base)
	if err != nil {
		return base, fmt.Errorf("style file %s: %w", path, err)
	}
	return d, nil
}

// Decode parses data in the format named by ext and layers it over base.
func Decode(data []byte, ext string, base Defaults) (Defaults, error) {
	var fs fileStyle
	switch strings.ToLower(strings.TrimPrefix(ext, ".")) {
	case "yaml", "yml":
		if err := yaml.Unmarshal(data, &fs); err != nil {
			return base, fmt.Errorf("parsing yaml: %w", err)
		}
	case "toml":
		if _, err := toml.Decode(string(data), &fs); err != nil {
			return base, fmt.Errorf("parsing toml: %w", err)
		}
	case "json":
		if err := json.Unmarshal(data, &fs); err != nil {
			return base, fmt.Errorf("parsing json: %w", err)
		}
	default:
		return base, fmt.Errorf("unsupported style format %q", ext)
	}

	d, err := base.With(fs.Overrides)
	if err != nil {
		return base, err
	}
	d.Border = convertGlyphs(fs.Glyphs, d.Border)
	if err := d.Border.Validate(); err != nil {
		return base, err
	}
	return d, nil
}

// With layers o over d.
func (d Defaults) With(o Overrides) (Defaults, error) {
	if o.Border != "" {
		g, err := Border(o.Border)
		if err != nil {
			return d, err
		}
		// A new set keeps the alignment chosen so far unless overridden below.
		g.TitleAlign = d.Border.TitleAlign
		d.Border = g
	}
	if o.TitleAlign != "" {
		a, err := layout.ParseAlign(o.TitleAlign)
		if err != nil {
			return d, err
		}
		d.Border.TitleAlign = a
	}
	if o.Foreground != "" {
		c, err := color.Parse(o.Foreground)
		if err != nil {
			return d, fmt.Errorf("foreground: %w", err)
		}
		d.Style.Colors.Foreground = c
	}
	if o.Background != "" {
		c, err := color.Parse(o.Background)
		if err != nil {
			return d, fmt.Errorf("background: %w", err)
		}
		d.Style.Colors.Background = c
	}
	if o.Color != nil {
		d.Style.UseColor = *o.Color
	}
	if o.Profile != "" {
		p, err := ParseProfile(o.Profile)
		if err != nil {
			return d, err
		}
		d.Style.Profile = p
	}
	if o.Font != "" {
		d.Font = o.Font
	}
	return d, nil
}

// convertGlyphs copies non-empty fileGlyphs fields onto the same-named
// BorderGlyphs fields.
func convertGlyphs(fg fileGlyphs, base BorderGlyphs) BorderGlyphs {
	g := base
	fv := reflect.ValueOf(fg)
	gv := reflect.ValueOf(&g).Elem()
	ft := fv.Type()

	for i := 0; i < ft.NumField(); i++ {
		v := fv.Field(i).String()
		if v == "" {
			continue
		}
		gf := gv.FieldByName(ft.Field(i).Name)
		if gf.IsValid() && gf.CanSet() {
			gf.SetString(v)
		}
	}
	if g != base {
		g.Name = base.Name + "+custom"
	}
	return g
}
