// Package theme holds the look of a gallery: palette, texts and
// decoration glyphs. Every rendition (terminal, HTML) reads from one
// Theme value, so variants differ only in data.
package theme

import (
	"fmt"
	"os"
	"regexp"
	"sort"

	"gopkg.in/yaml.v3"
)

// Palette is the set of colours a theme paints with. All values are
// #rrggbb hex strings.
type Palette struct {
	Background string `yaml:"background"`
	HeaderFrom string `yaml:"header_from"`
	HeaderVia  string `yaml:"header_via"`
	HeaderTo   string `yaml:"header_to"`

	Title      string `yaml:"title"`
	Text       string `yaml:"text"`
	Accent     string `yaml:"accent"`
	AccentTo   string `yaml:"accent_to"`
	AccentSoft string `yaml:"accent_soft"`

	String  string `yaml:"string"`
	Bulb    string `yaml:"bulb"`
	Glyph   string `yaml:"glyph"`
	Balloon string `yaml:"balloon"`
	Paper   string `yaml:"paper"`

	Confetti []string `yaml:"confetti"`
}

// Theme is the full configuration of a gallery variant.
type Theme struct {
	Name string `yaml:"name"`

	Title     string `yaml:"title"`
	Banner    string `yaml:"banner"`
	Subtitle  string `yaml:"subtitle"`
	Footer    string `yaml:"footer"`
	Loading   string `yaml:"loading"`
	AltPrefix string `yaml:"alt_prefix"`

	// Glyphs are the two floating decoration symbols, picked 50/50.
	Glyphs       [2]string `yaml:"glyphs"`
	BalloonGlyph string    `yaml:"balloon_glyph"`
	// CornerGlyphs decorate the top-left and bottom-right of the banner.
	CornerGlyphs [2]string `yaml:"corner_glyphs"`

	Palette Palette `yaml:"palette"`
}

const DefaultName = "meadow"

var builtins = map[string]Theme{
	"meadow": {
		Name:         "meadow",
		Title:        "Our Ghibli Journey 🌿",
		Banner:       "Happy Birthday, Love ❤️",
		Subtitle:     "Memories we've made together in our magical world",
		Footer:       "Created with love, inspired by Studio Ghibli ✨",
		Loading:      "Hanging up your magical moments...",
		AltPrefix:    "Ghibli moment",
		Glyphs:       [2]string{"🍃", "✨"},
		BalloonGlyph: "🎈",
		CornerGlyphs: [2]string{"🎂", "🎉"},
		Palette: Palette{
			Background: "#eff6ff",
			HeaderFrom: "#bfdbfe",
			HeaderVia:  "#dcfce7",
			HeaderTo:   "#bfdbfe",
			Title:      "#115e59",
			Text:       "#0f766e",
			Accent:     "#14b8a6",
			AccentTo:   "#3b82f6",
			AccentSoft: "#99f6e4",
			String:     "#ccfbf1",
			Bulb:       "#5eead4",
			Glyph:      "#bbf7d0",
			Balloon:    "#93c5fd",
			Paper:      "#ffffff",
			Confetti:   []string{"#a7d7c9", "#74b49b", "#5c8d89", "#b6d8f2", "#9ac2c9"},
		},
	},
	"blossom": {
		Name:         "blossom",
		Title:        "Our Ghibli Journey 🌸",
		Banner:       "Happy Birthday, Love ❤️",
		Subtitle:     "Memories we've made together in our magical world",
		Footer:       "Created with love, inspired by Studio Ghibli 💖",
		Loading:      "Hanging up your magical moments...",
		AltPrefix:    "Ghibli moment",
		Glyphs:       [2]string{"🌸", "💖"},
		BalloonGlyph: "🎈",
		CornerGlyphs: [2]string{"🎂", "🎉"},
		Palette: Palette{
			Background: "#fdf2f8",
			HeaderFrom: "#fbcfe8",
			HeaderVia:  "#ffe4e6",
			HeaderTo:   "#fbcfe8",
			Title:      "#9f1239",
			Text:       "#be123c",
			Accent:     "#ec4899",
			AccentTo:   "#a855f7",
			AccentSoft: "#fbcfe8",
			String:     "#fce7f3",
			Bulb:       "#f9a8d4",
			Glyph:      "#fbcfe8",
			Balloon:    "#f9a8d4",
			Paper:      "#ffffff",
			Confetti:   []string{"#f8c8dc", "#f4a6c1", "#e38aae", "#d8b4e2", "#ffd1dc"},
		},
	},
}

// Names lists the built-in themes in alphabetical order.
func Names() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Default returns the built-in default theme.
func Default() Theme {
	t, _ := Builtin(DefaultName)
	return t
}

// Builtin returns a copy of the named built-in theme.
func Builtin(name string) (Theme, error) {
	t, ok := builtins[name]
	if !ok {
		return Theme{}, fmt.Errorf("unknown theme %q (available: %v)", name, Names())
	}
	t.Palette.Confetti = append([]string(nil), t.Palette.Confetti...)
	return t, nil
}

// file is the on-disk form: an optional base theme plus overrides.
type file struct {
	Base  string `yaml:"base"`
	Theme `yaml:",inline"`
}

// Load reads a theme from a YAML file. Fields left out fall back to the
// theme named by "base" (default: meadow).
func Load(path string) (Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, fmt.Errorf("reading theme file %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes a YAML theme document.
func Parse(data []byte) (Theme, error) {
	var probe struct {
		Base string `yaml:"base"`
	}
	if err := yaml.Unmarshal(data, &probe); err != nil {
		return Theme{}, fmt.Errorf("parsing theme: %w", err)
	}
	if probe.Base == "" {
		probe.Base = DefaultName
	}

	base, err := Builtin(probe.Base)
	if err != nil {
		return Theme{}, fmt.Errorf("resolving base theme: %w", err)
	}

	// Decoding over the base keeps every field the file leaves out.
	f := file{Theme: base}
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Theme{}, fmt.Errorf("parsing theme: %w", err)
	}
	if err := f.Theme.Validate(); err != nil {
		return Theme{}, err
	}
	return f.Theme, nil
}

var hexColor = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Validate checks colours and glyphs.
func (t Theme) Validate() error {
	if t.Name == "" {
		return fmt.Errorf("theme: name is required")
	}

	p := t.Palette
	colors := map[string]string{
		"background":  p.Background,
		"header_from": p.HeaderFrom,
		"header_via":  p.HeaderVia,
		"header_to":   p.HeaderTo,
		"title":       p.Title,
		"text":        p.Text,
		"accent":      p.Accent,
		"accent_to":   p.AccentTo,
		"accent_soft": p.AccentSoft,
		"string":      p.String,
		"bulb":        p.Bulb,
		"glyph":       p.Glyph,
		"balloon":     p.Balloon,
		"paper":       p.Paper,
	}
	for field, c := range colors {
		if !hexColor.MatchString(c) {
			return fmt.Errorf("theme %s: palette.%s: %q is not a #rrggbb colour", t.Name, field, c)
		}
	}

	if len(p.Confetti) == 0 {
		return fmt.Errorf("theme %s: palette.confetti must list at least one colour", t.Name)
	}
	for i, c := range p.Confetti {
		if !hexColor.MatchString(c) {
			return fmt.Errorf("theme %s: palette.confetti[%d]: %q is not a #rrggbb colour", t.Name, i, c)
		}
	}

	if t.Glyphs[0] == "" || t.Glyphs[1] == "" {
		return fmt.Errorf("theme %s: two decoration glyphs are required", t.Name)
	}
	if t.BalloonGlyph == "" {
		return fmt.Errorf("theme %s: balloon_glyph is required", t.Name)
	}
	return nil
}
