// internal/config/settings.go
package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"sort"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

// Colors is the resolved palette used by the renderer.
type Colors struct {
	Background   color.RGBA
	Outline      color.RGBA
	Fill         color.RGBA
	Stroke       color.RGBA
	Corner       color.RGBA
	Handle       color.RGBA
	HandleActive color.RGBA
	Text         color.RGBA
}

// Settings holds runtime values; zero file means compile-time defaults.
type Settings struct {
	Width              int
	Height             int
	Title              string
	Backend            string
	HitRadius          float64
	PointRadius        float64
	FontPath           string
	FontSize           float64
	RadiusDisplayScale float64
	Verbose            bool
	Colors             Colors
}

// fileSettings mirrors the YAML layout. Fields absent from the file keep
// the values pre-filled from Defaults.
type fileSettings struct {
	Window struct {
		Width  int    `yaml:"width"`
		Height int    `yaml:"height"`
		Title  string `yaml:"title"`
	} `yaml:"window"`
	Backend            string            `yaml:"backend"`
	HitRadius          float64           `yaml:"hit_radius"`
	PointRadius        float64           `yaml:"point_radius"`
	FontPath           string            `yaml:"font_path"`
	FontSize           float64           `yaml:"font_size"`
	RadiusDisplayScale float64           `yaml:"radius_display_scale"`
	Verbose            bool              `yaml:"verbose"`
	Colors             map[string]string `yaml:"colors"`
}

// Defaults returns settings built from the package constants.
func Defaults() Settings {
	return Settings{
		Width:              ScreenWidth,
		Height:             ScreenHeight,
		Title:              WindowTitle,
		Backend:            BackendEbiten,
		HitRadius:          HandleHitRadius,
		PointRadius:        PointRadius,
		FontSize:           FontSize,
		RadiusDisplayScale: RadiusDisplayScale,
		Colors: Colors{
			Background:   BackgroundColor,
			Outline:      OutlineColor,
			Fill:         FillColor,
			Stroke:       StrokeColor,
			Corner:       CornerColor,
			Handle:       HandleColor,
			HandleActive: HandleActiveColor,
			Text:         TextColor,
		},
	}
}

// Load reads an optional YAML settings file. An empty path yields Defaults.
func Load(path string) (Settings, error) {
	s := Defaults()
	if strings.TrimSpace(path) == "" {
		return s, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("failed to read settings file: %w", err)
	}
	return Parse(data)
}

// Parse applies YAML data on top of Defaults and validates the result.
func Parse(data []byte) (Settings, error) {
	s := Defaults()

	var f fileSettings
	f.Window.Width = s.Width
	f.Window.Height = s.Height
	f.Window.Title = s.Title
	f.Backend = s.Backend
	f.HitRadius = s.HitRadius
	f.PointRadius = s.PointRadius
	f.FontSize = s.FontSize
	f.RadiusDisplayScale = s.RadiusDisplayScale

	if err := yaml.Unmarshal(data, &f); err != nil {
		return Settings{}, fmt.Errorf("failed to unmarshal settings: %w", err)
	}

	s.Width = f.Window.Width
	s.Height = f.Window.Height
	s.Title = f.Window.Title
	s.Backend = strings.ToLower(strings.TrimSpace(f.Backend))
	s.HitRadius = f.HitRadius
	s.PointRadius = f.PointRadius
	s.FontPath = f.FontPath
	s.FontSize = f.FontSize
	s.RadiusDisplayScale = f.RadiusDisplayScale
	s.Verbose = f.Verbose

	if err := applyColors(&s.Colors, f.Colors); err != nil {
		return Settings{}, err
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Validate rejects values the editor cannot run with.
func (s Settings) Validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", s.Width, s.Height)
	}
	if s.HitRadius <= 0 {
		return errors.New("hit_radius must be > 0")
	}
	if s.PointRadius <= 0 {
		return errors.New("point_radius must be > 0")
	}
	if s.FontSize <= 0 {
		return errors.New("font_size must be > 0")
	}
	if s.RadiusDisplayScale <= 0 {
		return errors.New("radius_display_scale must be > 0")
	}
	switch s.Backend {
	case BackendEbiten, BackendRaylib:
	default:
		return fmt.Errorf("unknown backend %q", s.Backend)
	}
	return nil
}

func applyColors(dst *Colors, raw map[string]string) error {
	targets := map[string]*color.RGBA{
		"background":    &dst.Background,
		"outline":       &dst.Outline,
		"fill":          &dst.Fill,
		"stroke":        &dst.Stroke,
		"corner":        &dst.Corner,
		"handle":        &dst.Handle,
		"handle_active": &dst.HandleActive,
		"text":          &dst.Text,
	}

	// Сортируем ключи, чтобы ошибка была детерминированной
	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		target, ok := targets[strings.ToLower(key)]
		if !ok {
			return fmt.Errorf("unknown color %q", key)
		}
		c, err := ParseColor(raw[key])
		if err != nil {
			return fmt.Errorf("color %q: %w", key, err)
		}
		*target = c
	}
	return nil
}

// ParseColor parses "#rrggbb" (or "#rgb") into an opaque RGBA colour.
func ParseColor(hex string) (color.RGBA, error) {
	c, err := colorful.Hex(strings.TrimSpace(hex))
	if err != nil {
		return color.RGBA{}, err
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}
