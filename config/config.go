// Package config loads and saves the timepicker.toml (or .yaml) file that
// configures the dial and the hosts that show it.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/agiangrant/timepicker"
	"github.com/agiangrant/timepicker/anim"
	"github.com/agiangrant/timepicker/render"
)

// DefaultFile is the config file name looked up in the working directory.
const DefaultFile = "timepicker.toml"

// File represents the timepicker.toml configuration file
type File struct {
	App    AppConfig    `toml:"app" yaml:"app"`
	Picker PickerConfig `toml:"picker" yaml:"picker"`
	Server ServerConfig `toml:"server" yaml:"server"`
	Log    LogConfig    `toml:"log" yaml:"log"`
}

// AppConfig configures the demo window.
type AppConfig struct {
	Title  string `toml:"title" yaml:"title"`
	Width  int    `toml:"width" yaml:"width"`
	Height int    `toml:"height" yaml:"height"`
}

type PickerConfig struct {
	// "single" or "two-step"
	Mode string `toml:"mode" yaml:"mode"`
	// "12h", "24h", or empty to let the host decide
	Format         string  `toml:"format" yaml:"format"`
	TrackTouchable bool    `toml:"track_touchable" yaml:"track_touchable"`
	Enabled        bool    `toml:"enabled" yaml:"enabled"`
	TrackSize      float32 `toml:"track_size" yaml:"track_size"`
	PointerRadius  float32 `toml:"pointer_radius" yaml:"pointer_radius"`
	// Curve of the two-step pointer glide: "decelerate" (default),
	// "linear" or "cubic"
	Easing string `toml:"easing,omitempty" yaml:"easing,omitempty"`

	Colors         ColorsConfig `toml:"colors" yaml:"colors"`
	DisabledColors ColorsConfig `toml:"disabled_colors" yaml:"disabled_colors"`
}

// ColorsConfig holds one palette as color strings ("#RRGGBB", "#RRGGBBAA"
// or "transparent"). Empty entries fall back.
type ColorsConfig struct {
	Text       string `toml:"text,omitempty" yaml:"text,omitempty"`
	Track      string `toml:"track,omitempty" yaml:"track,omitempty"`
	Pointer    string `toml:"pointer,omitempty" yaml:"pointer,omitempty"`
	Canvas     string `toml:"canvas,omitempty" yaml:"canvas,omitempty"`
	Face       string `toml:"face,omitempty" yaml:"face,omitempty"`
	PickedText string `toml:"picked_text,omitempty" yaml:"picked_text,omitempty"`
}

type ServerConfig struct {
	Addr string `toml:"addr" yaml:"addr"`
	// Origins allowed to open the websocket. Empty allows same-host only.
	AllowedOrigins []string `toml:"allowed_origins" yaml:"allowed_origins"`
}

type LogConfig struct {
	Level string `toml:"level" yaml:"level"`
	// Directory for the rotating log file. Empty logs to stdout only.
	Dir string `toml:"dir" yaml:"dir"`
}

// Default returns a sensible default configuration
func Default() File {
	return File{
		App: AppConfig{
			Title:  "Time Picker",
			Width:  480,
			Height: 640,
		},
		Picker: PickerConfig{
			Mode:           "single",
			TrackTouchable: true,
			Enabled:        true,
			Colors:         colorsFromPalette(timepicker.DefaultPalette()),
		},
		Server: ServerConfig{
			Addr: "127.0.0.1:8080",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads the configuration at path. The format follows the extension:
// .yaml and .yml are YAML, anything else TOML. If the file doesn't exist,
// the defaults are returned.
func Load(path string) (File, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if isYAML(path) {
		err = yaml.Unmarshal(data, &cfg)
	} else {
		err = toml.Unmarshal(data, &cfg)
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the configuration to path in the format its extension implies.
func Save(path string, cfg File) error {
	var (
		data []byte
		err  error
	)
	if isYAML(path) {
		data, err = yaml.Marshal(cfg)
	} else {
		data, err = toml.Marshal(cfg)
	}
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// Validate checks every string-valued setting parses.
func (f File) Validate() error {
	if _, err := timepicker.ParseMode(f.Picker.Mode); err != nil {
		return err
	}
	if _, _, err := f.Picker.Is24Hour(); err != nil {
		return err
	}
	if _, _, err := f.Picker.Palettes(); err != nil {
		return err
	}
	if _, err := f.Picker.EasingFunc(); err != nil {
		return err
	}
	return nil
}

// Is24Hour reports the configured format. set is false when the format is
// left to the host.
func (c PickerConfig) Is24Hour() (is24Hour, set bool, err error) {
	switch strings.ToLower(strings.TrimSpace(c.Format)) {
	case "":
		return false, false, nil
	case "24h", "24":
		return true, true, nil
	case "12h", "12":
		return false, true, nil
	default:
		return false, false, fmt.Errorf("unknown time format %q (want 12h or 24h)", c.Format)
	}
}

// EasingFunc resolves the glide curve. Empty selects the default.
func (c PickerConfig) EasingFunc() (anim.EasingFunc, error) {
	name := strings.ToLower(strings.TrimSpace(c.Easing))
	if name == "" {
		return anim.EaseOutQuad, nil
	}
	fn := anim.EasingByName(name)
	if fn == nil {
		return nil, fmt.Errorf("unknown easing %q (want decelerate, linear or cubic)", c.Easing)
	}
	return fn, nil
}

// Palettes resolves the enabled and disabled palettes. Missing enabled
// colors take the defaults; missing disabled colors take the resolved
// enabled color faded to timepicker.DisabledAlpha.
func (c PickerConfig) Palettes() (enabled, disabled timepicker.Palette, err error) {
	enabled, err = c.Colors.resolve(timepicker.DefaultPalette())
	if err != nil {
		return enabled, disabled, fmt.Errorf("picker.colors: %w", err)
	}
	disabled, err = c.DisabledColors.resolve(enabled.Faded(timepicker.DisabledAlpha))
	if err != nil {
		return enabled, disabled, fmt.Errorf("picker.disabled_colors: %w", err)
	}
	return enabled, disabled, nil
}

func (c ColorsConfig) resolve(fallback timepicker.Palette) (timepicker.Palette, error) {
	p := fallback
	fields := []struct {
		name  string
		value string
		dst   *uint32
	}{
		{"text", c.Text, &p.Text},
		{"track", c.Track, &p.Track},
		{"pointer", c.Pointer, &p.Pointer},
		{"canvas", c.Canvas, &p.Canvas},
		{"face", c.Face, &p.Face},
		{"picked_text", c.PickedText, &p.PickedText},
	}
	for _, f := range fields {
		if f.value == "" {
			continue
		}
		v, err := render.ParseColor(f.value)
		if err != nil {
			return fallback, fmt.Errorf("%s: %w", f.name, err)
		}
		*f.dst = v
	}
	return p, nil
}

func colorsFromPalette(p timepicker.Palette) ColorsConfig {
	return ColorsConfig{
		Text:       render.FormatColor(p.Text),
		Track:      render.FormatColor(p.Track),
		Pointer:    render.FormatColor(p.Pointer),
		Canvas:     render.FormatColor(p.Canvas),
		Face:       render.FormatColor(p.Face),
		PickedText: render.FormatColor(p.PickedText),
	}
}

// PickerOptions turns the picker section into constructor options.
// default24Hour is used when the file leaves the format unset; hosts pass
// their locale preference here.
func (f File) PickerOptions(default24Hour bool) ([]timepicker.Option, error) {
	mode, err := timepicker.ParseMode(f.Picker.Mode)
	if err != nil {
		return nil, err
	}
	is24Hour, set, err := f.Picker.Is24Hour()
	if err != nil {
		return nil, err
	}
	if !set {
		is24Hour = default24Hour
	}
	enabled, disabled, err := f.Picker.Palettes()
	if err != nil {
		return nil, err
	}
	easing, err := f.Picker.EasingFunc()
	if err != nil {
		return nil, err
	}
	return []timepicker.Option{
		timepicker.WithMode(mode),
		timepicker.With24Hour(is24Hour),
		timepicker.WithPalette(enabled),
		timepicker.WithDisabledPalette(disabled),
		timepicker.WithTrackSize(f.Picker.TrackSize),
		timepicker.WithPointerRadius(f.Picker.PointerRadius),
		timepicker.WithTrackTouchable(f.Picker.TrackTouchable),
		timepicker.WithEnabled(f.Picker.Enabled),
		timepicker.WithEasing(easing),
	}, nil
}

// ApplyStyle pushes the file's appearance settings onto a live picker.
// Mode, format and time are left alone so a reload never moves the pointer.
func (f File) ApplyStyle(p *timepicker.Picker) error {
	enabled, disabled, err := f.Picker.Palettes()
	if err != nil {
		return err
	}
	easing, err := f.Picker.EasingFunc()
	if err != nil {
		return err
	}
	p.SetPalette(enabled).
		SetDisabledPalette(disabled).
		SetTrackSize(f.Picker.TrackSize).
		SetPointerRadius(f.Picker.PointerRadius).
		SetTrackTouchable(f.Picker.TrackTouchable).
		SetEasing(easing).
		SetEnabled(f.Picker.Enabled)
	return nil
}
