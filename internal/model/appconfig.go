package model

// AppConfig holds application-wide preferences and default settings.
type AppConfig struct {
	// Default packing settings applied when no flags override them
	DefaultStrategy Strategy `toml:"default_strategy"`
	DefaultPadding  int      `toml:"default_padding"`
	DefaultXPadding int      `toml:"default_xpadding"`
	DefaultYPadding int      `toml:"default_ypadding"`

	// Style output
	SheetURL    string `toml:"sheet_url"`    // background-image URL written into CSS, "" = derived from output name
	ClassPrefix string `toml:"class_prefix"` // CSS class / mixin prefix

	// Outputs written by "pack" in addition to the PNG
	OutputFormats []string `toml:"output_formats"` // any of "css", "sass", "json", "pdf", "xlsx", "dxf", "svg"
}

// DefaultAppConfig returns an AppConfig populated with sensible defaults
// matching the values from DefaultSettings().
func DefaultAppConfig() AppConfig {
	defaults := DefaultSettings()
	return AppConfig{
		DefaultStrategy: defaults.Strategy,
		DefaultPadding:  defaults.Padding,
		DefaultXPadding: defaults.XPadding,
		DefaultYPadding: defaults.YPadding,
		SheetURL:        "",
		ClassPrefix:     "sprite",
		OutputFormats:   []string{"css"},
	}
}

// ApplyToSettings copies the default values from AppConfig into a PackSettings struct.
func (c AppConfig) ApplyToSettings(s *PackSettings) {
	if c.DefaultStrategy != "" {
		s.Strategy = c.DefaultStrategy
	}
	s.Padding = c.DefaultPadding
	s.XPadding = c.DefaultXPadding
	s.YPadding = c.DefaultYPadding
}
