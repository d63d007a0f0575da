package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// ColorScheme defines all configurable color values
type ColorScheme struct {
	// Preset name ("default" or "monochrome")
	Preset string `yaml:"preset"`

	// Primary accent color (selections, titles, the add buttons)
	Accent string `yaml:"accent"`
	Delete string `yaml:"delete"` // delete confirmations

	ColumnBorder   string `yaml:"column_border"`
	TaskBorder     string `yaml:"task_border"`
	SelectedBorder string `yaml:"selected_border"`
	DragBorder     string `yaml:"drag_border"` // the card or column under the pointer

	Title  string `yaml:"title"`
	Subtle string `yaml:"subtle"` // placeholders and the dimmed drag source
	Normal string `yaml:"normal"`

	WarningFg string `yaml:"warning_fg"`
	WarningBg string `yaml:"warning_bg"`
}

// DefaultColorScheme returns the default color scheme (purple theme)
func DefaultColorScheme() ColorScheme {
	return ColorScheme{
		Preset:         "default",
		Accent:         "#874BFD",
		Delete:         "#FF0000",
		ColumnBorder:   "#5F87D7",
		TaskBorder:     "#585858",
		SelectedBorder: "#D75FD7",
		DragBorder:     "#5FD75F",
		Title:          "#D75FD7",
		Subtle:         "#585858",
		Normal:         "#D0D0D0",
		WarningFg:      "#FFD700",
		WarningBg:      "#875F00",
	}
}

// MonochromeColorScheme returns a black and white color scheme
func MonochromeColorScheme() ColorScheme {
	return ColorScheme{
		Preset:         "monochrome",
		Accent:         "#FFFFFF",
		Delete:         "#FFFFFF",
		ColumnBorder:   "#FFFFFF",
		TaskBorder:     "#585858",
		SelectedBorder: "#FFFFFF",
		DragBorder:     "#D0D0D0",
		Title:          "#FFFFFF",
		Subtle:         "#585858",
		Normal:         "#D0D0D0",
		WarningFg:      "#FFFFFF",
		WarningBg:      "#3A3A3A",
	}
}

func presetScheme(name string) ColorScheme {
	if name == "monochrome" {
		return MonochromeColorScheme()
	}
	return DefaultColorScheme()
}

// ApplyDefaults fills in missing color values from the preset
func (c *ColorScheme) ApplyDefaults() {
	preset := presetScheme(c.Preset)
	if c.Preset == "" {
		c.Preset = preset.Preset
	}
	c.MergeFrom(preset, true)
}

// MergeFrom copies colors from other. When onlyEmpty is set, values already
// present in c are kept.
func (c *ColorScheme) MergeFrom(other ColorScheme, onlyEmpty bool) {
	fields := []struct {
		dst *string
		src string
	}{
		{&c.Accent, other.Accent},
		{&c.Delete, other.Delete},
		{&c.ColumnBorder, other.ColumnBorder},
		{&c.TaskBorder, other.TaskBorder},
		{&c.SelectedBorder, other.SelectedBorder},
		{&c.DragBorder, other.DragBorder},
		{&c.Title, other.Title},
		{&c.Subtle, other.Subtle},
		{&c.Normal, other.Normal},
		{&c.WarningFg, other.WarningFg},
		{&c.WarningBg, other.WarningBg},
	}
	for _, f := range fields {
		if f.src == "" || (onlyEmpty && *f.dst != "") {
			continue
		}
		*f.dst = f.src
	}
}

// loadThemeFile merges the theme from TABLERO_THEME_FILE over the config
func loadThemeFile(config *Config) {
	themeFile := os.Getenv(EnvTheme)
	if themeFile == "" {
		return
	}

	themeData, err := os.ReadFile(themeFile)
	if err != nil {
		return
	}

	var themeConfig struct {
		Theme ColorScheme `yaml:"theme"`
	}

	if yaml.Unmarshal(themeData, &themeConfig) == nil {
		if themeConfig.Theme.Preset != "" {
			config.ColorScheme.Preset = themeConfig.Theme.Preset
		}
		config.ColorScheme.MergeFrom(themeConfig.Theme, false)
	}
}
