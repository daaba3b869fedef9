// Package config handles configuration loading and validation for dialpick.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/colonyops/dialpick/internal/core/catalog"
	"github.com/colonyops/dialpick/internal/core/selection"
	"github.com/colonyops/dialpick/internal/core/styles"
)

// Config holds the application configuration.
type Config struct {
	Catalog     CatalogConfig          `yaml:"catalog"`
	Filter      catalog.Policy         `yaml:"filter"`
	DefaultCode string                 `yaml:"default_code"`
	Placeholder string                 `yaml:"placeholder"`
	SearchHint  string                 `yaml:"search_hint"`
	InputHint   string                 `yaml:"input_hint"`
	Fallback    *catalog.Entry         `yaml:"fallback,omitempty"`
	Dismiss     *selection.DismissMode `yaml:"dismiss,omitempty"` // unset: silent for pick, reconfirm for phone
	TUI         TUIConfig              `yaml:"tui"`
	ConfigDir   string                 `yaml:"-"` // set by Load, relative catalog paths resolve against it
}

// CatalogConfig lists where entries come from. All sources are merged.
type CatalogConfig struct {
	Embedded bool            `yaml:"embedded"` // bundled country list
	Files    []string        `yaml:"files"`    // JSON arrays of entries
	Globs    []string        `yaml:"globs"`    // doublestar patterns matching JSON files
	Entries  []catalog.Entry `yaml:"entries"`  // inline entries
}

// TUIConfig controls the interactive picker.
type TUIConfig struct {
	Theme        string  `yaml:"theme"`
	Accent       string  `yaml:"accent"` // optional #rrggbb replacing the theme's primary color
	ShowFlag     bool    `yaml:"show_flag"`
	ShowName     bool    `yaml:"show_name"`
	ShowDialCode bool    `yaml:"show_dial_code"`
	ShowCode     bool    `yaml:"show_code"`
	AlphabetBar  bool    `yaml:"alphabet_bar"`
	Height       float64 `yaml:"height"` // overlay height as a fraction of the terminal
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Catalog:     CatalogConfig{Embedded: true},
		Filter:      catalog.Policy{Kind: catalog.ShowAll},
		Placeholder: "Choose country",
		SearchHint:  "Search for a country",
		InputHint:   "Enter phone number",
		TUI: TUIConfig{
			Theme:       styles.DefaultTheme,
			ShowFlag:    true,
			ShowName:    true,
			AlphabetBar: true,
			Height:      0.95,
		},
	}
}

// Load reads configuration from the given path. If configPath is empty or
// doesn't exist, returns defaults.
func Load(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		cfg.ConfigDir = filepath.Dir(configPath)

		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}

			cfg.ConfigDir = filepath.Dir(configPath)
		}
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.Placeholder == "" {
		c.Placeholder = defaults.Placeholder
	}
	if c.SearchHint == "" {
		c.SearchHint = defaults.SearchHint
	}
	if c.InputHint == "" {
		c.InputHint = defaults.InputHint
	}
	if c.TUI.Theme == "" {
		c.TUI.Theme = defaults.TUI.Theme
	}
	if c.TUI.Height == 0 {
		c.TUI.Height = defaults.TUI.Height
	}
	c.DefaultCode = strings.TrimSpace(c.DefaultCode)
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	cat := c.Catalog
	if !cat.Embedded && len(cat.Files) == 0 && len(cat.Globs) == 0 && len(cat.Entries) == 0 {
		return fmt.Errorf("catalog has no sources: enable catalog.embedded or list files, globs or entries")
	}

	if c.TUI.Height <= 0 || c.TUI.Height > 1 {
		return fmt.Errorf("tui.height must be in (0, 1], got %g", c.TUI.Height)
	}

	if _, ok := styles.GetPalette(c.TUI.Theme); !ok {
		return fmt.Errorf("unknown theme %q (available: %s)", c.TUI.Theme, strings.Join(styles.ThemeNames(), ", "))
	}

	if c.TUI.Accent != "" && !styles.ValidHex(c.TUI.Accent) {
		return fmt.Errorf("tui.accent %q is not a #rrggbb color", c.TUI.Accent)
	}

	if f := c.Fallback; f != nil && (f.Name == "" || f.Code == "") {
		return fmt.Errorf("fallback must have a name and a code")
	}

	return nil
}

// DismissFor returns the configured dismiss mode, or the variant's default:
// the phone form re-confirms the last pick, the plain picker stays silent.
func (c *Config) DismissFor(phone bool) selection.DismissMode {
	if c.Dismiss != nil {
		return *c.Dismiss
	}
	if phone {
		return selection.DismissReconfirm
	}
	return selection.DismissSilent
}

// Sources builds the catalog sources the configuration names, in the order
// embedded, files, globs, inline entries.
func (c *Config) Sources() []catalog.Source {
	var sources []catalog.Source
	if c.Catalog.Embedded {
		sources = append(sources, catalog.Embedded())
	}
	for _, f := range c.Catalog.Files {
		sources = append(sources, catalog.File(c.resolve(f)))
	}
	if len(c.Catalog.Globs) > 0 {
		patterns := make([]string, len(c.Catalog.Globs))
		for i, g := range c.Catalog.Globs {
			patterns[i] = c.resolve(g)
		}
		sources = append(sources, catalog.Glob(patterns...))
	}
	if len(c.Catalog.Entries) > 0 {
		sources = append(sources, catalog.Static(c.Catalog.Entries))
	}
	return sources
}

// Palette returns the theme palette with the accent override applied.
func (c *Config) Palette() (styles.Palette, error) {
	p, ok := styles.GetPalette(c.TUI.Theme)
	if !ok {
		return p, fmt.Errorf("unknown theme %q", c.TUI.Theme)
	}
	if c.TUI.Accent == "" {
		return p, nil
	}
	return p.WithAccent(c.TUI.Accent)
}

// resolve makes a relative path relative to the config file's directory.
// Home-relative and absolute paths are left for the catalog sources.
func (c *Config) resolve(path string) string {
	if path == "" || filepath.IsAbs(path) || strings.HasPrefix(path, "~") || c.ConfigDir == "" {
		return path
	}
	return filepath.Join(c.ConfigDir, path)
}
