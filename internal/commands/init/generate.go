package initcmd

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/colonyops/dialpick/internal/core/catalog"
	"github.com/colonyops/dialpick/internal/core/config"
)

const configHeader = `# dialpick configuration
# Run 'dialpick config validate' after editing.
`

// ConfigOptions are the answers the wizard collects.
type ConfigOptions struct {
	Theme        string
	DefaultCode  string
	Filter       catalog.Policy
	ShowDialCode bool
	AlphabetBar  bool
}

// DefaultConfigOptions mirrors config.DefaultConfig.
func DefaultConfigOptions() ConfigOptions {
	def := config.DefaultConfig()
	return ConfigOptions{
		Theme:        def.TUI.Theme,
		DefaultCode:  def.DefaultCode,
		Filter:       def.Filter,
		ShowDialCode: def.TUI.ShowDialCode,
		AlphabetBar:  def.TUI.AlphabetBar,
	}
}

// GenerateConfig renders a full config file for opts, starting from the
// defaults so every key is present for editing.
func GenerateConfig(opts ConfigOptions) ([]byte, error) {
	cfg := config.DefaultConfig()
	cfg.TUI.Theme = opts.Theme
	cfg.DefaultCode = opts.DefaultCode
	cfg.Filter = opts.Filter
	cfg.TUI.ShowDialCode = opts.ShowDialCode
	cfg.TUI.AlphabetBar = opts.AlphabetBar

	var buf bytes.Buffer
	buf.WriteString(configHeader)

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}

	return buf.Bytes(), nil
}

// WriteConfig writes data to configPath, creating parent directories.
func WriteConfig(data []byte, configPath string) error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	return os.WriteFile(configPath, data, 0o644)
}
