package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/dialpick/internal/core/catalog"
	"github.com/colonyops/dialpick/internal/core/selection"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	want := DefaultConfig()
	want.ConfigDir = cfg.ConfigDir
	assert.Equal(t, &want, cfg)
}

func TestLoad_EmptyPath(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.True(t, cfg.Catalog.Embedded)
	assert.Empty(t, cfg.ConfigDir)
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
catalog:
  embedded: false
  files: [extra.json]
  entries:
    - {name: Atlantis, dialCode: "+999", code: AT}
filter:
  type: show_selected
  codes: [IN, AE]
default_code: " IN "
dismiss: reconfirm
tui:
  theme: gruvbox
  show_code: true
  show_flag: false
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.False(t, cfg.Catalog.Embedded)
	assert.Equal(t, []string{"extra.json"}, cfg.Catalog.Files)
	assert.Equal(t, []catalog.Entry{{Name: "Atlantis", DialCode: "+999", Code: "AT"}}, cfg.Catalog.Entries)
	assert.Equal(t, catalog.Policy{Kind: catalog.ShowSelected, Codes: []string{"IN", "AE"}}, cfg.Filter)
	assert.Equal(t, "IN", cfg.DefaultCode)
	assert.Equal(t, selection.DismissReconfirm, cfg.DismissFor(false))

	assert.Equal(t, "gruvbox", cfg.TUI.Theme)
	assert.True(t, cfg.TUI.ShowCode)
	assert.False(t, cfg.TUI.ShowFlag)
	assert.True(t, cfg.TUI.ShowName, "unset keys keep defaults")
	assert.InDelta(t, 0.95, cfg.TUI.Height, 1e-9)
	assert.Equal(t, "Choose country", cfg.Placeholder)
	assert.Equal(t, filepath.Dir(path), cfg.ConfigDir)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{name: "bad yaml", body: "catalog: [", wantErr: "parse config file"},
		{name: "unknown filter", body: "filter: {type: everything}", wantErr: "parse config file"},
		{name: "unknown dismiss", body: "dismiss: loudly", wantErr: "parse config file"},
		{name: "no sources", body: "catalog: {embedded: false}", wantErr: "catalog has no sources"},
		{name: "height", body: "tui: {height: 1.5}", wantErr: "tui.height"},
		{name: "theme", body: "tui: {theme: solarized}", wantErr: "unknown theme"},
		{name: "accent", body: "tui: {accent: blue}", wantErr: "tui.accent"},
		{name: "fallback", body: "fallback: {name: Nowhere}", wantErr: "fallback must have"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			require.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestDismissFor_VariantDefaults(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, selection.DismissSilent, cfg.DismissFor(false))
	assert.Equal(t, selection.DismissReconfirm, cfg.DismissFor(true))

	silent := selection.DismissSilent
	cfg.Dismiss = &silent
	assert.Equal(t, selection.DismissSilent, cfg.DismissFor(true))
}

func TestSources(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ConfigDir = "/etc/dialpick"
	cfg.Catalog.Files = []string{"extra.json", "/abs/more.json", "~/mine.json"}
	cfg.Catalog.Globs = []string{"catalogs/**/*.json"}
	cfg.Catalog.Entries = []catalog.Entry{{Name: "Atlantis", Code: "AT", DialCode: "+999"}}

	var names []string
	for _, s := range cfg.Sources() {
		names = append(names, s.Name())
	}

	assert.Equal(t, []string{
		catalog.Embedded().Name(),
		catalog.File("/etc/dialpick/extra.json").Name(),
		catalog.File("/abs/more.json").Name(),
		catalog.File("~/mine.json").Name(),
		catalog.Glob("/etc/dialpick/catalogs/**/*.json").Name(),
		catalog.Static(cfg.Catalog.Entries).Name(),
	}, names)
}

func TestSources_LoadInline(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Catalog.Embedded = false
	cfg.Catalog.Entries = []catalog.Entry{{Name: "Zed", Code: "ZD", DialCode: "+1"}, {Name: "Atlantis", Code: "AT", DialCode: "+999"}}

	entries, err := catalog.Load(t.Context(), zerologNop(), cfg.Sources()...)
	require.NoError(t, err)
	assert.Equal(t, []string{"Atlantis", "Zed"}, []string{entries[0].Name, entries[1].Name})
}

func TestPalette_Accent(t *testing.T) {
	cfg := DefaultConfig()
	base, err := cfg.Palette()
	require.NoError(t, err)

	cfg.TUI.Accent = "#ff8800"
	p, err := cfg.Palette()
	require.NoError(t, err)
	assert.Equal(t, "#ff8800", string(p.Primary))
	assert.Equal(t, base.Foreground, p.Foreground)
}
