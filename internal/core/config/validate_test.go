package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/hay-kot/criterio"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/dialpick/internal/core/catalog"
)

func zerologNop() zerolog.Logger { return zerolog.Nop() }

func TestValidateDeep_ValidConfig(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "extra.json"), []byte(`[]`), 0o644))

	cfg := DefaultConfig()
	cfg.ConfigDir = dir
	cfg.Catalog.Files = []string{"extra.json"}
	cfg.Catalog.Globs = []string{"catalogs/**/*.json"}
	cfg.Filter = catalog.Policy{Kind: catalog.Restrict, Codes: []string{"KP"}}
	cfg.DefaultCode = "IN"
	cfg.Fallback = &catalog.Entry{Name: "India", Code: "IN", DialCode: "+91"}

	assert.NoError(t, cfg.ValidateDeep(""))
}

func TestValidateDeep_StructuralErrorFirst(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TUI.Height = 0

	err := cfg.ValidateDeep("")
	require.ErrorContains(t, err, "tui.height")

	var fieldErrs criterio.FieldErrors
	assert.False(t, errors.As(err, &fieldErrs))
}

func TestValidateDeep_FieldErrors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ConfigDir = t.TempDir()
	cfg.Catalog.Files = []string{"missing.json"}
	cfg.Catalog.Globs = []string{"catalogs/[*.json"}
	cfg.Catalog.Entries = []catalog.Entry{{Name: "", Code: "A T", DialCode: "999"}}
	cfg.Filter = catalog.Policy{Kind: catalog.ShowSelected, Codes: []string{"IN", ""}}
	cfg.DefaultCode = "I N"

	err := cfg.ValidateDeep("")

	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)

	fields := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		fields = append(fields, fe.Field)
	}
	assert.ElementsMatch(t, []string{
		"catalog.files[0]",
		"catalog.globs[0]",
		"catalog.entries[0].name",
		"catalog.entries[0].code",
		"catalog.entries[0].dialCode",
		"filter.codes[1]",
		"default_code",
	}, fields)
}

func TestValidateDeep_Fallback(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Fallback = &catalog.Entry{Name: "Nowhere", Code: "NW", DialCode: "0"}

	err := cfg.ValidateDeep("")

	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	require.Len(t, fieldErrs, 1)
	assert.Equal(t, "fallback.dialCode", fieldErrs[0].Field)
}

func TestValidateDeep_ConfigFileIsDir(t *testing.T) {
	cfg := DefaultConfig()
	dir := t.TempDir()

	err := cfg.ValidateDeep(dir)

	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Equal(t, "config_file", fieldErrs[0].Field)
	assert.Contains(t, fieldErrs[0].Err.Error(), "is a directory")
}

func TestWarnings(t *testing.T) {
	tests := []struct {
		name   string
		policy catalog.Policy
		want   []string
	}{
		{
			name:   "show_all clean",
			policy: catalog.Policy{Kind: catalog.ShowAll},
		},
		{
			name:   "codes ignored",
			policy: catalog.Policy{Kind: catalog.Provided, Codes: []string{"IN"}},
			want:   []string{"codes are ignored by the provided filter"},
		},
		{
			name:   "empty show_selected",
			policy: catalog.Policy{Kind: catalog.ShowSelected},
			want:   []string{"show_selected without codes leaves the list empty"},
		},
		{
			name:   "duplicate code",
			policy: catalog.Policy{Kind: catalog.ShowSelected, Codes: []string{"IN", "IN"}},
			want:   []string{"code listed more than once; matching entries are repeated per listing"},
		},
		{
			name:   "restrict many",
			policy: catalog.Policy{Kind: catalog.Restrict, Codes: []string{"IN", "AE"}},
			want:   []string{"restrict with 2 codes lists each remaining entry once per code"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.DefaultCode = "IN"
			cfg.Filter = tt.policy

			var got []string
			for _, w := range cfg.Warnings() {
				got = append(got, w.Message)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWarnings_NoDefault(t *testing.T) {
	cfg := DefaultConfig()

	warnings := cfg.Warnings()
	require.Len(t, warnings, 1)
	assert.Equal(t, "Default", warnings[0].Category)
	assert.Contains(t, warnings[0].Message, "Choose country")
}
