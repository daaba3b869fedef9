package config

import (
	"fmt"
	"os"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/hay-kot/criterio"

	"github.com/colonyops/dialpick/internal/core/catalog"
	"github.com/colonyops/dialpick/internal/core/validate"
)

// ValidationWarning represents a non-fatal configuration issue.
type ValidationWarning struct {
	Category string `json:"category"`
	Item     string `json:"item,omitempty"`
	Message  string `json:"message"`
}

// ValidateDeep performs comprehensive validation of the configuration
// including catalog file access, glob syntax and code formats. The configPath
// argument specifies the config file location to validate (empty string
// skips the config file check). This calls Validate() first for basic
// structural validation.
func (c *Config) ValidateDeep(configPath string) error {
	if err := c.Validate(); err != nil {
		return err
	}

	return criterio.ValidateStruct(
		validateConfigFile(configPath),
		c.validateCatalogFiles(),
		c.validateGlobs(),
		c.validateEntries(),
		c.validateCodes(),
		c.validateFallback(),
	)
}

// Warnings returns non-fatal configuration issues.
func (c *Config) Warnings() []ValidationWarning {
	var warnings []ValidationWarning

	switch c.Filter.Kind {
	case catalog.ShowSelected, catalog.Restrict:
		seen := make(map[string]bool, len(c.Filter.Codes))
		for _, code := range c.Filter.Codes {
			if seen[code] {
				warnings = append(warnings, ValidationWarning{
					Category: "Filter",
					Item:     code,
					Message:  "code listed more than once; matching entries are repeated per listing",
				})
			}
			seen[code] = true
		}
		if c.Filter.Kind == catalog.ShowSelected && len(c.Filter.Codes) == 0 {
			warnings = append(warnings, ValidationWarning{
				Category: "Filter",
				Message:  "show_selected without codes leaves the list empty",
			})
		}
		if c.Filter.Kind == catalog.Restrict && len(c.Filter.Codes) > 1 {
			warnings = append(warnings, ValidationWarning{
				Category: "Filter",
				Message:  fmt.Sprintf("restrict with %d codes lists each remaining entry once per code", len(c.Filter.Codes)),
			})
		}
	default:
		if len(c.Filter.Codes) > 0 {
			warnings = append(warnings, ValidationWarning{
				Category: "Filter",
				Message:  fmt.Sprintf("codes are ignored by the %s filter", c.Filter.Kind),
			})
		}
	}

	if c.DefaultCode == "" {
		warnings = append(warnings, ValidationWarning{
			Category: "Default",
			Message:  fmt.Sprintf("no default_code; the picker starts on %q", c.Placeholder),
		})
	}

	return warnings
}

func validateConfigFile(configPath string) error {
	if configPath == "" {
		return nil
	}

	info, err := os.Stat(configPath)
	if os.IsNotExist(err) {
		return nil // not found is fine, using defaults
	}
	if err != nil {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("cannot access: %w", err))
	}
	if info.IsDir() {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("%s is a directory, not a file", configPath))
	}
	return nil
}

// validateCatalogFiles checks each catalog file exists and is a regular file.
func (c *Config) validateCatalogFiles() error {
	var errs criterio.FieldErrorsBuilder
	for i, file := range c.Catalog.Files {
		if err := isRegularFile(c.resolve(file)); err != nil {
			errs = errs.Append(fmt.Sprintf("catalog.files[%d]", i), err)
		}
	}
	return errs.ToError()
}

func isRegularFile(path string) error {
	info, err := os.Stat(catalog.ExpandHome(path))
	if err != nil {
		return fmt.Errorf("file not found: %s", path)
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory, not a file", path)
	}
	return nil
}

func (c *Config) validateGlobs() error {
	var errs criterio.FieldErrorsBuilder
	for i, pattern := range c.Catalog.Globs {
		if !doublestar.ValidatePattern(pattern) {
			errs = errs.Append(fmt.Sprintf("catalog.globs[%d]", i), fmt.Errorf("invalid pattern %q", pattern))
		}
	}
	return errs.ToError()
}

// validateEntries checks inline entries have the fields the picker needs.
func (c *Config) validateEntries() error {
	var errs criterio.FieldErrorsBuilder
	for i, e := range c.Catalog.Entries {
		prefix := fmt.Sprintf("catalog.entries[%d]", i)
		if err := validate.Name(e.Name); err != nil {
			errs = errs.Append(prefix+".name", err)
		}
		if err := validate.Code(e.Code); err != nil {
			errs = errs.Append(prefix+".code", err)
		}
		if err := validate.DialCode(e.DialCode); err != nil {
			errs = errs.Append(prefix+".dialCode", err)
		}
	}
	return errs.ToError()
}

func (c *Config) validateCodes() error {
	var errs criterio.FieldErrorsBuilder
	for i, code := range c.Filter.Codes {
		if err := validate.Code(code); err != nil {
			errs = errs.Append(fmt.Sprintf("filter.codes[%d]", i), err)
		}
	}
	if c.DefaultCode != "" {
		if err := validate.Code(c.DefaultCode); err != nil {
			errs = errs.Append("default_code", err)
		}
	}
	return errs.ToError()
}

func (c *Config) validateFallback() error {
	if c.Fallback == nil {
		return nil
	}
	return criterio.ValidateStruct(
		validate.NameField("fallback.name", c.Fallback.Name),
		validate.CodeField("fallback.code", c.Fallback.Code),
		validate.DialCodeField("fallback.dialCode", c.Fallback.DialCode),
	)
}
