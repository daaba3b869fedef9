package initcmd

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/colonyops/dialpick/internal/core/catalog"
	"github.com/colonyops/dialpick/internal/core/config"
)

// Status is the outcome of one check.
type Status int

const (
	StatusPass Status = iota
	StatusWarn
	StatusFail
)

// CheckItem is a single line of a check result.
type CheckItem struct {
	Label  string
	Status Status
	Detail string
}

// Result groups the items of a check.
type Result struct {
	Name  string
	Items []CheckItem
}

// InitCheck validates the config the wizard wrote.
type InitCheck struct {
	configPath string
	logger     zerolog.Logger
}

// NewInitCheck creates a new init validation check.
func NewInitCheck(configPath string, logger zerolog.Logger) *InitCheck {
	return &InitCheck{configPath: configPath, logger: logger}
}

func (c *InitCheck) Name() string {
	return "Init Validation"
}

// Run loads the config back and checks that the catalog and the default
// entry resolve. Later items are skipped when the config cannot be loaded.
func (c *InitCheck) Run(ctx context.Context) Result {
	result := Result{Name: c.Name()}

	cfg, err := config.Load(c.configPath)
	if err != nil {
		result.Items = append(result.Items, CheckItem{
			Label:  "Config file",
			Status: StatusFail,
			Detail: err.Error(),
		})
		return result
	}
	result.Items = append(result.Items, CheckItem{
		Label:  "Config file",
		Status: StatusPass,
		Detail: c.configPath,
	})

	entries, err := catalog.Load(ctx, c.logger, cfg.Sources()...)
	result.Items = append(result.Items, checkCatalog(entries, err))
	result.Items = append(result.Items, checkDefault(cfg, entries))

	return result
}

func checkCatalog(entries []catalog.Entry, err error) CheckItem {
	switch {
	case err != nil:
		return CheckItem{Label: "Catalog", Status: StatusFail, Detail: err.Error()}
	case len(entries) == 0:
		return CheckItem{Label: "Catalog", Status: StatusWarn, Detail: "no entries"}
	default:
		return CheckItem{Label: "Catalog", Status: StatusPass, Detail: fmt.Sprintf("%d entries", len(entries))}
	}
}

func checkDefault(cfg *config.Config, entries []catalog.Entry) CheckItem {
	if cfg.DefaultCode == "" {
		return CheckItem{Label: "Default", Status: StatusPass, Detail: "none, starts on " + cfg.Placeholder}
	}

	working := catalog.Apply(entries, cfg.Filter)
	if e, ok := catalog.FindByCode(working, cfg.DefaultCode); ok {
		return CheckItem{Label: "Default", Status: StatusPass, Detail: e.Label()}
	}
	return CheckItem{
		Label:  "Default",
		Status: StatusWarn,
		Detail: fmt.Sprintf("%s is not in the filtered list; the fallback is used", cfg.DefaultCode),
	}
}
