package initcmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/rs/zerolog"

	"github.com/colonyops/dialpick/internal/core/catalog"
	"github.com/colonyops/dialpick/internal/core/styles"
	"github.com/colonyops/dialpick/internal/core/validate"
	"github.com/colonyops/dialpick/internal/printer"
)

// WizardOptions configures the wizard behavior.
type WizardOptions struct {
	ConfigPath string
	Yes        bool // skip prompts, use defaults
	Force      bool // overwrite existing config
	Theme      string
	Logger     zerolog.Logger
}

// Wizard orchestrates the init process.
type Wizard struct {
	opts WizardOptions
}

// NewWizard creates a new init wizard.
func NewWizard(opts WizardOptions) *Wizard {
	return &Wizard{opts: opts}
}

// Run executes the wizard.
func (w *Wizard) Run(ctx context.Context) error {
	p := printer.Ctx(ctx)

	if ConfigExists(w.opts.ConfigPath) && !w.opts.Force {
		if w.opts.Yes {
			return fmt.Errorf("config exists at %s; use --force to overwrite", w.opts.ConfigPath)
		}

		var overwrite bool
		err := huh.NewConfirm().
			Title("Config file already exists").
			Description(w.opts.ConfigPath + "\nOverwrite? (a backup will be created)").
			Value(&overwrite).
			Run()
		if err != nil {
			return err
		}
		if !overwrite {
			p.Infof("Init cancelled")
			return nil
		}
	}

	opts := DefaultConfigOptions()
	if w.opts.Theme != "" {
		opts.Theme = w.opts.Theme
	}
	if !w.opts.Yes {
		var err error
		opts, err = w.promptUser(opts)
		if err != nil {
			return err
		}
	}

	data, err := GenerateConfig(opts)
	if err != nil {
		return err
	}

	backupPath, err := BackupConfig(w.opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("backup config: %w", err)
	}
	if backupPath != "" {
		p.Successf("Backed up config to: %s", backupPath)
	}

	if err := WriteConfig(data, w.opts.ConfigPath); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	p.Successf("Created config: %s", w.opts.ConfigPath)

	p.Printf("")
	result := NewInitCheck(w.opts.ConfigPath, w.opts.Logger).Run(ctx)

	p.Section(result.Name)
	for _, item := range result.Items {
		switch item.Status {
		case StatusPass:
			p.Successf("%s: %s", item.Label, item.Detail)
		case StatusWarn:
			p.Warnf("%s: %s", item.Label, item.Detail)
		case StatusFail:
			p.Errorf("%s: %s", item.Label, item.Detail)
		}
	}

	p.Printf("")
	p.Section("Next Steps")
	p.Printf("  1. Edit %s to add catalog files or inline entries", w.opts.ConfigPath)
	p.Printf("  2. Run 'dialpick' to pick a country or 'dialpick phone' for a phone number")

	return nil
}

func (w *Wizard) promptUser(opts ConfigOptions) (ConfigOptions, error) {
	themeOptions := make([]huh.Option[string], 0, len(styles.ThemeNames()))
	for _, name := range styles.ThemeNames() {
		themeOptions = append(themeOptions, huh.NewOption(name, name))
	}

	filterOptions := []huh.Option[catalog.PolicyKind]{
		huh.NewOption("Show every country", catalog.ShowAll),
		huh.NewOption("Only countries listed in the config", catalog.Provided),
		huh.NewOption("Only the listed codes", catalog.ShowSelected),
		huh.NewOption("Everything except the listed codes", catalog.Restrict),
	}

	codes := strings.Join(opts.Filter.Codes, ", ")

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Theme").
				Options(themeOptions...).
				Value(&opts.Theme),
			huh.NewInput().
				Title("Default country code").
				Description("Selected when the picker starts, e.g. US. Leave empty for none").
				Value(&opts.DefaultCode).
				Validate(func(s string) error {
					s = strings.TrimSpace(s)
					if s == "" {
						return nil
					}
					return validate.Code(s)
				}),
		),
		huh.NewGroup(
			huh.NewSelect[catalog.PolicyKind]().
				Title("Which countries can be picked?").
				Options(filterOptions...).
				Value(&opts.Filter.Kind),
			huh.NewInput().
				Title("Codes").
				Description("Comma-separated codes for the listed/except filters").
				Value(&codes).
				Validate(validateCodeList),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Show dial codes in the list?").
				Value(&opts.ShowDialCode),
			huh.NewConfirm().
				Title("Show the alphabet jump bar?").
				Value(&opts.AlphabetBar),
		),
	)
	if err := form.Run(); err != nil {
		return opts, err
	}

	opts.DefaultCode = strings.ToUpper(strings.TrimSpace(opts.DefaultCode))
	opts.Filter.Codes = ParseCodes(codes)
	return opts, nil
}

// ParseCodes splits a comma-separated code list, upper casing each code and
// dropping empty items. Repeats are kept.
func ParseCodes(s string) []string {
	var codes []string
	for _, c := range strings.Split(s, ",") {
		c = strings.ToUpper(strings.TrimSpace(c))
		if c != "" {
			codes = append(codes, c)
		}
	}
	return codes
}

func validateCodeList(s string) error {
	for _, c := range ParseCodes(s) {
		if err := validate.Code(c); err != nil {
			return err
		}
	}
	return nil
}
