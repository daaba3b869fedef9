package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/colonyops/dialpick/internal/core/catalog"
	"github.com/colonyops/dialpick/internal/core/config"
	"github.com/colonyops/dialpick/internal/core/logging"
	"github.com/colonyops/dialpick/internal/core/selection"
	"github.com/colonyops/dialpick/internal/tui/picker"
	"github.com/colonyops/dialpick/pkg/iojson"
	"github.com/colonyops/dialpick/pkg/logutils"
)

// ErrCancelled is returned when the user leaves the picker without choosing.
var ErrCancelled = errors.New("selection cancelled")

// pickerFlags are shared by the pick and phone commands.
type pickerFlags struct {
	defaultCode string
	filter      string
	codes       []string
	open        bool
	jsonOutput  bool
}

// cliFlags returns the flags; open sets whether the list starts open. The
// flags are local so the copy registered on the root command is not
// inherited by subcommands that register their own.
func (f *pickerFlags) cliFlags(open bool) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "default",
			Aliases:     []string{"d"},
			Usage:       "code of the entry selected at start (overrides default_code)",
			Destination: &f.defaultCode,
			Local:       true,
		},
		&cli.StringFlag{
			Name:        "filter",
			Usage:       "filter policy (show_all, provided, show_selected, restrict)",
			Destination: &f.filter,
			Local:       true,
		},
		// not Local: a local slice flag is reset on every Set, dropping
		// repeats. Subcommands declaring --codes shadow the root copy.
		&cli.StringSliceFlag{
			Name:        "codes",
			Usage:       "codes for the show_selected and restrict filters (repeatable)",
			Destination: &f.codes,
		},
		&cli.BoolFlag{
			Name:        "open",
			Usage:       "start with the country list open",
			Value:       open,
			Destination: &f.open,
			Local:       true,
		},
		&cli.BoolFlag{
			Name:        "json",
			Usage:       "print the result as JSON",
			Destination: &f.jsonOutput,
			Local:       true,
		},
	}
}

// policy returns the configured filter with any command line overrides.
func (f *pickerFlags) policy(cfg *config.Config) (catalog.Policy, error) {
	p := cfg.Filter
	if f.filter != "" {
		kind, err := catalog.ParsePolicyKind(f.filter)
		if err != nil {
			return p, err
		}
		p.Kind = kind
	}
	if len(f.codes) > 0 {
		p.Codes = f.codes
	}
	return p, nil
}

// newPickerOptions assembles the model options for variant from the config,
// the loaded catalog and the command line.
func newPickerOptions(cfg *config.Config, entries []catalog.Entry, f *pickerFlags, variant picker.Variant) (picker.Options, error) {
	policy, err := f.policy(cfg)
	if err != nil {
		return picker.Options{}, err
	}

	code := cfg.DefaultCode
	if f.defaultCode != "" {
		code = strings.TrimSpace(f.defaultCode)
	}

	return picker.Options{
		Variant: variant,
		Entries: entries,
		Session: selection.Options{
			Policy:      policy,
			DefaultCode: code,
			Placeholder: cfg.Placeholder,
			Fallback:    cfg.Fallback,
			Dismiss:     cfg.DismissFor(variant == picker.VariantPhone),
		},
		SearchHint: cfg.SearchHint,
		InputHint:  cfg.InputHint,
		Display: picker.Display{
			ShowFlag:     cfg.TUI.ShowFlag,
			ShowName:     cfg.TUI.ShowName,
			ShowDialCode: cfg.TUI.ShowDialCode,
			ShowCode:     cfg.TUI.ShowCode,
			AlphabetBar:  cfg.TUI.AlphabetBar,
			Height:       cfg.TUI.Height,
		},
		OpenOnStart: f.open,
		ExitOnPick:  variant == picker.VariantPicker,
		Logger:      logging.Component(logging.CmpPicker),
	}, nil
}

// interactive reports whether a TUI can run: it reads keys from stdin and
// draws on stderr, leaving stdout for the result.
func interactive() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stderr.Fd()))
}

// runPicker loads the catalog and runs the model, or resolves the default
// without a UI when there is no terminal.
func runPicker(ctx context.Context, flags *Flags, f *pickerFlags, variant picker.Variant) (picker.Result, error) {
	ctx = logging.WithVariant(ctx, variant.String())
	cfg := flags.Config
	tty := interactive()

	// stderr belongs to the UI while it runs
	if tty && flags.LogFile == "" {
		held, release := logutils.Hold(log.Logger, os.Stderr)
		restore := log.Logger
		log.Logger = held
		defer func() {
			log.Logger = restore
			_ = release()
		}()
	}

	entries, err := catalog.Load(ctx, logging.Component(logging.CmpCatalog), cfg.Sources()...)
	if err != nil {
		log.Warn().Ctx(ctx).Err(err).Msg("continuing with an empty catalog")
	}

	opts, err := newPickerOptions(cfg, entries, f, variant)
	if err != nil {
		return picker.Result{}, err
	}

	if !tty {
		opts.OpenOnStart = false
		m := picker.New(opts)
		ctx = logging.WithSessionID(ctx, m.Session().ID())
		log.Debug().Ctx(ctx).Msg("no terminal, printing the default selection")
		res := m.Result()
		res.Confirmed = true
		return res, nil
	}

	m := picker.New(opts)
	ctx = logging.WithSessionID(ctx, m.Session().ID())

	p := tea.NewProgram(m,
		tea.WithContext(ctx),
		tea.WithOutput(os.Stderr),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return picker.Result{}, fmt.Errorf("run picker: %w", err)
	}

	final, ok := finalModel.(picker.Model)
	if !ok {
		return picker.Result{}, fmt.Errorf("unexpected model type %T", finalModel)
	}

	res := final.Result()
	log.Info().Ctx(ctx).
		Str("code", res.Entry.Code).
		Bool("picked", res.Picked).
		Bool("confirmed", res.Confirmed).
		Msg("picker finished")

	if !res.Confirmed {
		return res, ErrCancelled
	}
	return res, nil
}

// resultJSON is the --json output of pick and phone.
type resultJSON struct {
	Name     string `json:"name"`
	Code     string `json:"code"`
	DialCode string `json:"dialCode"`
	Image    string `json:"image,omitempty"`
	Number   string `json:"number,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Picked   bool   `json:"picked"`
}

func writeResult(w io.Writer, res picker.Result, variant picker.Variant, asJSON bool) error {
	if asJSON {
		out := resultJSON{
			Name:     res.Entry.Name,
			Code:     res.Entry.Code,
			DialCode: res.DialCode,
			Image:    res.Entry.Image,
			Picked:   res.Picked,
		}
		if variant == picker.VariantPhone {
			out.Number = res.Number
			out.Phone = res.Combined()
		}
		return iojson.WriteLine(w, out)
	}

	if variant == picker.VariantPhone {
		_, err := fmt.Fprintln(w, res.Combined())
		return err
	}
	_, err := fmt.Fprintf(w, "%s\t%s\t%s\n", res.Entry.Code, res.Entry.Name, res.DialCode)
	return err
}
