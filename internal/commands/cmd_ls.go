package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/dialpick/internal/core/catalog"
	"github.com/colonyops/dialpick/internal/core/logging"
	"github.com/colonyops/dialpick/internal/core/selection"
	"github.com/colonyops/dialpick/pkg/iojson"
)

type LsCmd struct {
	flags *Flags

	// flags
	query      string
	plan       bool
	jsonOutput bool
	picker     pickerFlags
	input      iojson.FileReader[[]catalog.Entry]
}

// NewLsCmd creates a new ls command
func NewLsCmd(flags *Flags) *LsCmd {
	return &LsCmd{flags: flags}
}

// Register adds the ls command to the application
func (cmd *LsCmd) Register(app *cli.Command) *cli.Command {
	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "query",
			Aliases:     []string{"q"},
			Usage:       "search query applied after the filter",
			Destination: &cmd.query,
		},
		&cli.BoolFlag{
			Name:        "plan",
			Usage:       "print the row plan (headers, pinned row, entries) instead of entries",
			Destination: &cmd.plan,
		},
		&cli.BoolFlag{
			Name:        "json",
			Usage:       "output as JSON lines",
			Destination: &cmd.jsonOutput,
		},
		cmd.input.Flag(),
	}
	for _, f := range cmd.picker.cliFlags(false) {
		switch f.Names()[0] {
		case "default", "filter", "codes":
			flags = append(flags, f)
		}
	}

	app.Commands = append(app.Commands, &cli.Command{
		Name:      "ls",
		Usage:     "List the catalog after filtering and search",
		UsageText: "dialpick ls [--query q] [--plan] [--json] [-f file]",
		Description: `Prints the entries the picker would show, without opening it.

--filter and --codes override the configured filter policy. With --plan the
rows are printed the way the list lays them out, including section headers
and the pinned current selection.

-f reads a JSON array of entries from a file (or stdin with "-") in place of
the configured catalog sources.`,
		Flags:  flags,
		Action: cmd.run,
	})

	return app
}

func (cmd *LsCmd) run(ctx context.Context, c *cli.Command) error {
	entries, err := cmd.entries(ctx)
	if err != nil {
		return err
	}

	opts, err := cmd.sessionOptions()
	if err != nil {
		return err
	}

	s := selection.New(entries, opts)
	s.OnQueryChange(cmd.query)

	out := c.Root().Writer
	if cmd.plan {
		return cmd.writePlan(out, s.Plan())
	}

	visible := s.Visible()
	if len(visible) == 0 {
		if !cmd.jsonOutput {
			fmt.Fprintf(os.Stderr, "No entries found\n")
		}
		return nil
	}
	return cmd.writeEntries(out, visible)
}

func (cmd *LsCmd) entries(ctx context.Context) ([]catalog.Entry, error) {
	if cmd.input.Set() {
		entries, err := cmd.input.Read()
		if err != nil {
			return nil, fmt.Errorf("read catalog: %w", err)
		}
		catalog.Sort(entries)
		return entries, nil
	}

	entries, err := catalog.Load(ctx, logging.Component(logging.CmpCatalog), cmd.flags.Config.Sources()...)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	return entries, nil
}

func (cmd *LsCmd) sessionOptions() (selection.Options, error) {
	cfg := cmd.flags.Config

	policy, err := cmd.picker.policy(cfg)
	if err != nil {
		return selection.Options{}, err
	}

	code := cfg.DefaultCode
	if cmd.picker.defaultCode != "" {
		code = cmd.picker.defaultCode
	}

	return selection.Options{
		Policy:      policy,
		DefaultCode: code,
		Placeholder: cfg.Placeholder,
		Fallback:    cfg.Fallback,
		Logger:      logging.Component(logging.CmpLs),
	}, nil
}

func (cmd *LsCmd) writeEntries(out io.Writer, entries []catalog.Entry) error {
	if cmd.jsonOutput {
		for _, e := range entries {
			if err := iojson.WriteLine(out, e); err != nil {
				return fmt.Errorf("encode entry: %w", err)
			}
		}
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "CODE\tNAME\tDIAL")
	for _, e := range entries {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\n", e.Code, e.Name, e.DialCode)
	}
	return w.Flush()
}

// planRow is the JSON output format for dialpick ls --plan --json.
type planRow struct {
	Row      int    `json:"row"`
	Kind     string `json:"kind"`
	Header   string `json:"header,omitempty"`
	Section  int    `json:"section"`
	Code     string `json:"code,omitempty"`
	Name     string `json:"name,omitempty"`
	DialCode string `json:"dialCode,omitempty"`
}

func (cmd *LsCmd) writePlan(out io.Writer, plan selection.RowPlan) error {
	if cmd.jsonOutput {
		for i, r := range plan.Rows() {
			row := planRow{
				Row:      i,
				Kind:     r.Kind.String(),
				Header:   r.Header,
				Section:  r.Section,
				Code:     r.Entry.Code,
				Name:     r.Entry.Name,
				DialCode: r.Entry.DialCode,
			}
			if err := iojson.WriteLine(out, row); err != nil {
				return fmt.Errorf("encode row: %w", err)
			}
		}
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "ROW\tKIND\tSECTION\tLABEL")
	for i, r := range plan.Rows() {
		label := r.Header
		if r.Kind != selection.RowHeader {
			label = r.Entry.Label()
		}
		_, _ = fmt.Fprintf(w, "%d\t%s\t%d\t%s\n", i, r.Kind, r.Section, label)
	}
	return w.Flush()
}
