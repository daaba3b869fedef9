package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/colonyops/dialpick/internal/core/catalog"
	"github.com/colonyops/dialpick/internal/core/logging"
	"github.com/colonyops/dialpick/internal/core/styles"
	"github.com/colonyops/dialpick/internal/printer"
	"github.com/colonyops/dialpick/internal/tui/picker"
	"github.com/colonyops/dialpick/pkg/iojson"
)

type ShowCmd struct {
	flags *Flags

	width      int
	raw        bool
	jsonOutput bool
}

// NewShowCmd creates a new show command
func NewShowCmd(flags *Flags) *ShowCmd {
	return &ShowCmd{flags: flags}
}

// Register adds the show command to the application
func (cmd *ShowCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "show",
		Usage:     "Show the details of a catalog entry",
		UsageText: "dialpick show [options] <code>",
		Description: `Renders a card for the entry with the given code. Lower case codes
also match their upper case form.

Use --raw to print the markdown source instead of rendering it, or --json
for the entry itself.`,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:        "width",
				Usage:       "word wrap width",
				Value:       80,
				Destination: &cmd.width,
			},
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "print the entry as JSON, colored on a terminal",
				Destination: &cmd.jsonOutput,
			},
			&cli.BoolFlag{
				Name:        "raw",
				Usage:       "print markdown without rendering",
				Destination: &cmd.raw,
			},
		},
		ShellComplete: CodeCompleter(cmd.flags),
		Action:        cmd.run,
	})

	return app
}

func (cmd *ShowCmd) run(ctx context.Context, c *cli.Command) error {
	code := strings.TrimSpace(c.Args().First())
	if code == "" {
		return fmt.Errorf("missing entry code. Usage: dialpick show <code>")
	}

	entries, err := catalog.Load(ctx, logging.Component(logging.CmpCatalog), cmd.flags.Config.Sources()...)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	e, ok := catalog.FindByCode(entries, code)
	if !ok {
		e, ok = catalog.FindByCode(entries, strings.ToUpper(code))
	}
	if !ok {
		return fmt.Errorf("no entry with code %q", code)
	}

	out := c.Root().Writer
	if cmd.jsonOutput {
		return writeEntryJSON(out, e)
	}

	md := entryMarkdown(e)
	if cmd.raw {
		_, err := fmt.Fprint(out, md)
		return err
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStyles(styles.GlamourStyle()),
		glamour.WithWordWrap(cmd.width),
	)
	if err != nil {
		return fmt.Errorf("create renderer: %w", err)
	}

	rendered, err := r.Render(md)
	if err != nil {
		return fmt.Errorf("render entry: %w", err)
	}
	_, err = fmt.Fprint(out, rendered)
	return err
}

func writeEntryJSON(out io.Writer, e catalog.Entry) error {
	if f, ok := out.(*os.File); !ok || !term.IsTerminal(int(f.Fd())) {
		return iojson.WriteWith(out, os.Stderr, e)
	}

	data, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("marshal entry: %w", err)
	}
	_, err = fmt.Fprintln(out, printer.ColorizeJSON(data))
	return err
}

// entryMarkdown describes e as a markdown card.
func entryMarkdown(e catalog.Entry) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s %s\n\n", picker.Flag(e.Code), e.Name)
	b.WriteString("| Field | Value |\n|---|---|\n")
	fmt.Fprintf(&b, "| Code | `%s` |\n", e.Code)
	fmt.Fprintf(&b, "| Dial code | `%s` |\n", e.DialCode)
	if header, ok := e.Header(); ok {
		fmt.Fprintf(&b, "| Section | %s |\n", header)
	}
	if e.HasImage() {
		fmt.Fprintf(&b, "| Image | <%s> |\n", e.Image)
	}
	return b.String()
}
