package commands

import (
	"context"
	"errors"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/dialpick/internal/tui/picker"
)

type PickCmd struct {
	flags  *Flags
	picker pickerFlags
}

// NewPickCmd creates a new pick command
func NewPickCmd(flags *Flags) *PickCmd {
	return &PickCmd{flags: flags}
}

// Flags returns the picker flags for registration on the root command
func (cmd *PickCmd) Flags() []cli.Flag {
	return cmd.picker.cliFlags(true)
}

// Register adds the pick command to the application
func (cmd *PickCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "pick",
		Usage:     "Choose a country interactively",
		UsageText: "dialpick pick [options]",
		Description: `Opens the searchable country list and prints the chosen entry as
"<code>\t<name>\t<dial code>", or as JSON with --json.

Type to filter, use tab/shift+tab or click the letter bar to jump between
sections, enter to choose and esc to leave without choosing (exit status 130).

When stdin or stderr is not a terminal the resolved default is printed
without opening the list.`,
		Flags:  cmd.Flags(),
		Action: cmd.run,
	})

	return app
}

// Run executes the picker. Exported for use as default command.
func (cmd *PickCmd) Run(ctx context.Context, c *cli.Command) error {
	return cmd.run(ctx, c)
}

func (cmd *PickCmd) run(ctx context.Context, c *cli.Command) error {
	res, err := runPicker(ctx, cmd.flags, &cmd.picker, picker.VariantPicker)
	if err != nil {
		if errors.Is(err, ErrCancelled) {
			return cli.Exit("", 130)
		}
		return err
	}
	return writeResult(c.Root().Writer, res, picker.VariantPicker, cmd.picker.jsonOutput)
}
