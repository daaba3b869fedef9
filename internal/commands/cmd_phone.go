package commands

import (
	"context"
	"errors"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/dialpick/internal/tui/picker"
)

type PhoneCmd struct {
	flags  *Flags
	picker pickerFlags
}

// NewPhoneCmd creates a new phone command
func NewPhoneCmd(flags *Flags) *PhoneCmd {
	return &PhoneCmd{flags: flags}
}

// Register adds the phone command to the application
func (cmd *PhoneCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "phone",
		Usage:     "Enter a phone number with a country dial code",
		UsageText: "dialpick phone [options]",
		Description: `Shows a phone number field next to the selected country's dial code.
tab opens the country list, enter confirms and prints "<dial code> <number>".

Leaving the list without choosing keeps the current country.`,
		Flags:  cmd.picker.cliFlags(false),
		Action: cmd.run,
	})

	return app
}

func (cmd *PhoneCmd) run(ctx context.Context, c *cli.Command) error {
	res, err := runPicker(ctx, cmd.flags, &cmd.picker, picker.VariantPhone)
	if err != nil {
		if errors.Is(err, ErrCancelled) {
			return cli.Exit("", 130)
		}
		return err
	}
	return writeResult(c.Root().Writer, res, picker.VariantPhone, cmd.picker.jsonOutput)
}
