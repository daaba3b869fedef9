package commands

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/dialpick/internal/core/catalog"
)

// CodeCompleter returns a ShellCompleteFunc that suggests catalog codes as
// positional completions, each with its name as the description.
//
// When the user's last typed argument starts with "-", it falls back to the
// default flag completion behavior.
func CodeCompleter(flags *Flags) cli.ShellCompleteFunc {
	return func(ctx context.Context, cmd *cli.Command) {
		if args := cmd.Args(); args.Present() {
			last := args.Slice()[args.Len()-1]
			if len(last) > 0 && last[0] == '-' {
				cli.DefaultCompleteWithFlags(ctx, cmd)
				return
			}
		}

		if flags.Config == nil {
			return
		}

		// completion output is parsed by the shell, keep logs out of it
		entries, err := catalog.Load(ctx, zerolog.Nop(), flags.Config.Sources()...)
		if err != nil {
			return
		}

		w := cmd.Root().Writer
		for _, e := range entries {
			if e.Code == "" {
				continue
			}
			_, _ = fmt.Fprintf(w, "%s:%s\n", e.Code, e.Name)
		}
	}
}
