// Command docgen generates CLI reference documentation from the dialpick
// command definitions. Output is written to docs/cli-reference.md.
package main

import (
	"fmt"
	"os"

	docs "github.com/urfave/cli-docs/v3"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/dialpick/internal/commands"
)

func main() {
	flags := &commands.Flags{}

	root := &cli.Command{
		Name:      "dialpick",
		Usage:     "Pick a country or a phone number from a searchable list",
		UsageText: "dialpick [global options] command [command options]",
		Description: `dialpick shows a searchable, alphabetically sectioned country list with a
letter bar for jumping between sections, and prints the choice on stdout.

Run 'dialpick' with no arguments to pick a country.
Run 'dialpick phone' to enter a phone number with a country dial code.
Run 'dialpick ls' to print the filtered list without a UI.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "log level (debug, info, warn, error, fatal, panic)",
				Sources: cli.EnvVars("DIALPICK_LOG_LEVEL"),
				Value:   "info",
			},
			&cli.StringFlag{
				Name:    "log-file",
				Usage:   "path to log file",
				Sources: cli.EnvVars("DIALPICK_LOG_FILE"),
				Value:   commands.DefaultLogFile(),
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to config file",
				Sources: cli.EnvVars("DIALPICK_CONFIG"),
				Value:   commands.DefaultConfigPath(),
			},
		},
	}

	pickCmd := commands.NewPickCmd(flags)
	root.Flags = append(root.Flags, pickCmd.Flags()...)

	root = pickCmd.Register(root)
	root = commands.NewPhoneCmd(flags).Register(root)
	root = commands.NewLsCmd(flags).Register(root)
	root = commands.NewShowCmd(flags).Register(root)
	root = commands.NewConfigValidateCmd(flags).Register(root)
	root = commands.NewInitCmd(flags).Register(root)

	md, err := docs.ToMarkdown(root)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error generating docs: %v\n", err)
		os.Exit(1)
	}

	outPath := "docs/cli-reference.md"
	if len(os.Args) > 1 {
		outPath = os.Args[1]
	}

	if err := os.WriteFile(outPath, []byte(md), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "error writing %s: %v\n", outPath, err)
		os.Exit(1)
	}

	fmt.Printf("Generated %s\n", outPath)
}
