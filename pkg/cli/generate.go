/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/chartops/pkg/defaults"
	"github.com/NVIDIA/chartops/pkg/exclude"
	"github.com/NVIDIA/chartops/pkg/generator"
	"github.com/NVIDIA/chartops/pkg/render"
	"github.com/NVIDIA/chartops/pkg/source"
)

func generateCmd() *cli.Command {
	return &cli.Command{
		Name:                  "generate",
		EnableShellCompletion: true,
		Usage:                 "Generate deployment template blocks and a default configuration stanza",
		Description: `Generate the two chart fragments derived from a controller --help listing:

  1. Conditional deployment-template blocks, one per configurable flag:

       {{- if .Values.configuration.ttl }}
       - --ttl={{ .Values.configuration.ttl }}
       {{- end }}

  2. A default configuration stanza for the chart values file, with known
     defaults active and everything else commented out:

       configuration:
         ttl: 120
       # setup:

Both fragments are written back to back, template blocks first, and are
intended to be pasted into the chart's deployment template and values file.

The listing is read from stdin by default. Use --input to read a saved
listing, or --exec to invoke a locally built controller binary with a help
flag and capture its output. If the subprocess exits non-zero, generation
aborts without output and that exit code is propagated.

Flags that are per-deployment operational concerns (cache directories,
blocked zones, remote-access wiring) are excluded by the canonical policy;
use --rules to supply a different one.

# Examples

Regenerate from a saved listing:
  chartops generate --input help.txt

Capture the listing from a freshly built controller:
  chartops generate --exec ./dns-controller-manager --arg --help

Custom exclusion rules and defaults:
  chartops generate -i help.txt --rules rules.yaml --defaults values.yaml`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "input",
				Aliases: []string{"i"},
				Usage:   "help-listing file to read ('-' for stdin)",
				Value:   "-",
			},
			&cli.StringFlag{
				Name:  "exec",
				Usage: "program to invoke to capture the help listing (overrides --input)",
			},
			&cli.StringSliceFlag{
				Name:  "arg",
				Usage: "argument passed to the --exec program (can be repeated)",
			},
			&cli.StringFlag{
				Name:  "rules",
				Usage: "YAML exclusion rules file (replaces the canonical policy)",
			},
			&cli.StringFlag{
				Name:  "defaults",
				Usage: "YAML default-value table (replaces the builtin table)",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "output file path (default: stdout)",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			src := resolveSource(cmd)

			policy := exclude.Default()
			if path := cmd.String("rules"); path != "" {
				var err error
				if policy, err = exclude.Load(path); err != nil {
					return fmt.Errorf("failed to load exclusion rules: %w", err)
				}
			}

			table := defaults.Builtin()
			if path := cmd.String("defaults"); path != "" {
				var err error
				if table, err = defaults.Load(path); err != nil {
					return fmt.Errorf("failed to load defaults: %w", err)
				}
			}

			out, err := render.NewOutput(cmd.String("output"))
			if err != nil {
				return err
			}
			defer func() {
				if err := out.Close(); err != nil {
					slog.Warn("failed to close output", "error", err)
				}
			}()

			slog.Info("generating chart options",
				"run", uuid.NewString(),
				"input", cmd.String("input"),
				"exec", cmd.String("exec"))

			gen := generator.Generator{
				Source:   src,
				Policy:   policy,
				Defaults: table,
			}
			return gen.Run(ctx, out)
		},
	}
}

// resolveSource picks the help-listing source: a capture subprocess when
// --exec is set, otherwise the --input file or stdin.
func resolveSource(cmd *cli.Command) source.Source {
	if program := cmd.String("exec"); program != "" {
		return source.NewExec(program, cmd.StringSlice("arg")...)
	}
	if input := cmd.String("input"); input != "" && input != "-" {
		return source.FromFile(input)
	}
	return source.FromReader(os.Stdin)
}
