// Package cli implements the command-line interface for chartops, the Helm
// chart option generator.
//
// # Commands
//
// generate - Regenerate chart fragments from a controller --help listing:
//
//	chartops generate [--input FILE | --exec PROGRAM [--arg ARG]...]
//	                  [--rules FILE] [--defaults FILE] [--output FILE]
//
// The command writes two artifacts back to back: the conditional deployment
// template blocks, then the default configuration stanza. Output defaults to
// stdout for copy-paste into the chart.
//
// # Exit Codes
//
//	0  Success
//	1  General error (invalid arguments, unreadable input)
//	N  Exit code of the --exec capture subprocess, propagated verbatim
//
// The CLI uses the urfave/cli/v3 framework and delegates to specialized
// packages: pkg/source (listing acquisition), pkg/parser, pkg/transform,
// pkg/exclude, pkg/defaults, pkg/render, and pkg/generator (orchestration).
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/NVIDIA/chartops/pkg/cli.version=1.0.0'"
package cli
