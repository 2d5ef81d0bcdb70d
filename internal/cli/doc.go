// Package cli implements the nx command-line interface.
//
// The package is organized around Cobra commands, with each command
// delegating to the internal packages for the actual work:
//
//	nx now              - Print the localized current time
//	nx when [stamp]     - Parse a partial-precision stamp
//	nx flatten FILE     - Extract named fields from a YAML mapping
//	nx demo             - Exercise the status display
//	nx init             - Create .nx.yaml interactively
//	nx version          - Print version information
//	nx completion       - Generate shell completion scripts
//
// Global flags (--config, --no-color, --verbose) are defined on the root
// command and available to all subcommands. Color output is resolved once
// per invocation from the flag, the config file, and the terminal's
// capabilities, in that order.
package cli
