// Package cli defines the Cobra command tree for the agents-manifest CLI.
// Running the root command with no arguments generates manifest.json; each
// other file in this package registers one subcommand. Commands delegate to
// internal packages for the work and only handle flags and output.
package cli
