package main

import (
	"log"
	"os"

	"github.com/agentx-labs/agents-manifest/internal/branding"
	"github.com/agentx-labs/agents-manifest/internal/cli"
)

// version, commit, and date are set via ldflags at build time.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix(branding.CLIName() + ": ")
	if err := cli.Execute(version, commit, date); err != nil {
		log.Printf("error: %v", err)
		os.Exit(1)
	}
}
