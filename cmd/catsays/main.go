// Package main is the entry point for the catsays CLI application.
package main

import (
	"github.com/dbmrq/catsays/cmd/catsays/cmd"
)

// Version information - set by build flags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cmd.SetVersionInfo(version, commit, date)
	cmd.Execute()
}
