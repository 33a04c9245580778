// Package main is braidctl: a thin operational shim over a braid backend
// for manual smoke-testing, not a client library.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var logger *slog.Logger

var rootCmd = &cobra.Command{
	Use:   "braidctl",
	Short: "Inspect and poke at a braid object database",
	Long: `braidctl is a thin smoke-testing shim over a braid backend. It
reads its backend selection from the BRAID_ environment variables
(see config.Load) and exposes init/write/read/exists — nothing more.`,
}

func init() {
	logger = slog.New(slog.NewTextHandler(os.Stderr, nil))
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
