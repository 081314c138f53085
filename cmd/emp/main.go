// Package main is the entry point for the emp CLI.
package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/jsalter/emp/internal/cli"
	"github.com/jsalter/emp/internal/storage"
	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, cli.FormatError(err))
		var ioErr *cli.IOError
		if errors.As(err, &ioErr) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

// rosterFile holds the --file override for the roster path.
var rosterFile string

var rootCmd = &cobra.Command{
	Use:   "emp",
	Short: "emp - manage a comma-separated employee roster file",
	Long: `emp maintains a flat list of employee names stored as a single
comma-separated line in a text file (employees.txt by default, or the
data_file path from .empconfig.yaml).

Names may contain spaces; unquoted argument words are joined with single
spaces. Names must not contain commas, since the file format uses the
comma as its only separator.

The file is rewritten whole on every change. No lock is taken, so two
invocations racing on the same file can lose an update.`,
	Version:          Version,
	SilenceUsage:     true,
	SilenceErrors:    true,
	PersistentPreRun: applyColorConfig,
	// An invocation with no command is an error, not help
	RunE: func(cmd *cobra.Command, args []string) error {
		return fmt.Errorf("missing command (use '?' for help)")
	},
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.PersistentFlags().StringVarP(&rosterFile, "file", "f", "", "roster file path (overrides .empconfig.yaml)")
	rootCmd.SetVersionTemplate("emp version {{.Version}}\n")
}

// applyColorConfig honors the color setting from .empconfig.yaml.
// Config errors are ignored here; openRoster surfaces them.
func applyColorConfig(cmd *cobra.Command, args []string) {
	cfg, err := storage.LoadConfig(".")
	if err != nil {
		return
	}
	switch cfg.Color {
	case "always":
		cli.SetColorEnabled(true)
	case "never":
		cli.SetColorEnabled(false)
	}
}

// openRoster resolves the roster file for the working directory,
// honoring the --file override.
func openRoster() (*storage.Storage, error) {
	return storage.Open(".", rosterFile)
}

// joinName reconstructs a single name from shell-split argument words.
func joinName(args []string) string {
	return strings.TrimSpace(strings.Join(args, " "))
}
