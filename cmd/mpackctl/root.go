// Command mpackctl is a small operability surface over the mpack library:
// encode JSON to MessagePack, decode MessagePack back to JSON, inspect a
// MessagePack value's structure, and drive ad hoc class registration from a
// schema file. Grounded on hivectl's cobra layout: global flags registered
// in init(), RunE returning wrapped errors, subcommands in their own files.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/mpack"
)

var (
	verbose bool
	jsonOut bool
)

var rootCmd = &cobra.Command{
	Use:     "mpackctl",
	Short:   "Encode, decode, and inspect MessagePack data",
	Version: "0.1.0",
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Prefer JSON output where applicable")
}

func main() {
	if verboseFlagSet() {
		mpack.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))
	}
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// verboseFlagSet does a best-effort scan of os.Args ahead of cobra's own
// flag parsing so --verbose can take effect before the very first command
// runs (cobra flags aren't populated until Execute starts walking the
// command tree).
func verboseFlagSet() bool {
	for _, a := range os.Args[1:] {
		if a == "--verbose" || a == "-v" {
			return true
		}
	}
	return false
}
