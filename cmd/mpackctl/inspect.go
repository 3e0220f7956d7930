package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/joshuapare/mpack"
	"github.com/joshuapare/mpack/value"
)

func init() {
	rootCmd.AddCommand(newInspectCmd())
}

func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <msgpack-file|->",
		Short: "Print a structural summary of a MessagePack value",
		Long: `The inspect command walks a decoded value tree and prints its shape (kind,
length, nesting) without materializing full string or binary payloads,
useful for sanity-checking large or unfamiliar MessagePack files.

Example:
  mpackctl inspect doc.msgpack`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(args[0])
		},
	}
}

func runInspect(path string) error {
	raw, err := readInput(path)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	v, err := mpack.Decode(raw)
	if err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	printSummary(v, 0)
	return nil
}

func printSummary(v value.Value, depth int) {
	indent := strings.Repeat("  ", depth)
	switch v.Kind {
	case value.KindString:
		s, _ := v.Str()
		fmt.Printf("%sstring(%d)\n", indent, len(s))
	case value.KindBinary:
		b, _ := v.Bytes()
		fmt.Printf("%sbinary(%d)\n", indent, len(b))
	case value.KindArray:
		elems, _ := v.Elems()
		fmt.Printf("%sarray(%d)\n", indent, len(elems))
		for _, e := range elems {
			printSummary(e, depth+1)
		}
	case value.KindMap:
		entries, _ := v.Entries()
		fmt.Printf("%smap(%d)\n", indent, len(entries))
		for _, e := range entries {
			fmt.Printf("%s  %s:\n", indent, e.Key)
			printSummary(e.Val, depth+2)
		}
	default:
		fmt.Printf("%s%s\n", indent, v.Kind)
	}
}
