package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/mpack"
)

var decodeOutPath string

func init() {
	cmd := newDecodeCmd()
	cmd.Flags().StringVarP(&decodeOutPath, "output", "o", "-", "Output path for JSON (- for stdout)")
	rootCmd.AddCommand(cmd)
}

func newDecodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode <msgpack-file|->",
		Short: "Decode MessagePack bytes to JSON",
		Long: `The decode command reads MessagePack-encoded bytes from a file or stdin and
re-encodes the resulting value tree as indented JSON for human inspection.

Example:
  mpackctl decode doc.msgpack
  mpackctl decode - < doc.msgpack`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDecode(args[0])
		},
	}
}

func runDecode(path string) error {
	raw, err := readInput(path)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	v, err := mpack.Decode(raw)
	if err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	out, err := marshalJSONIndent(v)
	if err != nil {
		return err
	}
	out = append(out, '\n')
	return writeOutput(decodeOutPath, out)
}
