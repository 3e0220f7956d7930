package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/mpack"
)

var encodeOutPath string

func init() {
	cmd := newEncodeCmd()
	cmd.Flags().StringVarP(&encodeOutPath, "output", "o", "-", "Output path for MessagePack bytes (- for stdout)")
	rootCmd.AddCommand(cmd)
}

func newEncodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "encode <json-file|->",
		Short: "Encode a JSON document as MessagePack",
		Long: `The encode command reads a JSON document from a file or stdin, converts it
to a value tree (numbers that fit int64 become Int, others Float), and
writes the MessagePack-encoded bytes to stdout or the --output path.

Example:
  mpackctl encode doc.json -o doc.msgpack
  echo '{"a":1}' | mpackctl encode -`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEncode(args[0])
		},
	}
}

func runEncode(path string) error {
	raw, err := readInput(path)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	v, err := parseJSON(raw)
	if err != nil {
		return err
	}
	encoded, err := mpack.Encode(v)
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return writeOutput(encodeOutPath, encoded)
}
