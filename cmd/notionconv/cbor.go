package main

import (
	"fmt"

	"github.com/notion-sdk/notion-go/pkg/blocks"
	"github.com/notion-sdk/notion-go/pkg/encoding"
	"github.com/spf13/cobra"
)

func newCborCmd() *cobra.Command {
	var decode bool

	cmd := &cobra.Command{
		Use:   "cbor [file]",
		Short: "Convert a block between JSON and CBOR",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			if decode {
				b, err := blocks.Decode(encoding.CborUnmarshaler{}, data)
				if err != nil {
					return fmt.Errorf("failed to read block: %w", err)
				}
				return writeJSON(cmd.OutOrStdout(), b.ToMap())
			}

			b, err := blocks.Unmarshal(data)
			if err != nil {
				return fmt.Errorf("failed to read block: %w", err)
			}
			out, err := blocks.Encode(encoding.CborMarshaler{}, b)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}

	cmd.Flags().BoolVarP(&decode, "decode", "d", false, "read CBOR and print JSON")
	return cmd
}
