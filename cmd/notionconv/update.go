package main

import (
	"fmt"

	"github.com/notion-sdk/notion-go/pkg/blocks"
	"github.com/spf13/cobra"
)

func newUpdateCmd() *cobra.Command {
	var archive bool

	cmd := &cobra.Command{
		Use:   "update [file]",
		Short: "Print the update payload of a block",
		Long:  `Print the partial payload that updates a block: its content fields and archived flag, without children, id or timestamps.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			b, err := blocks.Unmarshal(data)
			if err != nil {
				return fmt.Errorf("failed to read block: %w", err)
			}
			if archive {
				b = b.Archive()
			}
			return writeJSON(cmd.OutOrStdout(), b.ToUpdateMap())
		},
	}

	cmd.Flags().BoolVar(&archive, "archive", false, "archive the block")
	return cmd
}
