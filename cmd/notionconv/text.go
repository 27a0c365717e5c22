package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/notion-sdk/notion-go/pkg/blocks"
	"github.com/spf13/cobra"
)

func newTextCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "text [file]",
		Short: "Print the text of a block and its children",
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
			renderBlock(cmd.OutOrStdout(), b, 0)
			return nil
		},
	}
}

// renderBlock prints one line per block, children indented under their parent.
func renderBlock(w io.Writer, b blocks.Block, depth int) {
	label := color.New(color.Faint).Sprintf("[%s]", b.Metadata().Type())
	indent := strings.Repeat("  ", depth)

	switch v := b.(type) {
	case blocks.TextBlock:
		fmt.Fprintf(w, "%s%s %s\n", indent, label, v.String())
	case blocks.EquationBlock:
		fmt.Fprintf(w, "%s%s %s\n", indent, label, v.Expression())
	case blocks.ChildPage:
		fmt.Fprintf(w, "%s%s %s\n", indent, label, v.Title())
	default:
		fmt.Fprintf(w, "%s%s\n", indent, label)
	}

	for _, child := range b.Children() {
		renderBlock(w, child, depth+1)
	}
}
