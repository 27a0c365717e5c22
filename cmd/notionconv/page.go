package main

import (
	"fmt"

	"github.com/goccy/go-json"
	"github.com/notion-sdk/notion-go/pkg/pages"
	"github.com/spf13/cobra"
)

func newPageTitleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "page-title [file]",
		Short: "Print the title of a page",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			var m map[string]any
			if err := json.Unmarshal(data, &m); err != nil {
				return fmt.Errorf("failed to read page: %w", err)
			}
			page, err := pages.FromMap(m)
			if err != nil {
				return fmt.Errorf("failed to read page: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), page.Title())
			return nil
		},
	}
}
