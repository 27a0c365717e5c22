package main

import (
	"context"
	"fmt"

	"github.com/notion-sdk/notion-go"
	"github.com/notion-sdk/notion-go/pkg/blocks"
	"github.com/notion-sdk/notion-go/pkg/connection"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// fetchParallelism bounds the sibling subtrees fetched at once.
const fetchParallelism = 4

func newFetchCmd(opts *rootOptions) *cobra.Command {
	var depth int

	cmd := &cobra.Command{
		Use:   "fetch <block-or-page-id>",
		Short: "Fetch a block or page content from the API and print its text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := connection.NewConfig("")
			if opts.configPath != "" {
				var err error
				if cfg, err = connection.LoadConfig(opts.configPath); err != nil {
					return err
				}
			}
			cfg = notion.ApplyEnv(cfg)
			cfg.Logger = opts.log

			db, err := notion.New(cfg)
			if err != nil {
				return err
			}

			children, err := fetchChildren(cmd.Context(), db, args[0], depth)
			if err != nil {
				return err
			}
			for _, child := range children {
				renderBlock(cmd.OutOrStdout(), child, 0)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&depth, "depth", 1, "levels of nested blocks to fetch")
	return cmd
}

// fetchChildren loads the children of id, and theirs down to depth levels.
func fetchChildren(ctx context.Context, db *notion.Client, id string, depth int) ([]blocks.Block, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	children, err := db.Blocks().Children(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch children of %s: %w", id, err)
	}
	if depth <= 1 {
		return children, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(fetchParallelism)
	for i, child := range children {
		i, child := i, child
		if !child.Metadata().HasChildren() || !holdsChildren(child) {
			continue
		}
		g.Go(func() error {
			nested, err := fetchChildren(gctx, db, child.Metadata().ID(), depth-1)
			if err != nil {
				return err
			}
			withChildren, err := child.ChangeChildren(nested...)
			if err != nil {
				return err
			}
			children[i] = withChildren
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return children, nil
}

// holdsChildren is false for child pages and other blocks whose nested
// content is not modeled.
func holdsChildren(b blocks.Block) bool {
	_, err := b.ChangeChildren()
	return err == nil
}
