package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/deckforge/deckforge/internal/compositor"
	"github.com/deckforge/deckforge/internal/manifest"
)

type renderOptions struct {
	themePath string
}

func newRenderCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render <deck.yaml>",
		Short: "Render a deck's content blocks to HTML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, rootFlags, opts, args[0])
		},
	}

	cmd.Flags().StringVar(&opts.themePath, "theme", "", "Theme manifest to compose styles from")

	return cmd
}

func runRender(cmd *cobra.Command, rootFlags *rootFlags, opts *renderOptions, path string) error {
	log, err := newLogger(rootFlags)
	if err != nil {
		return err
	}

	deck, err := manifest.ParseDeck(path)
	if err != nil {
		return err
	}

	var comp *compositor.Compositor
	if opts.themePath != "" {
		comp, err = loadTheme(opts.themePath, log, true)
		if err != nil {
			return err
		}
	} else {
		comp = compositor.New(compositor.WithLogger(log))
	}

	html, err := comp.RenderBlocks(deck.Blocks())
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), html)
	return nil
}
