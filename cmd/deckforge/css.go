package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/deckforge/deckforge/internal/compositor"
	"github.com/deckforge/deckforge/internal/logger"
	"github.com/deckforge/deckforge/internal/manifest"
)

type cssOptions struct {
	noBuiltins bool
}

func newCSSCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &cssOptions{}

	cmd := &cobra.Command{
		Use:   "css <theme.yaml>",
		Short: "Print the composed stylesheet for a theme manifest",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCSS(cmd, rootFlags, opts, args[0])
		},
	}

	cmd.Flags().BoolVar(&opts.noBuiltins, "no-builtins", false, "Skip the built-in system layouts")

	return cmd
}

func runCSS(cmd *cobra.Command, rootFlags *rootFlags, opts *cssOptions, path string) error {
	log, err := newLogger(rootFlags)
	if err != nil {
		return err
	}

	comp, err := loadTheme(path, log, !opts.noBuiltins)
	if err != nil {
		return err
	}

	comp.InjectAll()
	css, err := comp.Stylesheet()
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), css)
	return nil
}

// loadTheme parses a theme manifest and prepares a compositor session for it.
func loadTheme(path string, log *logger.Logger, builtins bool) (*compositor.Compositor, error) {
	m, err := manifest.ParseTheme(path)
	if err != nil {
		return nil, err
	}

	comp := compositor.New(compositor.WithLogger(log))
	if builtins {
		comp.RegisterBuiltins()
	}
	comp.UseTheme(m.Theme())
	return comp, nil
}
