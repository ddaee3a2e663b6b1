package main

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/deckforge/deckforge/internal/logger"
)

type rootFlags struct {
	verbose  bool
	logLevel string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "deckforge",
		Short:         "Deckforge composes presentation themes and layouts into deterministic stylesheets",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "info", "Log level (trace, debug, info, warn, error)")

	viper.SetEnvPrefix("deckforge")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	_ = viper.BindPFlag("log-level", cmd.PersistentFlags().Lookup("log-level"))

	cmd.AddCommand(newCSSCmd(flags))
	cmd.AddCommand(newLayoutsCmd(flags))
	cmd.AddCommand(newRenderCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// newLogger builds the CLI logger from flags and DECKFORGE_* environment
// overrides.
func newLogger(flags *rootFlags) (*logger.Logger, error) {
	level := viper.GetString("log-level")
	if flags.verbose {
		level = "debug"
	}
	return logger.New(logger.Options{Level: level, Pretty: true})
}
