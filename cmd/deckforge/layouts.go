package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	layoutNameStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#3b82f6"))
	layoutSourceStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#a855f7"))
	layoutZoneStyle   = lipgloss.NewStyle().Faint(true)
)

func newLayoutsCmd(rootFlags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "layouts <theme.yaml>",
		Short: "List the effective layouts a theme resolves to",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLayouts(cmd, rootFlags, args[0])
		},
	}

	return cmd
}

func runLayouts(cmd *cobra.Command, rootFlags *rootFlags, path string) error {
	log, err := newLogger(rootFlags)
	if err != nil {
		return err
	}

	comp, err := loadTheme(path, log, true)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, name := range comp.Layouts().Names() {
		def, ok := comp.Layouts().Get(name)
		if !ok {
			continue
		}

		zones := make([]string, 0, len(def.Zones))
		for _, z := range def.Zones {
			zones = append(zones, z.Name)
		}

		fmt.Fprintf(out, "%s  %s\n",
			layoutNameStyle.Render(def.Name),
			layoutSourceStyle.Render(fmt.Sprintf("[%s, priority %d]", def.Source, def.Priority)),
		)
		if def.Description != "" {
			fmt.Fprintf(out, "  %s\n", def.Description)
		}
		fmt.Fprintf(out, "  %s\n", layoutZoneStyle.Render("zones: "+strings.Join(zones, ", ")))
	}

	return nil
}
