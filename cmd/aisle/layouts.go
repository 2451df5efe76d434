package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sagekey/aisleflow/internal/cli"
)

func layoutsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "layouts",
		Short: "Browse the known store layouts",
	}

	cmd.AddCommand(listLayoutsCmd())
	cmd.AddCommand(showLayoutCmd())

	return cmd
}

func listLayoutsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List known store layouts",
		RunE: func(cmd *cobra.Command, _ []string) error {
			eng, err := newEngine()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, key := range eng.layouts.Keys() {
				l, _ := eng.layouts.Get(key)
				fmt.Fprintf(out, "%s\t%s\n", cli.BoldStyle.Render(key), l.Description)
			}

			return nil
		},
	}
}

func showLayoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <store>",
		Short: "Show a store's walk order, sections, and tips",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := newEngine()
			if err != nil {
				return err
			}

			l := eng.layouts.Resolve(args[0], "")
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, cli.FormatTitle(l.Name))
			fmt.Fprintln(out, cli.SubtleStyle.Render(l.Description))
			fmt.Fprintln(out)

			fmt.Fprintln(out, cli.TitleStyle.Render("Sections (walk order)"))
			for i, section := range l.Sections {
				fmt.Fprintf(out, "%2d. %s %s\n", i+1, section.Emoji, section.Name)
				fmt.Fprintf(out, "    %s\n", cli.SubtleStyle.Render(joinKeys(section.Categories)))
			}

			if len(l.Tips) > 0 {
				fmt.Fprintln(out)
				fmt.Fprintln(out, cli.TitleStyle.Render("Tips"))
				for _, tip := range l.Tips {
					fmt.Fprintf(out, "- %s\n", tip)
				}
			}

			return nil
		},
	}
}
