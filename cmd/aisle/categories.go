package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/sagekey/aisleflow/internal/cli"
)

func categoriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Browse the grocery category registry",
	}

	cmd.AddCommand(listCategoriesCmd())
	cmd.AddCommand(sectionsCmd())

	return cmd
}

func listCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all categories",
		Long:  `Display every category with its icon, store section, and a few exemplar items.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			eng, err := newEngine()
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			defer w.Flush()

			fmt.Fprintf(w, "%s\t%s\t%s\n",
				cli.TableHeaderStyle.Render("Category"),
				cli.TableHeaderStyle.Render("Section"),
				cli.TableHeaderStyle.Render("Examples"))

			for _, cat := range eng.registry.All() {
				examples := cat.Items
				if len(examples) > 3 {
					examples = examples[:3]
				}
				fmt.Fprintf(w, "%s %s\t%s\t%s\n", cat.Icon, cat.Name, cat.Section, joinKeys(examples))
			}

			return nil
		},
	}
}

func sectionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sections",
		Short: "List categories grouped by store section",
		RunE: func(cmd *cobra.Command, _ []string) error {
			eng, err := newEngine()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, section := range eng.registry.Sections() {
				fmt.Fprintln(out, cli.TitleStyle.Render(string(section)))
				for _, cat := range eng.registry.BySection(section) {
					fmt.Fprintf(out, "  %s %s\n", cat.Icon, cat.Name)
				}
				fmt.Fprintln(out)
			}

			return nil
		},
	}
}
