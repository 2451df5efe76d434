package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sagekey/aisleflow/internal/cli"
	"github.com/sagekey/aisleflow/internal/common"
	"github.com/sagekey/aisleflow/internal/config"
	"github.com/sagekey/aisleflow/internal/layout"
	"github.com/sagekey/aisleflow/internal/model"
)

func routeCmd() *cobra.Command {
	var (
		inputFile  string
		storeName  string
		storeChain string
		outputFile string
	)

	cmd := &cobra.Command{
		Use:   "route",
		Short: "Plan a timed shopping route for a store",
		Long: `Classify the shopping list, order it for the chosen store, and print a
section-by-section route with time estimates and food-safety notes.
The store defaults to the persisted preference (store.name in config).`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			eng, err := newEngine()
			if err != nil {
				return err
			}

			items, err := model.LoadItems(config.ExpandPath(inputFile))
			if err != nil {
				return common.NewUserError("could not read the shopping list", err)
			}
			if len(items) == 0 {
				return common.NewUserError("the shopping list has no items", common.ErrEmptyShoppingList)
			}

			name, chain := resolveStore(storeName, storeChain)
			groups := eng.classifier.ClassifyItems(items)
			route := eng.layouts.PlanRoute(groups, name, chain)

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, cli.FormatTitle(fmt.Sprintf("Route for %s", route.LayoutName)))
			fmt.Fprintln(out, cli.SubtleStyle.Render(fmt.Sprintf("%s %d min across %d sections, %d items",
				cli.ClockIcon, route.TotalTime, route.TotalSections, groups.TotalItems())))
			fmt.Fprintln(out)

			for i, section := range route.Sections {
				fmt.Fprintf(out, "%2d. %s %s  %s\n", i+1, section.Emoji,
					cli.BoldStyle.Render(section.Section),
					cli.SubtleStyle.Render(fmt.Sprintf("~%d min, %d item(s)", section.EstimatedTime, section.ItemCount)))
				fmt.Fprintf(out, "    %s\n", cli.WarningStyle.Render(section.FoodSafetyNotes))
				for _, item := range section.Items {
					fmt.Fprintf(out, "    - %s\n", item.DisplayName())
				}
			}

			fmt.Fprintln(out)
			fmt.Fprintln(out, cli.FormatInfo(route.FoodSafetyReminder))

			if outputFile != "" {
				text := layout.ExportText(route, name)
				if err := os.WriteFile(config.ExpandPath(outputFile), []byte(text), 0o600); err != nil {
					return fmt.Errorf("failed to write route export: %w", err)
				}
				fmt.Fprintln(out, cli.FormatSuccess(fmt.Sprintf("Exported plan to %s", outputFile)))
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&inputFile, "input", "i", "", "shopping list JSON file (required)")
	cmd.Flags().StringVarP(&storeName, "store", "s", "", "store name (default: store.name from config)")
	cmd.Flags().StringVar(&storeChain, "chain", "", "store chain (default: store.chain from config)")
	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "write the plain-text plan to a file")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}
