package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sagekey/aisleflow/internal/common"
	"github.com/sagekey/aisleflow/internal/config"
	"github.com/sagekey/aisleflow/internal/model"
	"github.com/sagekey/aisleflow/internal/tui"
)

func shopCmd() *cobra.Command {
	var (
		inputFile  string
		storeName  string
		storeChain string
	)

	cmd := &cobra.Command{
		Use:   "shop",
		Short: "Walk a shopping route interactively",
		Long: `Guided shopping mode: plan the route for the chosen store, then walk it
section by section, checking off items as they go in the cart.`,
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

			if len(route.Sections) == 0 {
				return fmt.Errorf("nothing to shop: the list matched no route sections")
			}

			return tui.Run(cmd.Context(), route)
		},
	}

	cmd.Flags().StringVarP(&inputFile, "input", "i", "", "shopping list JSON file (required)")
	cmd.Flags().StringVarP(&storeName, "store", "s", "", "store name (default: store.name from config)")
	cmd.Flags().StringVar(&storeChain, "chain", "", "store chain (default: store.chain from config)")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}
