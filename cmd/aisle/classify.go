package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/sagekey/aisleflow/internal/cli"
	"github.com/sagekey/aisleflow/internal/config"
	"github.com/sagekey/aisleflow/internal/model"
)

func classifyCmd() *cobra.Command {
	var (
		inputFile  string
		showScores bool
	)

	cmd := &cobra.Command{
		Use:   "classify [item name]...",
		Short: "Classify item names into grocery categories",
		Long: `Assign each item name to a grocery category. Names can be given as
arguments or read from a shopping-list JSON file with --input. Raw recipe
text is fine: "2 cups chopped fresh cilantro" classifies the same as
"cilantro".`,
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := newEngine()
			if err != nil {
				return err
			}

			var items []model.Item
			for _, arg := range args {
				items = append(items, model.Item{Name: arg})
			}
			if inputFile != "" {
				loaded, err := model.LoadItems(config.ExpandPath(inputFile))
				if err != nil {
					return err
				}
				items = append(items, loaded...)
			}
			if len(items) == 0 {
				return fmt.Errorf("nothing to classify: pass item names or --input")
			}

			// A progress bar only earns its keep on file-sized batches.
			var bar *progressbar.ProgressBar
			if inputFile != "" && len(items) > 10 {
				bar = progressbar.Default(int64(len(items)), "classifying")
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			defer w.Flush()

			header := fmt.Sprintf("%s\t%s", cli.TableHeaderStyle.Render("Item"), cli.TableHeaderStyle.Render("Category"))
			if showScores {
				header += "\t" + cli.TableHeaderStyle.Render("Confidence")
			}
			fmt.Fprintln(w, header)

			for _, item := range items {
				name := item.DisplayName()
				if showScores {
					result := eng.classifier.Score(name)
					fmt.Fprintf(w, "%s\t%s\t%.2f\n", name, renderCategory(eng, result.Category), result.Confidence)
				} else {
					key := eng.classifier.Classify(name)
					fmt.Fprintf(w, "%s\t%s\n", name, renderCategory(eng, key))
				}
				if bar != nil {
					_ = bar.Add(1)
				}
			}
			if bar != nil {
				fmt.Fprintln(os.Stderr)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&inputFile, "input", "i", "", "shopping list JSON file")
	cmd.Flags().BoolVar(&showScores, "scores", false, "show confidence scores")

	return cmd
}

func renderCategory(eng *engine, key string) string {
	if cat, ok := eng.registry.Get(key); ok {
		return cat.Icon + " " + cat.Name
	}
	return key
}

// joinKeys formats category keys for one-line display.
func joinKeys(keys []string) string {
	return strings.Join(keys, ", ")
}
