package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/typedrill/typedrill/internal/catalog"
	"github.com/typedrill/typedrill/internal/topics"
)

var topicsCmd = &cobra.Command{
	Use:   "topics [category]",
	Short: "List the available topics",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cats := catalog.StoredCategories()

		if len(args) == 1 {
			cat, err := catalog.ParseCategory(args[0])
			if err != nil {
				return err
			}
			if cat != catalog.CategoryAll {
				cats = []catalog.Category{cat}
			}
		}

		for _, cat := range cats {
			fmt.Println(catalog.CategoryDisplayName(cat))
			for _, t := range topics.ByCategory(cat) {
				fmt.Printf("  %-16s %s\n", t.ID, t.Description)
			}
			fmt.Println()
		}

		return nil
	},
}
