package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/typedrill/typedrill/internal/catalog"
)

var bankCmd = &cobra.Command{
	Use:   "bank [file]",
	Short: "Summarize the question bank, or validate an external one",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c := catalog.Default()

		if len(args) == 1 {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			c, err = catalog.Load(data)
			if err != nil {
				return err
			}
			fmt.Printf("%s is valid\n\n", args[0])
		}

		fmt.Printf("%d questions\n\n", c.Len())

		for _, cat := range catalog.StoredCategories() {
			questions, err := c.ByCategory(cat)
			if err != nil {
				return err
			}
			fmt.Printf("  %-10s %d\n", catalog.CategoryDisplayName(cat), len(questions))
		}
		fmt.Println()

		for _, d := range catalog.AllDifficulties() {
			fmt.Printf("  %-10s %d\n", catalog.DifficultyDisplayName(d), len(c.ByDifficulty(d)))
		}

		return nil
	},
}
