package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/typedrill/typedrill/internal/app"
	"github.com/typedrill/typedrill/internal/catalog"
	quizscreen "github.com/typedrill/typedrill/internal/screens/quiz"
)

var quizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Jump straight into a quiz",
	RunE: func(cmd *cobra.Command, args []string) error {
		random, _ := cmd.Flags().GetInt("random")
		category, _ := cmd.Flags().GetString("category")

		if random > 0 && category != "" {
			return fmt.Errorf("--random and --category are mutually exclusive")
		}

		opts := app.Options{}

		switch {
		case random > 0:
			opts.InitialScreen = quizscreen.NewRandom(catalog.Default(), random)
		case category != "":
			cat, err := catalog.ParseCategory(category)
			if err != nil {
				return err
			}
			opts.InitialScreen = quizscreen.NewCategory(catalog.Default(), cat)
		default:
			opts.InitialScreen = quizscreen.New(catalog.Default())
		}

		return app.Run(opts)
	},
}

func init() {
	quizCmd.Flags().StringP("category", "c", "", "Start in a category (all, basics, advanced)")
	quizCmd.Flags().IntP("random", "r", 0, "Start a random drill of N questions")
}
