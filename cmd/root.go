package cmd

import (
	"github.com/spf13/cobra"

	"github.com/typedrill/typedrill/internal/app"
)

var rootCmd = &cobra.Command{
	Use:   "typedrill",
	Short: "Learn TypeScript from your terminal",
	Long:  "TypeDrill is a terminal app for learning TypeScript: browse topics with examples, then drill yourself with multiple-choice quizzes.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.Run(app.Options{})
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(quizCmd)
	rootCmd.AddCommand(topicsCmd)
	rootCmd.AddCommand(bankCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}
