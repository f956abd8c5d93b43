package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/edgequiz/internal/quiz"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Skip the menu and start an innings",
	Example: `  edgequiz play --difficulty googly
  edgequiz play -d test --questions 10`,
	RunE: func(cmd *cobra.Command, args []string) error {
		val, _ := cmd.Flags().GetString("difficulty")
		d, err := quiz.ParseDifficulty(val)
		if err != nil {
			return err
		}
		return runApp(cmd, launch{autoStart: true, difficulty: d})
	},
}

func init() {
	playCmd.Flags().StringP("difficulty", "d", "medium", "Format: easy (t20), medium (odi), hard (test) or googly")
}
