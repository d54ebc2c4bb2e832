package cli

import (
	"github.com/spf13/cobra"

	"github.com/mcoot/wordlestrat/internal/api/response"
	"github.com/mcoot/wordlestrat/internal/model"
	"github.com/mcoot/wordlestrat/internal/services/scoring"
)

func newScoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "score <target> <guess>",
		Short: "Count letters of guess in the same position as target",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			target := model.NormalizeWord(args[0])
			guess := model.NormalizeWord(args[1])

			score, err := scoring.New().CountExactMatches(target, guess)
			if err != nil {
				return err
			}

			out.Print(response.Score{Target: target, Guess: guess, Score: score})
			return nil
		},
	}
}
