package cli

import (
	"net/url"

	"github.com/spf13/cobra"

	"github.com/mcoot/wordlestrat/internal/api/response"
	"github.com/mcoot/wordlestrat/internal/services/frequency"
)

func newLettersCmd() *cobra.Command {
	var selection string

	cmd := &cobra.Command{
		Use:   "letters",
		Short: "Show the five most common letters for each slot",
		RunE: func(cmd *cobra.Command, args []string) error {
			sel, err := frequency.ParseSelection(selection)
			if err != nil {
				return err
			}

			if client, ok := remote(); ok {
				var result response.BestLetters
				path := "/api/v1/letters?selection=" + url.QueryEscape(string(sel))
				if err := client.Get(cmd.Context(), path, &result); err != nil {
					return err
				}
				out.Print(result)
				return nil
			}

			app, err := openApp(cmd.Context(), true)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()

			words, err := app.WordListService.Words()
			if err != nil {
				return err
			}

			best, err := frequency.New(sel).BestLettersBySlot(words)
			if err != nil {
				return err
			}

			out.Print(response.BestLettersFromModel(string(sel), best))
			return nil
		},
	}

	cmd.Flags().StringVar(&selection, "selection", string(frequency.SelectionRanked), "Top-five selection: ranked, greedy")

	return cmd
}
