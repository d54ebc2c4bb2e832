package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mcoot/wordlestrat/internal/api/response"
	"github.com/mcoot/wordlestrat/internal/services/histogram"
)

// reportWordCount is how many words the report lists
const reportWordCount = 25

func newReportCmd() *cobra.Command {
	var flags simFlags

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print word list details, best letters, and a full strategy comparison",
		Long: `Print the first words of the list, the best letters for each slot, and a
full strategy comparison with its histogram. With --server the report uses
the server's word list and the run is stored there.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := flags.validateBins(); err != nil {
				return err
			}

			if client, ok := remote(); ok {
				return flags.reportRemote(cmd, client)
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
			best, err := app.FrequencyService.BestLettersBySlot(words)
			if err != nil {
				return err
			}

			run, err := flags.startRun(cmd, app)
			if err != nil {
				return err
			}

			out.Print(Report{
				Words:   response.Words{Count: len(words), Words: app.WordListService.Head(reportWordCount)},
				Letters: response.BestLettersFromModel(string(app.FrequencyService.Selection()), best),
				Run:     response.RunFromModel(run, out.IsJSON()),
			})
			if out.IsJSON() {
				return nil
			}

			fmt.Fprintln(out.Writer())
			return app.HistogramService.Render(out.Writer(), histogram.StrategyChart(&run.Summary, flags.binsA, flags.binsB))
		},
	}

	flags.register(cmd)
	return cmd
}

func (f *simFlags) reportRemote(cmd *cobra.Command, client *Client) error {
	ctx := cmd.Context()

	var report Report
	if err := client.Get(ctx, fmt.Sprintf("/api/v1/words?limit=%d", reportWordCount), &report.Words); err != nil {
		return err
	}
	if err := client.Get(ctx, "/api/v1/letters", &report.Letters); err != nil {
		return err
	}

	run, err := f.startRemoteRun(cmd, client)
	if err != nil {
		return err
	}
	report.Run = run

	out.Print(report)
	if out.IsJSON() {
		return nil
	}
	return f.printRemoteHistogram(ctx, client, run.ID)
}
