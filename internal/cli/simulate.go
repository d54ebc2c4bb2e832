package cli

import (
	"context"
	"fmt"
	"io"
	"net/url"

	"github.com/spf13/cobra"

	"github.com/mcoot/wordlestrat/internal/api/request"
	"github.com/mcoot/wordlestrat/internal/api/response"
	"github.com/mcoot/wordlestrat/internal/factory"
	"github.com/mcoot/wordlestrat/internal/model"
	"github.com/mcoot/wordlestrat/internal/services/histogram"
)

// simFlags are the flags shared by commands that run a simulation
type simFlags struct {
	guess       string
	experiments int
	trials      int
	seed        uint64
	parallel    int
	binsA       int
	binsB       int
	progress    bool
}

func (f *simFlags) register(cmd *cobra.Command) {
	defaults := model.DefaultRunParams()
	cmd.Flags().StringVarP(&f.guess, "guess", "g", defaults.FixedGuess, "Fixed guess for strategy A (Felix)")
	cmd.Flags().IntVarP(&f.experiments, "experiments", "e", defaults.ExperimentCount, "Random targets scored per trial")
	cmd.Flags().IntVarP(&f.trials, "trials", "t", defaults.TrialCount, "Number of trials")
	cmd.Flags().Uint64Var(&f.seed, "seed", 0, "Seed for a reproducible run (default: random)")
	cmd.Flags().IntVarP(&f.parallel, "parallel", "p", defaults.Parallelism, "Trials run concurrently")
	cmd.Flags().IntVar(&f.binsA, "bins-a", 5, "Histogram bins for strategy A")
	cmd.Flags().IntVar(&f.binsB, "bins-b", 10, "Histogram bins for strategy B")
	cmd.Flags().BoolVar(&f.progress, "progress", false, "Show a progress bar on stderr")
}

func (f *simFlags) params(cmd *cobra.Command) model.RunParams {
	params := model.RunParams{
		FixedGuess:      f.guess,
		ExperimentCount: f.experiments,
		TrialCount:      f.trials,
		Parallelism:     f.parallel,
	}
	if cmd.Flags().Changed("seed") {
		seed := f.seed
		params.Seed = &seed
	}
	return params
}

func (f *simFlags) validateBins() error {
	if f.binsA < 1 || f.binsB < 1 {
		return fmt.Errorf("%w: histogram bins must be at least 1", model.ErrInvalidInput)
	}
	return nil
}

// startRun runs and stores a simulation, drawing a progress bar when asked
func (f *simFlags) startRun(cmd *cobra.Command, app *factory.App) (*model.Run, error) {
	params := f.params(cmd)

	if !f.progress {
		return app.RunsController.Start(cmd.Context(), params, nil)
	}

	progress, finish := newProgress(cmd.ErrOrStderr(), params.TrialCount)
	defer finish()
	return app.RunsController.Start(cmd.Context(), params, progress)
}

func newSimulateCmd() *cobra.Command {
	var flags simFlags

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run a strategy simulation and draw its histogram",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := flags.validateBins(); err != nil {
				return err
			}

			if client, ok := remote(); ok {
				return flags.simulateRemote(cmd, client)
			}

			app, err := openApp(cmd.Context(), true)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()

			run, err := flags.startRun(cmd, app)
			if err != nil {
				return err
			}

			out.Print(response.RunFromModel(run, out.IsJSON()))
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

// startRemoteRun starts a run on the API server
func (f *simFlags) startRemoteRun(cmd *cobra.Command, client *Client) (response.Run, error) {
	params := f.params(cmd)
	req := request.CreateRunRequest{
		FixedGuess:      params.FixedGuess,
		ExperimentCount: params.ExperimentCount,
		TrialCount:      params.TrialCount,
		Seed:            params.Seed,
		Parallelism:     params.Parallelism,
	}

	var result response.Run
	err := client.Post(cmd.Context(), "/api/v1/runs", req, &result)
	return result, err
}

// printRemoteHistogram fetches the server-rendered histogram of a run
func (f *simFlags) printRemoteHistogram(ctx context.Context, client *Client, id string) error {
	path := fmt.Sprintf("/api/v1/runs/%s/histogram?bins_a=%d&bins_b=%d", url.PathEscape(id), f.binsA, f.binsB)
	chart, err := client.GetText(ctx, path)
	if err != nil {
		return err
	}

	fmt.Fprintln(out.Writer())
	_, err = io.WriteString(out.Writer(), chart)
	return err
}

func (f *simFlags) simulateRemote(cmd *cobra.Command, client *Client) error {
	run, err := f.startRemoteRun(cmd, client)
	if err != nil {
		return err
	}

	out.Print(run)
	if out.IsJSON() {
		return nil
	}
	return f.printRemoteHistogram(cmd.Context(), client, run.ID)
}
