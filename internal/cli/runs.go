package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/mcoot/wordlestrat/internal/api/response"
	"github.com/mcoot/wordlestrat/internal/factory"
	"github.com/mcoot/wordlestrat/internal/model"
)

func newRunsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "runs",
		Short: "Inspect stored simulation runs",
		Long: `Inspect stored simulation runs. Runs outlive a single invocation only with
--storage redis or on a server named by --server.`,
	}

	cmd.AddCommand(newRunsListCmd())
	cmd.AddCommand(newRunsShowCmd())

	return cmd
}

func newRunsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored runs, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			if client, ok := remote(); ok {
				var result response.RunList
				if err := client.Get(cmd.Context(), "/api/v1/runs", &result); err != nil {
					return err
				}
				out.Print(result)
				return nil
			}

			if err := requirePersistentStorage(); err != nil {
				return err
			}

			app, err := openApp(cmd.Context(), false)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()

			list, err := app.RunsController.List(cmd.Context())
			if err != nil {
				return err
			}

			out.Print(response.RunListFromModel(list))
			return nil
		},
	}
}

func newRunsShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a stored run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]

			if client, ok := remote(); ok {
				var result response.Run
				if err := client.Get(cmd.Context(), "/api/v1/runs/"+id, &result); err != nil {
					return err
				}
				out.Print(result)
				return nil
			}

			if err := requirePersistentStorage(); err != nil {
				return err
			}

			app, err := openApp(cmd.Context(), false)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()

			run, err := app.RunsController.Get(cmd.Context(), model.RunID(id))
			if err != nil {
				return err
			}

			out.Print(response.RunFromModel(run, out.IsJSON()))
			return nil
		},
	}
}

// errEphemeralRuns is returned when runs would be read from per-process memory storage
var errEphemeralRuns = errors.New("memory storage does not keep runs between invocations: use --storage redis or --server")

func requirePersistentStorage() error {
	if cfg.StorageType == factory.StorageTypeMemory {
		return errEphemeralRuns
	}
	return nil
}
