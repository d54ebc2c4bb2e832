package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/mcoot/wordlestrat/internal/api/response"
)

func newHealthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check a running API server (requires --server)",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, ok := remote()
			if !ok {
				return errors.New("health needs a server: set --server or WORDLESTRAT_SERVER")
			}

			var result response.Health
			if err := client.Get(cmd.Context(), "/api/v1/health", &result); err != nil {
				return err
			}

			out.Print(result)
			return nil
		},
	}
}
