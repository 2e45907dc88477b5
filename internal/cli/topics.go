package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"trivia-palooza/internal/catalog"
	"trivia-palooza/internal/config"
	"trivia-palooza/internal/infra/opentdb"
)

// NewTopicsCmd lists the topic catalog with its question source endpoints.
func NewTopicsCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "topics",
		Short: "List quiz topics",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, *configPath)
			if err != nil {
				return err
			}
			client := opentdb.NewClient(cfg.Source.BaseURL, config.Duration(cfg.Source.Timeout, opentdb.DefaultTimeout), nil)
			out := cmd.OutOrStdout()
			for i, t := range catalog.Topics() {
				fmt.Fprintf(out, "%d) %s %-20s %2d questions  %s\n", i+1, t.Icon, t.Name, t.Amount, client.Endpoint(t))
			}
			return nil
		},
	}
}
