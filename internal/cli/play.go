package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"trivia-palooza/internal/catalog"
	"trivia-palooza/internal/config"
	"trivia-palooza/internal/console"
	"trivia-palooza/internal/infra/memory"
	"trivia-palooza/internal/infra/opentdb"
	"trivia-palooza/internal/logger"
	"trivia-palooza/internal/quiz"
	"trivia-palooza/internal/screen"
)

// NewPlayCmd starts an interactive quiz on the terminal.
func NewPlayCmd(configPath *string) *cobra.Command {
	var demo bool
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play a quiz in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(cmd, *configPath, demo)
		},
	}
	cmd.Flags().BoolVar(&demo, "demo", false, "play built-in sample questions instead of fetching them")
	return cmd
}

func runPlay(cmd *cobra.Command, configPath string, demo bool) error {
	cfg, err := loadConfig(cmd, configPath)
	if err != nil {
		return err
	}
	if demo {
		cfg.Source.Kind = config.SourceStatic
	}

	log := logger.New(cfg.Logger)
	defer func() { _ = log.Sync() }()

	source, err := newSource(cfg, log)
	if err != nil {
		return err
	}

	sessionOpts := []quiz.Option{quiz.WithDwell(config.Duration(cfg.Quiz.Dwell, quiz.DefaultDwell))}
	if cfg.Quiz.DecodeBeforeCompare {
		sessionOpts = append(sessionOpts, quiz.WithMatcher(quiz.DecodedMatch))
	}
	ctrl := screen.New(source,
		screen.WithLogger(log.Named("screen")),
		screen.WithSessionOptions(sessionOpts...),
	)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Debug("starting console", zap.String("source", cfg.Source.Kind))
	return console.New(ctrl, catalog.Topics(), cmd.InOrStdin(), cmd.OutOrStdout(), log.Named("console")).Run(ctx)
}

func newSource(cfg config.Config, log *zap.Logger) (quiz.QuestionSource, error) {
	switch cfg.Source.Kind {
	case "", config.SourceOpenTDB:
		return opentdb.NewClient(
			cfg.Source.BaseURL,
			config.Duration(cfg.Source.Timeout, opentdb.DefaultTimeout),
			log.Named("opentdb"),
		), nil
	case config.SourceStatic:
		return memory.NewSampleSource(catalog.Topics()), nil
	default:
		return nil, fmt.Errorf("unknown source kind %q", cfg.Source.Kind)
	}
}
