package cmd

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/daycheck/internal/app"
	"github.com/abhisek/daycheck/internal/logging"
	"github.com/abhisek/daycheck/internal/plain"
	"github.com/abhisek/daycheck/internal/questionset"
)

// runApp loads the question set, sets up logging, and launches the TUI or
// the plain renderer.
func runApp(cmd *cobra.Command) error {
	cfg := resolveConfig(cmd)

	set, err := loadSet(cfg.QuestionsPath)
	if err != nil {
		return err
	}

	logger := logging.New(cfg.Log)
	defer func() { _ = logger.Sync() }()

	interactive := !cfg.Plain && isInteractive()
	logger.Info("daycheck starting",
		zap.String("version", version),
		zap.String("questions", cfg.QuestionsPath),
		zap.Bool("tui", interactive),
	)

	if !interactive {
		return plain.Run(cmd.InOrStdin(), cmd.OutOrStdout(), set, logger)
	}
	return app.Run(set, logger)
}

// loadSet returns the built-in set for an empty path.
func loadSet(path string) (*questionset.Set, error) {
	if path == "" {
		return questionset.Default(), nil
	}
	return questionset.Load(path)
}

func isInteractive() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
}
