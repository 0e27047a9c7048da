package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tallyworks/dividend-engine/internal/domain/classify"
	"github.com/tallyworks/dividend-engine/pkg/config"
)

type app struct {
	cfg    *config.Config
	logger *slog.Logger

	patternsFile string
	logLevel     string
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "divparse",
		Short:         "Classify and parse Australian dividend statements",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			a.cfg = cfg
			if a.patternsFile == "" {
				a.patternsFile = cfg.Patterns.RegistryFile
			}
			if a.logLevel == "" {
				a.logLevel = cfg.Logging.Level
			}
			a.logger = newLogger(a.logLevel)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&a.patternsFile, "patterns", "", "YAML file overriding the built-in classifier patterns")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")

	root.AddCommand(
		newClassifyCmd(a),
		newParseCmd(a),
		newBatchCmd(a),
		newSummaryCmd(a),
	)
	return root
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}

// newClassifier builds a classifier from the built-in registry or, when
// --patterns is given, the YAML override file.
func (a *app) newClassifier() (*classify.Classifier, error) {
	reg := classify.DefaultRegistry()
	if a.patternsFile != "" {
		data, err := os.ReadFile(a.patternsFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read patterns file: %w", err)
		}
		reg, err = classify.ParseRegistry(data)
		if err != nil {
			return nil, fmt.Errorf("invalid patterns file %s: %w", a.patternsFile, err)
		}
	}
	return classify.NewClassifier(reg)
}
