package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tallyworks/dividend-engine/internal/domain/classify"
)

func newClassifyCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "classify <file>...",
		Short: "Identify the document type of one or more statements",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			classifier, err := a.newClassifier()
			if err != nil {
				return err
			}

			for _, path := range args {
				text, err := readDocument(cmd.Context(), path)
				if err != nil {
					return err
				}

				result := classifier.Classify(text)
				a.logger.Debug("classified", "file", path, "keywords", result.Metadata.DetectedKeywords)

				fmt.Fprintf(cmd.OutOrStdout(), "%s %s  %s (%.0f%% confidence, %s) -> %s\n",
					classify.Icon(result.Type),
					path,
					classify.Label(result.Type),
					result.Confidence*100,
					result.Method,
					classify.RecommendedAction(result))
				if len(result.Metadata.DetectedKeywords) > 0 {
					fmt.Fprintf(cmd.OutOrStdout(), "   matched: %s\n",
						strings.Join(result.Metadata.DetectedKeywords, ", "))
				}
			}
			return nil
		},
	}
}
