package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync/atomic"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/retireus/checkpoint/internal/engine"
	"github.com/retireus/checkpoint/internal/model"
	"github.com/retireus/checkpoint/internal/normalize"
)

var (
	analyzeJSON        bool
	analyzeConcurrency int
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <answers.json> [more.json...]",
	Short: "Assess one or more answer files",
	Long:  "Reads raw quiz answer payloads from JSON files, normalizes them, and runs the full assessment: red flags, tier recommendations, and the three scores.",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		concurrency := analyzeConcurrency
		if concurrency == 0 {
			concurrency = cfg.Analyze.Concurrency
		}

		zap.L().Info("analyzing answer files",
			zap.Int("files", len(args)),
			zap.Int("concurrency", concurrency),
		)

		results := make([]*engine.Result, len(args))

		var g errgroup.Group
		g.SetLimit(concurrency)

		var failed atomic.Int64
		for i, path := range args {
			i, path := i, path
			g.Go(func() error {
				result, err := analyzeFile(path)
				if err != nil {
					failed.Add(1)
					zap.L().Error("analysis failed", zap.String("file", path), zap.Error(err))
					return nil // keep going, report the rest
				}
				results[i] = result
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return eris.Wrap(err, "analyze batch")
		}

		for i, result := range results {
			if result == nil {
				continue
			}
			if analyzeJSON {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				if err := enc.Encode(result); err != nil {
					return eris.Wrap(err, "analyze: encode result")
				}
				continue
			}
			writeReport(os.Stdout, args[i], result)
		}

		if n := failed.Load(); n > 0 {
			return eris.Errorf("analyze: %d of %d files failed", n, len(args))
		}
		return nil
	},
}

// analyzeFile loads a raw answer payload and runs one assessment.
func analyzeFile(path string) (*engine.Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "analyze: read %s", path)
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, eris.Wrapf(err, "analyze: parse %s", path)
	}

	result := engine.Assess(normalize.Answers(raw))
	return &result, nil
}

// writeReport renders one assessment as a human-readable report.
func writeReport(w io.Writer, source string, result *engine.Result) {
	p := message.NewPrinter(language.AmericanEnglish)

	fmt.Fprintf(w, "Assessment %s (%s)\n", result.AssessmentID, source)

	if len(result.RedFlags) == 0 {
		fmt.Fprintln(w, "  No red flags detected.")
	} else {
		fmt.Fprintf(w, "  Red flags (%d):\n", len(result.RedFlags))
		for _, tier := range model.ServiceTiers {
			for _, f := range result.RedFlags {
				if f.Tier != tier {
					continue
				}
				fmt.Fprintf(w, "    [%s] %s: %s\n", f.Tier, f.ID, f.Name)
			}
		}
	}

	fmt.Fprintf(w, "  Recommended plan: %s (%d flags)\n",
		result.RecommendedPlan.Tier, result.RecommendedPlan.FlagCount)

	fmt.Fprintf(w, "  Pacing:          %.0f %s\n", result.Scores.Pacing.Score, result.Scores.Pacing.Result)
	if details, ok := result.Scores.Pacing.Details.(model.PacingDetails); ok {
		p.Fprintf(w, "    target nest egg $%.2f, %d of 4 projections short\n",
			details.FVTarget, details.CalculationsBelowTarget)
	}
	fmt.Fprintf(w, "  Tax planning:    %.0f %s\n", result.Scores.TaxPlanning.Score, result.Scores.TaxPlanning.Result)
	fmt.Fprintf(w, "  Risk of failure: %.2f %s\n", result.Scores.RiskOfFailure.Score, result.Scores.RiskOfFailure.Result)
	fmt.Fprintln(w)
}

func init() {
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "emit results as JSON")
	analyzeCmd.Flags().IntVar(&analyzeConcurrency, "concurrency", 0, "max files analyzed in parallel (default from config)")
	rootCmd.AddCommand(analyzeCmd)
}
