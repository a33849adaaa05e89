package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/retireus/checkpoint/internal/detect"
	"github.com/retireus/checkpoint/internal/model"
	"github.com/retireus/checkpoint/internal/scenario"
)

var scenariosCmd = &cobra.Command{
	Use:   "scenarios",
	Short: "Work with the canned test scenarios",
	Long:  "Commands for listing and running the fixture scenarios that exercise the rule engine end to end.",
}

// -- scenarios list --

var scenariosListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available scenarios",
	RunE: func(cmd *cobra.Command, _ []string) error {
		all, err := scenario.List()
		if err != nil {
			return err
		}

		tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tNAME\tEXPECTED FLAGS\tEXPECTED TIERS")
		for _, s := range all {
			tiers := strings.Join(s.ExpectedTiers, ", ")
			if tiers == "" {
				tiers = "-"
			}
			fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", s.ID, s.Name, len(s.ExpectedFlags), tiers)
		}
		return tw.Flush()
	},
}

// -- scenarios run --

var scenariosRunCmd = &cobra.Command{
	Use:   "run [id...]",
	Short: "Run scenarios and verify their expected flags and tiers",
	RunE: func(cmd *cobra.Command, args []string) error {
		targets, err := resolveScenarios(args)
		if err != nil {
			return err
		}

		failures := 0
		for _, s := range targets {
			if err := runScenario(&s); err != nil {
				failures++
				fmt.Fprintf(os.Stdout, "FAIL %s: %v\n", s.ID, err)
				continue
			}
			fmt.Fprintf(os.Stdout, "PASS %s (%s)\n", s.ID, s.Name)
		}

		if failures > 0 {
			return eris.Errorf("scenarios: %d of %d failed", failures, len(targets))
		}
		return nil
	},
}

// resolveScenarios maps ids to fixtures, or all fixtures with no args.
func resolveScenarios(ids []string) ([]scenario.Scenario, error) {
	if len(ids) == 0 {
		return scenario.List()
	}
	out := make([]scenario.Scenario, 0, len(ids))
	for _, id := range ids {
		s, err := scenario.Get(id)
		if err != nil {
			return nil, err
		}
		out = append(out, *s)
	}
	return out, nil
}

// runScenario detects flags for one fixture and checks them against the
// recorded expectations.
func runScenario(s *scenario.Scenario) error {
	flags := detect.Detect(s.AnswerSet())

	got := make([]string, 0, len(flags))
	for _, f := range flags {
		got = append(got, f.ID)
	}
	if !equalStrings(got, s.ExpectedFlags) {
		return eris.Errorf("flags %v, expected %v", got, s.ExpectedFlags)
	}

	recommendations := detect.Recommend(flags)
	gotTiers := make([]string, 0, len(model.ServiceTiers))
	for _, tier := range model.ServiceTiers {
		if _, ok := recommendations[tier]; ok {
			gotTiers = append(gotTiers, tier.String())
		}
	}
	if !equalStrings(gotTiers, s.ExpectedTiers) {
		return eris.Errorf("tiers %v, expected %v", gotTiers, s.ExpectedTiers)
	}

	zap.L().Debug("scenario verified",
		zap.String("scenario", s.ID),
		zap.Int("flags", len(flags)),
	)
	return nil
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func init() {
	scenariosCmd.AddCommand(scenariosListCmd)
	scenariosCmd.AddCommand(scenariosRunCmd)
	rootCmd.AddCommand(scenariosCmd)
}
