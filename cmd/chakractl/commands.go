package main

import (
	"fmt"
	"io"
	"math/rand/v2"
	"strings"

	"github.com/blaisecz/soulsync/internal/chakra"
	"github.com/spf13/cobra"
)

type statusReport struct {
	Readings []chakra.Reading   `json:"readings" yaml:"readings"`
	Balance  chakra.Balance     `json:"balance" yaml:"balance"`
	Ranking  []chakra.Imbalance `json:"ranking" yaml:"ranking"`
	Coach    chakra.CoachType   `json:"coach" yaml:"coach"`
}

func newStatusCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Classify each chakra and compute the overall balance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := opts.profile()
			if err != nil {
				return err
			}
			report := buildStatus(values)
			return opts.render(report, func(w io.Writer) error {
				for _, r := range report.Readings {
					fmt.Fprintf(w, "%-20s %2d/10  %s\n", r.Name, r.Value, r.Status.Label)
				}
				if len(report.Readings) > 0 {
					fmt.Fprintln(w)
				}
				fmt.Fprintf(w, "Overall balance: %.1f/10 (%s)\n", report.Balance.Score, report.Balance.Status)
				fmt.Fprintln(w, report.Balance.Description)
				fmt.Fprintf(w, "Recommended coach: %s\n", report.Coach.Label())
				return nil
			})
		},
	}
}

func buildStatus(values chakra.Values) statusReport {
	return statusReport{
		Readings: chakra.Readings(values),
		Balance:  chakra.OverallBalance(values),
		Ranking:  chakra.Rank(values),
		Coach:    chakra.PrimaryCoach(values),
	}
}

func newRecommendCmd(opts *options) *cobra.Command {
	var seed uint64
	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Suggest focus areas, practices and insights",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := opts.profile()
			if err != nil {
				return err
			}
			var engineOpts []chakra.Option
			if cmd.Flags().Changed("seed") {
				engineOpts = append(engineOpts, chakra.WithPicker(rand.New(rand.NewPCG(seed, seed))))
			}
			rec := chakra.New(engineOpts...).Recommendations(values)
			return opts.render(rec, func(w io.Writer) error {
				if len(rec.FocusAreas) > 0 {
					fmt.Fprintln(w, "Focus areas:")
					writeList(w, rec.FocusAreas)
					fmt.Fprintln(w)
				}
				if len(rec.Practices) > 0 {
					fmt.Fprintln(w, "Practices:")
					writeList(w, rec.Practices)
					fmt.Fprintln(w)
				}
				fmt.Fprintln(w, rec.Insights)
				return nil
			})
		},
	}
	cmd.Flags().Uint64Var(&seed, "seed", 0, "Seed for the practice draw, for reproducible output")
	return cmd
}

type contextReport struct {
	Coach   chakra.CoachType `json:"coach" yaml:"coach"`
	Context string           `json:"context" yaml:"context"`
}

func newContextCmd(opts *options) *cobra.Command {
	var emotions []string
	cmd := &cobra.Command{
		Use:   "context",
		Short: "Render the coaching context sent to the AI coach",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := opts.profile()
			if err != nil {
				return err
			}
			report := contextReport{
				Coach:   chakra.PrimaryCoach(values),
				Context: chakra.New().CoachingContext(values, emotions),
			}
			return opts.render(report, func(w io.Writer) error {
				_, err := fmt.Fprintln(w, report.Context)
				return err
			})
		},
	}
	cmd.Flags().StringSliceVar(&emotions, "emotion", nil, "Recent emotion label (repeatable)")
	return cmd
}

func newReferenceCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "reference [chakra...]",
		Short: "Show reference data for all or selected chakras",
		RunE: func(cmd *cobra.Command, args []string) error {
			infos, err := selectInfos(args)
			if err != nil {
				return err
			}
			return opts.render(infos, func(w io.Writer) error {
				for i, info := range infos {
					if i > 0 {
						fmt.Fprintln(w)
					}
					fmt.Fprintf(w, "%s (%s)\n", info.Name, info.Sanskrit)
					fmt.Fprintf(w, "  Color: %s  Element: %s  Location: %s\n", info.Color, info.Element, info.Location)
					fmt.Fprintf(w, "  Focus: %s\n", info.Focus)
					fmt.Fprintf(w, "  Practices: %s\n", strings.Join(info.HealingPractices, "; "))
					fmt.Fprintf(w, "  Affirmations: %s\n", strings.Join(info.Affirmations, "; "))
				}
				return nil
			})
		},
	}
}

func selectInfos(names []string) ([]chakra.Info, error) {
	if len(names) == 0 {
		return chakra.All(), nil
	}
	infos := make([]chakra.Info, 0, len(names))
	for _, name := range names {
		k, err := chakra.ParseKey(name)
		if err != nil {
			return nil, err
		}
		infos = append(infos, chakra.MustLookup(k))
	}
	return infos, nil
}

func writeList(w io.Writer, items []string) {
	for _, item := range items {
		fmt.Fprintf(w, "  - %s\n", item)
	}
}
