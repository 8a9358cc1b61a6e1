package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/blaisecz/soulsync/internal/chakra"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

// options holds the persistent flags shared by every command.
type options struct {
	out    io.Writer
	format string
	values map[string]int
	file   string
}

func newRootCmd(out io.Writer) *cobra.Command {
	opts := &options{out: out}

	root := &cobra.Command{
		Use:           "chakractl",
		Short:         "Score chakra profiles and preview recommendations",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			switch opts.format {
			case formatText, formatJSON, formatYAML:
				return nil
			default:
				return fmt.Errorf("unknown output format %q (use text, json or yaml)", opts.format)
			}
		},
	}
	root.SetOut(out)

	pf := root.PersistentFlags()
	pf.StringVarP(&opts.format, "output", "o", formatText, "Output format: text, json or yaml")
	pf.StringToIntVar(&opts.values, "values", nil, "Chakra ratings, e.g. root=3,heart=8")
	pf.StringVarP(&opts.file, "file", "f", "", "YAML or JSON file with chakra ratings")

	root.AddCommand(
		newStatusCmd(opts),
		newRecommendCmd(opts),
		newContextCmd(opts),
		newReferenceCmd(opts),
	)
	return root
}

// profile merges ratings from --file and --values; flags win. Keys and
// ranges are checked, but a partial profile is allowed.
func (o *options) profile() (chakra.Values, error) {
	values := chakra.Values{}

	if o.file != "" {
		data, err := os.ReadFile(o.file)
		if err != nil {
			return nil, fmt.Errorf("read profile: %w", err)
		}
		var raw map[string]int
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("parse profile %s: %w", o.file, err)
		}
		if err := merge(values, raw); err != nil {
			return nil, err
		}
	}
	if err := merge(values, o.values); err != nil {
		return nil, err
	}
	return values, nil
}

func merge(dst chakra.Values, raw map[string]int) error {
	var errs []error
	for name, v := range raw {
		k, err := chakra.ParseKey(name)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if v < chakra.MinValue || v > chakra.MaxValue {
			errs = append(errs, fmt.Errorf("%s must be between %d and %d, got %d", k, chakra.MinValue, chakra.MaxValue, v))
			continue
		}
		dst[k] = v
	}
	return errors.Join(errs...)
}

// render writes v as JSON or YAML, or calls text for the text format.
func (o *options) render(v any, text func(w io.Writer) error) error {
	switch o.format {
	case formatJSON:
		enc := json.NewEncoder(o.out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case formatYAML:
		enc := yaml.NewEncoder(o.out)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return text(o.out)
	}
}
