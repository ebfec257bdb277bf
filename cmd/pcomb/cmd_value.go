package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/dhamidi/pcomb/format"
	"github.com/dhamidi/pcomb/parse"
	"github.com/dhamidi/pcomb/stream"
	"github.com/dhamidi/pcomb/value"
)

func newValueCmd() *cobra.Command {
	var outputFormat string
	var indent string
	var jobs int

	cmd := &cobra.Command{
		Use:   "value <file>...",
		Short: "Parse value documents and print them",
		Long: `Parse one or more documents in the value language (integers, double-quoted
strings, arrays and objects) and print each, in argument order, as JSON or
as one line per leaf.
Files are parsed concurrently with a single shared grammar.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := parseValueFiles(args, jobs)
			if err != nil {
				return err
			}

			var encoder format.Encoder
			switch outputFormat {
			case "json":
				enc := format.NewJSONEncoder(cmd.OutOrStdout())
				enc.SetIndent(indent)
				encoder = enc
			case "line":
				encoder = format.NewLineEncoder(cmd.OutOrStdout())
			default:
				return fmt.Errorf("unknown format: %s", outputFormat)
			}

			for i, v := range values {
				if err := encoder.Encode(v); err != nil {
					return fmt.Errorf("encode %s: %w", args[i], err)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "json", "output format (json, line)")
	cmd.Flags().StringVar(&indent, "indent", "  ", "indentation per nesting level (empty for compact output)")
	cmd.Flags().IntVarP(&jobs, "jobs", "j", runtime.NumCPU(), "number of files parsed at once")

	return cmd
}

func parseValueFiles(filenames []string, jobs int) ([]value.Value, error) {
	doc := value.Document()
	values := make([]value.Value, len(filenames))

	var g errgroup.Group
	if jobs > 0 {
		g.SetLimit(jobs)
	}
	for i, filename := range filenames {
		g.Go(func() error {
			data, err := os.ReadFile(filename)
			if err != nil {
				return fmt.Errorf("read %s: %w", filename, err)
			}
			v, ok := parse.ParseToEnd(doc, stream.NewText(string(data)))
			if !ok {
				return fmt.Errorf("parse %s: invalid document", filename)
			}
			values[i] = v
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return values, nil
}
