package main

import (
	"fmt"
	"io"
	"os"
	"unicode"

	"github.com/spf13/cobra"

	"github.com/dhamidi/pcomb/num"
	"github.com/dhamidi/pcomb/parse"
	"github.com/dhamidi/pcomb/stream"
)

func newIntsCmd() *cobra.Command {
	var sum bool

	cmd := &cobra.Command{
		Use:           "ints [file]",
		Short:         "Parse a comma-separated list of 64-bit integers",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var data []byte
			var err error
			if len(args) == 1 {
				data, err = os.ReadFile(args[0])
			} else {
				data, err = io.ReadAll(cmd.InOrStdin())
			}
			if err != nil {
				return fmt.Errorf("read input: %w", err)
			}

			ints, ok := parse.ParseToEnd(intList(), stream.NewText(string(data)))
			if !ok {
				return fmt.Errorf("parse: expected comma-separated integers")
			}

			w := cmd.OutOrStdout()
			if sum {
				var total int64
				for _, n := range ints {
					total += n
				}
				fmt.Fprintln(w, total)
				return nil
			}
			for _, n := range ints {
				fmt.Fprintln(w, n)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&sum, "sum", false, "print only the sum")

	return cmd
}

func intList() parse.Func[stream.Text, []int64] {
	space := parse.SkipMany(parse.Satisfy[stream.Text](unicode.IsSpace))
	n := parse.Left(num.Int64(), space)
	comma := parse.Left(parse.Token[stream.Text](','), space)
	return parse.Right(space, parse.CollectSepBy(n, comma))
}
