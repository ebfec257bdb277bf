package main

import (
	"fmt"
	"io"
	"os"
	"reflect"

	"github.com/spf13/cobra"
	xebnf "golang.org/x/exp/ebnf"

	"github.com/dhamidi/pcomb/ebnf"
)

func newEbnfCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "ebnf",
		Short:         "EBNF grammar tools",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(newEbnfCheckCmd())
	cmd.AddCommand(newEbnfMatchCmd())

	return cmd
}

func newEbnfCheckCmd() *cobra.Command {
	var startProduction string

	cmd := &cobra.Command{
		Use:           "check <file>",
		Short:         "Parse and verify an EBNF grammar file",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := args[0]

			f, err := os.Open(filename)
			if err != nil {
				return fmt.Errorf("open file: %w", err)
			}
			defer f.Close()

			grammar, err := xebnf.Parse(filename, f)
			if err != nil {
				printErrors(cmd.OutOrStdout(), err)
				return err
			}

			if startProduction == "" {
				return nil
			}

			if _, err := ebnf.Compile(grammar, startProduction); err != nil {
				printErrors(cmd.OutOrStdout(), verifyErrors(err))
				return err
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&startProduction, "start", "", "start production for verification (if empty, only checks syntax)")

	return cmd
}

func newEbnfMatchCmd() *cobra.Command {
	var (
		startProduction string
		whitespace      string
		trace           bool
	)

	cmd := &cobra.Command{
		Use:           "match <grammar> [input]",
		Short:         "Match input against a grammar and print the parse tree",
		Long:          `Match the input file (or standard input) against the start production of the grammar and print one line per matched production.`,
		Args:          cobra.RangeArgs(1, 2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := ebnf.LoadGrammar(args[0])
			if err != nil {
				return err
			}

			opts := []ebnf.Option{ebnf.WithWhitespace(whitespace)}
			if trace {
				opts = append(opts, ebnf.WithTrace())
			}
			grammar, err := ebnf.Compile(src, startProduction, opts...)
			if err != nil {
				return fmt.Errorf("compile grammar: %w", err)
			}

			inputName := "<stdin>"
			var data []byte
			if len(args) == 2 {
				inputName = args[1]
				data, err = os.ReadFile(inputName)
			} else {
				data, err = io.ReadAll(cmd.InOrStdin())
			}
			if err != nil {
				return fmt.Errorf("read input: %w", err)
			}

			node, err := grammar.Match(inputName, string(data))
			if err != nil {
				return err
			}
			return node.Dump(cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&startProduction, "start", "", "start production")
	cmd.Flags().StringVar(&whitespace, "whitespace", " \t\r\n", "characters skipped between tokens of syntactic productions")
	cmd.Flags().BoolVar(&trace, "trace", false, "log every production attempt (with -vv)")
	cmd.MarkFlagRequired("start")

	return cmd
}

// verifyErrors unwraps err down to the error list reported by the ebnf
// verifier, if there is one.
func verifyErrors(err error) error {
	for e := err; e != nil; {
		if reflect.ValueOf(e).Kind() == reflect.Slice {
			return e
		}
		u, ok := e.(interface{ Unwrap() error })
		if !ok {
			break
		}
		e = u.Unwrap()
	}
	return err
}

func printErrors(w io.Writer, err error) {
	v := reflect.ValueOf(err)
	if v.Kind() == reflect.Slice {
		for i := 0; i < v.Len(); i++ {
			fmt.Fprintln(w, v.Index(i).Interface())
		}
	} else {
		fmt.Fprintln(w, err)
	}
}
