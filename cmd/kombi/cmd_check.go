package main

import (
	"fmt"
	"os"

	"github.com/dhamidi/kombi/calc"
	"github.com/dhamidi/kombi/format"
	"github.com/spf13/cobra"
)

func newCheckCmd() *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:           "check <file>",
		Short:         "Parse a file and report its diagnostics",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := args[0]
			data, err := os.ReadFile(filename)
			if err != nil {
				return fmt.Errorf("read file: %w", err)
			}

			input := string(data)
			result := calc.Parse(input)

			report := &format.Report{
				Name:        filename,
				OK:          result.Ok(),
				Diagnostics: calc.Diagnostics(input, result),
			}
			if result.Ok() {
				report.Value = result.Value()
			}

			encoder, err := newEncoder(outputFormat)
			if err != nil {
				return err
			}
			if err := encoder.Encode(report); err != nil {
				return fmt.Errorf("encode: %w", err)
			}
			if outputFormat == "json" {
				fmt.Println()
			}

			if !result.Ok() {
				return fmt.Errorf("%s: parse failed", filename)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "line", "output format (json, line)")

	return cmd
}
