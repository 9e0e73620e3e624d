package main

import (
	"fmt"
	"os"

	"github.com/dhamidi/kombi/calc"
	"github.com/dhamidi/kombi/format"
	"github.com/spf13/cobra"
)

func newTokensCmd() *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "tokens <file>",
		Short: "Scan a file with the calc rules and dump its tokens",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := args[0]
			data, err := os.ReadFile(filename)
			if err != nil {
				return fmt.Errorf("read file: %w", err)
			}

			report := &format.Report{
				Name:   filename,
				OK:     true,
				Tokens: calc.Tokens(string(data)),
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

			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "line", "output format (json, line)")

	return cmd
}

func newEncoder(outputFormat string) (format.Encoder, error) {
	switch outputFormat {
	case "json":
		return format.NewJSONEncoder(os.Stdout), nil
	case "line":
		return format.NewLineEncoder(os.Stdout), nil
	default:
		return nil, fmt.Errorf("unknown format: %s", outputFormat)
	}
}
