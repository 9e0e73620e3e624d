package main

import (
	"fmt"
	"strings"

	"github.com/dhamidi/kombi/calc"
	"github.com/spf13/cobra"
)

func newEvalCmd() *cobra.Command {
	return &cobra.Command{
		Use:          "eval <expression>...",
		Short:        "Evaluate an arithmetic expression",
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			input := strings.Join(args, " ")
			value, err := calc.Eval(input)
			if err != nil {
				return err
			}
			fmt.Println(value)
			return nil
		},
	}
}
