package main

import (
	"fmt"

	"github.com/forestrie/go-ngramcps/tm"
	"github.com/spf13/cobra"
)

func newSimulateCmd() *cobra.Command {
	var (
		machine string
		steps   int
	)
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run a machine from a blank tape for a bounded number of steps",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := tm.Parse(machine)
			if err != nil {
				return err
			}
			n, halted := tm.Simulate(m, steps)
			if halted {
				fmt.Fprintf(cmd.OutOrStdout(), "%s halts after %d steps\n", machine, n)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s does not halt within %d steps\n", machine, n)
			return nil
		},
	}
	cmd.Flags().StringVarP(&machine, "machine", "m", "", "machine in 30 or 34 character form")
	cmd.Flags().IntVar(&steps, "steps", 1000, "step limit")
	_ = cmd.MarkFlagRequired("machine")
	return cmd
}
