package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var countCmd = &cobra.Command{
	Use:     "c",
	Aliases: []string{"count"},
	Short:   "Count employees",
	Args:    cobra.NoArgs,
	RunE:    runCount,
}

func init() {
	rootCmd.AddCommand(countCmd)
}

func runCount(cmd *cobra.Command, args []string) error {
	s, err := openRoster()
	if err != nil {
		return err
	}

	names, err := s.Load()
	if err != nil {
		return err
	}

	fmt.Printf("Count: %d\n", len(names))
	return nil
}
