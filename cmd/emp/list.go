package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:     "l",
	Aliases: []string{"list"},
	Short:   "List all employees",
	Long: `List every employee in the roster, one per line, in the order
they were added.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	s, err := openRoster()
	if err != nil {
		return err
	}

	names, err := s.Load()
	if err != nil {
		return err
	}

	if len(names) == 0 {
		fmt.Println("(no employees found)")
		return nil
	}

	fmt.Println("Employees:")
	for _, name := range names {
		fmt.Println("- " + name)
	}
	return nil
}
