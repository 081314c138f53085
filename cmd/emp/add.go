package main

import (
	"fmt"

	"github.com/jsalter/emp/internal/cli"
	"github.com/jsalter/emp/internal/roster"
	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:     "+ <name...>",
	Aliases: []string{"add"},
	Short:   "Add a new employee",
	Long: `Add an employee to the end of the roster. The name may span
several argument words; they are joined with single spaces.

Adding a name that already exists (compared case-insensitively) is a
no-op.

Examples:
  emp + Carol
  emp + Mary Anne Smith`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAdd,
}

func init() {
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	name := joinName(args)
	if name == "" {
		return fmt.Errorf("add requires a non-empty name")
	}

	s, err := openRoster()
	if err != nil {
		return err
	}

	names, err := s.Load()
	if err != nil {
		return err
	}

	names, added := roster.Add(names, name)
	if !added {
		fmt.Println("Employee already exists: " + cli.Yellow(name))
		return nil
	}

	if err := s.Save(names); err != nil {
		return err
	}
	fmt.Println("Added: " + cli.Green(name))
	return nil
}
