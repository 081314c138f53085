package main

import (
	"fmt"

	"github.com/jsalter/emp/internal/roster"
	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:     "s <name...>",
	Aliases: []string{"search"},
	Short:   "Search employees by name",
	Long: `Search the roster for names containing the query as a
case-insensitive substring. Matches are printed in roster order.

Examples:
  emp s alice
  emp s van der`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := joinName(args)
	if query == "" {
		return fmt.Errorf("search requires a non-empty name")
	}

	s, err := openRoster()
	if err != nil {
		return err
	}

	names, err := s.Load()
	if err != nil {
		return err
	}

	matches := roster.Search(names, query)
	if len(matches) == 0 {
		fmt.Println("No matches found for: " + query)
		return nil
	}

	fmt.Println("Matches:")
	for _, name := range matches {
		fmt.Println("- " + name)
	}
	return nil
}
