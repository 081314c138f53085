package main

import (
	"fmt"
	"strings"

	"github.com/jsalter/emp/internal/roster"
	"github.com/spf13/cobra"
)

var updateCmd = &cobra.Command{
	Use:     "u <old...> <new>",
	Aliases: []string{"update"},
	Short:   "Rename an employee",
	Long: `Rename the first employee whose name equals the old name,
compared case-insensitively. The new name is stored verbatim and is not
checked against the rest of the roster.

The last argument is the new name; all preceding arguments are joined
into the old name. Quote the new name if it contains spaces.

Examples:
  emp u Bob Robert
  emp u Mary Anne "Mary A. Smith"`,
	Args: cobra.MinimumNArgs(2),
	RunE: runUpdate,
}

func init() {
	rootCmd.AddCommand(updateCmd)
}

func runUpdate(cmd *cobra.Command, args []string) error {
	oldName := joinName(args[:len(args)-1])
	newName := strings.TrimSpace(args[len(args)-1])
	if oldName == "" || newName == "" {
		return fmt.Errorf("update requires non-empty old and new names")
	}

	s, err := openRoster()
	if err != nil {
		return err
	}

	names, err := s.Load()
	if err != nil {
		return err
	}

	names, found := roster.Rename(names, oldName, newName)
	if !found {
		fmt.Println("No employee found with name: " + oldName)
		return nil
	}

	if err := s.Save(names); err != nil {
		return err
	}
	fmt.Printf("Updated '%s' to '%s'\n", oldName, newName)
	return nil
}
