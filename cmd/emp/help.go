package main

import "github.com/spf13/cobra"

var helpShortcutCmd = &cobra.Command{
	Use:   "?",
	Short: "Show help",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Root().Help()
	},
}

func init() {
	rootCmd.AddCommand(helpShortcutCmd)
}
