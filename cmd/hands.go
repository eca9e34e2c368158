package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arcanaland/handcheck/internal/session"
)

// handsCmd prints the hand reference table
var handsCmd = &cobra.Command{
	Use:   "hands",
	Short: "List the hand categories in order of strength",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		table, err := session.HelpTable()
		if err != nil {
			return fmt.Errorf("error rendering table: %v", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), table)
		return nil
	},
}
