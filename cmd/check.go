package cmd

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/arcanaland/handcheck/internal/checker"
	"github.com/arcanaland/handcheck/internal/logger"
)

// checkCmd classifies a single hand given on the command line
var checkCmd = &cobra.Command{
	Use:   "check [cards...]",
	Short: "Classify one hand",
	Long: `Check classifies the hand given as arguments. Cards may be passed as one
comma separated argument or as separate arguments.

Examples:
  handcheck check S10,SJ,SQ,SK,S1
  handcheck check S4 H5 D6 C7 S8`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c := checker.New(logger.Named("checker"))

		res, err := c.Check(strings.Join(args, ","))
		if err != nil {
			fmt.Fprintln(cmd.OutOrStdout(), color.RedString(checker.ErrorText))
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), color.GreenString(res.Category.Label()))
		if cfg.ShowDetail && res.Detail != "" {
			fmt.Fprintln(cmd.OutOrStdout(), color.New(color.Faint).Sprint(res.Detail))
		}
		return nil
	},
}
