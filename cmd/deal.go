package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/arcanaland/handcheck/internal/card"
	"github.com/arcanaland/handcheck/internal/checker"
	"github.com/arcanaland/handcheck/internal/deck"
	"github.com/arcanaland/handcheck/internal/logger"
)

var (
	seedFlag  uint64
	countFlag int
)

// dealCmd deals random hands from a shuffled deck and classifies them
var dealCmd = &cobra.Command{
	Use:   "deal",
	Short: "Deal random hands from a shuffled deck and classify them",
	Long: `Deal shuffles a standard 52 card deck, deals hands from the top and
classifies each one. Use --seed to repeat a deal.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		log := logger.Named("deal")
		c := checker.New(logger.Named("checker"))

		d := deck.New()
		if maxHands := d.Len() / len(card.Hand{}); countFlag < 1 || countFlag > maxHands {
			return fmt.Errorf("invalid --count %d (want 1 to %d)", countFlag, maxHands)
		}
		d.Shuffle(deck.NewRand(seedFlag))
		log.Debug().Uint64("seed", seedFlag).Int("hands", countFlag).Msg("shuffled deck")

		for i := 0; i < countFlag; i++ {
			h, err := d.DealHand()
			if err != nil {
				return fmt.Errorf("error dealing hand %d: %v", i+1, err)
			}

			res, err := c.Check(h.Tokens())
			if err != nil {
				return fmt.Errorf("error checking dealt hand %s: %v", h.Tokens(), err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n  %s\n",
				color.CyanString(h.Tokens()), h.String(), color.GreenString(res.Category.Label()))
			if cfg.ShowDetail && res.Detail != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", color.New(color.Faint).Sprint(res.Detail))
			}
		}
		return nil
	},
}

func init() {
	dealCmd.Flags().Uint64Var(&seedFlag, "seed", 0, "Shuffle seed (0 picks a random one)")
	dealCmd.Flags().IntVarP(&countFlag, "count", "n", 1, "Number of hands to deal (at most 10)")
}
