package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/arcanaland/handcheck/internal/config"
	"github.com/arcanaland/handcheck/internal/logger"
)

// cfg is the loaded configuration with command line overrides applied
var cfg *config.Config

var (
	logLevelFlag string
	colorFlag    string
	detailFlag   bool
)

// RootCmd represents the base command. Without a subcommand it starts an interactive session.
var RootCmd = &cobra.Command{
	Use:   "handcheck",
	Short: "Classify five-card poker hands",
	Long: `Handcheck reads five playing cards such as "S10,SJ,SQ,SK,S1" and reports
which poker hand they make, from Royal Flush down to Nothing.

Suits are S, H, D and C. Ranks are 1 (Ace) to 13 (King); A, J, Q and K are
accepted as well.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	RunE:              runPlay,
}

func init() {
	RootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "Log level (trace, debug, info, warn, error, off)")
	RootCmd.PersistentFlags().StringVar(&colorFlag, "color", "", "Colour output: auto, always or never")
	RootCmd.PersistentFlags().BoolVar(&detailFlag, "detail", false, "Show a conventional description next to each result")

	RootCmd.AddCommand(playCmd)
	RootCmd.AddCommand(checkCmd)
	RootCmd.AddCommand(handsCmd)
	RootCmd.AddCommand(dealCmd)
	RootCmd.AddCommand(serveCmd)
	RootCmd.AddCommand(configCmd)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}

// setup loads the config file, applies flag overrides and initialises logging and colour
func setup(cmd *cobra.Command, args []string) error {
	loaded, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("error loading config: %v", err)
	}

	if cmd.Flags().Changed("log-level") {
		loaded.LogLevel = logLevelFlag
	}
	if cmd.Flags().Changed("color") {
		loaded.Color = colorFlag
	}
	if cmd.Flags().Changed("detail") {
		loaded.ShowDetail = detailFlag
	}
	if err := loaded.Validate(); err != nil {
		return err
	}
	cfg = loaded

	logger.Init(logger.Options{Level: cfg.LogLevel, Format: cfg.LogFormat})

	color.NoColor = !useColor()
	if color.NoColor {
		pterm.DisableColor()
	}
	return nil
}

// useColor resolves the colour mode against the terminal
func useColor() bool {
	switch cfg.Color {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default:
		return isTerminal(os.Stdout)
	}
}

// isTerminal reports whether f is attached to a terminal
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
