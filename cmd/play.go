package cmd

import (
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/arcanaland/handcheck/internal/checker"
	"github.com/arcanaland/handcheck/internal/logger"
	"github.com/arcanaland/handcheck/internal/session"
)

var noHelpFlag bool

// playCmd represents the interactive session
var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Check hands interactively, one per line",
	Long: `Play reads one hand per line and prints the result until 'x' is entered
or input ends. Input may also be piped in:

  printf 'S10,SJ,SQ,SK,S1\nx\n' | handcheck play`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&noHelpFlag, "no-help", false, "Skip the hand reference printed at start")
}

func runPlay(cmd *cobra.Command, args []string) error {
	in := cmd.InOrStdin()
	interactive := isInteractive(in)

	s := session.New(checker.New(logger.Named("checker")), session.Options{
		Color:      !color.NoColor,
		ShowHelp:   cfg.ShowHelp && !noHelpFlag && interactive,
		ShowPrompt: interactive,
		ShowDetail: cfg.ShowDetail,
	})

	return s.Run(cmd.Context(), in, cmd.OutOrStdout())
}

// isInteractive reports whether r is a terminal; readers that are not files never are
func isInteractive(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && isTerminal(f)
}
