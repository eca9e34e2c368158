package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/arcanaland/handcheck/internal/checker"
	"github.com/arcanaland/handcheck/internal/logger"
	"github.com/arcanaland/handcheck/internal/server"
)

var addrFlag string

// serveCmd runs the HTTP API
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve hand classification over HTTP",
	Long: `Serve starts an HTTP server with the following routes:

  GET  /healthz
  GET  /v1/hands
  GET  /v1/classify?cards=S10,SJ,SQ,SK,S1
  POST /v1/classify   {"cards":"S10,SJ,SQ,SK,S1"}

The listen address defaults to listen_addr from the config file.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		addr := cfg.ListenAddr
		if cmd.Flags().Changed("addr") {
			addr = addrFlag
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		srv := server.New(checker.New(logger.Named("checker")), logger.Named("http"))
		return srv.ListenAndServe(ctx, addr)
	},
}

func init() {
	serveCmd.Flags().StringVar(&addrFlag, "addr", "", "Listen address, e.g. :8080")
}
