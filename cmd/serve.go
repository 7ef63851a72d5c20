package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"docgen/internal/config"
	"docgen/internal/logger"
	"docgen/internal/render"
	"docgen/internal/server"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve document generation over HTTP",
	Long: `Serve starts the HTTP delivery channel: clients POST normalized
document data and receive the finished PDF artifact for download.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		log := logger.WithComponent("serve-cmd")

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("loading configuration: %w", err)
		}

		addr := serveAddr
		if addr == "" {
			addr = cfg.ListenAddr
		}

		composer := render.NewComposer(render.Config{ProofBaseURL: cfg.AppBaseURL})
		srv := server.New(composer)

		log.Info().Str("addr", addr).Msg("Starting HTTP server")
		return srv.Listen(addr)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (defaults to LISTEN_ADDR)")

	rootCmd.AddCommand(serveCmd)
}
