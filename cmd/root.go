package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"docgen/internal/logger"
)

var version = "1.0.0"

var rootCmd = &cobra.Command{
	Use:   "docgen",
	Short: "docgen - legal financial-document composition",
	Long: `docgen composes business documents (invoices, quotes, credit notes,
reminders, delivery notes and more) into printable PDF artifacts with
jurisdiction-correct tax disclosure text and a scannable e-invoice proof
symbol.

Documents can be rendered from the command line or served over HTTP for
download delivery.`,
	Version: version,
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.WithComponent("root")
		log.Info().
			Str("version", version).
			Msg("docgen executed")

		fmt.Println("Use --help to see available commands and options.")
	},
}

func Execute() {
	log := logger.WithComponent("cmd")

	if err := rootCmd.Execute(); err != nil {
		log.Error().
			Err(err).
			Msg("Command execution failed")
		fmt.Fprintf(os.Stderr, "Error executing command: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print version information")
}
