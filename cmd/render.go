package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"docgen/internal/config"
	"docgen/internal/logger"
	"docgen/internal/render"
	"docgen/pkg/models"
)

var (
	renderInputPath  string
	renderOutputPath string
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a document JSON file to a PDF",
	Long: `Render reads a normalized document-data JSON file and composes it into
a finished PDF artifact.

Example:
  docgen render -i invoice.json -o invoice.pdf`,
	RunE: func(cmd *cobra.Command, args []string) error {
		log := logger.WithComponent("render-cmd")

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("loading configuration: %w", err)
		}

		raw, err := os.ReadFile(renderInputPath)
		if err != nil {
			return fmt.Errorf("reading input: %w", err)
		}

		var data models.DocumentData
		if err := json.Unmarshal(raw, &data); err != nil {
			return fmt.Errorf("parsing document data: %w", err)
		}

		composer := render.NewComposer(render.Config{ProofBaseURL: cfg.AppBaseURL})
		pdf, err := composer.Generate(&data)
		if err != nil {
			return fmt.Errorf("composing document: %w", err)
		}

		if err := os.WriteFile(renderOutputPath, pdf, 0644); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}

		log.Info().
			Str("input", renderInputPath).
			Str("output", renderOutputPath).
			Int("size_bytes", len(pdf)).
			Msg("Document rendered")

		return nil
	},
}

func init() {
	renderCmd.Flags().StringVarP(&renderInputPath, "input", "i", "", "Path to the document-data JSON file (required)")
	renderCmd.Flags().StringVarP(&renderOutputPath, "output", "o", "document.pdf", "Path of the PDF file to write")
	renderCmd.MarkFlagRequired("input")

	rootCmd.AddCommand(renderCmd)
}
