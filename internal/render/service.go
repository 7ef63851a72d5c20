// Package render composes legal financial documents (invoices, quotes,
// credit notes, reminders, delivery notes and related types) into printable
// single-page PDF artifacts.
//
// The composer drives a fixed, ordered pipeline of section builders against
// a fresh drawing surface: logo, title, header, intro text, items table,
// totals and tax disclosure, footer notice text, and the legal footer. Each
// builder is a function of (surface, data, offset) returning the next
// vertical offset; sections with no content for the given data draw nothing
// and pass the offset through unchanged.
//
// Failure policy:
//   - Input defects (missing document number, no line items) fail fast with
//     a descriptive error.
//   - Degradable asset failures (unreachable logo, proof-QR encoding) are
//     absorbed inside the failing section and replaced with a visible
//     fallback; they never abort the composition.
//   - Unknown enumeration values (tax-rule codes, document types) resolve to
//     passthrough or default text, since approximate legal text is better
//     than a failed generation.
//
// The engine holds no state across calls: every generation gets its own
// surface and layout cursor, so concurrent calls need no coordination.
package render

import (
	"strings"

	"github.com/rs/zerolog"

	"docgen/internal/logger"
	"docgen/pkg/models"
)

// Page geometry in millimetres, A4 portrait.
const (
	pageLeft  = 20.0
	pageRight = 190.0
	pageTop   = 20.0
	metaColX  = 120.0 // left edge of the document-metadata column
	contentW  = pageRight - pageLeft
)

// DefaultProofBaseURL is the retrieval origin encoded into proof symbols
// when no explicit base URL is configured.
const DefaultProofBaseURL = "https://app.example.com"

// Config holds the composer's environment-dependent settings.
type Config struct {
	// ProofBaseURL is the public origin the e-invoice retrieval URL is
	// built against.
	ProofBaseURL string
}

// Composer renders DocumentData into finished PDF artifacts. A single
// Composer is safe for concurrent use.
type Composer struct {
	cfg Config
	log zerolog.Logger
}

// NewComposer creates a Composer with the given configuration.
func NewComposer(cfg Config) *Composer {
	if cfg.ProofBaseURL == "" {
		cfg.ProofBaseURL = DefaultProofBaseURL
	}
	return &Composer{
		cfg: cfg,
		log: logger.WithComponent("render"),
	}
}

// Generate composes the document and returns the finished PDF bytes.
// It is the primary entry point for callers delivering documents by
// download or e-mail.
func (c *Composer) Generate(data *models.DocumentData) ([]byte, error) {
	if err := validateInput(data); err != nil {
		return nil, wrapComposeError("Generate", err, "")
	}

	surface := newPDFSurface()
	if err := c.Compose(surface, data); err != nil {
		return nil, err
	}

	out, err := surface.output()
	if err != nil {
		return nil, wrapComposeError("Generate", ErrSurfaceFailed, err.Error())
	}

	c.log.Info().
		Str("document_type", string(data.DocumentType)).
		Str("document_number", data.DocumentNumber).
		Int("size_bytes", len(out)).
		Msg("Document composed")

	return out, nil
}

// Compose runs the section pipeline against an externally supplied surface.
// Callers normally use Generate; Compose exists so alternative surfaces
// (including recording fakes) can observe the drawn content.
func (c *Composer) Compose(s Surface, data *models.DocumentData) error {
	if err := validateInput(data); err != nil {
		return wrapComposeError("Compose", err, "")
	}

	y := pageTop
	y = c.buildLogo(s, data, y)
	y = c.buildTitle(s, data, y)
	y = c.buildHeader(s, data, y)
	y = c.buildIntro(s, data, y)
	y = c.buildItemsTable(s, data, y)
	y = c.buildTotals(s, data, y)
	y = c.buildFooterText(s, data, y)
	c.buildFooterLegal(s, data, y)

	return nil
}

// validateInput rejects documents that would render blank or unidentifiable.
func validateInput(data *models.DocumentData) error {
	if data == nil || strings.TrimSpace(data.DocumentNumber) == "" {
		return ErrMissingDocumentNumber
	}
	if len(data.Items) == 0 {
		return ErrNoLineItems
	}
	return nil
}
