package server

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"docgen/internal/logger"
	"docgen/internal/render"
	"docgen/pkg/models"
)

// errorPayload defines the standardized error response body.
type errorPayload struct {
	RequestID string        `json:"request_id"`
	Error     errorEnvelope `json:"error"`
}

type errorEnvelope struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (s *Server) registerRoutes() {
	// Liveness probe
	s.app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	s.app.Post("/api/documents/pdf", s.handleGeneratePDF)
}

// handleGeneratePDF decodes a normalized document and replies with the
// composed PDF. Input defects map to 400 with the human-readable reason;
// everything else is an internal error.
func (s *Server) handleGeneratePDF(c *fiber.Ctx) error {
	var data models.DocumentData
	if err := c.BodyParser(&data); err != nil {
		return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "request body is not valid document data")
	}

	pdf, err := s.composer.Generate(&data)
	if err != nil {
		if render.IsInputDefect(err) {
			return writeError(c, fiber.StatusBadRequest, "INVALID_DOCUMENT", err.Error())
		}
		log := logger.WithRequestID(requestIDFromCtx(c))
		log.Error().
			Err(err).
			Str("document_number", data.DocumentNumber).
			Msg("Document generation failed")
		return writeError(c, fiber.StatusInternalServerError, "GENERATION_FAILED", "document generation failed")
	}

	filename := data.DocumentNumber + ".pdf"
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(pdf)
}

// writeError writes a standardized JSON error response.
func writeError(c *fiber.Ctx, status int, code, message string) error {
	res := errorPayload{
		RequestID: requestIDFromCtx(c),
		Error: errorEnvelope{
			Code:    code,
			Message: message,
		},
	}
	return c.Status(status).JSON(res)
}
