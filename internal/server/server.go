// Package server is the HTTP delivery channel for composed documents.
// It receives normalized document data, hands it to the composition engine
// and transmits the finished artifact; it knows nothing about how the
// bytes were produced.
package server

import (
	"github.com/gofiber/fiber/v2"

	"docgen/pkg/models"
)

// Generator composes normalized document data into a PDF artifact.
// *render.Composer is the production implementation.
type Generator interface {
	Generate(data *models.DocumentData) ([]byte, error)
}

// Server wraps the Fiber app and its collaborators.
type Server struct {
	app      *fiber.App
	composer Generator
}

// New builds the HTTP server around an existing composer.
func New(composer Generator) *Server {
	app := fiber.New(fiber.Config{
		AppName:               "docgen",
		DisableStartupMessage: true,
	})

	s := &Server{app: app, composer: composer}

	app.Use(RequestID())
	app.Use(RequestLogger())
	s.registerRoutes()

	return s
}

// Listen blocks serving HTTP on the given address.
func (s *Server) Listen(addr string) error {
	return s.app.Listen(addr)
}

// App exposes the underlying Fiber app for tests.
func (s *Server) App() *fiber.App {
	return s.app
}
