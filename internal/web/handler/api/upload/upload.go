// Package upload serves the admin file upload endpoint.
package upload

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/gamelanding/gamelanding/internal/metrics"
	store "github.com/gamelanding/gamelanding/internal/upload"
	"github.com/gamelanding/gamelanding/internal/web/handler"
	"github.com/gamelanding/gamelanding/internal/web/middleware/auth"
)

const (
	// Path receives multipart uploads.
	Path = "/upload"
	// FormField is the multipart field holding the file.
	FormField = "file"

	msgNoFile          = "No file uploaded."
	msgUnsupportedType = "Only image files can be uploaded."
)

// Service is the upload handler service.
type Service struct {
	handler.Service
	deps *handler.Deps
}

// Init registers the upload route.
func (s *Service) Init(router fiber.Router, deps *handler.Deps) error {
	if router == nil || deps.Check() != nil || deps.Uploads == nil {
		return handler.ErrNilDeps
	}

	s.deps = deps

	router.Post(Path, auth.RequireAdmin, s.Post)

	return nil
}

// Post stores the file and answers with its public url.
func (s *Service) Post(c *fiber.Ctx) error {
	fh, err := c.FormFile(FormField)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": msgNoFile})
	}

	if !store.Allowed(fh.Filename) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": msgUnsupportedType})
	}

	f, err := fh.Open()
	if err != nil {
		return fmt.Errorf("open uploaded file: %w", err)
	}
	defer f.Close()

	url, size, err := s.deps.Uploads.Save(c.UserContext(), fh.Filename, f)
	if err != nil {
		return err
	}

	metrics.RecordUpload(size)
	log.Info().Str("url", url).Int64("size", size).Msg("file uploaded")

	return c.JSON(fiber.Map{"url": url})
}
