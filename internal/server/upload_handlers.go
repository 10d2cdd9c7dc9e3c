package server

import (
	"log/slog"

	"mentorly/internal/middleware"
	"mentorly/internal/models"

	"github.com/gofiber/fiber/v2"
)

const uploadFailurePrefix = "Could not upload the file: "

// UploadFile handles POST /api/v1/upload
// @Summary Upload a file
// @Description Stores the multipart "file" field and returns its public URL.
// @Tags uploads
// @Accept mpfd
// @Produce json
// @Param file formData file true "File to upload"
// @Success 200 {object} models.UploadResponse
// @Failure 400 {string} string "Could not upload the file: <reason>"
// @Router /upload [post]
func (s *Server) UploadFile(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return uploadFailed(c, "no file in field \"file\"")
	}

	src, err := file.Open()
	if err != nil {
		return uploadFailed(c, err.Error())
	}
	defer func() { _ = src.Close() }()

	url, err := s.files.Store(c.UserContext(), file.Filename, src)
	if err != nil {
		middleware.Logger.WarnContext(c.UserContext(), "upload failed",
			slog.String("filename", file.Filename),
			slog.String("error", err.Error()))
		return uploadFailed(c, err.Error())
	}

	return c.JSON(models.UploadResponse{URL: url})
}

func uploadFailed(c *fiber.Ctx, reason string) error {
	return c.Status(fiber.StatusBadRequest).SendString(uploadFailurePrefix + reason)
}
