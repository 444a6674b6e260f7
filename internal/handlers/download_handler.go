package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"atscv/cv-converter/internal/models"
	"atscv/cv-converter/internal/services"
)

type DownloadHandler struct {
	store services.FileStore
}

func NewDownloadHandler(store services.FileStore) *DownloadHandler {
	return &DownloadHandler{
		store: store,
	}
}

// HandleDownload handles GET /download. Each token works exactly once: the
// artifact is removed from the store as part of the lookup, so a repeated or
// unknown token is a plain 404.
func (h *DownloadHandler) HandleDownload(c *fiber.Ctx) error {
	token := c.Query("fileId")
	if token == "" {
		return c.Status(fiber.StatusBadRequest).SendString("fileId is required.")
	}

	fileName := c.Query("filename", "download")

	content, ok := h.store.Take(token)
	if !ok {
		return c.SendStatus(fiber.StatusNotFound)
	}

	c.Set(fiber.HeaderContentType, models.GenericContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", fileName))
	c.Set(fiber.HeaderCacheControl, "no-cache, no-store, must-revalidate")
	c.Set("Pragma", "no-cache")
	c.Set("Expires", "0")

	return c.Send(content)
}
