package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"
)

// Lyrics handles GET /lyrics/:videoId. A video without resolvable lyrics is
// a 404, not a server error; only upstream failures produce a 500.
func (h *Handler) Lyrics(c *fiber.Ctx) error {
	videoID := c.Params("videoId")

	result, err := h.music.GetLyrics(c.Context(), videoID)
	if err != nil {
		log.Println("lyrics upstream error:", err)

		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error: err.Error(),
		})
	}

	if result.Lyrics == "" {
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
			Error:   "Lyrics not found for this video.",
			VideoID: videoID,
		})
	}

	return c.JSON(LyricsResponse{
		Success:  true,
		VideoID:  videoID,
		BrowseID: result.BrowseID,
		Lyrics:   result.Lyrics,
	})
}
