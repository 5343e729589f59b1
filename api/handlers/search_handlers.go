package handlers

import (
	"fmt"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gookit/goutil/arrutil"

	"github.com/w3Abhishek/ytm-api/api/services/ytmusic"
)

// Search handles GET /search?q=<query>&type=<type>.
func (h *Handler) Search(c *fiber.Ctx) error {
	query := c.Query("q")
	searchType := c.Query("type", string(ytmusic.TypeAll))

	if query == "" {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "Missing required parameter: q",
		})
	}

	if !arrutil.Contains(ytmusic.SearchTypes, searchType) {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: fmt.Sprintf("Invalid type: %q. Valid types: %s", searchType, strings.Join(ytmusic.SearchTypes, ", ")),
		})
	}

	raw, err := h.music.Search(c.Context(), query, ytmusic.SearchType(searchType))
	if err != nil {
		log.Println("search upstream error:", err)

		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error: err.Error(),
		})
	}

	parsed := ytmusic.ParseSearchResponse(raw, ytmusic.SearchType(searchType))

	return c.JSON(SearchResponse{
		Success:   true,
		Query:     query,
		Type:      searchType,
		TopResult: parsed.TopResult,
		Results:   parsed.Results,
	})
}
