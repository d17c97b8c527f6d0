package server

import (
	"github.com/gofiber/fiber/v2"

	"glimpse/internal/models"
)

// GetFeed handles GET /api/feed
// @Summary Home feed
// @Description Posts (newest first) and stories from the caller and everyone they follow
// @Tags feed
// @Produce json
// @Security BearerAuth
// @Success 200 {object} service.Feed
// @Failure 401 {object} models.ErrorResponse
// @Router /feed [get]
func (s *Server) GetFeed(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	feed, err := s.feedService.BuildFeed(c.UserContext(), userID)
	if err != nil {
		return models.RespondWithError(c, statusForError(err), err)
	}

	return c.JSON(feed)
}
