package server

import (
	"glimpse/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetProfile handles GET /api/users/:id/profile
// @Summary User profile
// @Description Profile view: the user, their posts newest-first, follow state for the caller, and edge counts. Anonymous callers always see is_following=false.
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} service.Profile
// @Failure 404 {object} models.ErrorResponse
// @Router /users/{id}/profile [get]
func (s *Server) GetProfile(c *fiber.Ctx) error {
	targetID, err := s.parseID(c, "id", "user ID")
	if err != nil {
		return nil
	}

	profile, err := s.userService.GetProfile(c.UserContext(), targetID, currentUserID(c))
	if err != nil {
		return models.RespondWithError(c, statusForError(err), err)
	}

	return c.JSON(profile)
}

// FollowUser handles POST /api/users/:id/follow
// @Summary Follow a user
// @Description Add a follow edge from the caller to the target. Repeated follows are no-ops.
// @Tags users
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 204
// @Failure 401 {object} models.ErrorResponse
// @Router /users/{id}/follow [post]
func (s *Server) FollowUser(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	targetID, err := s.parseID(c, "id", "user ID")
	if err != nil {
		return nil
	}

	if err := s.followService.Follow(c.UserContext(), userID, targetID); err != nil {
		return models.RespondWithError(c, statusForError(err), err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// UnfollowUser handles DELETE /api/users/:id/follow
// @Summary Unfollow a user
// @Description Remove the follow edge if present; absent edges are no-ops.
// @Tags users
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 204
// @Failure 401 {object} models.ErrorResponse
// @Router /users/{id}/follow [delete]
func (s *Server) UnfollowUser(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	targetID, err := s.parseID(c, "id", "user ID")
	if err != nil {
		return nil
	}

	if err := s.followService.Unfollow(c.UserContext(), userID, targetID); err != nil {
		return models.RespondWithError(c, statusForError(err), err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
