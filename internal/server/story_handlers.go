package server

import (
	"glimpse/internal/models"
	"glimpse/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreateStory handles POST /api/stories (multipart/form-data)
// @Summary Create a story
// @Description Create a media-only story with optional image and video attachments.
// @Tags stories
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param image formData file false "Image attachment"
// @Param video formData file false "Video attachment"
// @Success 201 {object} models.Story
// @Failure 401 {object} models.ErrorResponse
// @Router /stories [post]
func (s *Server) CreateStory(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	imageRef, err := s.saveFormFile(c, "image", s.uploads.SaveImage)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Unable to store image upload"))
	}
	videoRef, err := s.saveFormFile(c, "video", s.uploads.SaveVideo)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Unable to store video upload"))
	}

	story, err := s.storyService.CreateStory(c.UserContext(), service.CreateStoryInput{
		UserID:   userID,
		ImageRef: imageRef,
		VideoRef: videoRef,
	})
	if err != nil {
		return models.RespondWithError(c, statusForError(err), err)
	}

	return c.Status(fiber.StatusCreated).JSON(story)
}
