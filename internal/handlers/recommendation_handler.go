package handlers

import (
	"context"

	"movie-feels-backend/internal/services"
	"movie-feels-backend/internal/utils"
	"movie-feels-backend/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// RequestIDKey is the Locals key the requestid middleware writes to.
const RequestIDKey = "requestid"

type RecommendationHandler struct {
	service services.RecommendationService
	logger  *logrus.Logger
}

func NewRecommendationHandler(service services.RecommendationService, logger *logrus.Logger) *RecommendationHandler {
	return &RecommendationHandler{
		service: service,
		logger:  logger,
	}
}

// Recommend godoc
// @Summary Recommend movies for a mood
// @Description Rank stored movies against the selected moods. With preference "congruence" the moods are matched as given, any other value repairs negative moods first. Non-blank personalNotes let the language model move its picks to the front.
// @Tags recommendations
// @Accept json
// @Produce json
// @Param request body RecommendationRequest true "Mood selection"
// @Success 200 {object} utils.StandardResponse{data=models.RecommendationResult{movies=[]models.RankedMovieView}} "Ranked movies"
// @Failure 400 {object} utils.StandardResponse "Invalid request body"
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /recommendations [post]
func (h *RecommendationHandler) Recommend(c *fiber.Ctx) error {
	var req RecommendationRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validation.ValidateStruct(req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	}

	var ctx context.Context = c.Context()
	if id, ok := c.Locals(RequestIDKey).(string); ok {
		ctx = services.WithRequestID(ctx, id)
	}

	result, err := h.service.Recommend(ctx, req.toModel())
	if err != nil {
		h.logger.WithError(err).Error("Failed to generate recommendations")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, err.Error())
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Recommendations generated successfully", result)
}
