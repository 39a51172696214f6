package handlers

import (
	"movie-feels-backend/internal/services"
	"movie-feels-backend/internal/utils"
	"movie-feels-backend/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type MovieHandler struct {
	service services.MovieService
	logger  *logrus.Logger
}

func NewMovieHandler(service services.MovieService, logger *logrus.Logger) *MovieHandler {
	return &MovieHandler{
		service: service,
		logger:  logger,
	}
}

// CreateMovie godoc
// @Summary Create a new movie
// @Description Store a movie together with its mood scores. Unknown moods are created on the fly.
// @Tags movies
// @Accept json
// @Produce json
// @Param movie body CreateMovieRequest true "Movie with mood scores"
// @Success 201 {object} utils.StandardResponse{data=models.CreatedMovie} "Movie created successfully"
// @Failure 400 {object} utils.StandardResponse "Invalid request body"
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /movies [post]
func (h *MovieHandler) CreateMovie(c *fiber.Ctx) error {
	ctx := c.Context()

	var req CreateMovieRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validation.ValidateStruct(req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	}

	movie, err := h.service.CreateMovie(ctx, req.toModel())
	if err != nil {
		h.logger.WithError(err).Error("Failed to create movie")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, err.Error())
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, "Movie created successfully", movie)
}

// SearchMovies godoc
// @Summary Search movies by title
// @Description Case-insensitive substring search on the title, newest first
// @Tags movies
// @Produce json
// @Param title query string true "Part of the title"
// @Success 200 {object} utils.StandardResponse{data=[]models.MovieSummary} "Matching movies"
// @Failure 400 {object} utils.StandardResponse "Missing title"
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /movies/search [get]
func (h *MovieHandler) SearchMovies(c *fiber.Ctx) error {
	ctx := c.Context()

	var query SearchMoviesQuery
	if err := c.QueryParser(&query); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid query parameters")
	}
	if err := validation.ValidateStruct(query); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	}

	movies, err := h.service.SearchMovies(ctx, query.Title)
	if err != nil {
		h.logger.WithError(err).WithField("title", query.Title).Error("Failed to search movies")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, err.Error())
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Movies retrieved successfully", movies)
}

// ListMoods godoc
// @Summary List moods
// @Description All known moods in alphabetical order
// @Tags moods
// @Produce json
// @Success 200 {object} utils.StandardResponse{data=[]models.Mood} "List of moods"
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /moods [get]
func (h *MovieHandler) ListMoods(c *fiber.Ctx) error {
	moods, err := h.service.ListMoods(c.Context())
	if err != nil {
		h.logger.WithError(err).Error("Failed to list moods")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, err.Error())
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Moods retrieved successfully", moods)
}
