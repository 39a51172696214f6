package routes

import (
	"movie-feels-backend/internal/handlers"

	"github.com/gofiber/fiber/v2"
)

func Setup(app *fiber.App, movieHandler *handlers.MovieHandler, recommendationHandler *handlers.RecommendationHandler) {
	// API versioning
	api := app.Group("/api")
	v1 := api.Group("/v1")

	movies := v1.Group("/movies")
	{
		movies.Post("/", movieHandler.CreateMovie)
		movies.Get("/search", movieHandler.SearchMovies)
	}

	v1.Get("/moods", movieHandler.ListMoods)

	v1.Post("/recommendations", recommendationHandler.Recommend)
}
