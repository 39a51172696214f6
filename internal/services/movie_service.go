package services

import (
	"context"
	"fmt"
	"strings"

	"movie-feels-backend/internal/models"
	"movie-feels-backend/internal/recommend"
	"movie-feels-backend/internal/repository"

	"github.com/sirupsen/logrus"
)

type MovieService interface {
	CreateMovie(ctx context.Context, input models.NewMovie) (*models.CreatedMovie, error)
	SearchMovies(ctx context.Context, title string) ([]models.MovieSummary, error)

	// Mood operations
	ListMoods(ctx context.Context) ([]models.Mood, error)
	SeedMoods(ctx context.Context) error
}

type movieService struct {
	repo     repository.MovieRepository
	moodRepo repository.MoodRepository
	posters  PosterResolver
	logger   *logrus.Logger
}

// NewMovieService builds the movie service. A nil posters resolver returns
// poster references unchanged.
func NewMovieService(repo repository.MovieRepository, moodRepo repository.MoodRepository, posters PosterResolver, logger *logrus.Logger) MovieService {
	if posters == nil {
		posters = PassthroughPosters{}
	}
	return &movieService{
		repo:     repo,
		moodRepo: moodRepo,
		posters:  posters,
		logger:   logger,
	}
}

func (s *movieService) CreateMovie(ctx context.Context, input models.NewMovie) (*models.CreatedMovie, error) {
	movie := &models.Movie{
		Title:     strings.TrimSpace(input.Title),
		Year:      input.Year,
		ImageURL:  input.ImageURL,
		Synopsis:  input.Synopsis,
		Storyline: input.Storyline,
	}

	if err := s.repo.CreateWithMoods(ctx, movie, input.Moods); err != nil {
		s.logger.WithError(err).WithField("title", movie.Title).Error("Failed to store movie")
		return nil, fmt.Errorf("database error: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"id":    movie.ID,
		"title": movie.Title,
		"moods": len(input.Moods),
	}).Info("Movie stored")

	return &models.CreatedMovie{
		ID:            movie.ID,
		Title:         movie.Title,
		Year:          movie.Year,
		ImageURL:      s.posters.ResolvePosterURL(ctx, movie.ImageURL),
		Synopsis:      movie.Synopsis,
		Storyline:     movie.Storyline,
		MoodsRecorded: len(input.Moods),
	}, nil
}

func (s *movieService) SearchMovies(ctx context.Context, title string) ([]models.MovieSummary, error) {
	movies, err := s.repo.SearchByTitle(ctx, title)
	if err != nil {
		return nil, fmt.Errorf("failed to search movies by title: %w", err)
	}

	results := make([]models.MovieSummary, 0, len(movies))
	for i := range movies {
		m := &movies[i]
		results = append(results, models.MovieSummary{
			ID:        m.ID,
			Title:     m.Title,
			Year:      m.Year,
			Synopsis:  m.Synopsis,
			Storyline: m.Storyline,
			ImageURL:  s.posters.ResolvePosterURL(ctx, m.ImageURL),
			CreatedAt: m.CreatedAt,
			Moods:     m.MoodNames(),
		})
	}
	return results, nil
}

func (s *movieService) ListMoods(ctx context.Context) ([]models.Mood, error) {
	moods, err := s.moodRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list moods: %w", err)
	}
	return moods, nil
}

// SeedMoods makes sure every canonical mood has a row. Existing rows are left alone.
func (s *movieService) SeedMoods(ctx context.Context) error {
	created := 0
	for _, name := range recommend.CanonicalMoods() {
		existing, err := s.moodRepo.FindByName(ctx, name)
		if err != nil {
			return fmt.Errorf("failed to look up mood %q: %w", recommend.ShortName(name), err)
		}
		if existing != nil {
			continue
		}

		if _, err := s.moodRepo.FindOrCreate(ctx, name); err != nil {
			return fmt.Errorf("failed to seed mood %q: %w", recommend.ShortName(name), err)
		}
		created++
	}

	s.logger.WithFields(logrus.Fields{
		"count":   len(recommend.CanonicalMoods()),
		"created": created,
	}).Info("Moods initialized")
	return nil
}
