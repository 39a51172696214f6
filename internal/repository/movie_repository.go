package repository

import (
	"context"
	"sort"
	"strings"
	"time"

	"movie-feels-backend/internal/database"
	"movie-feels-backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type MovieRepository interface {
	// CreateWithMoods stores the movie and one association per mood in a
	// single transaction, creating moods that do not exist yet.
	CreateWithMoods(ctx context.Context, movie *models.Movie, moods map[string]float64) error
	SearchByTitle(ctx context.Context, title string) ([]models.Movie, error)

	// Mood matching
	FindMoodMatches(ctx context.Context, moodNames []string) ([]models.MoodMatch, error)
	FindByIDsWithMoods(ctx context.Context, ids []uint) ([]models.Movie, error)
}

type movieRepository struct {
	db      *database.Database
	timeout time.Duration
}

func NewMovieRepository(db *database.Database) MovieRepository {
	return &movieRepository{
		db:      db,
		timeout: db.GetQueryTimeout(),
	}
}

func (r *movieRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return queryContext(ctx, r.timeout)
}

func (r *movieRepository) CreateWithMoods(ctx context.Context, movie *models.Movie, moods map[string]float64) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	names := make([]string, 0, len(moods))
	for name := range moods {
		names = append(names, name)
	}
	sort.Strings(names)

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(movie).Error; err != nil {
			return err
		}

		for _, name := range names {
			mood, err := findOrCreateMood(tx, name)
			if err != nil {
				return err
			}

			association := models.MovieMood{
				MovieID: movie.ID,
				MoodID:  mood.ID,
				Score:   moods[name],
			}
			if err := tx.Omit(clause.Associations).Create(&association).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *movieRepository) SearchByTitle(ctx context.Context, title string) ([]models.Movie, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var movies []models.Movie
	pattern := "%" + strings.ToLower(title) + "%"
	err := r.db.WithContext(ctx).
		Preload("MovieMoods.Mood").
		Where("LOWER(title) LIKE ?", pattern).
		Order("created_at DESC, id DESC").
		Find(&movies).Error
	if err != nil {
		return nil, err
	}
	return movies, nil
}

func (r *movieRepository) FindMoodMatches(ctx context.Context, moodNames []string) ([]models.MoodMatch, error) {
	if len(moodNames) == 0 {
		return nil, nil
	}

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var matches []models.MoodMatch
	err := r.db.WithContext(ctx).
		Table("movie_moods").
		Select("movie_moods.movie_id AS movie_id, moods.mood_name AS mood_name, COALESCE(movie_moods.score, 0) AS score").
		Joins("JOIN moods ON moods.id = movie_moods.mood_id").
		Where("moods.mood_name IN ?", moodNames).
		Order("movie_moods.movie_id, moods.mood_name").
		Scan(&matches).Error
	if err != nil {
		return nil, err
	}
	return matches, nil
}

// FindByIDsWithMoods loads movies with every mood association they carry.
// Order of the result is unspecified.
func (r *movieRepository) FindByIDsWithMoods(ctx context.Context, ids []uint) ([]models.Movie, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var movies []models.Movie
	err := r.db.WithContext(ctx).
		Preload("MovieMoods.Mood").
		Where("id IN ?", ids).
		Find(&movies).Error
	if err != nil {
		return nil, err
	}
	return movies, nil
}
