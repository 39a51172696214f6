package repository

import (
	"context"
	"errors"
	"time"

	"movie-feels-backend/internal/database"
	"movie-feels-backend/internal/models"

	"gorm.io/gorm"
)

type MoodRepository interface {
	FindByName(ctx context.Context, name string) (*models.Mood, error)
	FindOrCreate(ctx context.Context, name string) (*models.Mood, error)
	FindAll(ctx context.Context) ([]models.Mood, error)
}

type moodRepository struct {
	db      *database.Database
	timeout time.Duration
}

func NewMoodRepository(db *database.Database) MoodRepository {
	return &moodRepository{
		db:      db,
		timeout: db.GetQueryTimeout(),
	}
}

func (r *moodRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return queryContext(ctx, r.timeout)
}

func (r *moodRepository) FindByName(ctx context.Context, name string) (*models.Mood, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var mood models.Mood
	err := r.db.WithContext(ctx).Where("mood_name = ?", name).First(&mood).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &mood, nil
}

func (r *moodRepository) FindOrCreate(ctx context.Context, name string) (*models.Mood, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return findOrCreateMood(r.db.WithContext(ctx), name)
}

// FindAll returns every mood ordered by name.
func (r *moodRepository) FindAll(ctx context.Context) ([]models.Mood, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var moods []models.Mood
	err := r.db.WithContext(ctx).Order("mood_name ASC").Find(&moods).Error
	return moods, err
}

func findOrCreateMood(db *gorm.DB, name string) (*models.Mood, error) {
	var mood models.Mood
	err := db.Where("mood_name = ?", name).FirstOrCreate(&mood, models.Mood{Name: name}).Error
	if err != nil {
		return nil, err
	}
	return &mood, nil
}

// queryContext applies timeout unless the caller already set a deadline.
func queryContext(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok || timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, timeout)
}
