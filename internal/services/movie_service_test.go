package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"movie-feels-backend/internal/models"
	"movie-feels-backend/internal/recommend"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMoodRepo struct {
	moods   []models.Mood
	failOn  string
	findErr error
	finds   int
	creates int
}

func (f *fakeMoodRepo) lookup(name string) *models.Mood {
	for i := range f.moods {
		if f.moods[i].Name == name {
			return &f.moods[i]
		}
	}
	return nil
}

func (f *fakeMoodRepo) FindByName(_ context.Context, name string) (*models.Mood, error) {
	f.finds++
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.lookup(name), nil
}

func (f *fakeMoodRepo) FindOrCreate(_ context.Context, name string) (*models.Mood, error) {
	if name == f.failOn {
		return nil, errors.New("unique violation")
	}
	if m := f.lookup(name); m != nil {
		return m, nil
	}
	f.creates++
	f.moods = append(f.moods, models.Mood{ID: uint(len(f.moods) + 1), Name: name})
	return &f.moods[len(f.moods)-1], nil
}

func (f *fakeMoodRepo) FindAll(context.Context) ([]models.Mood, error) {
	return f.moods, nil
}

type prefixPosters struct{}

func (prefixPosters) ResolvePosterURL(_ context.Context, ref string) string {
	return "https://cdn.example/" + ref
}

func TestSeedMoodsIsIdempotent(t *testing.T) {
	moods := &fakeMoodRepo{}
	svc := NewMovieService(&fakeMovieRepo{}, moods, nil, quietLogger())

	require.NoError(t, svc.SeedMoods(context.Background()))
	assert.Equal(t, 12, moods.creates)

	require.NoError(t, svc.SeedMoods(context.Background()))
	assert.Len(t, moods.moods, 12)
	assert.Equal(t, 24, moods.finds)
	assert.Equal(t, 12, moods.creates, "second run only looks moods up")
	assert.Equal(t, recommend.CanonicalMoods()[0], moods.moods[0].Name)
}

func TestSeedMoodsCreatesOnlyMissing(t *testing.T) {
	moods := &fakeMoodRepo{moods: []models.Mood{{ID: 1, Name: recommend.MoodCalm}}}
	svc := NewMovieService(&fakeMovieRepo{}, moods, nil, quietLogger())

	require.NoError(t, svc.SeedMoods(context.Background()))
	assert.Equal(t, 11, moods.creates)
	assert.Len(t, moods.moods, 12)
}

func TestSeedMoodsLookupFailure(t *testing.T) {
	moods := &fakeMoodRepo{findErr: errors.New("connection refused")}
	svc := NewMovieService(&fakeMovieRepo{}, moods, nil, quietLogger())

	err := svc.SeedMoods(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to look up mood")
	assert.Zero(t, moods.creates)
}

func TestSeedMoodsReportsFailure(t *testing.T) {
	moods := &fakeMoodRepo{failOn: recommend.MoodCalm}
	svc := NewMovieService(&fakeMovieRepo{}, moods, nil, quietLogger())

	err := svc.SeedMoods(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"Calm"`)
}

func TestCreateMovie(t *testing.T) {
	repo := &fakeMovieRepo{}
	svc := NewMovieService(repo, &fakeMoodRepo{}, prefixPosters{}, quietLogger())

	created, err := svc.CreateMovie(context.Background(), models.NewMovie{
		Title:     "  Paterson ",
		Year:      2016,
		ImageURL:  "paterson.jpg",
		Synopsis:  "A bus driver writes poems.",
		Storyline: "A week in the life of a bus driver.",
		Moods:     map[string]float64{recommend.MoodCalm: 0.9, recommend.MoodReflective: 1},
	})
	require.NoError(t, err)

	assert.Equal(t, uint(1), created.ID)
	assert.Equal(t, "Paterson", created.Title)
	assert.Equal(t, 2, created.MoodsRecorded)
	assert.Equal(t, "https://cdn.example/paterson.jpg", created.ImageURL)
	require.Len(t, repo.created, 1)
	assert.Equal(t, "paterson.jpg", repo.created[0].ImageURL)
}

func TestCreateMovieWrapsStorageError(t *testing.T) {
	repo := &fakeMovieRepo{createErr: errors.New("duplicate key")}
	svc := NewMovieService(repo, &fakeMoodRepo{}, nil, quietLogger())

	_, err := svc.CreateMovie(context.Background(), models.NewMovie{Title: "Heat"})
	require.Error(t, err)
	assert.Equal(t, "database error: duplicate key", err.Error())
}

func TestSearchMovies(t *testing.T) {
	now := time.Now().UTC()
	repo := &fakeMovieRepo{searchResult: []models.Movie{
		movieWithMoods(2, "Dark Waters", map[string]float64{"Angry": 0.7, "Curious": 0.6}),
		movieWithMoods(1, "The Dark Knight", nil),
	}}
	repo.searchResult[0].CreatedAt = now
	svc := NewMovieService(repo, &fakeMoodRepo{}, nil, quietLogger())

	results, err := svc.SearchMovies(context.Background(), "dark")
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, "Dark Waters", results[0].Title)
	assert.Equal(t, []string{"Angry", "Curious"}, results[0].Moods)
	assert.Equal(t, now, results[0].CreatedAt)
	assert.Equal(t, []string{}, results[1].Moods)
}

func TestSearchMoviesError(t *testing.T) {
	repo := &fakeMovieRepo{searchErr: errors.New("timeout")}
	svc := NewMovieService(repo, &fakeMoodRepo{}, nil, quietLogger())

	_, err := svc.SearchMovies(context.Background(), "dark")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to search movies by title")
}
