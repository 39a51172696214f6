package services

import (
	"context"
	"errors"
	"testing"

	"movie-feels-backend/internal/models"
	"movie-feels-backend/internal/recommend"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMovieRepo struct {
	movies       map[uint]models.Movie
	matchErr     error
	created      []*models.Movie
	createErr    error
	searchResult []models.Movie
	searchErr    error
	lastTargets  []string
}

func (f *fakeMovieRepo) CreateWithMoods(_ context.Context, movie *models.Movie, _ map[string]float64) error {
	if f.createErr != nil {
		return f.createErr
	}
	movie.ID = uint(len(f.created) + 1)
	f.created = append(f.created, movie)
	return nil
}

func (f *fakeMovieRepo) SearchByTitle(context.Context, string) ([]models.Movie, error) {
	return f.searchResult, f.searchErr
}

func (f *fakeMovieRepo) FindMoodMatches(_ context.Context, moodNames []string) ([]models.MoodMatch, error) {
	f.lastTargets = moodNames
	if f.matchErr != nil {
		return nil, f.matchErr
	}
	wanted := make(map[string]bool, len(moodNames))
	for _, n := range moodNames {
		wanted[n] = true
	}

	var matches []models.MoodMatch
	for id := uint(1); id <= uint(len(f.movies)); id++ {
		for _, mm := range f.movies[id].MovieMoods {
			if wanted[mm.Mood.Name] {
				matches = append(matches, models.MoodMatch{MovieID: id, MoodName: mm.Mood.Name, Score: mm.Score})
			}
		}
	}
	return matches, nil
}

func (f *fakeMovieRepo) FindByIDsWithMoods(_ context.Context, ids []uint) ([]models.Movie, error) {
	out := make([]models.Movie, 0, len(ids))
	for _, id := range ids {
		if m, ok := f.movies[id]; ok {
			out = append(out, m)
		}
	}
	return out, nil
}

type fakeRanker struct {
	titles []string
	err    error
	calls  int
	input  RerankInput
}

func (f *fakeRanker) RankTitles(_ context.Context, input RerankInput) ([]string, error) {
	f.calls++
	f.input = input
	return f.titles, f.err
}

func movieWithMoods(id uint, title string, scores map[string]float64) models.Movie {
	m := models.Movie{ID: id, Title: title, Year: 2000 + int(id)}
	for name, score := range scores {
		m.MovieMoods = append(m.MovieMoods, models.MovieMood{MovieID: id, Score: score, Mood: models.Mood{Name: name}})
	}
	return m
}

// Catalogue used by most tests. Under repair of Angry (Calm, Happy,
// Reflective) the baseline is: Paterson 0.9, Amélie 0.8, Up 0.7, Coco 0.6.
// Heat has no target mood.
func catalogue() *fakeMovieRepo {
	return &fakeMovieRepo{movies: map[uint]models.Movie{
		1: movieWithMoods(1, "Up", map[string]float64{recommend.MoodHappy: 0.8, recommend.MoodCalm: 0.6, recommend.MoodLonely: 0.9}),
		2: movieWithMoods(2, "Heat", map[string]float64{recommend.MoodIntense: 1}),
		3: movieWithMoods(3, "Paterson", map[string]float64{recommend.MoodReflective: 0.9}),
		4: movieWithMoods(4, "Coco", map[string]float64{recommend.MoodHappy: 0.6}),
		5: movieWithMoods(5, "Amélie", map[string]float64{recommend.MoodHappy: 0.8}),
	}}
}

func rankedIDs(movies []models.RankedMovie) []uint {
	out := make([]uint, 0, len(movies))
	for _, m := range movies {
		out = append(out, m.ID)
	}
	return out
}

func angryRequest(notes string) models.RecommendationRequest {
	return models.RecommendationRequest{
		Moods:         []string{recommend.MoodAngry},
		Preference:    "repair",
		PersonalNotes: notes,
	}
}

func TestRecommendWithoutNotesKeepsBaseline(t *testing.T) {
	repo := catalogue()
	ranker := &fakeRanker{titles: []string{"coco"}}
	svc := NewRecommendationService(repo, ranker, nil, quietLogger())

	result, err := svc.Recommend(context.Background(), angryRequest("  "))
	require.NoError(t, err)

	assert.Equal(t, []string{recommend.MoodCalm, recommend.MoodHappy, recommend.MoodReflective}, result.TargetMoods)
	assert.Equal(t, []uint{3, 5, 1, 4}, rankedIDs(result.Movies))
	assert.Zero(t, result.AISelectedCount)
	assert.Zero(t, ranker.calls)
	for _, m := range result.Movies {
		assert.False(t, m.Match.IsModelSelected())
	}
	assert.NotEmpty(t, result.RequestID)
}

func TestRecommendExcludesUnmatchedMovies(t *testing.T) {
	svc := NewRecommendationService(catalogue(), nil, nil, quietLogger())

	result, err := svc.Recommend(context.Background(), angryRequest(""))
	require.NoError(t, err)

	assert.NotContains(t, rankedIDs(result.Movies), uint(2))
}

func TestRecommendAttachesFullMoodBreakdown(t *testing.T) {
	svc := NewRecommendationService(catalogue(), nil, nil, quietLogger())

	result, err := svc.Recommend(context.Background(), angryRequest(""))
	require.NoError(t, err)

	up := result.Movies[2]
	require.Equal(t, "Up", up.Title)
	assert.Equal(t, 0.7, up.Match.Score())
	assert.Len(t, up.MoodScores, 3)
	assert.Contains(t, up.Moods, recommend.MoodLonely)
}

func TestRecommendModelFailureFallsBack(t *testing.T) {
	ranker := &fakeRanker{err: errors.New("503 unavailable")}
	svc := NewRecommendationService(catalogue(), ranker, nil, quietLogger())

	result, err := svc.Recommend(context.Background(), angryRequest("bad day"))
	require.NoError(t, err)

	assert.Equal(t, 1, ranker.calls)
	assert.Equal(t, []uint{3, 5, 1, 4}, rankedIDs(result.Movies))
	assert.Zero(t, result.AISelectedCount)
	for _, m := range result.Movies {
		assert.False(t, m.Match.IsModelSelected())
	}
}

func TestRecommendDisabledRankerFallsBack(t *testing.T) {
	svc := NewRecommendationService(catalogue(), disabledRanker{}, nil, quietLogger())

	result, err := svc.Recommend(context.Background(), angryRequest("bad day"))
	require.NoError(t, err)
	assert.Equal(t, []uint{3, 5, 1, 4}, rankedIDs(result.Movies))
}

func TestRecommendModelSelectionReordersFirstTier(t *testing.T) {
	ranker := &fakeRanker{titles: []string{"up", "amélie"}}
	svc := NewRecommendationService(catalogue(), ranker, nil, quietLogger())

	result, err := svc.Recommend(context.Background(), angryRequest("bad day"))
	require.NoError(t, err)

	assert.Equal(t, []uint{1, 5, 3, 4}, rankedIDs(result.Movies))
	assert.Equal(t, 2, result.AISelectedCount)
	assert.True(t, result.Movies[0].Match.IsModelSelected())
	assert.Equal(t, 0.7, result.Movies[0].Match.Score())
	assert.True(t, result.Movies[1].Match.IsModelSelected())
	assert.False(t, result.Movies[2].Match.IsModelSelected())
}

func TestRecommendSendsOnlyCandidatesAboveThreshold(t *testing.T) {
	ranker := &fakeRanker{}
	svc := NewRecommendationService(catalogue(), ranker, nil, quietLogger())

	_, err := svc.Recommend(context.Background(), angryRequest("bad day"))
	require.NoError(t, err)

	assert.Equal(t, []recommend.Candidate{
		{ID: 3, Title: "Paterson", Year: 2003},
		{ID: 5, Title: "Amélie", Year: 2005},
		{ID: 1, Title: "Up", Year: 2001},
	}, ranker.input.Candidates)
	assert.Equal(t, "bad day", ranker.input.Notes)
	assert.Equal(t, "repair", ranker.input.Preference)
}

func TestRecommendFallbackCandidatesWhenNoneReachThreshold(t *testing.T) {
	repo := &fakeMovieRepo{movies: map[uint]models.Movie{
		1: movieWithMoods(1, "A", map[string]float64{recommend.MoodCalm: 0.1}),
		2: movieWithMoods(2, "B", map[string]float64{recommend.MoodCalm: 0.2}),
	}}
	ranker := &fakeRanker{}
	svc := NewRecommendationService(repo, ranker, nil, quietLogger())

	_, err := svc.Recommend(context.Background(), models.RecommendationRequest{
		Moods:         []string{recommend.MoodCalm},
		Preference:    recommend.PreferenceCongruence,
		PersonalNotes: "quiet evening",
	})
	require.NoError(t, err)

	require.Len(t, ranker.input.Candidates, 2)
	assert.Equal(t, uint(2), ranker.input.Candidates[0].ID)
}

func TestRecommendNoMatchesSkipsModel(t *testing.T) {
	ranker := &fakeRanker{titles: []string{"up"}}
	svc := NewRecommendationService(catalogue(), ranker, nil, quietLogger())

	result, err := svc.Recommend(context.Background(), models.RecommendationRequest{
		Moods:         []string{recommend.MoodCurious},
		Preference:    recommend.PreferenceCongruence,
		PersonalNotes: "anything",
	})
	require.NoError(t, err)

	assert.Empty(t, result.Movies)
	assert.NotNil(t, result.Movies)
	assert.Zero(t, ranker.calls)
}

func TestRecommendCongruenceUsesSelectionVerbatim(t *testing.T) {
	repo := catalogue()
	svc := NewRecommendationService(repo, nil, nil, quietLogger())

	result, err := svc.Recommend(context.Background(), models.RecommendationRequest{
		Moods:      []string{recommend.MoodIntense},
		Preference: recommend.PreferenceCongruence,
	})
	require.NoError(t, err)

	assert.Equal(t, []string{recommend.MoodIntense}, repo.lastTargets)
	assert.Equal(t, []uint{2}, rankedIDs(result.Movies))
}

func TestRecommendStorageErrorFails(t *testing.T) {
	repo := catalogue()
	repo.matchErr = errors.New("connection refused")
	svc := NewRecommendationService(repo, nil, nil, quietLogger())

	_, err := svc.Recommend(context.Background(), angryRequest(""))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestRecommendEchoesRequestID(t *testing.T) {
	svc := NewRecommendationService(catalogue(), nil, nil, quietLogger())

	result, err := svc.Recommend(WithRequestID(context.Background(), "req-42"), angryRequest(""))
	require.NoError(t, err)
	assert.Equal(t, "req-42", result.RequestID)
}

func TestRecommendBlankPreferenceRepairs(t *testing.T) {
	repo := catalogue()
	svc := NewRecommendationService(repo, nil, nil, quietLogger())

	req := angryRequest("")
	req.Preference = ""
	result, err := svc.Recommend(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, []string{recommend.MoodCalm, recommend.MoodHappy, recommend.MoodReflective}, repo.lastTargets)
	assert.Equal(t, []uint{3, 5, 1, 4}, rankedIDs(result.Movies))
}
