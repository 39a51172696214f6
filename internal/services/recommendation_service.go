package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"movie-feels-backend/internal/models"
	"movie-feels-backend/internal/recommend"
	"movie-feels-backend/internal/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type RecommendationService interface {
	Recommend(ctx context.Context, req models.RecommendationRequest) (*models.RecommendationResult, error)
}

type recommendationService struct {
	repo    repository.MovieRepository
	ranker  TitleRanker
	posters PosterResolver
	logger  *logrus.Logger
}

func NewRecommendationService(repo repository.MovieRepository, ranker TitleRanker, posters PosterResolver, logger *logrus.Logger) RecommendationService {
	if ranker == nil {
		ranker = disabledRanker{}
	}
	if posters == nil {
		posters = PassthroughPosters{}
	}
	return &recommendationService{
		repo:    repo,
		ranker:  ranker,
		posters: posters,
		logger:  logger,
	}
}

// Recommend scores stored movies against the moods derived from the request
// and, when the request has notes, lets the title ranker pull its picks to
// the front. A ranker failure never fails the request.
func (s *recommendationService) Recommend(ctx context.Context, req models.RecommendationRequest) (*models.RecommendationResult, error) {
	requestID := RequestID(ctx)
	log := s.logger.WithField("request_id", requestID)

	targets := recommend.TargetMoods(req.Moods, req.Preference)

	matches, err := s.repo.FindMoodMatches(ctx, targets)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch mood matches: %w", err)
	}
	scored := recommend.Aggregate(matches)

	baseline, err := s.buildBaseline(ctx, scored)
	if err != nil {
		return nil, err
	}

	final := baseline
	if strings.TrimSpace(req.PersonalNotes) != "" && len(scored) > 0 {
		final = s.rerank(ctx, log, req, scored, baseline)
	}

	selected := recommend.SelectedCount(final)
	log.WithFields(logrus.Fields{
		"preference":   req.Preference,
		"target_moods": shortNames(targets),
		"matched":      len(final),
		"ai_selected":  selected,
		"timestamp":    req.Timestamp,
	}).Info("Recommendation generated")

	return &models.RecommendationResult{
		RequestID:       requestID,
		Preference:      req.Preference,
		TargetMoods:     targets,
		AISelectedCount: selected,
		Movies:          final,
	}, nil
}

// buildBaseline loads the matched movies with their full mood breakdown and
// returns them in the order of scored.
func (s *recommendationService) buildBaseline(ctx context.Context, scored []recommend.ScoredMovie) ([]models.RankedMovie, error) {
	if len(scored) == 0 {
		return []models.RankedMovie{}, nil
	}

	ids := make([]uint, 0, len(scored))
	for _, sm := range scored {
		ids = append(ids, sm.MovieID)
	}

	movies, err := s.repo.FindByIDsWithMoods(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load matched movies: %w", err)
	}
	byID := make(map[uint]*models.Movie, len(movies))
	for i := range movies {
		byID[movies[i].ID] = &movies[i]
	}

	ranked := make([]models.RankedMovie, 0, len(scored))
	for _, sm := range scored {
		movie, ok := byID[sm.MovieID]
		if !ok {
			continue
		}
		ranked = append(ranked, models.RankedMovie{
			ID:         movie.ID,
			Title:      movie.Title,
			Year:       movie.Year,
			ImageURL:   s.posters.ResolvePosterURL(ctx, movie.ImageURL),
			Synopsis:   movie.Synopsis,
			Storyline:  movie.Storyline,
			Moods:      movie.MoodNames(),
			MoodScores: moodScores(movie),
			Match:      models.BaselineScore(sm.Score),
		})
	}
	return ranked, nil
}

func (s *recommendationService) rerank(ctx context.Context, log *logrus.Entry, req models.RecommendationRequest, scored []recommend.ScoredMovie, baseline []models.RankedMovie) []models.RankedMovie {
	candidateIDs := make(map[uint]struct{})
	for _, c := range recommend.RerankCandidates(scored) {
		candidateIDs[c.MovieID] = struct{}{}
	}

	candidates := make([]recommend.Candidate, 0, len(candidateIDs))
	for _, m := range baseline {
		if _, ok := candidateIDs[m.ID]; ok {
			candidates = append(candidates, recommend.Candidate{ID: m.ID, Title: m.Title, Year: m.Year})
		}
	}

	titles, err := s.ranker.RankTitles(ctx, RerankInput{
		Notes:      req.PersonalNotes,
		Preference: req.Preference,
		Candidates: candidates,
	})
	if err != nil {
		log.WithError(err).Warn("Title ranking failed, using mood scores only")
		return baseline
	}

	return recommend.ApplySelection(baseline, titles)
}

func moodScores(movie *models.Movie) []models.MoodScore {
	scores := make([]models.MoodScore, 0, len(movie.MovieMoods))
	for _, mm := range movie.MovieMoods {
		scores = append(scores, models.MoodScore{
			Mood:  mm.Mood.Name,
			Score: recommend.Round2(mm.Score),
		})
	}
	sort.Slice(scores, func(i, j int) bool {
		return scores[i].Mood < scores[j].Mood
	})
	return scores
}

func shortNames(moods []string) []string {
	out := make([]string, len(moods))
	for i, m := range moods {
		out[i] = recommend.ShortName(m)
	}
	return out
}

type requestIDKey struct{}

// WithRequestID stores the HTTP request ID so results and logs can echo it.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestID returns the ID stored by WithRequestID, or a fresh one.
func RequestID(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey{}).(string); ok && id != "" {
		return id
	}
	return uuid.NewString()
}
