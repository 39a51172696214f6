package recommend

import (
	"sort"
	"strconv"

	"movie-feels-backend/internal/models"
)

const (
	// RerankThreshold is the minimum averaged score for a movie to be shown
	// to the language model.
	RerankThreshold = 0.7
	// FallbackCandidates is how many top movies the model sees when none
	// reach RerankThreshold.
	FallbackCandidates = 5
)

// ScoredMovie is a movie's averaged score over the target moods it matched.
type ScoredMovie struct {
	MovieID       uint
	Score         float64
	MatchingMoods []string
}

// Round2 rounds to two decimal places. Rounding works on the exact binary
// value, so 0.6949999 stays below 0.695 and exact halves go to even.
func Round2(v float64) float64 {
	r, _ := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 2, 64), 64)
	return r
}

// Aggregate groups matches by movie and averages their scores. The result is
// in baseline order: score descending, then movie ID ascending. Movies
// without matches cannot appear.
func Aggregate(matches []models.MoodMatch) []ScoredMovie {
	type acc struct {
		sum   float64
		moods []string
	}
	byMovie := make(map[uint]*acc)
	for _, m := range matches {
		a, ok := byMovie[m.MovieID]
		if !ok {
			a = &acc{}
			byMovie[m.MovieID] = a
		}
		a.sum += m.Score
		a.moods = append(a.moods, m.MoodName)
	}

	scored := make([]ScoredMovie, 0, len(byMovie))
	for id, a := range byMovie {
		scored = append(scored, ScoredMovie{
			MovieID:       id,
			Score:         Round2(a.sum / float64(len(a.moods))),
			MatchingMoods: a.moods,
		})
	}
	SortBaseline(scored)
	return scored
}

func SortBaseline(scored []ScoredMovie) {
	sort.Slice(scored, func(i, j int) bool {
		if scored[i].Score != scored[j].Score {
			return scored[i].Score > scored[j].Score
		}
		return scored[i].MovieID < scored[j].MovieID
	})
}

// RerankCandidates picks the movies offered to the language model from a
// baseline-ordered slice: all at or above RerankThreshold, else the top
// FallbackCandidates.
func RerankCandidates(ranked []ScoredMovie) []ScoredMovie {
	var picked []ScoredMovie
	for _, m := range ranked {
		if m.Score >= RerankThreshold {
			picked = append(picked, m)
		}
	}
	if len(picked) > 0 {
		return picked
	}
	if len(ranked) > FallbackCandidates {
		return ranked[:FallbackCandidates]
	}
	return ranked
}
