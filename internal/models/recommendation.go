package models

import (
	"github.com/goccy/go-json"
)

// ModelSuggestedLabel replaces the numeric match score of a movie picked by
// the language model.
const ModelSuggestedLabel = "AI Suggested"

// RecommendationRequest is the input of the ranking pipeline.
type RecommendationRequest struct {
	Moods         []string
	Preference    string
	PersonalNotes string
	Timestamp     string
}

// MatchScore is either a baseline score or a model selection that keeps the
// baseline score aside. Build it with BaselineScore or ModelSelected.
type MatchScore struct {
	score         float64
	modelSelected bool
}

func BaselineScore(score float64) MatchScore {
	return MatchScore{score: score}
}

func ModelSelected(originalScore float64) MatchScore {
	return MatchScore{score: originalScore, modelSelected: true}
}

// Score returns the averaged mood score, whether or not the model picked the movie.
func (s MatchScore) Score() float64 {
	return s.score
}

func (s MatchScore) IsModelSelected() bool {
	return s.modelSelected
}

type MoodScore struct {
	Mood  string  `json:"mood" example:"Calm · Peaceful · Relaxed · Soft · Gentle"`
	Score float64 `json:"score" example:"0.8"`
}

type RankedMovie struct {
	ID         uint
	Title      string
	Year       int
	ImageURL   string
	Synopsis   string
	Storyline  string
	Moods      []string
	MoodScores []MoodScore
	Match      MatchScore
}

// RankedMovieView is the wire form of a RankedMovie.
type RankedMovieView struct {
	ID         uint        `json:"id" example:"1"`
	Title      string      `json:"title" example:"Paddington 2"`
	Year       int         `json:"year" example:"2017"`
	ImageURL   string      `json:"image_url"`
	Synopsis   string      `json:"synopsis"`
	Storyline  string      `json:"storyline"`
	Moods      []string    `json:"moods"`
	MoodScores []MoodScore `json:"mood_scores"`
	// Averaged mood score, or "AI Suggested" when ai_selected is true
	MatchScore interface{} `json:"match_score"`
	// Averaged mood score of a model selection
	OriginalScore *float64 `json:"original_score,omitempty" example:"0.72"`
	AISelected    bool     `json:"ai_selected"`
}

// MarshalJSON writes match_score as a number for baseline movies and as
// ModelSuggestedLabel for model selections, which also carry original_score.
func (m RankedMovie) MarshalJSON() ([]byte, error) {
	out := RankedMovieView{
		ID:         m.ID,
		Title:      m.Title,
		Year:       m.Year,
		ImageURL:   m.ImageURL,
		Synopsis:   m.Synopsis,
		Storyline:  m.Storyline,
		Moods:      m.Moods,
		MoodScores: m.MoodScores,
		MatchScore: m.Match.Score(),
		AISelected: m.Match.IsModelSelected(),
	}
	if out.Moods == nil {
		out.Moods = []string{}
	}
	if out.MoodScores == nil {
		out.MoodScores = []MoodScore{}
	}
	if m.Match.IsModelSelected() {
		original := m.Match.Score()
		out.MatchScore = ModelSuggestedLabel
		out.OriginalScore = &original
	}
	return json.Marshal(out)
}

type RecommendationResult struct {
	RequestID       string        `json:"request_id" example:"3f1c9a52-3c1b-4b8e-9f0e-8a8d2c7e1a11"`
	Preference      string        `json:"preference" example:"repair"`
	TargetMoods     []string      `json:"target_moods"`
	AISelectedCount int           `json:"ai_selected_count" example:"2"`
	Movies          []RankedMovie `json:"movies" swaggerignore:"true"`
}
