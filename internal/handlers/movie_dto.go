package handlers

import "movie-feels-backend/internal/models"

type CreateMovieRequest struct {
	Title     string             `json:"title" validate:"required,max=255" example:"Paddington 2"`
	Year      int                `json:"year" validate:"min=1800,max=3000" example:"2017"`
	ImageURL  string             `json:"image_url" validate:"required" example:"posters/paddington2.jpg"`
	Synopsis  string             `json:"synopsis" validate:"required"`
	Storyline string             `json:"storyline" validate:"required"`
	Moods     map[string]float64 `json:"moods" validate:"required,dive,keys,required,endkeys,gte=0"`
}

func (r CreateMovieRequest) toModel() models.NewMovie {
	return models.NewMovie{
		Title:     r.Title,
		Year:      r.Year,
		ImageURL:  r.ImageURL,
		Synopsis:  r.Synopsis,
		Storyline: r.Storyline,
		Moods:     r.Moods,
	}
}

type SearchMoviesQuery struct {
	Title string `query:"title" json:"title" validate:"required"`
}

// RecommendationRequest keeps the camelCase keys the web client sends.
// Any preference other than "congruence", including none, means repair.
type RecommendationRequest struct {
	Moods         []string `json:"moods" validate:"required,min=1,dive,required" example:"Angry · Frustrated · Irritated · Stressed"`
	Preference    string   `json:"preference" example:"repair"`
	PersonalNotes string   `json:"personalNotes" example:"Long week, need something gentle"`
	Timestamp     string   `json:"timestamp" example:"2025-03-01T20:15:00Z"`
}

func (r RecommendationRequest) toModel() models.RecommendationRequest {
	return models.RecommendationRequest{
		Moods:         r.Moods,
		Preference:    r.Preference,
		PersonalNotes: r.PersonalNotes,
		Timestamp:     r.Timestamp,
	}
}
