package models

import (
	"sort"
	"time"
)

type Movie struct {
	ID         uint        `gorm:"primaryKey" json:"id" example:"1"`
	Title      string      `gorm:"size:255;not null;index" json:"title" example:"Paddington 2"`
	Year       int         `gorm:"not null" json:"year" example:"2017"`
	ImageURL   string      `gorm:"type:text;not null" json:"image_url" example:"https://m.media-amazon.com/images/paddington2.jpg"`
	Synopsis   string      `gorm:"type:text;not null" json:"synopsis" example:"Paddington picks up a series of odd jobs to buy the perfect present."`
	Storyline  string      `gorm:"type:text;not null" json:"storyline"`
	CreatedAt  time.Time   `gorm:"index" json:"created_at"`
	MovieMoods []MovieMood `gorm:"foreignKey:MovieID" json:"-"`
}

func (Movie) TableName() string {
	return "movies"
}

// MoodNames returns the names of the moods attached to the movie, sorted.
// Associations must be preloaded with their Mood.
func (m *Movie) MoodNames() []string {
	names := make([]string, 0, len(m.MovieMoods))
	for _, mm := range m.MovieMoods {
		names = append(names, mm.Mood.Name)
	}
	sort.Strings(names)
	return names
}

// NewMovie is the input of a movie submission.
type NewMovie struct {
	Title     string
	Year      int
	ImageURL  string
	Synopsis  string
	Storyline string
	Moods     map[string]float64
}

type CreatedMovie struct {
	ID            uint   `json:"id" example:"1"`
	Title         string `json:"title" example:"Paddington 2"`
	Year          int    `json:"year" example:"2017"`
	ImageURL      string `json:"image_url"`
	Synopsis      string `json:"synopsis"`
	Storyline     string `json:"storyline"`
	MoodsRecorded int    `json:"moods_recorded" example:"3"`
}

// MovieSummary is a title search hit.
type MovieSummary struct {
	ID        uint      `json:"id" example:"1"`
	Title     string    `json:"title" example:"Paddington 2"`
	Year      int       `json:"year" example:"2017"`
	Synopsis  string    `json:"synopsis"`
	Storyline string    `json:"storyline"`
	ImageURL  string    `json:"image_url"`
	CreatedAt time.Time `json:"created_at"`
	Moods     []string  `json:"moods"`
}
