package models

type Mood struct {
	ID   uint   `gorm:"primaryKey" json:"id" example:"1"`
	Name string `gorm:"column:mood_name;size:255;uniqueIndex;not null" json:"mood_name" example:"Calm · Peaceful · Relaxed · Soft · Gentle"`
}

func (Mood) TableName() string {
	return "moods"
}

// MovieMood links a movie to a mood with the intensity of that mood.
type MovieMood struct {
	MovieID uint    `gorm:"primaryKey;autoIncrement:false" json:"movie_id"`
	MoodID  uint    `gorm:"primaryKey;autoIncrement:false;index" json:"mood_id"`
	Score   float64 `gorm:"not null;default:0" json:"score"`
	Mood    Mood    `gorm:"foreignKey:MoodID" json:"-"`
}

func (MovieMood) TableName() string {
	return "movie_moods"
}

// MoodMatch is one (movie, mood, score) row returned by a mood lookup.
type MoodMatch struct {
	MovieID  uint
	MoodName string
	Score    float64
}
