package models

// Emotion labels derived from classifier output.
const (
	EmotionSatisfied    = "satisfied"
	EmotionNotSatisfied = "not satisfied"
)

// EmotionScore is a single labeled score from the emotion classifier.
type EmotionScore struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// RatingEntry captures one user's rating of one track plus the derived
// emotion label. The same entry is embedded in both the user document
// (keyed by track ID) and the track document (keyed by user ID); the two
// copies are independent.
//
// Rating is caller-supplied and opaque: clients send numbers or strings and
// both are stored verbatim.
type RatingEntry struct {
	RatingID     string `json:"ratingId"`
	Rating       any    `json:"rating"`
	ImageURL     string `json:"imageUrl"`
	EmotionLabel string `json:"emotion_label"`
}
