package models

// FeedbackEvent is the write-once audit copy of a rating submission, stored
// under its rating ID independently of the mutable user and track documents.
type FeedbackEvent struct {
	ImageURL     string `json:"imageUrl"`
	Rating       any    `json:"rating"`
	EmotionLabel string `json:"emotion_label"`
}
