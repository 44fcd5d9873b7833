package feedbackController

import (
	"time"

	. "github.com/raj2411/MusicPlayerBackend/internal/models"
)

// ratingIDTimeFormat gives rating IDs second precision. Two submissions by
// the same user within one second land on the same ID and the later one
// overwrites; existing stored data depends on this exact format, so the
// scheme stays as-is.
const ratingIDTimeFormat = "20060102150405"

// BuildRecords derives the rating ID and the two records a submission
// persists. Pure given its inputs; the caller supplies the clock.
func BuildRecords(
	request *SubmitRatingRequest,
	emotionLabel string,
	now time.Time,
) (string, RatingEntry, FeedbackEvent) {
	ratingID := request.UserID + "_" + now.Format(ratingIDTimeFormat)

	entry := RatingEntry{
		RatingID:     ratingID,
		Rating:       request.Rating,
		ImageURL:     request.ImageURL,
		EmotionLabel: emotionLabel,
	}

	event := FeedbackEvent{
		ImageURL:     request.ImageURL,
		Rating:       request.Rating,
		EmotionLabel: emotionLabel,
	}

	return ratingID, entry, event
}
