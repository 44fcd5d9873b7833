package feedbackController

import (
	"context"
	"errors"
	"fmt"
	"time"

	. "github.com/raj2411/MusicPlayerBackend/internal/models"
	"github.com/raj2411/MusicPlayerBackend/internal/repositories"
	"github.com/raj2411/MusicPlayerBackend/internal/services"
	logger "github.com/raj2411/MusicPlayerBackend/pkg/logger"
)

var ErrValidation = errors.New("validation error")

// LoadingError aborts a submission while the classifier model is
// cold-starting. It carries the remote's retry estimate; this service never
// retries on its own.
type LoadingError struct {
	EstimatedSeconds float64
}

func (e *LoadingError) Error() string {
	return fmt.Sprintf("emotion model is loading, estimated %.0f seconds", e.EstimatedSeconds)
}

// RejectedError aborts a submission the classifier refused. StatusCode 0
// means the remote never answered.
type RejectedError struct {
	StatusCode int
}

func (e *RejectedError) Error() string {
	if e.StatusCode == 0 {
		return "emotion recognition did not answer"
	}
	return fmt.Sprintf("emotion recognition failed with status %d", e.StatusCode)
}

type SubmitRatingRequest struct {
	UserID   string `json:"userId"`
	TrackID  string `json:"trackId"`
	Rating   any    `json:"rating"`
	ImageURL string `json:"imageUrl"`
}

// SubmitRatingResult reports what one submission actually wrote. The
// pipeline succeeds even when a parent document was missing; the flags say
// which side writes happened.
type SubmitRatingResult struct {
	RatingID     string `json:"ratingId"`
	EmotionLabel string `json:"emotionLabel"`
	UserUpdated  bool   `json:"userUpdated"`
	TrackUpdated bool   `json:"trackUpdated"`
}

type FeedbackControllerInterface interface {
	SubmitRating(ctx context.Context, request *SubmitRatingRequest) (*SubmitRatingResult, error)
}

type FeedbackController struct {
	userRepo     repositories.UserRepository
	trackRepo    repositories.TrackRepository
	feedbackRepo repositories.FeedbackRepository
	inference    services.InferenceClient
	emotion      *services.EmotionService
	log          logger.Logger
	now          func() time.Time
}

func New(repos repositories.Repository, services services.Service) FeedbackControllerInterface {
	return &FeedbackController{
		userRepo:     repos.User,
		trackRepo:    repos.Track,
		feedbackRepo: repos.Feedback,
		inference:    services.Inference,
		emotion:      services.Emotion,
		log:          logger.New("feedbackController"),
		now:          time.Now,
	}
}

// SubmitRating runs the rating pipeline: classify the captured image, score
// it, then apply the three writes (user rating, track rating, audit event)
// in order. Inference failure aborts before anything is written. A missing
// user or track document skips only that side's write; the audit event has
// no parent and is always attempted. Any storage error is fatal for the
// invocation with no rollback of writes already applied.
func (c *FeedbackController) SubmitRating(
	ctx context.Context,
	request *SubmitRatingRequest,
) (*SubmitRatingResult, error) {
	log := c.log.TraceFromContext(ctx).Function("SubmitRating")

	if request.UserID == "" || request.TrackID == "" {
		return nil, fmt.Errorf("%w: userId and trackId are required", ErrValidation)
	}

	outcome, err := c.inference.Infer(ctx, request.ImageURL)
	if err != nil {
		return nil, log.Err("failed to run emotion inference", err, "userID", request.UserID)
	}

	switch outcome.Status {
	case services.InferenceLoading:
		log.Info("aborting submission, inference model loading",
			"userID", request.UserID,
			"estimatedSeconds", outcome.EstimatedSeconds,
		)
		return nil, &LoadingError{EstimatedSeconds: outcome.EstimatedSeconds}
	case services.InferenceFailed:
		log.Warn("aborting submission, inference failed",
			"userID", request.UserID,
			"statusCode", outcome.StatusCode,
		)
		return nil, &RejectedError{StatusCode: outcome.StatusCode}
	}

	emotionLabel := c.emotion.Score(outcome.Emotions)

	ratingID, entry, event := BuildRecords(request, emotionLabel, c.now())

	result := &SubmitRatingResult{
		RatingID:     ratingID,
		EmotionLabel: emotionLabel,
	}

	if err := c.applyUserWrite(ctx, request, entry, result, log); err != nil {
		return nil, err
	}

	if err := c.applyTrackWrite(ctx, request, entry, result, log); err != nil {
		return nil, err
	}

	// The audit event has no existence dependency and is written even when
	// both parents were missing.
	if err := c.feedbackRepo.SaveEvent(ctx, ratingID, event); err != nil {
		return nil, log.Err("failed to save feedback event", err, "ratingID", ratingID)
	}

	log.Info("rating submitted",
		"userID", request.UserID,
		"trackID", request.TrackID,
		"ratingID", ratingID,
		"emotionLabel", emotionLabel,
		"userUpdated", result.UserUpdated,
		"trackUpdated", result.TrackUpdated,
	)

	return result, nil
}

func (c *FeedbackController) applyUserWrite(
	ctx context.Context,
	request *SubmitRatingRequest,
	entry RatingEntry,
	result *SubmitRatingResult,
	log logger.Logger,
) error {
	user, found, err := c.userRepo.GetUser(ctx, request.UserID)
	if err != nil {
		return log.Err("failed to load user for rating", err, "userID", request.UserID)
	}
	if !found {
		// Integrity gap, not a pipeline failure: the rating still lands on
		// the track document and the audit trail.
		log.Warn("user document missing, skipping user-side rating write",
			"userID", request.UserID,
			"trackID", request.TrackID,
		)
		return nil
	}

	if user.Ratings == nil {
		user.Ratings = make(map[string]RatingEntry)
	}
	user.Ratings[request.TrackID] = entry

	if err := c.userRepo.UpdateRatings(ctx, request.UserID, user.Ratings); err != nil {
		return log.Err("failed to update user ratings", err, "userID", request.UserID)
	}

	result.UserUpdated = true
	return nil
}

func (c *FeedbackController) applyTrackWrite(
	ctx context.Context,
	request *SubmitRatingRequest,
	entry RatingEntry,
	result *SubmitRatingResult,
	log logger.Logger,
) error {
	track, found, err := c.trackRepo.GetTrack(ctx, request.TrackID)
	if err != nil {
		return log.Err("failed to load track for rating", err, "trackID", request.TrackID)
	}
	if !found {
		log.Warn("track document missing, skipping track-side rating write",
			"userID", request.UserID,
			"trackID", request.TrackID,
		)
		return nil
	}

	if track.UserRatings == nil {
		track.UserRatings = make(map[string]RatingEntry)
	}
	track.UserRatings[request.UserID] = entry

	if err := c.trackRepo.UpdateUserRatings(ctx, request.TrackID, track.UserRatings); err != nil {
		return log.Err("failed to update track ratings", err, "trackID", request.TrackID)
	}

	result.TrackUpdated = true
	return nil
}
