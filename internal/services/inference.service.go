package services

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/raj2411/MusicPlayerBackend/config"
	. "github.com/raj2411/MusicPlayerBackend/internal/models"
	logger "github.com/raj2411/MusicPlayerBackend/pkg/logger"
)

const (
	InferenceTimeoutSec = 30

	// DefaultLoadingEstimateSec is reported when the classifier says it is
	// warming up but gives no estimate of its own.
	DefaultLoadingEstimateSec = 20
)

// InferenceStatus discriminates InferenceOutcome.
type InferenceStatus int

const (
	// InferenceReady means the classifier returned labeled scores.
	InferenceReady InferenceStatus = iota

	// InferenceLoading means the remote model is cold-starting; the caller
	// should re-submit after the estimated wait.
	InferenceLoading

	// InferenceFailed means the classifier rejected the request or never
	// answered. StatusCode 0 marks a transport failure (timeout, refused
	// connection) as opposed to an HTTP rejection.
	InferenceFailed
)

// InferenceOutcome is the tagged result of one classification request.
type InferenceOutcome struct {
	Status           InferenceStatus
	Emotions         []EmotionScore
	EstimatedSeconds float64
	StatusCode       int
}

// InferenceClient submits an image reference to the emotion classifier.
// Implementations never retry; retry policy belongs to the caller.
type InferenceClient interface {
	Infer(ctx context.Context, imageRef string) (InferenceOutcome, error)
}

type InferenceService struct {
	client *http.Client
	url    string
	token  string
	log    logger.Logger
}

type inferencePayload struct {
	Image string `json:"image"`
}

type inferenceLoadingResponse struct {
	EstimatedTime float64 `json:"estimated_time"`
}

func NewInferenceService(config config.Config) *InferenceService {
	return &InferenceService{
		client: &http.Client{
			Timeout: InferenceTimeoutSec * time.Second,
		},
		url:   config.InferenceURL,
		token: config.InferenceAPIToken,
		log:   logger.New("InferenceService"),
	}
}

func (s *InferenceService) Infer(ctx context.Context, imageRef string) (InferenceOutcome, error) {
	log := s.log.TraceFromContext(ctx).Function("Infer")

	body, err := json.Marshal(inferencePayload{Image: imageRef})
	if err != nil {
		return InferenceOutcome{}, log.Err("failed to encode inference payload", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(body))
	if err != nil {
		return InferenceOutcome{}, log.Err("failed to create inference request", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if s.token != "" {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		// Transport failure, including timeout. StatusCode 0 lets callers
		// tell "remote never answered" from "remote said no".
		log.Warn("inference request failed in transport", "error", err)
		return InferenceOutcome{Status: InferenceFailed, StatusCode: 0}, nil
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		var emotions []EmotionScore
		if err := json.NewDecoder(resp.Body).Decode(&emotions); err != nil {
			// The hosted model occasionally answers 200 with a non-list
			// body; treat it the same as an empty reading.
			log.Warn("failed to decode inference response", "error", err)
			emotions = nil
		}
		return InferenceOutcome{Status: InferenceReady, Emotions: emotions}, nil

	case resp.StatusCode == http.StatusServiceUnavailable:
		loading := inferenceLoadingResponse{EstimatedTime: DefaultLoadingEstimateSec}
		if err := json.NewDecoder(resp.Body).Decode(&loading); err != nil {
			loading.EstimatedTime = DefaultLoadingEstimateSec
		}
		log.Info("inference model is loading", "estimatedSeconds", loading.EstimatedTime)
		return InferenceOutcome{
			Status:           InferenceLoading,
			EstimatedSeconds: loading.EstimatedTime,
		}, nil

	default:
		log.Warn("inference request rejected", "status", resp.StatusCode)
		return InferenceOutcome{
			Status:     InferenceFailed,
			StatusCode: resp.StatusCode,
		}, nil
	}
}
