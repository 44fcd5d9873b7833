package services

import (
	"testing"

	. "github.com/raj2411/MusicPlayerBackend/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestScoreAllHappy(t *testing.T) {
	service := NewEmotionService()

	emotions := []EmotionScore{
		{Label: "happy", Score: 1.0},
		{Label: "happy", Score: 1.0},
		{Label: "happy", Score: 1.0},
	}

	assert.Equal(t, EmotionSatisfied, service.Score(emotions))
	assert.InDelta(t, 1.0, service.SatisfactionValue(emotions), 1e-9)
}

func TestScoreAllNegative(t *testing.T) {
	service := NewEmotionService()

	tests := []struct {
		name     string
		emotions []EmotionScore
	}{
		{
			name: "anger only",
			emotions: []EmotionScore{
				{Label: "anger", Score: 0.7},
				{Label: "anger", Score: 0.2},
			},
		},
		{
			name: "disgust only",
			emotions: []EmotionScore{
				{Label: "disgust", Score: 0.9},
			},
		},
		{
			name: "anger and disgust mixed",
			emotions: []EmotionScore{
				{Label: "anger", Score: 0.5},
				{Label: "disgust", Score: 0.3},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, EmotionNotSatisfied, service.Score(tt.emotions))
		})
	}
}

func TestScoreEmptyInputDefaultsToSatisfied(t *testing.T) {
	service := NewEmotionService()

	// No readings means no weight; the zero value is documented as
	// satisfied by default.
	assert.Equal(t, EmotionSatisfied, service.Score(nil))
	assert.Equal(t, 0.0, service.SatisfactionValue(nil))
}

func TestScoreHappyDominatesNeutral(t *testing.T) {
	service := NewEmotionService()

	emotions := []EmotionScore{
		{Label: "happy", Score: 0.9},
		{Label: "neutral", Score: 0.1},
	}

	// (1.0*0.9 + 0.0*0.1) / 1.0 = 0.9
	assert.InDelta(t, 0.9, service.SatisfactionValue(emotions), 1e-9)
	assert.Equal(t, EmotionSatisfied, service.Score(emotions))
}

func TestScoreUnknownLabelsCarryNoWeight(t *testing.T) {
	service := NewEmotionService()

	emotions := []EmotionScore{
		{Label: "surprise", Score: 0.99},
		{Label: "fear", Score: 0.99},
	}

	assert.Equal(t, 0.0, service.SatisfactionValue(emotions))
	assert.Equal(t, EmotionSatisfied, service.Score(emotions))
}

func TestScoreNegativeOutweighsPositive(t *testing.T) {
	service := NewEmotionService()

	emotions := []EmotionScore{
		{Label: "happy", Score: 0.1},
		{Label: "anger", Score: 0.9},
		{Label: "disgust", Score: 0.8},
	}

	assert.Equal(t, EmotionNotSatisfied, service.Score(emotions))
}
