package services

import (
	. "github.com/raj2411/MusicPlayerBackend/internal/models"
)

// emotionWeights maps classifier labels to their contribution sign and
// magnitude. Unrecognized labels weigh zero and therefore neither help nor
// hurt the satisfaction value.
var emotionWeights = map[string]float64{
	"happy":    1.0,
	"contempt": -0.5,
	"disgust":  -0.5,
	"anger":    -0.5,
	"neutral":  0.0,
}

// EmotionService turns raw emotion-classifier output into the binary
// satisfaction label stored on rating entries. Pure logic, no I/O.
type EmotionService struct{}

func NewEmotionService() *EmotionService {
	return &EmotionService{}
}

// SatisfactionValue computes the signed satisfaction value: the sum of
// weight*score over all entries, normalized by the sum of absolute weights.
// An input with no weight (including the empty input) yields 0.
func (s *EmotionService) SatisfactionValue(emotions []EmotionScore) float64 {
	var sumWeighted, sumAbsWeight float64

	for _, emotion := range emotions {
		weight := emotionWeights[emotion.Label]
		sumWeighted += weight * emotion.Score
		if weight < 0 {
			sumAbsWeight -= weight
		} else {
			sumAbsWeight += weight
		}
	}

	if sumAbsWeight > 0 {
		return sumWeighted / sumAbsWeight
	}
	return 0.0
}

// Score maps the satisfaction value's sign to a label. Zero counts as
// satisfied, so an empty or all-neutral reading defaults to satisfied; that
// default is intentional, not a special case.
func (s *EmotionService) Score(emotions []EmotionScore) string {
	if s.SatisfactionValue(emotions) >= 0 {
		return EmotionSatisfied
	}
	return EmotionNotSatisfied
}
