package service

import (
	"github.com/passforge/passforge-go/internal/model"
	"github.com/passforge/passforge-go/internal/strength"
)

// StrengthService evaluates arbitrary passwords. Scoring is total: any
// string, including the empty one, produces a score and label.
type StrengthService struct{}

// NewStrengthService creates a new StrengthService.
func NewStrengthService() *StrengthService {
	return &StrengthService{}
}

// Evaluate returns the heuristic score and label plus the advisory
// zxcvbn estimate for the given password.
func (s *StrengthService) Evaluate(password string) model.StrengthResponse {
	score := strength.Score(password)
	return model.StrengthResponse{
		Score:    score,
		Label:    string(strength.LabelFor(score)),
		Estimate: strength.Estimate(password),
	}
}
