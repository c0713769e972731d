package triage

import (
	"context"

	"github.com/mahacyber/cyber-suraksha/internal/directory"
	"github.com/mahacyber/cyber-suraksha/internal/genai"
	"github.com/mahacyber/cyber-suraksha/pkg/logger"
	"go.uber.org/zap"
)

// Confidence assigned when classification falls back after an oracle failure
const fallbackConfidence = 0.3

// Classifier is the oracle call the triage stage depends on
type Classifier interface {
	Classify(ctx context.Context, complaint string) (*genai.Classification, error)
}

// Taxonomy validates category ids against the fixed scam taxonomy
type Taxonomy interface {
	ScamTypeByID(id string) *directory.ScamType
}

// Service classifies a complaint into the scam taxonomy
type Service struct {
	classifier Classifier
	taxonomy   Taxonomy
}

// NewService creates a new triage service
func NewService(classifier Classifier, taxonomy Taxonomy) *Service {
	return &Service{classifier: classifier, taxonomy: taxonomy}
}

// Analyze classifies the complaint text. It always returns a usable result:
// a missing complaint or a failed oracle call yields defaulted values with
// the error recorded, never an aborted stage.
func (s *Service) Analyze(ctx context.Context, complaint string) *Result {
	if complaint == "" {
		return &Result{
			ScamType:      "other",
			Confidence:    0,
			Urgency:       directory.UrgencyMedium,
			KeyIndicators: []string{},
			Error:         "No complaint provided",
		}
	}

	classification, err := s.classifier.Classify(ctx, complaint)
	if err != nil {
		logger.WithContext(ctx).Warn("Classification failed, using fallback",
			zap.Error(err))
		return &Result{
			ScamType:      "other",
			Confidence:    fallbackConfidence,
			Urgency:       directory.UrgencyMedium,
			KeyIndicators: []string{},
			UsedFallback:  true,
			Error:         "Triage error: " + err.Error(),
		}
	}

	result := &Result{
		ScamType:      classification.ScamType,
		Confidence:    classification.Confidence,
		Reasoning:     classification.Reasoning,
		Urgency:       directory.Urgency(classification.Urgency),
		KeyIndicators: classification.KeyIndicators,
	}

	// Coerce anything outside the fixed taxonomy to "other"
	if s.taxonomy.ScamTypeByID(result.ScamType) == nil {
		logger.WithContext(ctx).Warn("Oracle returned unknown scam type",
			zap.String("scam_type", result.ScamType))
		result.ScamType = "other"
	}
	if result.Confidence == 0 {
		result.Confidence = 0.5
	}
	if !result.Urgency.IsValid() {
		result.Urgency = directory.UrgencyMedium
	}
	if result.KeyIndicators == nil {
		result.KeyIndicators = []string{}
	}

	return result
}
