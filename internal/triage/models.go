package triage

import "github.com/mahacyber/cyber-suraksha/internal/directory"

// Result is the classification stage output. UsedFallback marks results that
// came from the local default path instead of the oracle.
type Result struct {
	ScamType      string            `json:"scam_type"`
	Confidence    float64           `json:"scam_confidence"`
	Reasoning     string            `json:"scam_reasoning,omitempty"`
	Urgency       directory.Urgency `json:"urgency"`
	KeyIndicators []string          `json:"key_indicators"`
	UsedFallback  bool              `json:"used_fallback,omitempty"`
	Error         string            `json:"error,omitempty"`
}
