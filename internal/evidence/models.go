package evidence

import "github.com/mahacyber/cyber-suraksha/internal/directory"

// ReferenceKind classifies a transaction reference by payment rail
type ReferenceKind string

const (
	ReferenceNEFTRTGS ReferenceKind = "neft_rtgs" // 4-letter bank code + 7-13 digits
	ReferenceUPI      ReferenceKind = "upi"       // 12-16 digits
	ReferenceIMPS     ReferenceKind = "imps"      // exactly 12 digits
	ReferenceUnknown  ReferenceKind = "unknown"   // non-standard but accepted
)

// ReferenceValidation is the parsed result for a transaction reference
type ReferenceValidation struct {
	Valid      bool          `json:"valid"`
	Kind       ReferenceKind `json:"type,omitempty"`
	Normalized string        `json:"formatted,omitempty"`
	Warning    string        `json:"warning,omitempty"`
	Error      string        `json:"error,omitempty"`
}

// AmountBand buckets the reported loss amount
type AmountBand string

const (
	AmountLow      AmountBand = "low"      // under 10,000
	AmountMedium   AmountBand = "medium"   // under 1 lakh
	AmountHigh     AmountBand = "high"     // under 10 lakhs
	AmountCritical AmountBand = "critical" // 10 lakhs and above
)

// SuspectCheckResult records one registry lookup against a suspect identifier
type SuspectCheckResult struct {
	Kind   directory.SuspectKind  `json:"type"`
	Value  string                 `json:"value"`
	Result directory.SuspectCheck `json:"result"`
}

// Input is the evidence-bearing subset of the case input
type Input struct {
	UTR          string
	BankName     string
	SuspectPhone string
	SuspectURL   string
	Amount       float64
}

// Report is the evidence stage output. BankName carries the supplied or
// inferred institution; BankIdentified is set only when it was inferred.
type Report struct {
	UTRValidated   bool                 `json:"utr_validated"`
	UTRInfo        *ReferenceValidation `json:"utr_info,omitempty"`
	BankName       string               `json:"bank_name,omitempty"`
	BankIdentified string               `json:"bank_identified,omitempty"`
	SuspectChecks  []SuspectCheckResult `json:"suspect_checks"`
	Amount         float64              `json:"amount,omitempty"`
	AmountBand     AmountBand           `json:"amount_category,omitempty"`
	Score          int                  `json:"evidence_score"`
}
