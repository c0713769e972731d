package report

import "time"

// MinimumBodyLength is the NCRP portal's floor for complaint bodies
const MinimumBodyLength = 200

// CaseDetails is everything the assembler needs from earlier stages
type CaseDetails struct {
	Complaint     string
	ScamType      string
	Amount        float64
	UTR           string
	BankName      string
	SuspectPhone  string
	SuspectURL    string
	IncidentDate  string
	VictimName    string
	VictimPhone   string
	EvidenceScore int
}

// Report is the final submission-ready output. UsedFallback marks reports
// synthesized locally after a drafting failure; GenerationError carries the
// underlying cause.
type Report struct {
	Title              string    `json:"title"`
	Body               string    `json:"body"`
	BodyLength         int       `json:"body_length"`
	MeetsMinimum       bool      `json:"meets_minimum"`
	KeyEvidence        []string  `json:"key_evidence"`
	RecommendedActions []string  `json:"recommended_actions"`
	PriorityLevel      string    `json:"priority_level"`
	EmailDraft         string    `json:"email_draft"`
	GeneratedAt        time.Time `json:"generated_at"`
	UsedFallback       bool      `json:"used_fallback,omitempty"`
	GenerationError    string    `json:"generation_error,omitempty"`
}
