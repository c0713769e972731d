package pipeline

import (
	"github.com/google/uuid"
	"github.com/mahacyber/cyber-suraksha/internal/evidence"
	"github.com/mahacyber/cyber-suraksha/internal/report"
	"github.com/mahacyber/cyber-suraksha/internal/routing"
	"github.com/mahacyber/cyber-suraksha/internal/triage"
)

// Input is the caller-supplied field set. Fields are immutable once seeded,
// except BankName which the evidence stage may fill in when absent.
type Input struct {
	Complaint    string  `json:"complaint"`
	UTR          string  `json:"utr,omitempty"`
	BankName     string  `json:"bank_name,omitempty"`
	Amount       float64 `json:"amount,omitempty"`
	SuspectPhone string  `json:"suspect_phone,omitempty"`
	SuspectURL   string  `json:"suspect_url,omitempty"`
	IncidentDate string  `json:"incident_date,omitempty"`
	VictimName   string  `json:"victim_name,omitempty"`
	VictimPhone  string  `json:"victim_phone,omitempty"`
}

// CaseState is the single record threaded through the pipeline. Each stage
// writes only its own section; sections from earlier stages are never
// removed or overwritten.
type CaseState struct {
	CaseID uuid.UUID `json:"case_id"`
	Input

	Triage   *triage.Result   `json:"triage,omitempty"`
	Evidence *evidence.Report `json:"evidence,omitempty"`
	Routing  *routing.Result  `json:"routing,omitempty"`
	Report   *report.Report   `json:"report,omitempty"`

	TriageComplete   bool   `json:"triage_complete"`
	EvidenceComplete bool   `json:"evidence_complete"`
	RoutingComplete  bool   `json:"routing_complete"`
	ReportComplete   bool   `json:"report_complete"`
	CurrentStage     string `json:"current_stage,omitempty"`
	WorkflowComplete bool   `json:"workflow_complete"`
	Error            string `json:"error,omitempty"`
}

// SubmitReportRequest is the full pipeline request
type SubmitReportRequest struct {
	Complaint    string  `json:"complaint" binding:"required,min=10"`
	UTR          string  `json:"utr"`
	BankName     string  `json:"bank_name"`
	Amount       float64 `json:"amount" binding:"omitempty,gte=0"`
	SuspectPhone string  `json:"suspect_phone"`
	SuspectURL   string  `json:"suspect_url"`
	IncidentDate string  `json:"incident_date"`
	VictimName   string  `json:"victim_name"`
	VictimPhone  string  `json:"victim_phone"`
}

// TriageRequest runs classification only
type TriageRequest struct {
	Complaint string `json:"complaint" binding:"required,min=10"`
}

// SuspectCheckRequest queries the flagged-suspect registry
type SuspectCheckRequest struct {
	SuspectType string `json:"suspect_type" binding:"required,oneof=phone url upi"`
	Value       string `json:"value" binding:"required"`
}
