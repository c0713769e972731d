package report

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/mahacyber/cyber-suraksha/internal/genai"
	"github.com/mahacyber/cyber-suraksha/pkg/logger"
	"go.uber.org/zap"
)

const emailTemplate = `Subject: URGENT: Cyber Fraud Report - %s - Rs.%.0f

Dear Nodal Officer,

I am reporting a cyber fraud incident that occurred on %s.

%s

Transaction Details:
- UTR/Reference: %s
- Amount: Rs.%.0f
- Bank: %s

Suspect Information:
- Phone: %s
- Website/App: %s

Request for immediate action as this falls within the Cyber Golden Hour.

Regards,
%s
Contact: %s`

const fallbackTemplate = `Cyber Fraud Complaint Report

Type: %s
Date: %s
Amount Lost: Rs.%.0f

Incident Description:
%s

Transaction Details:
- UTR/Reference Number: %s
- Bank: %s

Suspect Information:
- Phone Number: %s
- Website/App: %s

This complaint is being filed for immediate action under the Cyber Golden Hour protocol.`

// Drafter is the oracle call the report stage depends on
type Drafter interface {
	Draft(ctx context.Context, req genai.DraftRequest) (*genai.Draft, error)
}

// Service assembles the final report and notification draft
type Service struct {
	drafter Drafter
}

// NewService creates a new report service
func NewService(drafter Drafter) *Service {
	return &Service{drafter: drafter}
}

// Assemble produces the submission-ready report. A drafting failure switches
// to a deterministic plain-text report built from the case fields; the stage
// never fails outright.
func (s *Service) Assemble(ctx context.Context, details CaseDetails) *Report {
	details = withDefaults(details)

	draft, err := s.drafter.Draft(ctx, genai.DraftRequest{
		ScamType:      details.ScamType,
		Complaint:     details.Complaint,
		Amount:        details.Amount,
		UTR:           details.UTR,
		BankName:      details.BankName,
		SuspectPhone:  details.SuspectPhone,
		SuspectURL:    details.SuspectURL,
		IncidentDate:  details.IncidentDate,
		EvidenceScore: details.EvidenceScore,
	})
	if err != nil {
		logger.WithContext(ctx).Warn("Report drafting failed, using fallback",
			zap.Error(err))
		return s.fallbackReport(details, err)
	}

	body := draft.ReportBody
	if body == "" {
		body = details.Complaint
	}

	title := draft.ReportTitle
	if title == "" {
		title = "Cyber Fraud Report - " + details.ScamType
	}

	priority := draft.PriorityLevel
	if priority == "" {
		priority = "medium"
	}

	bodyLen := utf8.RuneCountInString(body)

	return &Report{
		Title:              title,
		Body:               body,
		BodyLength:         bodyLen,
		MeetsMinimum:       bodyLen >= MinimumBodyLength,
		KeyEvidence:        emptyIfNil(draft.KeyEvidence),
		RecommendedActions: emptyIfNil(draft.RecommendedActions),
		PriorityLevel:      priority,
		EmailDraft:         s.renderEmail(details, body),
		GeneratedAt:        time.Now(),
	}
}

// fallbackReport synthesizes a deterministic report without the oracle
func (s *Service) fallbackReport(details CaseDetails, cause error) *Report {
	body := fmt.Sprintf(fallbackTemplate,
		displayScamType(details.ScamType),
		details.IncidentDate,
		details.Amount,
		details.Complaint,
		details.UTR,
		details.BankName,
		details.SuspectPhone,
		details.SuspectURL,
	)

	bodyLen := utf8.RuneCountInString(body)

	return &Report{
		Title:              "Cyber Fraud Report - " + details.ScamType,
		Body:               body,
		BodyLength:         bodyLen,
		MeetsMinimum:       bodyLen >= MinimumBodyLength,
		KeyEvidence:        []string{details.UTR, details.SuspectPhone, details.SuspectURL},
		RecommendedActions: []string{"File FIR", "Contact bank nodal officer", "Report on NCRP"},
		PriorityLevel:      "medium",
		EmailDraft:         body,
		GeneratedAt:        time.Now(),
		UsedFallback:       true,
		GenerationError:    cause.Error(),
	}
}

// renderEmail substitutes case fields into the nodal-officer email template
func (s *Service) renderEmail(details CaseDetails, body string) string {
	return fmt.Sprintf(emailTemplate,
		displayScamType(details.ScamType),
		details.Amount,
		details.IncidentDate,
		body,
		details.UTR,
		details.Amount,
		details.BankName,
		details.SuspectPhone,
		details.SuspectURL,
		details.VictimName,
		details.VictimPhone,
	)
}

func withDefaults(d CaseDetails) CaseDetails {
	if d.ScamType == "" {
		d.ScamType = "other"
	}
	if d.UTR == "" {
		d.UTR = "N/A"
	}
	if d.BankName == "" {
		d.BankName = "Unknown"
	}
	if d.SuspectPhone == "" {
		d.SuspectPhone = "N/A"
	}
	if d.SuspectURL == "" {
		d.SuspectURL = "N/A"
	}
	if d.IncidentDate == "" {
		d.IncidentDate = time.Now().Format("2006-01-02")
	}
	if d.VictimName == "" {
		d.VictimName = "Complainant"
	}
	if d.VictimPhone == "" {
		d.VictimPhone = "N/A"
	}
	return d
}

// displayScamType turns a category id like "digital_arrest" into
// "Digital Arrest"
func displayScamType(id string) string {
	words := strings.Split(id, "_")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
