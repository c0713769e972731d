package evidence

import (
	"regexp"
	"strings"

	"github.com/mahacyber/cyber-suraksha/internal/directory"
)

// Evidence score weights
const (
	scoreValidReference = 30
	scoreKnownBank      = 20
	scoreFlaggedPhone   = 25
	scoreFlaggedURL     = 25
	scorePositiveAmount = 10
	maxScore            = 100
)

var nonDigits = regexp.MustCompile(`[^\d]`)

// SuspectDirectory is the registry lookup the evidence stage depends on
type SuspectDirectory interface {
	FindSuspect(kind directory.SuspectKind, value string) directory.SuspectCheck
}

// Service validates and enriches the evidence fields of a case
type Service struct {
	registry SuspectDirectory
}

// NewService creates a new evidence service
func NewService(registry SuspectDirectory) *Service {
	return &Service{registry: registry}
}

// Collect validates the transaction reference, infers the institution from
// the reference when none was supplied, checks suspect identifiers against
// the registry, and aggregates the 0-100 evidence score.
func (s *Service) Collect(in Input) *Report {
	report := &Report{
		SuspectChecks: []SuspectCheckResult{},
	}

	score := 0
	bankName := in.BankName

	if in.UTR != "" {
		validation := ValidateTransactionReference(in.UTR)
		report.UTRInfo = &validation
		report.UTRValidated = validation.Valid
		if validation.Valid {
			score += scoreValidReference

			// Identify the bank from the reference prefix if not supplied
			if bankName == "" {
				if inferred := InferInstitutionFromReference(in.UTR); inferred != "" {
					bankName = inferred
					report.BankIdentified = inferred
				}
			}
		}
	}

	if bankName != "" {
		report.BankName = bankName
		score += scoreKnownBank
	}

	if in.SuspectPhone != "" {
		phone := nonDigits.ReplaceAllString(in.SuspectPhone, "")
		if len(phone) == 10 {
			check := s.registry.FindSuspect(directory.SuspectPhone, phone)
			report.SuspectChecks = append(report.SuspectChecks, SuspectCheckResult{
				Kind:   directory.SuspectPhone,
				Value:  phone,
				Result: check,
			})
			if check.Found {
				score += scoreFlaggedPhone
			}
		}
	}

	if in.SuspectURL != "" {
		url := normalizeSuspectURL(in.SuspectURL)
		check := s.registry.FindSuspect(directory.SuspectURL, url)
		report.SuspectChecks = append(report.SuspectChecks, SuspectCheckResult{
			Kind:   directory.SuspectURL,
			Value:  url,
			Result: check,
		})
		if check.Found {
			score += scoreFlaggedURL
		}
	}

	if in.Amount > 0 {
		report.Amount = in.Amount
		report.AmountBand = bandForAmount(in.Amount)
		score += scorePositiveAmount
	}

	// All five signals together sum to 110
	if score > maxScore {
		score = maxScore
	}
	report.Score = score

	return report
}

// normalizeSuspectURL lowercases, strips the protocol prefix, and truncates
// at the first path separator
func normalizeSuspectURL(raw string) string {
	url := strings.ToLower(strings.TrimSpace(raw))
	url = strings.TrimPrefix(url, "http://")
	url = strings.TrimPrefix(url, "https://")
	if idx := strings.Index(url, "/"); idx >= 0 {
		url = url[:idx]
	}
	return url
}

func bandForAmount(amount float64) AmountBand {
	switch {
	case amount < 10000:
		return AmountLow
	case amount < 100000:
		return AmountMedium
	case amount < 1000000:
		return AmountHigh
	default:
		return AmountCritical
	}
}
