package routing

import (
	"fmt"
	"sort"

	"github.com/mahacyber/cyber-suraksha/internal/directory"
)

// National cyber crime helpline number (dial 1930 within the golden hour)
const HelplineNumber = "1930"

// ContactDirectory is the officer lookup the router depends on
type ContactDirectory interface {
	FindContactsByInstitution(name string) []directory.Contact
}

// Service routes a case to the right fraud-reporting contacts
type Service struct {
	contacts ContactDirectory
}

// NewService creates a new routing service
func NewService(contacts ContactDirectory) *Service {
	return &Service{contacts: contacts}
}

// Route resolves nodal-officer contacts for the institution. When the
// institution is missing or unknown it degrades to generic escalation
// contacts instead of failing. Critical urgency always attaches an
// emergency-action directive, whether or not routing succeeded.
func (s *Service) Route(bankName string, urgency directory.Urgency) *Result {
	result := &Result{
		Officers: []directory.Contact{},
	}

	if bankName == "" {
		result.Message = "No bank identified. Cannot route to specific nodal officer."
		result.FallbackContacts = []FallbackContact{
			{Name: "National Cyber Crime Helpline", Phone: HelplineNumber, Kind: "helpline"},
		}
	} else {
		officers := s.contacts.FindContactsByInstitution(bankName)

		if len(officers) > 0 {
			result.Success = true
			result.Message = fmt.Sprintf("Found %d nodal officer(s) for %s", len(officers), bankName)

			if urgency == directory.UrgencyCritical || urgency == directory.UrgencyHigh {
				// High-priority contacts first; stable to preserve directory order
				// within each tier
				sort.SliceStable(officers, func(i, j int) bool {
					return officers[i].Priority == directory.PriorityHigh &&
						officers[j].Priority != directory.PriorityHigh
				})
			}
			result.Officers = officers
		} else {
			result.Message = fmt.Sprintf("No specific nodal officer found for %s. Use %s helpline.", bankName, HelplineNumber)
			result.FallbackContacts = []FallbackContact{
				{Name: "National Cyber Crime Helpline", Phone: HelplineNumber, Kind: "helpline"},
				{Name: "Cyber Crime Portal", URL: "https://cybercrime.gov.in", Kind: "portal"},
				{Name: "Maharashtra Cyber", URL: "https://maharashtracyber.gov.in", Kind: "portal"},
			}
		}
	}

	if urgency == directory.UrgencyCritical {
		result.EmergencyAction = &EmergencyAction{
			Action:  "IMMEDIATE_CALL",
			Number:  HelplineNumber,
			Message: "CRITICAL: Call 1930 immediately while we prepare your report",
		}
	}

	return result
}
