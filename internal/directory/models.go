package directory

// Urgency grades how quickly a case must be acted on. The ordering matters
// for routing: critical and high cases get priority contact ordering.
type Urgency string

const (
	UrgencyCritical Urgency = "critical"
	UrgencyHigh     Urgency = "high"
	UrgencyMedium   Urgency = "medium"
	UrgencyLow      Urgency = "low"
)

// Rank returns a sortable weight, higher meaning more urgent
func (u Urgency) Rank() int {
	switch u {
	case UrgencyCritical:
		return 3
	case UrgencyHigh:
		return 2
	case UrgencyMedium:
		return 1
	case UrgencyLow:
		return 0
	}
	return -1
}

// IsValid reports whether u is one of the known urgency levels
func (u Urgency) IsValid() bool {
	return u.Rank() >= 0
}

// ContactPriority tiers nodal-officer contacts for urgency-based ordering
type ContactPriority string

const (
	PriorityHigh   ContactPriority = "high"
	PriorityMedium ContactPriority = "medium"
)

// Contact is an RBI-mandated fraud-reporting contact for a bank or payment app
type Contact struct {
	ID          int             `json:"id"`
	BankName    string          `json:"bank_name"`
	Region      string          `json:"region"`
	OfficerName string          `json:"officer_name"`
	Email       string          `json:"email"`
	Phone       string          `json:"phone"`
	Priority    ContactPriority `json:"priority"`
}

// ScamType describes one fraud archetype in the fixed taxonomy
type ScamType struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Keywords    []string `json:"keywords"`
	Urgency     Urgency  `json:"urgency"`
	TypicalLoss string   `json:"typical_loss"`
}

// SuspectKind is the identifier class of a flagged-suspect entry
type SuspectKind string

const (
	SuspectPhone SuspectKind = "phone"
	SuspectURL   SuspectKind = "url"
	SuspectUPI   SuspectKind = "upi"
)

// FlaggedSuspect is one entry in the flagged-suspect registry
type FlaggedSuspect struct {
	Kind    SuspectKind `json:"type"`
	Value   string      `json:"value"`
	Reports int         `json:"reports"`
	Status  string      `json:"status"`
}

// SuspectCheck is the result of a registry lookup
type SuspectCheck struct {
	Found   bool   `json:"found"`
	Reports int    `json:"reports"`
	Status  string `json:"status"`
}

// Registry entry statuses
const (
	StatusConfirmedFraud = "confirmed_fraud"
	StatusSuspected      = "suspected"
	StatusNotFound       = "not_found"
)
