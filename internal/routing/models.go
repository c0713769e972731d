package routing

import "github.com/mahacyber/cyber-suraksha/internal/directory"

// FallbackContact is a generic escalation contact used when no bank-specific
// nodal officer can be resolved
type FallbackContact struct {
	Name  string `json:"name"`
	Phone string `json:"phone,omitempty"`
	URL   string `json:"url,omitempty"`
	Kind  string `json:"type"`
}

// EmergencyAction directs the victim to act immediately on critical cases
type EmergencyAction struct {
	Action  string `json:"action"`
	Number  string `json:"number"`
	Message string `json:"message"`
}

// Result is the routing stage output. Degraded routing is signalled only by
// Success=false plus an empty Officers list; there is deliberately no richer
// status field.
type Result struct {
	Officers         []directory.Contact `json:"nodal_officers"`
	Success          bool                `json:"routing_success"`
	Message          string              `json:"routing_message"`
	FallbackContacts []FallbackContact   `json:"fallback_contacts,omitempty"`
	EmergencyAction  *EmergencyAction    `json:"emergency_action,omitempty"`
}
