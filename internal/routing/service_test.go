package routing

import (
	"testing"

	"github.com/mahacyber/cyber-suraksha/internal/directory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeDirectory returns a fixed contact list for any non-empty lookup
type fakeDirectory struct {
	contacts []directory.Contact
}

func (f *fakeDirectory) FindContactsByInstitution(name string) []directory.Contact {
	out := make([]directory.Contact, len(f.contacts))
	copy(out, f.contacts)
	return out
}

func TestRouteNoBankIdentified(t *testing.T) {
	svc := NewService(directory.NewRepository())

	result := svc.Route("", directory.UrgencyMedium)

	assert.False(t, result.Success)
	assert.Empty(t, result.Officers)
	require.Len(t, result.FallbackContacts, 1)
	assert.Equal(t, "National Cyber Crime Helpline", result.FallbackContacts[0].Name)
	assert.Equal(t, HelplineNumber, result.FallbackContacts[0].Phone)
	assert.Nil(t, result.EmergencyAction)
}

func TestRouteUnknownBank(t *testing.T) {
	svc := NewService(directory.NewRepository())

	result := svc.Route("Gringotts Wizarding Bank", directory.UrgencyMedium)

	assert.False(t, result.Success)
	assert.Empty(t, result.Officers)
	assert.Contains(t, result.Message, "1930")
	require.Len(t, result.FallbackContacts, 3)
	assert.Equal(t, "helpline", result.FallbackContacts[0].Kind)
	assert.Equal(t, "portal", result.FallbackContacts[1].Kind)
	assert.Equal(t, "portal", result.FallbackContacts[2].Kind)
}

func TestRouteKnownBank(t *testing.T) {
	svc := NewService(directory.NewRepository())

	result := svc.Route("State Bank of India", directory.UrgencyMedium)

	assert.True(t, result.Success)
	require.Len(t, result.Officers, 1)
	assert.Equal(t, "State Bank of India", result.Officers[0].BankName)
	assert.Equal(t, "Found 1 nodal officer(s) for State Bank of India", result.Message)
	assert.Empty(t, result.FallbackContacts)
}

func TestRoutePriorityReorderingIsStable(t *testing.T) {
	fake := &fakeDirectory{contacts: []directory.Contact{
		{ID: 1, BankName: "Test Bank", OfficerName: "A", Priority: directory.PriorityHigh},
		{ID: 2, BankName: "Test Bank", OfficerName: "B", Priority: directory.PriorityMedium},
		{ID: 3, BankName: "Test Bank", OfficerName: "C", Priority: directory.PriorityHigh},
	}}
	svc := NewService(fake)

	tests := []struct {
		name     string
		urgency  directory.Urgency
		expected []string
	}{
		{"high urgency moves high priority first", directory.UrgencyHigh, []string{"A", "C", "B"}},
		{"critical urgency moves high priority first", directory.UrgencyCritical, []string{"A", "C", "B"}},
		{"medium urgency keeps directory order", directory.UrgencyMedium, []string{"A", "B", "C"}},
		{"low urgency keeps directory order", directory.UrgencyLow, []string{"A", "B", "C"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := svc.Route("Test Bank", tt.urgency)
			require.Len(t, result.Officers, 3)
			var names []string
			for _, o := range result.Officers {
				names = append(names, o.OfficerName)
			}
			assert.Equal(t, tt.expected, names)
		})
	}
}

func TestRouteEmergencyAction(t *testing.T) {
	svc := NewService(directory.NewRepository())

	tests := []struct {
		name     string
		bank     string
		urgency  directory.Urgency
		expected bool
	}{
		{"critical with known bank", "HDFC Bank", directory.UrgencyCritical, true},
		{"critical with unknown bank", "Gringotts", directory.UrgencyCritical, true},
		{"critical with no bank", "", directory.UrgencyCritical, true},
		{"high urgency gets none", "HDFC Bank", directory.UrgencyHigh, false},
		{"medium urgency gets none", "", directory.UrgencyMedium, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := svc.Route(tt.bank, tt.urgency)
			if tt.expected {
				require.NotNil(t, result.EmergencyAction)
				assert.Equal(t, "IMMEDIATE_CALL", result.EmergencyAction.Action)
				assert.Equal(t, HelplineNumber, result.EmergencyAction.Number)
			} else {
				assert.Nil(t, result.EmergencyAction)
			}
		})
	}
}
