package directory

import (
	"sort"
	"strings"
)

// Repository serves the read-only reference tables: nodal-officer contacts,
// the scam taxonomy, and the flagged-suspect registry. All data is fixed at
// process start, so lookups need no synchronization.
type Repository struct {
	contacts []Contact
	scams    []ScamType
	suspects []FlaggedSuspect
}

// NewRepository creates a repository backed by the built-in reference data
func NewRepository() *Repository {
	return &Repository{
		contacts: nodalOfficers,
		scams:    scamTypes,
		suspects: flaggedSuspects,
	}
}

// FindContactsByInstitution returns all contacts whose bank name contains the
// given name, case-insensitively. Returns an empty slice when nothing matches.
func (r *Repository) FindContactsByInstitution(name string) []Contact {
	needle := strings.ToLower(strings.TrimSpace(name))
	if needle == "" {
		return nil
	}

	var results []Contact
	for _, c := range r.contacts {
		if strings.Contains(strings.ToLower(c.BankName), needle) {
			results = append(results, c)
		}
	}
	return results
}

// FindSuspect checks the registry for an exact case-insensitive match on
// (kind, value)
func (r *Repository) FindSuspect(kind SuspectKind, value string) SuspectCheck {
	needle := strings.ToLower(strings.TrimSpace(value))
	for _, s := range r.suspects {
		if s.Kind == kind && strings.ToLower(s.Value) == needle {
			return SuspectCheck{
				Found:   true,
				Reports: s.Reports,
				Status:  s.Status,
			}
		}
	}
	return SuspectCheck{Found: false, Reports: 0, Status: StatusNotFound}
}

// ScamTypes returns the full scam taxonomy
func (r *Repository) ScamTypes() []ScamType {
	return r.scams
}

// ScamTypeByID returns the taxonomy entry for an id, or nil if unknown
func (r *Repository) ScamTypeByID(id string) *ScamType {
	for i := range r.scams {
		if r.scams[i].ID == id {
			return &r.scams[i]
		}
	}
	return nil
}

// Contacts returns the full nodal-officer directory
func (r *Repository) Contacts() []Contact {
	return r.contacts
}

// Banks returns the unique sorted list of institutions in the directory
func (r *Repository) Banks() []string {
	seen := make(map[string]struct{})
	var banks []string
	for _, c := range r.contacts {
		if _, ok := seen[c.BankName]; !ok {
			seen[c.BankName] = struct{}{}
			banks = append(banks, c.BankName)
		}
	}
	sort.Strings(banks)
	return banks
}
