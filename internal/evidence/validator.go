package evidence

import (
	"regexp"
	"strings"
)

// Reference patterns tried in fixed order; first match wins. The character
// classes differ per pattern so a reference can never match two kinds
// ambiguously once order is fixed.
var referencePatterns = []struct {
	kind    ReferenceKind
	pattern *regexp.Regexp
}{
	{ReferenceNEFTRTGS, regexp.MustCompile(`(?i)^[A-Z]{4}[0-9]{7,13}$`)},
	{ReferenceUPI, regexp.MustCompile(`^[0-9]{12,16}$`)},
	{ReferenceIMPS, regexp.MustCompile(`^[0-9]{12}$`)},
}

var looseReferencePattern = regexp.MustCompile(`^[A-Za-z0-9]{8,20}$`)

// Institution prefixes for NEFT/RTGS-style references
var bankPrefixes = map[string]string{
	"SBIN": "State Bank of India",
	"HDFC": "HDFC Bank",
	"ICIC": "ICICI Bank",
	"AXIS": "Axis Bank",
	"PUNB": "Punjab National Bank",
	"BARB": "Bank of Baroda",
	"MAHB": "Bank of Maharashtra",
	"CNRB": "Canara Bank",
	"UBIN": "Union Bank of India",
	"KKBK": "Kotak Mahindra Bank",
}

// ValidateTransactionReference parses and classifies a transaction reference
// (UTR). Non-standard 8-20 character alphanumeric references are accepted
// with a warning rather than rejected.
func ValidateTransactionReference(raw string) ReferenceValidation {
	cleaned := strings.ReplaceAll(strings.TrimSpace(raw), " ", "")

	for _, rp := range referencePatterns {
		if rp.pattern.MatchString(cleaned) {
			return ReferenceValidation{
				Valid:      true,
				Kind:       rp.kind,
				Normalized: strings.ToUpper(cleaned),
			}
		}
	}

	if looseReferencePattern.MatchString(cleaned) {
		return ReferenceValidation{
			Valid:      true,
			Kind:       ReferenceUnknown,
			Normalized: strings.ToUpper(cleaned),
			Warning:    "UTR format not standard but accepted",
		}
	}

	return ReferenceValidation{
		Valid: false,
		Error: "invalid_format: UTR should be 12-16 alphanumeric characters",
	}
}

// InferInstitutionFromReference matches the first four characters of a
// reference against the known bank-code prefixes. Returns "" when the prefix
// is not recognized; it never guesses.
func InferInstitutionFromReference(raw string) string {
	upper := strings.ToUpper(strings.TrimSpace(raw))
	if len(upper) < 4 {
		return ""
	}
	return bankPrefixes[upper[:4]]
}
