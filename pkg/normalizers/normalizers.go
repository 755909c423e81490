// Package normalizers folds the legacy vocabulary found in stored records
// into canonical forms before any criteria evaluation sees them.
package normalizers

import (
	"strings"
	"unicode"

	"github.com/Ramsey-B/clover/pkg/models"
)

// Normalizer is a function that normalizes a string value
type Normalizer func(string) string

// registry holds all registered normalizers
var registry = make(map[string]Normalizer)

func init() {
	Register("lowercase", Lowercase)
	Register("trim", Trim)
	Register("nphone", NormalizePhone)
	Register("nlocation", NormalizeLocation)
	Register("ncondition", NormalizeCondition)
}

// Register adds a normalizer to the registry
func Register(name string, fn Normalizer) {
	registry[name] = fn
}

// Apply applies a named normalizer to a value
func Apply(value, normalizer string) string {
	fn, ok := registry[normalizer]
	if !ok {
		return value
	}
	return fn(value)
}

// Lowercase converts string to lowercase
func Lowercase(s string) string {
	return strings.ToLower(s)
}

// Trim removes leading and trailing whitespace
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// NormalizePhone removes all non-digit characters from a phone number
func NormalizePhone(s string) string {
	var result strings.Builder
	for _, r := range s {
		if unicode.IsDigit(r) {
			result.WriteRune(r)
		}
	}
	return result.String()
}

// NormalizeLocation lowercases and collapses whitespace so that Hebrew and
// Latin city names compare consistently
func NormalizeLocation(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// conditionVocabulary maps the free-text condition strings seen in listing
// and intake forms (English and Hebrew) to canonical values
var conditionVocabulary = map[string]string{
	"new":              "new",
	"brand new":        "new",
	"חדש":              "new",
	"חדש מקבלן":        "new",
	"renovated":        "renovated",
	"משופץ":            "renovated",
	"משופצת":           "renovated",
	"good":             "good",
	"good condition":   "good",
	"טוב":              "good",
	"מצב טוב":          "good",
	"שמור":             "good",
	"needs renovation": "needs_renovation",
	"fixer":            "needs_renovation",
	"דורש שיפוץ":       "needs_renovation",
	"לשיפוץ":           "needs_renovation",
}

// NormalizeCondition maps a free-text property condition to its canonical
// value. Unrecognized values are lowercased and trimmed so that at least
// identical free text still compares equal.
func NormalizeCondition(s string) string {
	key := strings.Join(strings.Fields(strings.ToLower(s)), " ")
	if canonical, ok := conditionVocabulary[key]; ok {
		return canonical
	}
	return key
}

// preApprovalVocabulary maps the string forms of the mortgage pre-approval
// field. Intake forms stored a Hebrew tri-state; older records a boolean.
var preApprovalVocabulary = map[string]models.PreApproval{
	"true":         models.PreApprovalApproved,
	"yes":          models.PreApprovalApproved,
	"approved":     models.PreApprovalApproved,
	"יש אישור":     models.PreApprovalApproved,
	"יש":           models.PreApprovalApproved,
	"false":        models.PreApprovalNotApproved,
	"no":           models.PreApprovalNotApproved,
	"not_approved": models.PreApprovalNotApproved,
	"אין אישור":    models.PreApprovalNotApproved,
	"אין":          models.PreApprovalNotApproved,
	"in_progress":  models.PreApprovalInProgress,
	"בתהליך":       models.PreApprovalInProgress,
}

// NormalizePreApproval folds any stored representation of pre-approval into
// the canonical tri-state. Unrecognized or empty input maps to unknown.
func NormalizePreApproval(s string) models.PreApproval {
	key := strings.Join(strings.Fields(strings.ToLower(s)), " ")
	if v, ok := preApprovalVocabulary[key]; ok {
		return v
	}
	return models.PreApprovalUnknown
}

// PreApprovalFromBool converts the legacy boolean representation
func PreApprovalFromBool(b bool) models.PreApproval {
	if b {
		return models.PreApprovalApproved
	}
	return models.PreApprovalNotApproved
}

// NormalizePropertyTypes folds the scalar-or-list preferred type field into
// a canonical lowercased list. Blank entries are dropped.
func NormalizePropertyTypes(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.ToLower(strings.TrimSpace(v))
		if v == "" {
			continue
		}
		out = append(out, v)
	}
	return out
}
