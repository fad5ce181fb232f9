package validation

import (
	"fmt"
	"regexp"
	"strings"
)

// EmailPattern matches the addresses accepted by the contact form.
var EmailPattern = `^[^\s@]+@[^\s@]+\.[^\s@]+$`

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	Email *regexp.Regexp
}{
	Email: regexp.MustCompile(EmailPattern),
}

// Violations collects human-readable rule violations for one payload. A
// payload either fully validates or the whole operation is rejected with the
// joined message; there is no partial success.
type Violations []string

// Require records a violation when a required scalar is empty.
func (v *Violations) Require(value, message string) {
	if strings.TrimSpace(value) == "" {
		*v = append(*v, message)
	}
}

// RequireOneOf records a violation when value is outside the allowed set.
// Empty values are left to Require; an enum check on an absent optional
// field should not fire.
func (v *Violations) RequireOneOf(value string, allowed []string, message string) {
	if value == "" {
		return
	}
	for _, a := range allowed {
		if value == a {
			return
		}
	}
	*v = append(*v, message)
}

// RequireEmail records a violation when value is not a plausible address.
func (v *Violations) RequireEmail(value, message string) {
	if !CompiledPatterns.Email.MatchString(value) {
		*v = append(*v, message)
	}
}

// RequireMax records a violation when value exceeds maxLen characters.
func (v *Violations) RequireMax(value string, maxLen int, message string) {
	if len(value) > maxLen {
		*v = append(*v, message)
	}
}

// Add records an arbitrary violation.
func (v *Violations) Add(message string) {
	*v = append(*v, message)
}

// OK reports whether the payload passed every check.
func (v Violations) OK() bool {
	return len(v) == 0
}

// Message joins the violations into the single BadRequest message.
func (v Violations) Message() string {
	return strings.Join(v, ", ")
}

// OneOfMessage builds the standard closed-set violation text.
func OneOfMessage(field string, allowed []string) string {
	return fmt.Sprintf("Invalid %s. Must be one of: %s", field, strings.Join(allowed, ", "))
}
