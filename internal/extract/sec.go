package extract

import (
	"regexp"
	"strings"
)

// EDGAR current-filing titles look like "8-K - ACME CORP (0001234567) (Filer)".
var reFormCode = regexp.MustCompile(`^([A-Z0-9/\- ]+?)\s+-\s+`)

// FormCode pulls the leading regulatory form code out of an EDGAR feed
// title. Returns "" when the title does not start with a code followed
// by " - ". Classification only; callers filter against their own
// whitelist of accepted forms.
func FormCode(title string) string {
	m := reFormCode.FindStringSubmatch(strings.TrimSpace(title))
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}
