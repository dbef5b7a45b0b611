package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	yearOnlyRe   = regexp.MustCompile(`^\d{4}$`)
	monthSlashRe = regexp.MustCompile(`^(\d{1,2})[/.\-](\d{4})$`)
	monthNameRe  = regexp.MustCompile(`^([A-Za-z]+)\s+(\d{4})$`)
)

// monthNumbers maps abbreviated month names to their 1-based month number.
// "sept" is accepted alongside "sep"; full names ("january") are not
// recognized and pass through verbatim.
var monthNumbers = map[string]int{
	"jan": 1, "feb": 2, "mar": 3, "apr": 4, "may": 5, "jun": 6,
	"jul": 7, "aug": 8, "sep": 9, "sept": 9, "oct": 10, "nov": 11, "dec": 12,
}

// NormalizeDate normalizes a matched date substring to "YYYY" or "YYYY-MM".
// Anything it does not recognize passes through verbatim, including already
// invalid strings; there is no validation step. Normalization is idempotent
// on its own output.
func NormalizeDate(raw string) string {
	s := strings.TrimSpace(raw)

	if yearOnlyRe.MatchString(s) {
		return s
	}

	if m := monthSlashRe.FindStringSubmatch(s); m != nil {
		month, _ := strconv.Atoi(m[1])
		return fmt.Sprintf("%s-%02d", m[2], month)
	}

	if m := monthNameRe.FindStringSubmatch(s); m != nil {
		if month, ok := monthNumbers[strings.ToLower(m[1])]; ok {
			return fmt.Sprintf("%s-%02d", m[2], month)
		}
	}

	return s
}
