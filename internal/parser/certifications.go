package parser

import (
	"strings"

	"github.com/jonathan/resume-parser/internal/types"
)

var certificationKeywords = []string{"certification", "certificate", "licenses"}

const maxCertifications = 10

// extractCertifications reads the certifications section up to the next blank
// line (or 500 characters) and emits one entry per non-trivial line. The
// issuing organization is never inferred; the date is the first 4-digit
// number on the line, if any.
func extractCertifications(text string) []types.Certification {
	certifications := []types.Certification{}
	lowered := lowerASCII(text)

	start := findAnySectionStart(lowered, certificationKeywords)
	if start == notFound {
		return certifications
	}

	section := sectionWindow(text, start)
	lines := strings.Split(section, "\n")
	if len(lines) < 2 {
		return certifications
	}

	for _, line := range lines[1:] {
		trimmed := strings.TrimSpace(line)
		if len(trimmed) <= 5 {
			continue
		}
		var date *string
		if m := yearRe.FindString(line); m != "" {
			date = types.StringPtr(m)
		}
		certifications = append(certifications, types.Certification{
			Name:         trimmed,
			Organization: nil,
			Date:         date,
		})
	}

	if len(certifications) > maxCertifications {
		certifications = certifications[:maxCertifications]
	}
	return certifications
}
