package parser

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-parser/internal/types"
)

var summaryKeywords = []string{"professional summary", "summary", "objective", "profile", "about me", "about"}

// summaryStopKeywords bound the summary window at the nearest following
// section header.
var summaryStopKeywords = []string{
	"experience", "work experience", "employment", "work history",
	"education", "skills", "certification", "projects",
}

var (
	leadingNoiseRe     = regexp.MustCompile(`^[\s:\-•]+`)
	excessNewlinesRe   = regexp.MustCompile(`\n{3,}`)
	summaryMaxLength   = 1000
	summaryNoiseLength = 20
)

// extractSummary locates the earliest summary-style header and returns the
// cleaned text up to the next section. Results at or under 20 characters are
// treated as noise rather than a real summary.
func extractSummary(text string) *string {
	lowered := lowerASCII(text)

	start := notFound
	matched := ""
	for _, key := range summaryKeywords {
		if i := strings.Index(lowered, key); i != -1 && (start == notFound || i < start) {
			start = i
			matched = key
		}
	}
	if start == notFound {
		return nil
	}

	sectionStart := start + len(matched)
	end := nextSectionIndex(lowered, sectionStart, summaryStopKeywords)
	if end == notFound {
		end = len(text)
	}
	raw := strings.TrimSpace(text[sectionStart:end])

	cleaned := leadingNoiseRe.ReplaceAllString(raw, "")
	cleaned = excessNewlinesRe.ReplaceAllString(cleaned, "\n\n")
	cleaned = strings.TrimSpace(cleaned)
	if runes := []rune(cleaned); len(runes) > summaryMaxLength {
		cleaned = string(runes[:summaryMaxLength])
	}

	if len([]rune(cleaned)) <= summaryNoiseLength {
		return nil
	}
	return types.StringPtr(cleaned)
}
