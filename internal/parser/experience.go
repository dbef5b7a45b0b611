package parser

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-parser/internal/types"
)

var experienceKeywords = []string{"experience", "work experience", "employment", "work history"}

var experienceStopKeywords = []string{"education", "skills", "projects", "certification", "certifications"}

var (
	blockSplitRe = regexp.MustCompile(`\n\s*\n+`)

	// dateRangeRe recognizes "<Month YYYY|MM/YYYY|YYYY>" joined to a second
	// date or "present"/"current" token. The separator class also eats stray
	// "t"/"o" characters, which is how "to" gets matched.
	dateRangeRe = regexp.MustCompile(`(?i)((?:jan|feb|mar|apr|may|jun|jul|aug|sep|sept|oct|nov|dec)[a-z]*\s+\d{4}|\d{1,2}[/.\-]\d{4}|\d{4})\s*[-–—to]+\s*((?:jan|feb|mar|apr|may|jun|jul|aug|sep|sept|oct|nov|dec)[a-z]*\s+\d{4}|\d{1,2}[/.\-]\d{4}|\d{4}|present|current)`)

	presentRe = regexp.MustCompile(`(?i)present|current`)

	headerSplitRe = regexp.MustCompile(`\s[@\-–—]\s|\s\|\s`)
	titleRe       = regexp.MustCompile(`(?i)engineer|developer|manager|lead|director|analyst|consultant|designer|architect`)

	blockLocationHintRe  = regexp.MustCompile(`[A-Z][a-zA-Z]+\s*,\s*[A-Z][a-zA-Z]+|\b[A-Z]{2}\b|\d{5}`)
	blockLocationMatchRe = regexp.MustCompile(`[A-Z][a-zA-Z]+\s*,\s*[A-Z][a-zA-Z]+|\b[A-Z]{2}\b\s*\d{5}`)

	bulletPrefixRe = regexp.MustCompile(`(?m)^[\s\-•]+`)
)

const (
	maxExperienceBlocks  = 20
	maxExperienceEntries = 10
)

// extractWorkExperience locates the experience section, splits it into
// blank-line-separated blocks, and decomposes each block into one entry.
// Entries keep source-text order; they are not re-sorted by date.
func extractWorkExperience(text string) []types.WorkExperience {
	experience := []types.WorkExperience{}
	lowered := lowerASCII(text)

	sectionStart := findAnySectionStart(lowered, experienceKeywords)
	if sectionStart == notFound {
		return experience
	}
	sectionEnd := nextSectionIndex(lowered, sectionStart, experienceStopKeywords)
	if sectionEnd == notFound {
		sectionEnd = len(text)
	}
	section := text[sectionStart:sectionEnd]

	var blocks []string
	for _, b := range blockSplitRe.Split(section, -1) {
		b = strings.TrimSpace(b)
		if b != "" {
			blocks = append(blocks, b)
		}
	}
	if len(blocks) > maxExperienceBlocks {
		blocks = blocks[:maxExperienceBlocks]
	}

	for _, block := range blocks {
		entry, ok := parseExperienceBlock(block)
		if ok {
			experience = append(experience, entry)
		}
	}

	if len(experience) > maxExperienceEntries {
		experience = experience[:maxExperienceEntries]
	}
	return experience
}

// parseExperienceBlock turns one block into a WorkExperience entry. A bare
// section heading at the top of the block ("Experience", "Work History") is
// skipped so it never becomes a job title. The second return value is false
// when the block yields no title, company, description, or start date at all.
func parseExperienceBlock(block string) (types.WorkExperience, bool) {
	lines := nonEmptyLines(block)
	if len(lines) > 0 && isSectionHeading(lines[0], experienceKeywords) {
		lines = lines[1:]
	}
	if len(lines) == 0 {
		return types.WorkExperience{}, false
	}

	header := lines[0]
	rest := lines[1:]

	var startDate, endDate *string
	isCurrent := false
	if m := dateRangeRe.FindStringSubmatch(block); m != nil {
		startDate = types.StringPtr(NormalizeDate(m[1]))
		if presentRe.MatchString(m[2]) {
			isCurrent = true
		} else {
			endDate = types.StringPtr(NormalizeDate(m[2]))
		}
	}

	jobTitle, companyName := splitHeader(header, rest)
	location := findBlockLocation(header, rest)
	description := buildDescription(rest)

	if jobTitle == "" && companyName == "" && description == nil && startDate == nil {
		return types.WorkExperience{}, false
	}

	if companyName == "" {
		companyName = "Unknown Company"
	}
	if jobTitle == "" {
		jobTitle = "Unknown Position"
	}

	return types.WorkExperience{
		CompanyName: companyName,
		JobTitle:    jobTitle,
		Location:    location,
		StartDate:   startDate,
		EndDate:     endDate,
		IsCurrent:   isCurrent,
		Description: description,
	}, true
}

// splitHeader decomposes a block header like "Software Engineer - Acme Corp"
// into title and company. When the header splits into exactly two parts, the
// side matching a title keyword becomes the title; when both or neither side
// matches, the first part is assumed to be the title. A header that does not
// split stays the title and the first body line (if any) becomes the company.
func splitHeader(header string, rest []string) (jobTitle, companyName string) {
	parts := headerSplitRe.Split(header, -1)
	if len(parts) == 2 {
		a, b := strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
		switch {
		case titleRe.MatchString(a) && !titleRe.MatchString(b):
			return a, b
		case titleRe.MatchString(b) && !titleRe.MatchString(a):
			return b, a
		default:
			return a, b
		}
	}

	jobTitle = header
	if len(rest) > 0 {
		companyName = rest[0]
	}
	return jobTitle, companyName
}

// findBlockLocation returns the first "City, ST"-ish match in the block's
// lines, or nil.
func findBlockLocation(header string, rest []string) *string {
	for _, line := range append([]string{header}, rest...) {
		if blockLocationHintRe.MatchString(line) {
			if m := blockLocationMatchRe.FindString(line); m != "" {
				return types.StringPtr(m)
			}
			return nil
		}
	}
	return nil
}

// buildDescription joins body lines that are not date-range lines, stripping
// leading bullet and dash characters from each line.
func buildDescription(rest []string) *string {
	var kept []string
	for _, line := range rest {
		if !dateRangeRe.MatchString(line) {
			kept = append(kept, line)
		}
	}
	description := strings.TrimSpace(bulletPrefixRe.ReplaceAllString(strings.Join(kept, "\n"), ""))
	if description == "" {
		return nil
	}
	return types.StringPtr(description)
}
