package parser

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-parser/internal/types"
)

var educationKeywords = []string{"education", "academic", "qualifications"}

var degreeKeywords = []string{
	"bachelor", "master", "phd", "doctorate", "associate", "diploma",
	"b.s.", "b.a.", "m.s.", "m.a.", "mba", "ph.d.",
}

var (
	institutionRe = regexp.MustCompile(`(?i)university|college|institute|school`)
	yearRe        = regexp.MustCompile(`\d{4}`)
)

const maxEducationEntries = 5

// extractEducation walks the education section line by line. A line opens a
// new entry when it names a degree or looks like an institution, except that
// a triggering line whose slot (degree or institution) is still empty on the
// pending entry fills that slot instead, so "Bachelor of Science" followed by
// "State University" yields one entry. Non-triggering lines fill whichever of
// institution/degree is still empty. The last 4-digit year found anywhere in
// the section is assigned as the end date of the FIRST entry only, even though
// the year may belong to a later entry. Downstream consumers rely on that
// assignment, so it must not change.
func extractEducation(text string) []types.Education {
	education := []types.Education{}
	lowered := lowerASCII(text)

	sectionStart := findAnySectionStart(lowered, educationKeywords)
	if sectionStart == notFound {
		return education
	}

	// The section is bounded at the nearer of the next "certification" or
	// "skills" occurrence, each searched independently.
	sectionEnd := len(text)
	if i := strings.Index(lowered[sectionStart:], "certification"); i != -1 {
		sectionEnd = sectionStart + i
	}
	if i := strings.Index(lowered[sectionStart:], "skills"); i != -1 && sectionStart+i < sectionEnd {
		sectionEnd = sectionStart + i
	}
	section := text[sectionStart:sectionEnd]

	years := yearRe.FindAllString(section, -1)

	var current *types.Education
	for _, line := range nonEmptyLines(section) {
		lineLower := strings.ToLower(line)
		hasDegree := false
		for _, deg := range degreeKeywords {
			if strings.Contains(lineLower, deg) {
				hasDegree = true
				break
			}
		}

		if hasDegree || (len(line) > 10 && institutionRe.MatchString(line)) {
			if current != nil {
				if hasDegree && current.Degree == "" {
					current.Degree = line
					continue
				}
				if !hasDegree && current.InstitutionName == "" {
					current.InstitutionName = line
					continue
				}
				education = append(education, *current)
			}
			current = &types.Education{}
			if hasDegree {
				current.Degree = line
			} else {
				current.InstitutionName = line
			}
			continue
		}

		if current != nil {
			if current.InstitutionName == "" && len(line) > 5 {
				current.InstitutionName = line
			} else if current.Degree == "" && len(line) > 5 {
				current.Degree = line
			}
		}
	}
	if current != nil {
		education = append(education, *current)
	}

	if len(years) > 0 && len(education) > 0 {
		education[0].EndDate = types.StringPtr(years[len(years)-1])
	}

	if len(education) > maxEducationEntries {
		education = education[:maxEducationEntries]
	}
	return education
}
