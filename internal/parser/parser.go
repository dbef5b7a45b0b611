package parser

import (
	"github.com/jonathan/resume-parser/internal/types"
)

// Parse runs every field extractor over the raw text and assembles the
// structured record. It never fails: unparseable input simply yields a
// sparsely populated record. Parse is a pure function of its input, so
// callers may run independent parses concurrently without coordination.
func Parse(text string) types.ParsedResume {
	lines := nonEmptyLines(text)

	return types.ParsedResume{
		PersonalInfo:   extractPersonalInfo(text, lines),
		Summary:        extractSummary(text),
		Skills:         extractSkills(text),
		WorkExperience: extractWorkExperience(text),
		Education:      extractEducation(text),
		Certifications: extractCertifications(text),
	}
}
