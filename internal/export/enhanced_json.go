package export

import (
	"encoding/json"
	"strings"

	"github.com/jonathan/resume-parser/internal/scoring"
	"github.com/jonathan/resume-parser/internal/types"
)

// ATSExportData is the envelope the enhanced JSON export wraps around a
// parsed resume: the record itself plus the ATS keywords it matched and the
// improvement suggestions derived from what it is missing.
type ATSExportData struct {
	Resume                  types.ParsedResume `json:"resume"`
	FileName                string             `json:"fileName"`
	ATSKeywords             []string           `json:"atsKeywords"`
	OptimizationSuggestions []string           `json:"optimizationSuggestions"`
	ExportDate              string             `json:"exportDate"`
}

// EnhancedJSON builds the ATS export envelope and renders it as indented
// JSON.
func EnhancedJSON(resume types.ParsedResume, fileName string) (string, error) {
	data := BuildATSExport(resume, fileName)
	var b strings.Builder
	enc := json.NewEncoder(&b)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		return "", err
	}
	return strings.TrimSuffix(b.String(), "\n"), nil
}

// BuildATSExport assembles the envelope without serializing it, for callers
// that validate or post-process the structure first.
func BuildATSExport(resume types.ParsedResume, fileName string) ATSExportData {
	return ATSExportData{
		Resume:                  resume,
		FileName:                fileName,
		ATSKeywords:             MatchedATSKeywords(resume),
		OptimizationSuggestions: OptimizationSuggestions(resume),
		ExportDate:              exportTimestamp(),
	}
}

// matchedKeywords returns every vocabulary term found anywhere in the
// resume, in vocabulary order. A term carried on more than one category list
// is reported once per list; the suggestion ratio counts these raw hits
// while MatchedATSKeywords deduplicates them for the envelope.
func matchedKeywords(resume types.ParsedResume) []string {
	haystack := scoring.SerializeLowered(resume)
	matched := []string{}
	for _, keyword := range scoring.AllATSKeywords() {
		if strings.Contains(haystack, keyword) {
			matched = append(matched, keyword)
		}
	}
	return matched
}

// MatchedATSKeywords returns the ATS vocabulary terms found anywhere in the
// resume, deduplicated and in vocabulary order.
func MatchedATSKeywords(resume types.ParsedResume) []string {
	seen := make(map[string]bool)
	deduped := []string{}
	for _, keyword := range matchedKeywords(resume) {
		if !seen[keyword] {
			seen[keyword] = true
			deduped = append(deduped, keyword)
		}
	}
	return deduped
}

// OptimizationSuggestions inspects the resume for common ATS gaps and
// returns a human-readable suggestion for each one found.
func OptimizationSuggestions(resume types.ParsedResume) []string {
	suggestions := []string{}

	if resume.PersonalInfo.FullName == nil {
		suggestions = append(suggestions, "Add a full name to improve ATS compatibility")
	}
	if resume.PersonalInfo.Email == nil {
		suggestions = append(suggestions, "Include an email address for contact")
	}
	if resume.PersonalInfo.Phone == nil {
		suggestions = append(suggestions, "Add a phone number for better contact options")
	}
	if len(resume.Skills) == 0 {
		suggestions = append(suggestions, "Add a skills section with relevant technical and soft skills")
	}
	if len(resume.WorkExperience) == 0 {
		suggestions = append(suggestions, "Include work experience to show career progression")
	}
	if len(resume.Education) == 0 {
		suggestions = append(suggestions, "Add education information to complete your profile")
	}

	if resume.Summary == nil || len(*resume.Summary) < 50 {
		suggestions = append(suggestions, "Add a compelling professional summary (50+ characters)")
	}

	if resume.Summary != nil {
		lowered := strings.ToLower(*resume.Summary)
		if !containsAny(lowered, []string{"achieved", "improved", "increased", "developed", "managed"}) {
			suggestions = append(suggestions, "Use action verbs (achieved, improved, increased) to describe accomplishments")
		}
		if !containsAny(lowered, []string{"%", "$", "increased", "decreased", "improved"}) {
			suggestions = append(suggestions, "Include quantifiable achievements with numbers and percentages")
		}
	}

	if resume.PersonalInfo.LinkedinURL == nil &&
		resume.PersonalInfo.GithubURL == nil &&
		resume.PersonalInfo.PortfolioURL == nil {
		suggestions = append(suggestions, "Add LinkedIn, GitHub, or portfolio URL to enhance online presence")
	}

	vocabulary := scoring.AllATSKeywords()
	if float64(len(matchedKeywords(resume)))/float64(len(vocabulary)) < 0.1 {
		suggestions = append(suggestions, "Include more industry-specific keywords to improve ATS matching")
	}

	return suggestions
}

func containsAny(haystack string, needles []string) bool {
	for _, needle := range needles {
		if strings.Contains(haystack, needle) {
			return true
		}
	}
	return false
}
