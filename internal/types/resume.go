// Package types provides type definitions for structured data used throughout the resume-parser system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// ParsedResume is the structured record produced by one parse of a resume's
// raw text. It is a plain value: it carries no identity of its own, and a new
// value is produced by re-parsing rather than by mutating an existing one.
//
// The JSON field names are a wire contract shared with the persistence layer
// and the exporters; the advanced scorer also scans the serialized form, so
// renaming a field changes scoring behavior.
type ParsedResume struct {
	PersonalInfo   PersonalInfo     `json:"personalInfo"`
	Summary        *string          `json:"summary"`
	Skills         []Skill          `json:"skills"`
	WorkExperience []WorkExperience `json:"workExperience"`
	Education      []Education      `json:"education"`
	Certifications []Certification  `json:"certifications"`
}

// PersonalInfo holds contact fields extracted from the top of the document.
// Every field degrades to nil when no match is found.
type PersonalInfo struct {
	FullName     *string `json:"fullName"`
	Email        *string `json:"email"`
	Phone        *string `json:"phone"`
	Location     *string `json:"location"`
	LinkedinURL  *string `json:"linkedinUrl"`
	GithubURL    *string `json:"githubUrl"`
	PortfolioURL *string `json:"portfolioUrl"`
}

// Skill categories. Declared skills are tagged General; skills inferred from
// the technical vocabulary are tagged Technical.
const (
	SkillCategoryGeneral   = "General"
	SkillCategoryTechnical = "Technical"
)

// Skill is one entry of the skills list.
type Skill struct {
	Name     string `json:"name"`
	Category string `json:"category"`
}

// WorkExperience is one job block in source-text order (not calendar order).
// IsCurrent true implies EndDate nil.
type WorkExperience struct {
	CompanyName string  `json:"companyName"`
	JobTitle    string  `json:"jobTitle"`
	Location    *string `json:"location"`
	StartDate   *string `json:"startDate"`
	EndDate     *string `json:"endDate"`
	IsCurrent   bool    `json:"isCurrent"`
	Description *string `json:"description"`
}

// Education is one education entry. FieldOfStudy and GPA are part of the
// record contract but the heuristic extractor never fills them.
type Education struct {
	InstitutionName string  `json:"institutionName"`
	Degree          string  `json:"degree"`
	FieldOfStudy    *string `json:"fieldOfStudy"`
	Location        *string `json:"location"`
	StartDate       *string `json:"startDate"`
	EndDate         *string `json:"endDate"`
	GPA             *string `json:"gpa"`
}

// Certification is one certification line.
type Certification struct {
	Name         string  `json:"name"`
	Organization *string `json:"organization"`
	Date         *string `json:"date"`
}

// StringPtr returns a pointer to s. Extractors use it to wrap matched values.
func StringPtr(s string) *string {
	return &s
}
