package parser

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-parser/internal/types"
)

var skillsKeywords = []string{"skills", "technical skills", "core competencies", "expertise"}

// technicalSkills is the fixed vocabulary scanned as substrings against the
// whole lowercased document. Substring matching means "java" also hits inside
// "javascript"; that imprecision is part of the contract and is covered by a
// known-limitation test rather than fixed here.
var technicalSkills = []string{
	"javascript", "typescript", "python", "java", "c++", "c#", "ruby", "php", "swift", "kotlin",
	"react", "angular", "vue", "node", "express", "django", "flask", "spring", "asp.net",
	"html", "css", "sass", "tailwind", "bootstrap", "sql", "mongodb", "postgresql", "mysql",
	"aws", "azure", "gcp", "docker", "kubernetes", "git", "jenkins", "ci/cd", "agile", "scrum",
	"rest", "api", "graphql", "microservices", "tensorflow", "pytorch", "machine learning", "ai",
	"data analysis", "excel", "tableau", "power bi", "figma", "sketch", "photoshop",
}

var skillSplitRe = regexp.MustCompile(`[,;|•·]`)

const maxSkills = 30

// extractSkills collects declared skills from the first skills-style section
// and then appends known technical terms found anywhere in the document,
// capped at 30 entries.
func extractSkills(text string) []types.Skill {
	skills := []types.Skill{}
	lowered := lowerASCII(text)

	// Declared skills: only the earliest matching section is read; later
	// skill sections are not merged in.
	if start := findAnySectionStart(lowered, skillsKeywords); start != notFound {
		section := sectionWindow(text, start)
		lines := strings.Split(section, "\n")
		if len(lines) > 1 {
			for _, line := range lines[1:] {
				for _, token := range skillSplitRe.Split(line, -1) {
					name := strings.TrimSpace(token)
					if n := len([]rune(name)); n > 1 && n < 50 {
						skills = append(skills, types.Skill{Name: name, Category: types.SkillCategoryGeneral})
					}
				}
			}
		}
	}

	// Inferred technical skills, skipping names already collected
	// (case-insensitively).
	for _, tech := range technicalSkills {
		if !strings.Contains(lowered, tech) {
			continue
		}
		present := false
		for _, s := range skills {
			if strings.ToLower(s.Name) == tech {
				present = true
				break
			}
		}
		if !present {
			skills = append(skills, types.Skill{Name: capitalize(tech), Category: types.SkillCategoryTechnical})
		}
	}

	if len(skills) > maxSkills {
		skills = skills[:maxSkills]
	}
	return skills
}

// capitalize upper-cases only the first byte, so "ci/cd" becomes "Ci/cd".
func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
