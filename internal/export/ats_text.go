// Package export renders a parsed resume into its interchange formats:
// ATS plain text, ATS XML, enhanced JSON, and CSV. Section order,
// placeholder strings, and row layouts are a
// compatibility contract with existing consumers of exported files and must
// not drift.
package export

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-parser/internal/types"
)

// Placeholder strings for missing fields in the plain-text export.
const (
	placeholderName      = "Name Not Provided"
	placeholderEmail     = "Email Not Provided"
	placeholderPhone     = "Phone Not Provided"
	placeholderStartDate = "Start Date Not Provided"
	placeholderEndDate   = "End Date Not Provided"
)

// ATSPlainText renders the record as ATS-friendly plain text: a contact
// block, then SUMMARY, WORK EXPERIENCE, EDUCATION, SKILLS (grouped by
// category), and CERTIFICATIONS, blank-line separated.
func ATSPlainText(resume types.ParsedResume) string {
	var b strings.Builder

	b.WriteString(orPlaceholder(resume.PersonalInfo.FullName, placeholderName) + "\n")
	b.WriteString(orPlaceholder(resume.PersonalInfo.Email, placeholderEmail) + "\n")
	b.WriteString(orPlaceholder(resume.PersonalInfo.Phone, placeholderPhone) + "\n")
	if resume.PersonalInfo.Location != nil {
		b.WriteString(*resume.PersonalInfo.Location + "\n")
	}
	b.WriteString("\n")

	if resume.Summary != nil {
		b.WriteString("PROFESSIONAL SUMMARY\n")
		b.WriteString(*resume.Summary + "\n\n")
	}

	if len(resume.WorkExperience) > 0 {
		b.WriteString("WORK EXPERIENCE\n")
		for i, exp := range resume.WorkExperience {
			b.WriteString(exp.JobTitle + "\n")
			b.WriteString(exp.CompanyName + "\n")
			if exp.Location != nil {
				b.WriteString(*exp.Location + "\n")
			}
			end := placeholderEndDate
			if exp.IsCurrent {
				end = "Present"
			} else if exp.EndDate != nil {
				end = *exp.EndDate
			}
			b.WriteString(fmt.Sprintf("%s - %s\n", orPlaceholder(exp.StartDate, placeholderStartDate), end))
			if exp.Description != nil {
				b.WriteString(*exp.Description + "\n")
			}
			if i < len(resume.WorkExperience)-1 {
				b.WriteString("\n")
			}
		}
		b.WriteString("\n")
	}

	if len(resume.Education) > 0 {
		b.WriteString("EDUCATION\n")
		for i, edu := range resume.Education {
			b.WriteString(edu.Degree + "\n")
			b.WriteString(edu.InstitutionName + "\n")
			if edu.FieldOfStudy != nil {
				b.WriteString(*edu.FieldOfStudy + "\n")
			}
			if edu.Location != nil {
				b.WriteString(*edu.Location + "\n")
			}
			if edu.StartDate != nil || edu.EndDate != nil {
				b.WriteString(fmt.Sprintf("%s - %s\n",
					orPlaceholder(edu.StartDate, placeholderStartDate),
					orPlaceholder(edu.EndDate, placeholderEndDate)))
			}
			if edu.GPA != nil {
				b.WriteString("GPA: " + *edu.GPA + "\n")
			}
			if i < len(resume.Education)-1 {
				b.WriteString("\n")
			}
		}
		b.WriteString("\n")
	}

	if len(resume.Skills) > 0 {
		b.WriteString("SKILLS\n")
		for _, group := range groupSkills(resume.Skills) {
			b.WriteString(fmt.Sprintf("%s: %s\n", group.category, strings.Join(group.names, ", ")))
		}
		b.WriteString("\n")
	}

	if len(resume.Certifications) > 0 {
		b.WriteString("CERTIFICATIONS\n")
		for _, cert := range resume.Certifications {
			b.WriteString(cert.Name)
			if cert.Organization != nil {
				b.WriteString(" - " + *cert.Organization)
			}
			if cert.Date != nil {
				b.WriteString(" (" + *cert.Date + ")")
			}
			b.WriteString("\n")
		}
	}

	return strings.TrimSpace(b.String())
}

type skillGroup struct {
	category string
	names    []string
}

// groupSkills buckets skills by category, preserving the order in which each
// category first appears.
func groupSkills(skills []types.Skill) []skillGroup {
	var groups []skillGroup
	index := map[string]int{}
	for _, skill := range skills {
		category := skill.Category
		if category == "" {
			category = types.SkillCategoryGeneral
		}
		i, ok := index[category]
		if !ok {
			i = len(groups)
			index[category] = i
			groups = append(groups, skillGroup{category: category})
		}
		groups[i].names = append(groups[i].names, skill.Name)
	}
	return groups
}

func orPlaceholder(value *string, placeholder string) string {
	if value != nil {
		return *value
	}
	return placeholder
}
