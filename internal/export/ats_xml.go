package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/jonathan/resume-parser/internal/types"
)

// ATSXML renders the record into the fixed ATS XML schema. Field values are
// interpolated into tag bodies verbatim, without XML escaping: callers
// feeding untrusted input must sanitize `<`, `>` and `&` themselves before
// exposing the output.
func ATSXML(resume types.ParsedResume, fileName string) string {
	var b strings.Builder

	b.WriteString("<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n")
	b.WriteString("<resume>\n")
	b.WriteString("  <metadata>\n")
	b.WriteString(fmt.Sprintf("    <fileName>%s</fileName>\n", fileName))
	b.WriteString(fmt.Sprintf("    <exportDate>%s</exportDate>\n", exportTimestamp()))
	b.WriteString("    <format>ATS-XML</format>\n")
	b.WriteString("  </metadata>\n\n")

	b.WriteString("  <personalInformation>\n")
	b.WriteString(fmt.Sprintf("    <fullName>%s</fullName>\n", orEmpty(resume.PersonalInfo.FullName)))
	b.WriteString(fmt.Sprintf("    <email>%s</email>\n", orEmpty(resume.PersonalInfo.Email)))
	b.WriteString(fmt.Sprintf("    <phone>%s</phone>\n", orEmpty(resume.PersonalInfo.Phone)))
	b.WriteString(fmt.Sprintf("    <location>%s</location>\n", orEmpty(resume.PersonalInfo.Location)))
	b.WriteString(fmt.Sprintf("    <linkedinUrl>%s</linkedinUrl>\n", orEmpty(resume.PersonalInfo.LinkedinURL)))
	b.WriteString(fmt.Sprintf("    <githubUrl>%s</githubUrl>\n", orEmpty(resume.PersonalInfo.GithubURL)))
	b.WriteString(fmt.Sprintf("    <portfolioUrl>%s</portfolioUrl>\n", orEmpty(resume.PersonalInfo.PortfolioURL)))
	b.WriteString("  </personalInformation>\n\n")

	b.WriteString("  <professionalSummary>\n")
	b.WriteString(fmt.Sprintf("    <summary>%s</summary>\n", orEmpty(resume.Summary)))
	b.WriteString("  </professionalSummary>\n\n")

	b.WriteString("  <workExperience>\n")
	for _, exp := range resume.WorkExperience {
		b.WriteString("    <position>\n")
		b.WriteString(fmt.Sprintf("      <jobTitle>%s</jobTitle>\n", exp.JobTitle))
		b.WriteString(fmt.Sprintf("      <companyName>%s</companyName>\n", exp.CompanyName))
		b.WriteString(fmt.Sprintf("      <location>%s</location>\n", orEmpty(exp.Location)))
		b.WriteString(fmt.Sprintf("      <startDate>%s</startDate>\n", orEmpty(exp.StartDate)))
		b.WriteString(fmt.Sprintf("      <endDate>%s</endDate>\n", orEmpty(exp.EndDate)))
		b.WriteString(fmt.Sprintf("      <isCurrent>%t</isCurrent>\n", exp.IsCurrent))
		b.WriteString(fmt.Sprintf("      <description>%s</description>\n", orEmpty(exp.Description)))
		b.WriteString("    </position>\n")
	}
	b.WriteString("  </workExperience>\n\n")

	b.WriteString("  <education>\n")
	for _, edu := range resume.Education {
		b.WriteString("    <degree>\n")
		b.WriteString(fmt.Sprintf("      <institutionName>%s</institutionName>\n", edu.InstitutionName))
		b.WriteString(fmt.Sprintf("      <degree>%s</degree>\n", edu.Degree))
		b.WriteString(fmt.Sprintf("      <fieldOfStudy>%s</fieldOfStudy>\n", orEmpty(edu.FieldOfStudy)))
		b.WriteString(fmt.Sprintf("      <location>%s</location>\n", orEmpty(edu.Location)))
		b.WriteString(fmt.Sprintf("      <startDate>%s</startDate>\n", orEmpty(edu.StartDate)))
		b.WriteString(fmt.Sprintf("      <endDate>%s</endDate>\n", orEmpty(edu.EndDate)))
		b.WriteString(fmt.Sprintf("      <gpa>%s</gpa>\n", orEmpty(edu.GPA)))
		b.WriteString("    </degree>\n")
	}
	b.WriteString("  </education>\n\n")

	b.WriteString("  <skills>\n")
	for _, skill := range resume.Skills {
		category := skill.Category
		if category == "" {
			category = types.SkillCategoryGeneral
		}
		b.WriteString("    <skill>\n")
		b.WriteString(fmt.Sprintf("      <name>%s</name>\n", skill.Name))
		b.WriteString(fmt.Sprintf("      <category>%s</category>\n", category))
		b.WriteString("    </skill>\n")
	}
	b.WriteString("  </skills>\n\n")

	b.WriteString("  <certifications>\n")
	for _, cert := range resume.Certifications {
		b.WriteString("    <certification>\n")
		b.WriteString(fmt.Sprintf("      <name>%s</name>\n", cert.Name))
		b.WriteString(fmt.Sprintf("      <organization>%s</organization>\n", orEmpty(cert.Organization)))
		b.WriteString(fmt.Sprintf("      <date>%s</date>\n", orEmpty(cert.Date)))
		b.WriteString("    </certification>\n")
	}
	b.WriteString("  </certifications>\n")
	b.WriteString("</resume>")

	return b.String()
}

// exportTimestamp returns the current time in the millisecond ISO-8601 form
// downstream consumers expect.
func exportTimestamp() string {
	return time.Now().UTC().Format("2006-01-02T15:04:05.000Z")
}

func orEmpty(value *string) string {
	if value != nil {
		return *value
	}
	return ""
}
