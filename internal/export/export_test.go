package export

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-parser/internal/types"
)

func sampleResume() types.ParsedResume {
	return types.ParsedResume{
		PersonalInfo: types.PersonalInfo{
			FullName:    types.StringPtr("Jane Doe"),
			Email:       types.StringPtr("jane.doe@gmail.com"),
			Phone:       types.StringPtr("555-123-4567"),
			Location:    types.StringPtr("Austin, TX"),
			LinkedinURL: types.StringPtr("linkedin.com/in/janedoe"),
		},
		Summary: types.StringPtr("Experienced engineer who improved deployment throughput by 40% and managed a team of five."),
		Skills: []types.Skill{
			{Name: "Python", Category: types.SkillCategoryGeneral},
			{Name: "Docker", Category: types.SkillCategoryTechnical},
		},
		WorkExperience: []types.WorkExperience{
			{
				CompanyName: "Acme Corp",
				JobTitle:    "Software Engineer",
				StartDate:   types.StringPtr("2020-01"),
				IsCurrent:   true,
				Description: types.StringPtr("Built data pipelines."),
			},
			{
				CompanyName: "Initech",
				JobTitle:    "Junior Developer",
				StartDate:   types.StringPtr("2018-06"),
				EndDate:     types.StringPtr("2019-12"),
			},
		},
		Education: []types.Education{
			{
				InstitutionName: "State University",
				Degree:          "Bachelor of Science",
				EndDate:         types.StringPtr("2018"),
				GPA:             types.StringPtr("3.8"),
			},
		},
		Certifications: []types.Certification{
			{Name: "AWS Certified Developer", Date: types.StringPtr("2021")},
		},
	}
}

func TestATSPlainTextLayout(t *testing.T) {
	out := ATSPlainText(sampleResume())

	assert.True(t, strings.HasPrefix(out, "Jane Doe\n"))
	assert.Contains(t, out, "PROFESSIONAL SUMMARY")
	assert.Contains(t, out, "WORK EXPERIENCE")
	assert.Contains(t, out, "Software Engineer\nAcme Corp")
	assert.Contains(t, out, "2020-01 - Present")
	assert.Contains(t, out, "2018-06 - 2019-12")
	assert.Contains(t, out, "GPA: 3.8")
	assert.Contains(t, out, "General: Python")
	assert.Contains(t, out, "Technical: Docker")
	assert.Contains(t, out, "CERTIFICATIONS")
	assert.False(t, strings.HasSuffix(out, "\n"))
}

func TestATSPlainTextPlaceholders(t *testing.T) {
	out := ATSPlainText(types.ParsedResume{})

	assert.Contains(t, out, "Name Not Provided")
	assert.Contains(t, out, "Email Not Provided")
	assert.Contains(t, out, "Phone Not Provided")
	assert.NotContains(t, out, "WORK EXPERIENCE")
	assert.NotContains(t, out, "SKILLS")
}

func TestATSXMLStructure(t *testing.T) {
	out := ATSXML(sampleResume(), "jane.txt")

	assert.True(t, strings.HasPrefix(out, `<?xml version="1.0" encoding="UTF-8"?>`))
	assert.Contains(t, out, "<fileName>jane.txt</fileName>")
	assert.Contains(t, out, "<format>ATS-XML</format>")
	assert.Contains(t, out, "<fullName>Jane Doe</fullName>")
	assert.Contains(t, out, "<isCurrent>true</isCurrent>")
	assert.Contains(t, out, "<isCurrent>false</isCurrent>")
	assert.Contains(t, out, "<gpa>3.8</gpa>")
	assert.Contains(t, out, "<category>Technical</category>")
	assert.True(t, strings.HasSuffix(out, "</resume>"))
}

func TestATSXMLMissingFieldsRenderEmpty(t *testing.T) {
	out := ATSXML(types.ParsedResume{}, "empty.txt")

	assert.Contains(t, out, "<fullName></fullName>")
	assert.Contains(t, out, "<summary></summary>")
	assert.Contains(t, out, "<workExperience>\n  </workExperience>")
}

func TestATSXMLDoesNotEscapeValues(t *testing.T) {
	resume := types.ParsedResume{}
	resume.PersonalInfo.FullName = types.StringPtr("Jane & Joe")

	out := ATSXML(resume, "pair.txt")

	assert.Contains(t, out, "<fullName>Jane & Joe</fullName>")
}

func TestEnhancedJSONEnvelope(t *testing.T) {
	out, err := EnhancedJSON(sampleResume(), "jane.txt")
	require.NoError(t, err)

	var data ATSExportData
	require.NoError(t, json.Unmarshal([]byte(out), &data))

	assert.Equal(t, "jane.txt", data.FileName)
	assert.NotEmpty(t, data.ExportDate)
	assert.Contains(t, data.ATSKeywords, "python")
	assert.Contains(t, data.ATSKeywords, "docker")
	require.NotNil(t, data.Resume.PersonalInfo.FullName)
	assert.Equal(t, "Jane Doe", *data.Resume.PersonalInfo.FullName)
}

func TestMatchedATSKeywordsDeduplicates(t *testing.T) {
	resume := types.ParsedResume{
		Skills: []types.Skill{
			{Name: "CRM", Category: types.SkillCategoryGeneral},
			{Name: "crm", Category: types.SkillCategoryTechnical},
		},
	}

	matched := MatchedATSKeywords(resume)

	count := 0
	for _, keyword := range matched {
		if keyword == "crm" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestMatchedKeywordsCountsCrossListDuplicates(t *testing.T) {
	// "crm" lives on two category lists; the raw hit list that feeds the
	// keyword-coverage ratio keeps both occurrences.
	resume := types.ParsedResume{
		Skills: []types.Skill{
			{Name: "CRM", Category: types.SkillCategoryGeneral},
		},
	}

	raw := matchedKeywords(resume)

	count := 0
	for _, keyword := range raw {
		if keyword == "crm" {
			count++
		}
	}
	assert.Equal(t, 2, count)
}

func TestOptimizationSuggestionsEmptyResume(t *testing.T) {
	suggestions := OptimizationSuggestions(types.ParsedResume{})

	assert.Contains(t, suggestions, "Add a full name to improve ATS compatibility")
	assert.Contains(t, suggestions, "Include an email address for contact")
	assert.Contains(t, suggestions, "Add a phone number for better contact options")
	assert.Contains(t, suggestions, "Add a skills section with relevant technical and soft skills")
	assert.Contains(t, suggestions, "Include work experience to show career progression")
	assert.Contains(t, suggestions, "Add education information to complete your profile")
	assert.Contains(t, suggestions, "Add a compelling professional summary (50+ characters)")
	assert.Contains(t, suggestions, "Add LinkedIn, GitHub, or portfolio URL to enhance online presence")
	assert.Contains(t, suggestions, "Include more industry-specific keywords to improve ATS matching")
	// No summary means the summary wording checks never fire.
	assert.NotContains(t, suggestions, "Use action verbs (achieved, improved, increased) to describe accomplishments")
}

func TestOptimizationSuggestionsCompleteResume(t *testing.T) {
	suggestions := OptimizationSuggestions(sampleResume())

	assert.NotContains(t, suggestions, "Add a full name to improve ATS compatibility")
	assert.NotContains(t, suggestions, "Add a compelling professional summary (50+ characters)")
	assert.NotContains(t, suggestions, "Use action verbs (achieved, improved, increased) to describe accomplishments")
	assert.NotContains(t, suggestions, "Include quantifiable achievements with numbers and percentages")
	assert.NotContains(t, suggestions, "Add LinkedIn, GitHub, or portfolio URL to enhance online presence")
}

func TestCSVQuotingAndSections(t *testing.T) {
	resume := sampleResume()
	resume.PersonalInfo.FullName = types.StringPtr(`Jane "JD" Doe`)

	out := CSV(resume)
	lines := strings.Split(out, "\n")

	assert.Equal(t, `"Personal Information",""`, lines[0])
	assert.Equal(t, `"Full Name","Jane ""JD"" Doe"`, lines[1])
	// The summary text is its own row under the section header, not a
	// labeled value cell.
	assert.Contains(t, out, "\"Professional Summary\",\"\"\n\""+*sampleResume().Summary+"\",\"\"")
	assert.NotContains(t, out, `"Summary",`)
	assert.Contains(t, out, `"Work Experience",""`)
	assert.Contains(t, out, `"Acme Corp","Software Engineer","2020-01","Present",""`)
	assert.Contains(t, out, `"Initech","Junior Developer","2018-06","2019-12",""`)
	assert.Contains(t, out, `"State University","Bachelor of Science","","2018","3.8"`)
	assert.Contains(t, out, `"AWS Certified Developer","","2021"`)
}

func TestCSVSkipsEmptySections(t *testing.T) {
	out := CSV(types.ParsedResume{})

	assert.NotContains(t, out, "Professional Summary")
	assert.NotContains(t, out, "Work Experience")
	assert.NotContains(t, out, "Certifications")
}

func TestCSVPreview(t *testing.T) {
	out := CSVPreview(sampleResume())
	lines := strings.Split(out, "\n")

	require.Len(t, lines, 7)
	assert.Equal(t, "Section,Value", lines[0])
	assert.Equal(t, "Name,Jane Doe", lines[1])
	assert.Equal(t, "Skills,Python; Docker", lines[5])
	assert.Equal(t, "Experience,Software Engineer at Acme Corp; Junior Developer at Initech", lines[6])
}
