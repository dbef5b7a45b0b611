package parser

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const acceptanceResume = "Jane Doe\njane@x.com\n555-123-4567\nSKILLS\nPython, SQL, Docker\n\nEXPERIENCE\nSoftware Engineer - Acme Corp\nJan 2020 - Present\nBuilt things.\n\nEDUCATION\nBachelor of Science\nState University\n2019"

func TestParse_AcceptanceFixture(t *testing.T) {
	resume := Parse(acceptanceResume)

	require.NotNil(t, resume.PersonalInfo.FullName)
	assert.Equal(t, "Jane Doe", *resume.PersonalInfo.FullName)
	require.NotNil(t, resume.PersonalInfo.Email)
	assert.Equal(t, "jane@x.com", *resume.PersonalInfo.Email)
	require.NotNil(t, resume.PersonalInfo.Phone)
	assert.Equal(t, "555-123-4567", *resume.PersonalInfo.Phone)

	var names []string
	for _, s := range resume.Skills {
		names = append(names, s.Name)
	}
	assert.Contains(t, names, "Python")
	assert.Contains(t, names, "SQL")
	assert.Contains(t, names, "Docker")

	require.Len(t, resume.WorkExperience, 1)
	exp := resume.WorkExperience[0]
	assert.Equal(t, "Software Engineer", exp.JobTitle)
	assert.Equal(t, "Acme Corp", exp.CompanyName)
	require.NotNil(t, exp.StartDate)
	assert.Equal(t, "2020-01", *exp.StartDate)
	assert.True(t, exp.IsCurrent)
	assert.Nil(t, exp.EndDate)
	require.NotNil(t, exp.Description)
	assert.Equal(t, "Built things.", *exp.Description)

	require.Len(t, resume.Education, 1)
	edu := resume.Education[0]
	assert.Equal(t, "Bachelor of Science", edu.Degree)
	assert.Equal(t, "State University", edu.InstitutionName)
	require.NotNil(t, edu.EndDate)
	assert.Equal(t, "2019", *edu.EndDate)
}

func TestParse_NoSectionHeaders(t *testing.T) {
	resume := Parse("Jordan Mills\nSome unrelated sentences go here.\nNothing of note follows.")

	require.NotNil(t, resume.PersonalInfo.FullName)
	assert.Equal(t, "Jordan Mills", *resume.PersonalInfo.FullName)
	assert.Nil(t, resume.PersonalInfo.Email)
	assert.Nil(t, resume.PersonalInfo.Phone)
	assert.Nil(t, resume.PersonalInfo.Location)
	assert.Nil(t, resume.Summary)
	assert.Empty(t, resume.Skills)
	assert.Empty(t, resume.WorkExperience)
	assert.Empty(t, resume.Education)
	assert.Empty(t, resume.Certifications)
}

func TestParse_NeverFails(t *testing.T) {
	inputs := []string{
		"",
		"   \n\n   ",
		"skills experience education certification",
		strings.Repeat("x", 10000),
	}
	for _, input := range inputs {
		assert.NotPanics(t, func() { Parse(input) })
	}
}

func TestParse_NonASCIITextKeepsOffsetsInBounds(t *testing.T) {
	// "Ⱥ" lowercases to a longer code point, so a Unicode-aware lowered
	// haystack would drift out of alignment with the original byte offsets.
	text := strings.Repeat("Ⱥ", 600) +
		"\nSkills\nPython, SQL\n\nExperience\nEngineer - Acme Corp\nJan 2020 - Present"

	assert.NotPanics(t, func() {
		parsed := Parse(text)

		var names []string
		for _, s := range parsed.Skills {
			names = append(names, s.Name)
		}
		assert.Contains(t, names, "Python")
		assert.Contains(t, names, "SQL")

		require.Len(t, parsed.WorkExperience, 1)
		assert.Equal(t, "Engineer", parsed.WorkExperience[0].JobTitle)
		assert.Equal(t, "Acme Corp", parsed.WorkExperience[0].CompanyName)
		assert.True(t, parsed.WorkExperience[0].IsCurrent)
	})
}

func TestLowerASCII(t *testing.T) {
	in := "ȺBC def ȺXY"
	out := lowerASCII(in)

	assert.Equal(t, len(in), len(out))
	assert.Equal(t, "Ⱥbc def Ⱥxy", out)
}

func TestExtractSkills_CapAtThirty(t *testing.T) {
	var tokens []string
	for i := 1; i <= 50; i++ {
		tokens = append(tokens, fmt.Sprintf("Tool%02d", i))
	}
	text := "Skills\n" + strings.Join(tokens, ", ") + "\n\nDone."

	skills := extractSkills(text)

	assert.Len(t, skills, 30)
	assert.Equal(t, "Tool01", skills[0].Name)
	assert.Equal(t, "Tool30", skills[29].Name)
}

func TestExtractSkills_JavaSubstringFalsePositive(t *testing.T) {
	// "java" matches inside "javascript"; the imprecision is part of the
	// contract, so both entries appear.
	skills := extractSkills("Pat Lee\nWrites JavaScript code.")

	var names []string
	for _, s := range skills {
		names = append(names, s.Name)
	}
	assert.Contains(t, names, "Javascript")
	assert.Contains(t, names, "Java")
}

func TestExtractSkills_DeclaredSkipsInferredDuplicate(t *testing.T) {
	skills := extractSkills("Skills\nPython, Leadership\n\nEnd.")

	pythonCount := 0
	for _, s := range skills {
		if strings.EqualFold(s.Name, "python") {
			pythonCount++
			assert.Equal(t, "General", s.Category)
		}
	}
	assert.Equal(t, 1, pythonCount)
}

func TestExtractWorkExperience_CapAtTen(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("Employment\n\n")
	for i := 1; i <= 15; i++ {
		fmt.Fprintf(&sb, "Engineer %d - Initech %d\n2010 - 2011\n\n", i, i)
	}

	entries := extractWorkExperience(sb.String())

	require.Len(t, entries, 10)
	assert.Equal(t, "Engineer 1", entries[0].JobTitle)
	assert.Equal(t, "Engineer 10", entries[9].JobTitle)
}

func TestExtractWorkExperience_HeadingLineNotATitle(t *testing.T) {
	text := "Work History\nStaff Engineer | Globex\nMar 2019 - Apr 2021\n- Shipped the billing rewrite"

	entries := extractWorkExperience(text)

	require.Len(t, entries, 1)
	assert.Equal(t, "Staff Engineer", entries[0].JobTitle)
	assert.Equal(t, "Globex", entries[0].CompanyName)
	require.NotNil(t, entries[0].StartDate)
	assert.Equal(t, "2019-03", *entries[0].StartDate)
	require.NotNil(t, entries[0].EndDate)
	assert.Equal(t, "2021-04", *entries[0].EndDate)
	assert.False(t, entries[0].IsCurrent)
	require.NotNil(t, entries[0].Description)
	assert.Equal(t, "Shipped the billing rewrite", *entries[0].Description)
}

func TestExtractWorkExperience_HeaderFallbacks(t *testing.T) {
	tests := []struct {
		name        string
		block       string
		wantTitle   string
		wantCompany string
	}{
		{
			name:        "title keyword on right side",
			block:       "Employment\nGlobex | Senior Developer\n2015 - 2016",
			wantTitle:   "Senior Developer",
			wantCompany: "Globex",
		},
		{
			name:        "neither side matches keeps order",
			block:       "Employment\nFirst Thing - Second Thing\n2015 - 2016",
			wantTitle:   "First Thing",
			wantCompany: "Second Thing",
		},
		{
			name:        "unsplit header takes next line as company",
			block:       "Employment\nHead of Operations\nGlobex Industries\n2015 - 2016",
			wantTitle:   "Head of Operations",
			wantCompany: "Globex Industries",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries := extractWorkExperience(tt.block)
			require.Len(t, entries, 1)
			assert.Equal(t, tt.wantTitle, entries[0].JobTitle)
			assert.Equal(t, tt.wantCompany, entries[0].CompanyName)
		})
	}
}

func TestExtractWorkExperience_CompanyPlaceholder(t *testing.T) {
	entries := extractWorkExperience("Employment\n\nFreelancing")

	require.Len(t, entries, 1)
	assert.Equal(t, "Freelancing", entries[0].JobTitle)
	assert.Equal(t, "Unknown Company", entries[0].CompanyName)
}

func TestFindBlockLocation(t *testing.T) {
	loc := findBlockLocation("Engineer - Acme Corp", []string{"Dallas, Texas", "Built things."})
	require.NotNil(t, loc)
	assert.Equal(t, "Dallas, Texas", *loc)

	loc = findBlockLocation("Engineer", []string{"TX 75201"})
	require.NotNil(t, loc)
	assert.Equal(t, "TX 75201", *loc)

	// A lone two-letter token hints at a location but a state abbreviation
	// without a zip code is not one.
	loc = findBlockLocation("Engineer - Acme HQ", []string{"Built things."})
	assert.Nil(t, loc)
}

func TestExtractEducation_CapAtFive(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("Education\n")
	for i := 1; i <= 15; i++ {
		fmt.Fprintf(&sb, "Bachelor of Arts Cohort %d\n", i)
	}

	entries := extractEducation(sb.String())

	assert.Len(t, entries, 5)
	assert.Equal(t, "Bachelor of Arts Cohort 1", entries[0].Degree)
}

func TestExtractEducation_LastYearAssignedToFirstEntryOnly(t *testing.T) {
	text := "Education\nMaster of Science\nTech University\n2018\nBachelor of Arts\nState College\n2014"

	entries := extractEducation(text)

	require.Len(t, entries, 2)
	assert.Equal(t, "Master of Science", entries[0].Degree)
	assert.Equal(t, "Tech University", entries[0].InstitutionName)
	// The last year found anywhere in the section lands on entry 0, even
	// though it belongs to the second entry.
	require.NotNil(t, entries[0].EndDate)
	assert.Equal(t, "2014", *entries[0].EndDate)
	assert.Equal(t, "Bachelor of Arts", entries[1].Degree)
	assert.Equal(t, "State College", entries[1].InstitutionName)
	assert.Nil(t, entries[1].EndDate)
}

func TestExtractCertifications(t *testing.T) {
	text := "Certifications\nAWS Solutions Architect 2022\nCompTIA Security Plus\nX\n\nOther content"

	certs := extractCertifications(text)

	require.Len(t, certs, 2)
	assert.Equal(t, "AWS Solutions Architect 2022", certs[0].Name)
	assert.Nil(t, certs[0].Organization)
	require.NotNil(t, certs[0].Date)
	assert.Equal(t, "2022", *certs[0].Date)
	assert.Equal(t, "CompTIA Security Plus", certs[1].Name)
	assert.Nil(t, certs[1].Date)
}

func TestExtractCertifications_CapAtTen(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("Licenses\n")
	for i := 1; i <= 12; i++ {
		fmt.Fprintf(&sb, "License Series %02d\n", i)
	}

	certs := extractCertifications(sb.String())

	assert.Len(t, certs, 10)
}

func TestExtractSummary(t *testing.T) {
	t.Run("bounded by next section", func(t *testing.T) {
		text := "Alex Kim\n\nProfessional Summary\nBackend engineer focused on reliability and developer tooling.\n\nEducation\nState University"
		summary := extractSummary(text)
		require.NotNil(t, summary)
		assert.Equal(t, "Backend engineer focused on reliability and developer tooling.", *summary)
	})

	t.Run("short result treated as noise", func(t *testing.T) {
		assert.Nil(t, extractSummary("Summary\nToo short.\n\nEducation\nState University"))
	})

	t.Run("absent header", func(t *testing.T) {
		assert.Nil(t, extractSummary("Alex Kim\nBackend engineer."))
	})
}

func TestExtractPersonalInfo_URLsAndLocation(t *testing.T) {
	text := "Sam Park\nAustin, TX\nsam.park@gmail.com\n(512) 555-0199\nlinkedin.com/in/sampark\ngithub.com/sampark\nhttps://sampark.dev"
	resume := Parse(text)
	info := resume.PersonalInfo

	require.NotNil(t, info.Location)
	assert.Equal(t, "Austin, TX", *info.Location)
	require.NotNil(t, info.Phone)
	assert.Equal(t, "(512) 555-0199", *info.Phone)
	require.NotNil(t, info.LinkedinURL)
	assert.Equal(t, "linkedin.com/in/sampark", *info.LinkedinURL)
	require.NotNil(t, info.GithubURL)
	assert.Equal(t, "github.com/sampark", *info.GithubURL)
	require.NotNil(t, info.PortfolioURL)
	assert.Equal(t, "https://sampark.dev", *info.PortfolioURL)
}

func TestExtractPersonalInfo_LocationOnlyInFirstFiveLines(t *testing.T) {
	text := "Sam Park\nLine two\nLine three\nLine four\nLine five\nAustin, TX 78701"
	resume := Parse(text)

	assert.Nil(t, resume.PersonalInfo.Location)
}

func TestNormalizeDate(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"2020", "2020"},
		{"03/2019", "2019-03"},
		{"3/2019", "2019-03"},
		{"12.2021", "2021-12"},
		{"Jan 2020", "2020-01"},
		{"Sept 2021", "2021-09"},
		{"sep 2021", "2021-09"},
		{"Dec 1999", "1999-12"},
		{"January 2020", "January 2020"},
		{"garbage", "garbage"},
		// Idempotent on already-normalized forms.
		{"2020-01", "2020-01"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeDate(tt.in))
		})
	}
}

func TestSectionLocator(t *testing.T) {
	lowered := "intro\nskills\nmore\nskills again\neducation"

	t.Run("earliest occurrence wins", func(t *testing.T) {
		assert.Equal(t, 6, findAnySectionStart(lowered, []string{"skills", "education"}))
	})

	t.Run("absent keywords", func(t *testing.T) {
		assert.Equal(t, notFound, findAnySectionStart(lowered, []string{"projects"}))
	})

	t.Run("next section bounds", func(t *testing.T) {
		assert.Equal(t, strings.Index(lowered, "education"), nextSectionIndex(lowered, 6, []string{"education"}))
		assert.Equal(t, notFound, nextSectionIndex(lowered, 6, []string{"projects"}))
	})
}

func TestSectionWindow(t *testing.T) {
	t.Run("bounded by blank line", func(t *testing.T) {
		assert.Equal(t, "head\nbody", sectionWindow("head\nbody\n\ntail", 0))
	})

	t.Run("bounded by length", func(t *testing.T) {
		text := "head\n" + strings.Repeat("a", 600)
		assert.Len(t, sectionWindow(text, 0), 500)
	})
}
