package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jonathan/resume-parser/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestPrintParsedResume(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	resume := &types.ParsedResume{
		PersonalInfo: types.PersonalInfo{
			FullName: types.StringPtr("Jane Doe"),
			Email:    types.StringPtr("jane.doe@gmail.com"),
		},
		Skills: []types.Skill{
			{Name: "Go", Category: "Programming Languages"},
			{Name: "Docker", Category: "DevOps & Tools"},
		},
		WorkExperience: []types.WorkExperience{
			{CompanyName: "Acme Corp", JobTitle: "Engineer"},
		},
	}

	p.PrintParsedResume(resume, 72)
	output := buf.String()

	assert.Contains(t, output, "PARSED RESUME")
	assert.Contains(t, output, "Jane Doe")
	assert.Contains(t, output, "jane.doe@gmail.com")
	assert.Contains(t, output, "72/100")
	assert.Contains(t, output, "Skills:         2")
}

func TestPrintParsedResume_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintParsedResume(nil, 0)

	assert.Empty(t, buf.String())
}

func TestPrintWorkExperience(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	entries := []types.WorkExperience{
		{
			CompanyName: "Acme Corp",
			JobTitle:    "Senior Engineer",
			StartDate:   types.StringPtr("2021-03"),
			IsCurrent:   true,
		},
		{
			CompanyName: "Initech",
			JobTitle:    "Engineer",
			StartDate:   types.StringPtr("2018-01"),
			EndDate:     types.StringPtr("2021-02"),
		},
	}

	p.PrintWorkExperience(entries)
	output := buf.String()

	assert.Contains(t, output, "WORK EXPERIENCE")
	assert.Contains(t, output, "Senior Engineer")
	assert.Contains(t, output, "2021-03 - Present")
	assert.Contains(t, output, "2018-01 - 2021-02")
}

func TestPrintWorkExperience_Overflow(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	entries := make([]types.WorkExperience, 8)
	for i := range entries {
		entries[i] = types.WorkExperience{CompanyName: "Acme", JobTitle: "Engineer"}
	}

	p.PrintWorkExperience(entries)
	output := buf.String()

	assert.Contains(t, output, "... and 3 more positions")
}

func TestPrintWorkExperience_Empty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintWorkExperience(nil)

	assert.Empty(t, buf.String())
}

func TestPrintSkills(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	skills := []types.Skill{
		{Name: "Go", Category: "Programming Languages"},
		{Name: "Python", Category: "Programming Languages"},
		{Name: "Docker", Category: "DevOps & Tools"},
	}

	p.PrintSkills(skills)
	output := buf.String()

	assert.Contains(t, output, "SKILLS")
	assert.Contains(t, output, "Programming Languages: Go, Python")
	assert.Contains(t, output, "DevOps & Tools: Docker")
}

func TestPrintScoreBreakdown(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	breakdown := &types.AdvancedScoreBreakdown{
		OverallScore: 68,
		Categories: types.ScoreCategories{
			ContentQuality:       types.CategoryScore{Score: 18.5, MaxScore: 25},
			ATSCompatibility:     types.CategoryScore{Score: 20, MaxScore: 25},
			Completeness:         types.CategoryScore{Score: 15, MaxScore: 20},
			ExperienceQuality:    types.CategoryScore{Score: 10, MaxScore: 20},
			ProfessionalPresence: types.CategoryScore{Score: 5, MaxScore: 10},
		},
	}

	p.PrintScoreBreakdown(breakdown)
	output := buf.String()

	assert.Contains(t, output, "ADVANCED SCORE")
	assert.Contains(t, output, "Overall Score: 68/100")
	assert.Contains(t, output, "Content Quality")
	assert.Contains(t, output, "18.5 / 25")
	assert.Contains(t, output, "Professional Presence")
}

func TestPrintScoreBreakdown_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintScoreBreakdown(nil)

	assert.Empty(t, buf.String())
}

func TestPrintSuggestions_WithSuggestions(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintSuggestions([]string{
		"Add a professional summary section",
		"Include more technical skills",
	})
	output := buf.String()

	assert.Contains(t, output, "OPTIMIZATION SUGGESTIONS")
	assert.Contains(t, output, "Found 2 suggestions")
	assert.Contains(t, output, "Add a professional summary section")
}

func TestPrintSuggestions_Empty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintSuggestions(nil)
	output := buf.String()

	assert.Contains(t, output, "NO SUGGESTIONS")
}

func TestPrintBox_LongLines(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	resume := &types.ParsedResume{
		PersonalInfo: types.PersonalInfo{
			FullName: types.StringPtr("A Very Long Name That Should Be Truncated To Fit The Box"),
		},
	}

	p.PrintParsedResume(resume, 10)
	output := buf.String()

	assert.True(t, strings.Contains(output, "┌"))
	assert.True(t, strings.Contains(output, "└"))
	assert.True(t, strings.Contains(output, "│"))
}
