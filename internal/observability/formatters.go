// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-parser/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

func orDash(value *string) string {
	if value == nil {
		return "—"
	}
	return *value
}

// PrintParsedResume outputs a human-readable summary of the extraction.
func (p *Printer) PrintParsedResume(resume *types.ParsedResume, confidence int) {
	if resume == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Name:     %s\n", orDash(resume.PersonalInfo.FullName)))
	sb.WriteString(fmt.Sprintf("Email:    %s\n", orDash(resume.PersonalInfo.Email)))
	sb.WriteString(fmt.Sprintf("Phone:    %s\n", orDash(resume.PersonalInfo.Phone)))
	sb.WriteString(fmt.Sprintf("Location: %s\n", orDash(resume.PersonalInfo.Location)))
	sb.WriteString("\n")

	sb.WriteString(fmt.Sprintf("Confidence:     %d/100\n", confidence))
	sb.WriteString(fmt.Sprintf("Skills:         %d\n", len(resume.Skills)))
	sb.WriteString(fmt.Sprintf("Experience:     %d entries\n", len(resume.WorkExperience)))
	sb.WriteString(fmt.Sprintf("Education:      %d entries\n", len(resume.Education)))
	sb.WriteString(fmt.Sprintf("Certifications: %d", len(resume.Certifications)))

	p.printBox("PARSED RESUME", sb.String())
}

// PrintWorkExperience outputs the extracted positions in source order.
func (p *Printer) PrintWorkExperience(entries []types.WorkExperience) {
	if len(entries) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total positions: %d\n\n", len(entries)))

	count := min(len(entries), maxItemsToShow)
	for i := 0; i < count; i++ {
		exp := entries[i]
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, exp.JobTitle))
		sb.WriteString(fmt.Sprintf("    %s\n", exp.CompanyName))
		if exp.StartDate != nil {
			end := "—"
			if exp.IsCurrent {
				end = "Present"
			} else if exp.EndDate != nil {
				end = *exp.EndDate
			}
			sb.WriteString(fmt.Sprintf("    %s - %s\n", *exp.StartDate, end))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(entries) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more positions", len(entries)-maxItemsToShow))
	}

	p.printBox("WORK EXPERIENCE", sb.String())
}

// PrintSkills outputs extracted skills grouped under their categories.
func (p *Printer) PrintSkills(skills []types.Skill) {
	if len(skills) == 0 {
		return
	}

	byCategory := map[string][]string{}
	order := []string{}
	for _, skill := range skills {
		if _, seen := byCategory[skill.Category]; !seen {
			order = append(order, skill.Category)
		}
		byCategory[skill.Category] = append(byCategory[skill.Category], skill.Name)
	}

	var sb strings.Builder
	for i, category := range order {
		names := strings.Join(byCategory[category], ", ")
		if len(names) > 40 {
			names = names[:37] + "..."
		}
		sb.WriteString(fmt.Sprintf("%s: %s", category, names))
		if i < len(order)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("SKILLS", sb.String())
}

// PrintScoreBreakdown outputs the weighted category scores.
func (p *Printer) PrintScoreBreakdown(breakdown *types.AdvancedScoreBreakdown) {
	if breakdown == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Overall Score: %d/100\n\n", breakdown.OverallScore))

	rows := []struct {
		label    string
		category types.CategoryScore
	}{
		{"Content Quality", breakdown.Categories.ContentQuality},
		{"ATS Compatibility", breakdown.Categories.ATSCompatibility},
		{"Completeness", breakdown.Categories.Completeness},
		{"Experience Quality", breakdown.Categories.ExperienceQuality},
		{"Professional Presence", breakdown.Categories.ProfessionalPresence},
	}
	for i, row := range rows {
		sb.WriteString(fmt.Sprintf("%-22s %5.1f / %.0f", row.label, row.category.Score, row.category.MaxScore))
		if i < len(rows)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("ADVANCED SCORE", sb.String())
}

// PrintSuggestions outputs optimization suggestions from the enhanced export.
func (p *Printer) PrintSuggestions(suggestions []string) {
	if len(suggestions) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ NO SUGGESTIONS")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d suggestions:\n\n", len(suggestions)))

	for i, suggestion := range suggestions {
		if len(suggestion) > 50 {
			suggestion = suggestion[:47] + "..."
		}
		sb.WriteString(fmt.Sprintf("• %s", suggestion))
		if i < len(suggestions)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("OPTIMIZATION SUGGESTIONS", sb.String())
}
