package export

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-parser/internal/types"
)

// CSV renders the full spreadsheet export: one section per resume component,
// every cell double-quoted. The layout is fixed so existing imports keep
// working; encoding/csv would reorder quoting decisions per cell, so the
// quoting is done by hand.
func CSV(resume types.ParsedResume) string {
	rows := [][]string{
		{"Personal Information", ""},
		{"Full Name", orEmpty(resume.PersonalInfo.FullName)},
		{"Email", orEmpty(resume.PersonalInfo.Email)},
		{"Phone", orEmpty(resume.PersonalInfo.Phone)},
		{"Location", orEmpty(resume.PersonalInfo.Location)},
		{"LinkedIn", orEmpty(resume.PersonalInfo.LinkedinURL)},
		{"GitHub", orEmpty(resume.PersonalInfo.GithubURL)},
		{"Portfolio", orEmpty(resume.PersonalInfo.PortfolioURL)},
		{""},
	}

	if resume.Summary != nil {
		rows = append(rows,
			[]string{"Professional Summary", ""},
			[]string{*resume.Summary, ""},
			[]string{""},
		)
	}

	if len(resume.Skills) > 0 {
		rows = append(rows, []string{"Skills", "Category"})
		for _, skill := range resume.Skills {
			rows = append(rows, []string{skill.Name, skill.Category})
		}
		rows = append(rows, []string{""})
	}

	if len(resume.WorkExperience) > 0 {
		rows = append(rows,
			[]string{"Work Experience", ""},
			[]string{"Company", "Job Title", "Start Date", "End Date", "Location"},
		)
		for _, exp := range resume.WorkExperience {
			end := orEmpty(exp.EndDate)
			if exp.IsCurrent {
				end = "Present"
			}
			rows = append(rows, []string{
				exp.CompanyName,
				exp.JobTitle,
				orEmpty(exp.StartDate),
				end,
				orEmpty(exp.Location),
			})
		}
		rows = append(rows, []string{""})
	}

	if len(resume.Education) > 0 {
		rows = append(rows,
			[]string{"Education", ""},
			[]string{"Institution", "Degree", "Field of Study", "End Date", "GPA"},
		)
		for _, edu := range resume.Education {
			rows = append(rows, []string{
				edu.InstitutionName,
				edu.Degree,
				orEmpty(edu.FieldOfStudy),
				orEmpty(edu.EndDate),
				orEmpty(edu.GPA),
			})
		}
		rows = append(rows, []string{""})
	}

	if len(resume.Certifications) > 0 {
		rows = append(rows,
			[]string{"Certifications", ""},
			[]string{"Name", "Organization", "Date"},
		)
		for _, cert := range resume.Certifications {
			rows = append(rows, []string{
				cert.Name,
				orEmpty(cert.Organization),
				orEmpty(cert.Date),
			})
		}
	}

	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		cells := make([]string, len(row))
		for i, cell := range row {
			cells[i] = quoteCell(cell)
		}
		lines = append(lines, strings.Join(cells, ","))
	}
	return strings.Join(lines, "\n")
}

// CSVPreview renders the two-column summary table shown before a full
// export. Cells are joined verbatim, so values containing commas shift the
// columns; the preview is informational only.
func CSVPreview(resume types.ParsedResume) string {
	skillNames := make([]string, len(resume.Skills))
	for i, skill := range resume.Skills {
		skillNames[i] = skill.Name
	}

	positions := make([]string, len(resume.WorkExperience))
	for i, exp := range resume.WorkExperience {
		positions[i] = fmt.Sprintf("%s at %s", exp.JobTitle, exp.CompanyName)
	}

	rows := [][]string{
		{"Section", "Value"},
		{"Name", orEmpty(resume.PersonalInfo.FullName)},
		{"Email", orEmpty(resume.PersonalInfo.Email)},
		{"Phone", orEmpty(resume.PersonalInfo.Phone)},
		{"Location", orEmpty(resume.PersonalInfo.Location)},
		{"Skills", strings.Join(skillNames, "; ")},
		{"Experience", strings.Join(positions, "; ")},
	}

	lines := make([]string, len(rows))
	for i, row := range rows {
		lines[i] = strings.Join(row, ",")
	}
	return strings.Join(lines, "\n")
}

func quoteCell(cell string) string {
	return `"` + strings.ReplaceAll(cell, `"`, `""`) + `"`
}
