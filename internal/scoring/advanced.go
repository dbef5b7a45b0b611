package scoring

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/jonathan/resume-parser/internal/types"
)

// Category weights: content quality 30%, ATS compatibility 25%, completeness
// 20%, experience quality 15%, professional presence 10%.
const (
	weightContentQuality       = 0.30
	weightATSCompatibility     = 0.25
	weightCompleteness         = 0.20
	weightExperienceQuality    = 0.15
	weightProfessionalPresence = 0.10
)

// AdvancedScore computes the five-category ATS-style breakdown. Each category
// is scored independently out of 100 and its details always sum exactly to
// the category score; the overall score is the weighted sum rounded to the
// nearest integer.
func AdvancedScore(resume types.ParsedResume) types.AdvancedScoreBreakdown {
	text := SerializeLowered(resume)

	contentQuality := scoreContentQuality(text)
	atsCompatibility := scoreATSCompatibility(resume, text)
	completeness := scoreCompleteness(resume)
	experienceQuality := scoreExperienceQuality(resume)
	professionalPresence := scoreProfessionalPresence(resume)

	overall := math.Round(
		contentQuality.Score*weightContentQuality +
			atsCompatibility.Score*weightATSCompatibility +
			completeness.Score*weightCompleteness +
			experienceQuality.Score*weightExperienceQuality +
			professionalPresence.Score*weightProfessionalPresence)

	return types.AdvancedScoreBreakdown{
		OverallScore: int(overall),
		Categories: types.ScoreCategories{
			ContentQuality:       contentQuality,
			ATSCompatibility:     atsCompatibility,
			Completeness:         completeness,
			ExperienceQuality:    experienceQuality,
			ProfessionalPresence: professionalPresence,
		},
	}
}

func scoreContentQuality(text string) types.CategoryScore {
	keywordScore := math.Min(40, float64(countContained(text, AllATSKeywords()))*4)
	actionVerbScore := math.Min(30, float64(countContained(text, actionVerbs))*3)
	quantifiableScore := math.Min(30, float64(countContained(text, quantifiableIndicators))*2)

	score := keywordScore + actionVerbScore + quantifiableScore
	return types.CategoryScore{
		Score:    math.Min(score, 100),
		MaxScore: 100,
		Details: types.ContentQualityDetails{
			KeywordDensity:           keywordScore,
			ActionVerbs:              actionVerbScore,
			QuantifiableAchievements: quantifiableScore,
		},
	}
}

func scoreATSCompatibility(resume types.ParsedResume, text string) types.CategoryScore {
	// The haystack is JSON, where newlines and tabs inside values are
	// escaped; this check sees only literal control characters.
	formatConsistency := 0.0
	if strings.Contains(text, "\n") && !strings.Contains(text, "\t") {
		formatConsistency = 25
	}

	standardSections := []string{"experience", "education", "skills", "summary"}
	sectionsFound := countContained(text, standardSections)
	sectionScore := float64(sectionsFound) / float64(len(standardSections)) * 25

	noTablesGraphics := 0.0
	if !strings.Contains(text, "table") && !strings.Contains(text, "figure") && !strings.Contains(text, "chart") {
		noTablesGraphics = 25
	}

	contactInfoFormat := 0.0
	if resume.PersonalInfo.Email != nil && resume.PersonalInfo.Phone != nil {
		contactInfoFormat = 25
	}

	score := formatConsistency + sectionScore + noTablesGraphics + contactInfoFormat
	return types.CategoryScore{
		Score:    math.Min(score, 100),
		MaxScore: 100,
		Details: types.ATSCompatibilityDetails{
			FormatConsistency: formatConsistency,
			StandardSections:  sectionScore,
			NoTablesGraphics:  noTablesGraphics,
			ContactInfoFormat: contactInfoFormat,
		},
	}
}

func scoreCompleteness(resume types.ParsedResume) types.CategoryScore {
	sections := []bool{
		resume.PersonalInfo.FullName != nil,
		resume.PersonalInfo.Email != nil,
		len(resume.Skills) > 0,
		len(resume.WorkExperience) > 0,
		len(resume.Education) > 0,
	}
	sectionScore := float64(countTrue(sections)) / float64(len(sections)) * 40

	contact := []bool{
		resume.PersonalInfo.FullName != nil,
		resume.PersonalInfo.Email != nil,
		resume.PersonalInfo.Phone != nil,
	}
	contactScore := float64(countTrue(contact)) / float64(len(contact)) * 20

	datesProvided := 0.0
	for _, exp := range resume.WorkExperience {
		if exp.StartDate != nil {
			datesProvided = 20
			break
		}
	}
	if datesProvided == 0 {
		for _, edu := range resume.Education {
			if edu.StartDate != nil {
				datesProvided = 20
				break
			}
		}
	}

	descriptionsProvided := 0.0
	for _, exp := range resume.WorkExperience {
		if exp.Description != nil && len(*exp.Description) > 10 {
			descriptionsProvided = 20
			break
		}
	}
	if descriptionsProvided == 0 && resume.Summary != nil && len(*resume.Summary) > 20 {
		descriptionsProvided = 20
	}

	score := sectionScore + contactScore + datesProvided + descriptionsProvided
	return types.CategoryScore{
		Score:    math.Min(score, 100),
		MaxScore: 100,
		Details: types.CompletenessDetails{
			AllSectionsPresent:   sectionScore,
			ContactInfoComplete:  contactScore,
			DatesProvided:        datesProvided,
			DescriptionsProvided: descriptionsProvided,
		},
	}
}

func scoreExperienceQuality(resume types.ParsedResume) types.CategoryScore {
	years := YearsOfExperience(resume.WorkExperience)
	experienceScore := math.Min(40, years*4)

	careerProgression := 0.0
	if len(resume.WorkExperience) > 1 {
		careerProgression = 20
	}

	relevantSkills := 0.0
	if len(resume.Skills) >= 5 {
		relevantSkills = 20
	}

	achievementFocus := 0.0
	for _, exp := range resume.WorkExperience {
		if exp.Description != nil && strings.Contains(strings.ToLower(*exp.Description), "achieved") {
			achievementFocus = 20
			break
		}
	}

	score := experienceScore + careerProgression + relevantSkills + achievementFocus
	return types.CategoryScore{
		Score:    math.Min(score, 100),
		MaxScore: 100,
		Details: types.ExperienceQualityDetails{
			YearsOfExperience: experienceScore,
			CareerProgression: careerProgression,
			RelevantSkills:    relevantSkills,
			AchievementFocus:  achievementFocus,
		},
	}
}

func scoreProfessionalPresence(resume types.ParsedResume) types.CategoryScore {
	linkedin, github, portfolio, email := 0.0, 0.0, 0.0, 0.0
	if resume.PersonalInfo.LinkedinURL != nil {
		linkedin = 25
	}
	if resume.PersonalInfo.GithubURL != nil {
		github = 25
	}
	if resume.PersonalInfo.PortfolioURL != nil {
		portfolio = 25
	}
	// Only well-known consumer providers count here; the !contains("@")
	// leg never fires because every matched email contains one.
	if e := resume.PersonalInfo.Email; e != nil &&
		(strings.Contains(*e, "@gmail.com") || strings.Contains(*e, "@outlook.com") || !strings.Contains(*e, "@")) {
		email = 25
	}

	return types.CategoryScore{
		Score:    math.Min(linkedin+github+portfolio+email, 100),
		MaxScore: 100,
		Details: types.ProfessionalPresenceDetails{
			LinkedinProfile:   linkedin,
			GithubProfile:     github,
			PortfolioWebsite:  portfolio,
			ProfessionalEmail: email,
		},
	}
}

// YearsOfExperience sums the month spans of every work entry that has a start
// date and either an end date or is marked current (which counts up to now),
// and returns the total in years rounded to one decimal. Entries whose dates
// do not parse as "YYYY" or "YYYY-MM" contribute nothing.
func YearsOfExperience(workExperience []types.WorkExperience) float64 {
	if len(workExperience) == 0 {
		return 0
	}

	totalMonths := 0
	now := time.Now()
	for _, exp := range workExperience {
		if exp.StartDate == nil || (exp.EndDate == nil && !exp.IsCurrent) {
			continue
		}
		startYear, startMonth, ok := parseYearMonth(*exp.StartDate)
		if !ok {
			continue
		}
		var endYear, endMonth int
		if exp.IsCurrent {
			endYear, endMonth = now.Year(), int(now.Month())
		} else {
			endYear, endMonth, ok = parseYearMonth(*exp.EndDate)
			if !ok {
				continue
			}
		}
		months := (endYear-startYear)*12 + (endMonth - startMonth)
		if months > 0 {
			totalMonths += months
		}
	}

	return math.Round(float64(totalMonths)/12*10) / 10
}

// parseYearMonth accepts the normalized "YYYY" and "YYYY-MM" forms; a bare
// year counts as January.
func parseYearMonth(s string) (year, month int, ok bool) {
	if yearPart, monthPart, found := strings.Cut(s, "-"); found {
		y, errY := strconv.Atoi(yearPart)
		m, errM := strconv.Atoi(monthPart)
		if errY != nil || errM != nil || len(yearPart) != 4 || m < 1 || m > 12 {
			return 0, 0, false
		}
		return y, m, true
	}
	if len(s) != 4 {
		return 0, 0, false
	}
	y, err := strconv.Atoi(s)
	if err != nil {
		return 0, 0, false
	}
	return y, 1, true
}

// countContained counts how many terms occur as substrings in text. A term
// appearing in more than one vocabulary list counts once per list entry.
func countContained(text string, terms []string) int {
	count := 0
	for _, term := range terms {
		if strings.Contains(text, term) {
			count++
		}
	}
	return count
}

func countTrue(flags []bool) int {
	count := 0
	for _, f := range flags {
		if f {
			count++
		}
	}
	return count
}
