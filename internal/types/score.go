package types

// AdvancedScoreBreakdown is the derived multi-category score over a
// ParsedResume. It is recomputed on demand and never stored on the record.
type AdvancedScoreBreakdown struct {
	OverallScore int             `json:"overallScore"`
	Categories   ScoreCategories `json:"categories"`
}

// ScoreCategories groups the five weighted categories
// (30/25/20/15/10 percent of the overall score).
type ScoreCategories struct {
	ContentQuality       CategoryScore `json:"contentQuality"`
	ATSCompatibility     CategoryScore `json:"atsCompatibility"`
	Completeness         CategoryScore `json:"completeness"`
	ExperienceQuality    CategoryScore `json:"experienceQuality"`
	ProfessionalPresence CategoryScore `json:"professionalPresence"`
}

// CategoryScore is one category's score out of MaxScore (always 100), with
// the named sub-scores that sum exactly to Score.
type CategoryScore struct {
	Score    float64      `json:"score"`
	MaxScore float64      `json:"maxScore"`
	Details  ScoreDetails `json:"details"`
}

// ScoreDetails holds the named sub-scores of a category. Only the fields
// belonging to the category are set; the rest marshal away via omitempty...
// except that sub-scores of zero are meaningful, so each category uses its
// own detail struct instead.
type ScoreDetails interface{ isScoreDetails() }

// ContentQualityDetails are the sub-scores of the content quality category.
type ContentQualityDetails struct {
	KeywordDensity           float64 `json:"keywordDensity"`
	ActionVerbs              float64 `json:"actionVerbs"`
	QuantifiableAchievements float64 `json:"quantifiableAchievements"`
}

// ATSCompatibilityDetails are the sub-scores of the ATS compatibility category.
type ATSCompatibilityDetails struct {
	FormatConsistency float64 `json:"formatConsistency"`
	StandardSections  float64 `json:"standardSections"`
	NoTablesGraphics  float64 `json:"noTablesGraphics"`
	ContactInfoFormat float64 `json:"contactInfoFormat"`
}

// CompletenessDetails are the sub-scores of the completeness category.
type CompletenessDetails struct {
	AllSectionsPresent   float64 `json:"allSectionsPresent"`
	ContactInfoComplete  float64 `json:"contactInfoComplete"`
	DatesProvided        float64 `json:"datesProvided"`
	DescriptionsProvided float64 `json:"descriptionsProvided"`
}

// ExperienceQualityDetails are the sub-scores of the experience quality category.
type ExperienceQualityDetails struct {
	YearsOfExperience float64 `json:"yearsOfExperience"`
	CareerProgression float64 `json:"careerProgression"`
	RelevantSkills    float64 `json:"relevantSkills"`
	AchievementFocus  float64 `json:"achievementFocus"`
}

// ProfessionalPresenceDetails are the sub-scores of the professional presence category.
type ProfessionalPresenceDetails struct {
	LinkedinProfile   float64 `json:"linkedinProfile"`
	GithubProfile     float64 `json:"githubProfile"`
	PortfolioWebsite  float64 `json:"portfolioWebsite"`
	ProfessionalEmail float64 `json:"professionalEmail"`
}

func (ContentQualityDetails) isScoreDetails()       {}
func (ATSCompatibilityDetails) isScoreDetails()     {}
func (CompletenessDetails) isScoreDetails()         {}
func (ExperienceQualityDetails) isScoreDetails()    {}
func (ProfessionalPresenceDetails) isScoreDetails() {}
