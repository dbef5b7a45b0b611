package scoring

import (
	"math"

	"github.com/jonathan/resume-parser/internal/types"
)

// confidenceMaxScore is the fixed sum of all field weights
// (15+15+10+20+25+15). The denominator does not shrink when fields are
// absent, so the score is monotonic in field presence.
const confidenceMaxScore = 100

// ConfidenceScore is a 0-100 completeness metric over the parsed record. It
// measures how many fields were extracted, not whether the extraction was
// correct.
func ConfidenceScore(resume types.ParsedResume) int {
	score := 0.0

	if resume.PersonalInfo.FullName != nil {
		score += 15
	}
	if resume.PersonalInfo.Email != nil {
		score += 15
	}
	if resume.PersonalInfo.Phone != nil {
		score += 10
	}
	if n := len(resume.Skills); n > 0 {
		score += math.Min(20, float64(n)*2)
	}
	if n := len(resume.WorkExperience); n > 0 {
		score += math.Min(25, float64(n)*8)
	}
	if n := len(resume.Education); n > 0 {
		score += math.Min(15, float64(n)*7)
	}

	return int(math.Round(score / confidenceMaxScore * 100))
}
