// Package scoring computes quality scores over a parsed resume: a coarse
// completeness-based confidence score and a weighted multi-category
// ATS-style breakdown. Both are deterministic pure functions of the record.
package scoring

// Industry keyword vocabularies scanned as substrings against the serialized
// record. These are process-wide constants: shared read-only across calls and
// never mutated. Some terms appear in more than one industry list ("crm",
// "lead generation"); the duplicates are intentional and each occurrence
// counts separately in the density score.
var (
	technicalKeywords = []string{
		"javascript", "python", "java", "react", "node.js", "sql", "aws", "docker", "kubernetes",
		"machine learning", "data analysis", "agile", "scrum", "devops", "ci/cd", "api", "rest",
		"graphql", "microservices", "cloud computing", "database", "frontend", "backend", "full stack",
	}
	marketingKeywords = []string{
		"seo", "sem", "ppc", "social media", "content marketing", "email marketing", "analytics",
		"google analytics", "campaign management", "brand management", "digital marketing", "crm",
		"lead generation", "conversion optimization", "a/b testing", "market research",
	}
	salesKeywords = []string{
		"lead generation", "sales pipeline", "crm", "salesforce", "cold calling", "prospecting",
		"negotiation", "account management", "territory management", "quota achievement",
		"client relations", "sales strategy", "revenue growth", "customer acquisition",
	}
	financeKeywords = []string{
		"financial analysis", "budgeting", "forecasting", "financial modeling", "excel", "quickbooks",
		"gaap", "financial reporting", "risk management", "investment analysis", "audit", "tax",
		"accounting", "financial planning", "cash flow", "p&l",
	}
	healthcareKeywords = []string{
		"patient care", "medical records", "hipaa", "clinical", "diagnosis", "treatment", "medication",
		"healthcare", "nursing", "pharmacy", "medical coding", "icd-10", "cpt", "healthcare management",
	}
)

// AllATSKeywords returns the flattened vocabulary across every industry list,
// in a fixed order, with cross-list duplicates preserved.
func AllATSKeywords() []string {
	all := make([]string, 0,
		len(technicalKeywords)+len(marketingKeywords)+len(salesKeywords)+len(financeKeywords)+len(healthcareKeywords))
	all = append(all, technicalKeywords...)
	all = append(all, marketingKeywords...)
	all = append(all, salesKeywords...)
	all = append(all, financeKeywords...)
	all = append(all, healthcareKeywords...)
	return all
}

// actionVerbs indicate achievement-oriented writing.
var actionVerbs = []string{
	"achieved", "increased", "decreased", "improved", "developed", "created", "implemented",
	"managed", "led", "coordinated", "designed", "built", "optimized", "streamlined",
	"reduced", "enhanced", "delivered", "executed", "launched", "established", "generated",
	"produced", "facilitated", "initiated", "collaborated", "mentored", "trained", "supervised",
}

// quantifiableIndicators suggest measurable results.
var quantifiableIndicators = []string{
	"%", "$", "increase", "decrease", "revenue", "profit", "cost", "time", "efficiency",
	"customers", "users", "clients", "projects", "team", "budget", "sales", "growth",
	"reduction", "improvement", "uptime", "performance", "satisfaction", "score",
}
