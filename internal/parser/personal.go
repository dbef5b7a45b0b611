package parser

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-parser/internal/types"
)

var (
	emailRe    = regexp.MustCompile(`[a-zA-Z0-9._-]+@[a-zA-Z0-9._-]+\.[a-zA-Z0-9_-]+`)
	phoneRe    = regexp.MustCompile(`(\+?\d{1,3}[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`)
	linkedinRe = regexp.MustCompile(`(?i)(https?://)?(www\.)?linkedin\.com/in/[a-zA-Z0-9_-]+`)
	githubRe   = regexp.MustCompile(`(?i)(https?://)?(www\.)?github\.com/[a-zA-Z0-9_-]+`)
	urlRe      = regexp.MustCompile(`(?i)https?://[^\s]+`)

	// webTLDRe marks URLs that plausibly point at a personal site.
	webTLDRe = regexp.MustCompile(`\.(com|net|io|dev)`)

	// usStateRe matches two-letter US state abbreviations, used by the
	// location heuristic. A coincidental "IN" or "OR" elsewhere in the
	// line also matches; that imprecision is accepted.
	usStateRe = regexp.MustCompile(`\b(AL|AK|AZ|AR|CA|CO|CT|DE|FL|GA|HI|ID|IL|IN|IA|KS|KY|LA|ME|MD|MA|MI|MN|MS|MO|MT|NE|NV|NH|NJ|NM|NY|NC|ND|OH|OK|OR|PA|RI|SC|SD|TN|TX|UT|VT|VA|WA|WV|WI|WY)\b`)
	zipRe     = regexp.MustCompile(`\d{5}`)
)

// extractPersonalInfo pulls contact fields out of the whole document. Every
// field is first-match-wins and degrades to nil; nothing is validated for
// plausibility, so an email-like string inside other content still matches.
func extractPersonalInfo(text string, lines []string) types.PersonalInfo {
	info := types.PersonalInfo{}

	if len(lines) > 0 {
		info.FullName = types.StringPtr(lines[0])
	}
	if m := emailRe.FindString(text); m != "" {
		info.Email = types.StringPtr(m)
	}
	if m := phoneRe.FindString(text); m != "" {
		info.Phone = types.StringPtr(m)
	}
	if m := linkedinRe.FindString(text); m != "" {
		info.LinkedinURL = types.StringPtr(m)
	}
	if m := githubRe.FindString(text); m != "" {
		info.GithubURL = types.StringPtr(m)
	}
	info.PortfolioURL = extractPortfolioURL(text)
	info.Location = extractLocation(lines)

	return info
}

// extractPortfolioURL returns the first URL that is neither a LinkedIn nor a
// GitHub link and either names itself a portfolio/personal site or ends in a
// common web TLD.
func extractPortfolioURL(text string) *string {
	for _, url := range urlRe.FindAllString(text, -1) {
		if strings.Contains(url, "linkedin.com") || strings.Contains(url, "github.com") {
			continue
		}
		if strings.Contains(url, "portfolio") || strings.Contains(url, "personal") || webTLDRe.MatchString(url) {
			return types.StringPtr(url)
		}
	}
	return nil
}

// extractLocation scans only the first 5 non-empty lines for a line with a
// comma plus either a US state abbreviation or a 5-digit number.
func extractLocation(lines []string) *string {
	for i := 0; i < len(lines) && i < 5; i++ {
		line := lines[i]
		if strings.Contains(line, ",") && (usStateRe.MatchString(line) || zipRe.MatchString(line)) {
			return types.StringPtr(line)
		}
	}
	return nil
}
