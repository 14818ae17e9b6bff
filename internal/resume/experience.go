package resume

import (
	"regexp"
	"unicode/utf8"
)

const (
	monthYear = `(?:jan(?:uary)?|feb(?:ruary)?|mar(?:ch)?|apr(?:il)?|may|june?|july?|aug(?:ust)?|sep(?:t(?:ember)?)?|oct(?:ober)?|nov(?:ember)?|dec(?:ember)?)\.?\s+\d{4}`
	dateToken = `(?:` + monthYear + `|\d{1,2}/(?:\d{4}|\d{2})|\d{4})`
)

// dateRangePattern matches "01/20 - Present", "2016-2020", "Jan 2019 – Dec 2021",
// "March 2018 to current" and similar.
var dateRangePattern = regexp.MustCompile(
	`(?i)\b` + dateToken + `(?:\s*[-–—]\s*|\s+to\s+)(?:` + dateToken + `|present|current)\b`,
)

// Experience finds date-range lines and takes the title and company from the lines above
// each one. Entries follow document order.
func (e *Engine) Experience(lines []string) []ExperienceEntry {
	w := e.window
	entries := make([]ExperienceEntry, 0)

	for i, line := range lines {
		dates := dateRangePattern.FindString(line)
		if dates == "" {
			continue
		}

		// Not enough context above: keep the dates, leave the rest blank.
		if i < w.TitleOffset || i < w.CompanyOffset {
			entries = append(entries, ExperienceEntry{Dates: dates})
			continue
		}

		title := lineAt(lines, i-w.TitleOffset)
		if !e.looksLikeTitle(title) {
			continue
		}
		entries = append(entries, ExperienceEntry{
			Title:   title,
			Company: lineAt(lines, i-w.CompanyOffset),
			Dates:   dates,
		})
	}
	return entries
}

// looksLikeTitle rejects blank lines, paragraph-length lines and list items.
func (e *Engine) looksLikeTitle(s string) bool {
	if s == "" {
		return false
	}
	if e.window.MaxTitleLen > 0 && utf8.RuneCountInString(s) > e.window.MaxTitleLen {
		return false
	}
	return !e.hasBullet(s)
}
