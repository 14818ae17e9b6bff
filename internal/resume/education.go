package resume

import (
	"strings"
	"unicode"
)

// Education locates the education section and pulls out one entry per degree line found in
// the bounded region after its header.
func (e *Engine) Education(lines []string) []EducationEntry {
	entries := make([]EducationEntry, 0)

	start := e.educationHeader(lines)
	if start < 0 {
		return entries
	}

	w := e.window
	end := start + w.EducationScan
	if end >= len(lines) {
		end = len(lines) - 1
	}

	for i := start + 1; i <= end; i++ {
		current := strings.TrimSpace(lines[i])
		if current == "" || e.hasBullet(current) {
			continue
		}
		if e.isSectionBoundary(current) {
			break
		}
		if !e.looksLikeDegree(current) {
			continue
		}
		entries = append(entries, EducationEntry{
			Degree: current,
			School: lineAt(lines, i-w.SchoolOffset),
			Extra:  lineAt(lines, i+w.ExtraOffset),
		})
	}
	return entries
}

// educationHeader returns the index of the section header, or -1. An exact header line wins;
// failing that, the first line mentioning one of the loose header words is used.
func (e *Engine) educationHeader(lines []string) int {
	for i, line := range lines {
		folded := strings.ToLower(strings.TrimSpace(line))
		for _, h := range e.keywords.EducationHeaders {
			if folded == h {
				return i
			}
		}
	}
	for i, line := range lines {
		folded := strings.ToLower(line)
		for _, h := range e.keywords.LooseEducationHeaders {
			if strings.Contains(folded, h) {
				return i
			}
		}
	}
	return -1
}

func (e *Engine) isSectionBoundary(line string) bool {
	folded := strings.ToLower(line)
	for _, kw := range e.keywords.EducationStopKeywords {
		if strings.Contains(folded, kw) {
			return true
		}
	}
	return false
}

// looksLikeDegree reports whether any word of line is a degree abbreviation ("BS", "Ph.D.")
// or starts with a degree word ("Bachelor's", "Masters").
func (e *Engine) looksLikeDegree(line string) bool {
	for _, tok := range degreeTokens(line) {
		for _, abbr := range e.keywords.DegreeAbbreviations {
			if tok == abbr {
				return true
			}
		}
		for _, word := range e.keywords.DegreeWords {
			if strings.HasPrefix(tok, word) {
				return true
			}
		}
	}
	return false
}

// degreeTokens lowercases line, drops periods so that dotted abbreviations collapse, and
// splits on anything that is not a letter or digit.
func degreeTokens(line string) []string {
	folded := strings.ToLower(strings.ReplaceAll(line, ".", ""))
	return strings.FieldsFunc(folded, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}
