// Package resume turns the plain-text lines of a resume into a structured record. It knows
// nothing about file formats: callers hand it an ordered slice of lines and get back a
// ParsedResume whose every field is populated, with "Not found" or an empty list standing in
// for anything the heuristics could not locate.
package resume

import (
	"strings"
	"sync"
)

// NotFound is the placeholder for contact fields that could not be located.
const NotFound = "Not found"

type ContactInfo struct {
	Name  string `json:"Name"`
	Email string `json:"Email"`
	Phone string `json:"Phone"`
}

type ExperienceEntry struct {
	Title   string `json:"Title"`
	Company string `json:"Company"`
	Dates   string `json:"Dates"`
}

type EducationEntry struct {
	Degree string `json:"Degree"`
	School string `json:"School"`
	Extra  string `json:"Extra"`
}

// ParsedResume is the terminal output of one parse. Slices are never nil so that a JSON
// consumer always sees every key.
type ParsedResume struct {
	Contact    ContactInfo       `json:"contact"`
	Skills     []string          `json:"skills"`
	Experience []ExperienceEntry `json:"experience"`
	Education  []EducationEntry  `json:"education"`
}

// Window holds the line offsets the segmenters look at around an anchor line.
type Window struct {
	// TitleOffset and CompanyOffset count lines above a date-range line.
	TitleOffset   int
	CompanyOffset int
	// MaxTitleLen is the longest title, in runes, still treated as a header line.
	MaxTitleLen int
	// EducationScan bounds how many lines after the education header are examined.
	EducationScan int
	// SchoolOffset counts lines above a degree line, ExtraOffset lines below it.
	SchoolOffset int
	ExtraOffset  int
}

// DefaultWindow is the canonical policy: title two lines above the dates, company directly
// above, school directly above a degree, extra detail directly below, ten-line education scan.
func DefaultWindow() Window {
	return Window{
		TitleOffset:   2,
		CompanyOffset: 1,
		MaxTitleLen:   120,
		EducationScan: 10,
		SchoolOffset:  1,
		ExtraOffset:   1,
	}
}

// Engine runs the four extraction passes. It is immutable after construction and safe for
// concurrent use.
type Engine struct {
	keywords *Keywords
	window   Window
}

type Option func(*Engine)

// WithKeywords replaces the embedded keyword tables.
func WithKeywords(kw *Keywords) Option {
	return func(e *Engine) {
		if kw != nil {
			e.keywords = kw
		}
	}
}

// WithWindow replaces the default line offsets.
func WithWindow(w Window) Option {
	return func(e *Engine) {
		e.window = w
	}
}

func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		window: DefaultWindow(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.keywords == nil {
		e.keywords = DefaultKeywords()
	}
	return e
}

// Keywords returns the tables the engine matches against.
func (e *Engine) Keywords() *Keywords {
	return e.keywords
}

// Parse runs every pass over lines and assembles the record. The passes share no state, so
// they run concurrently; lines is only read.
func (e *Engine) Parse(lines []string) *ParsedResume {
	res := &ParsedResume{}

	var wg sync.WaitGroup
	wg.Add(4)
	go func() {
		defer wg.Done()
		res.Contact = e.Contact(lines)
	}()
	go func() {
		defer wg.Done()
		res.Skills = e.Skills(lines)
	}()
	go func() {
		defer wg.Done()
		res.Experience = e.Experience(lines)
	}()
	go func() {
		defer wg.Done()
		res.Education = e.Education(lines)
	}()
	wg.Wait()

	return res
}

// ParseText splits text into lines and parses it.
func (e *Engine) ParseText(text string) *ParsedResume {
	return e.Parse(SplitLines(text))
}

// SplitLines breaks text on any of \n, \r\n or \r.
func SplitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return strings.Split(text, "\n")
}

func (e *Engine) hasBullet(s string) bool {
	for _, m := range e.keywords.BulletMarkers {
		if strings.HasPrefix(s, m) {
			return true
		}
	}
	return false
}

// lineAt returns the trimmed line at i, or "" when i is out of range.
func lineAt(lines []string, i int) string {
	if i < 0 || i >= len(lines) {
		return ""
	}
	return strings.TrimSpace(lines[i])
}
