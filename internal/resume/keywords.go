package resume

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed keywords.yaml
var defaultKeywordsYAML []byte

// Keywords holds the data tables the passes match against. Replacing a table changes what
// is recognised without touching any control flow.
type Keywords struct {
	Skills                []string `yaml:"skills"`
	DegreeAbbreviations   []string `yaml:"degree_abbreviations"`
	DegreeWords           []string `yaml:"degree_words"`
	EducationHeaders      []string `yaml:"education_headers"`
	LooseEducationHeaders []string `yaml:"loose_education_headers"`
	EducationStopKeywords []string `yaml:"education_stop_keywords"`
	BulletMarkers         []string `yaml:"bullet_markers"`
}

// DefaultKeywords returns the tables embedded in the binary.
func DefaultKeywords() *Keywords {
	kw, err := ParseKeywords(defaultKeywordsYAML)
	if err != nil {
		// the embedded file is part of the build
		panic(fmt.Sprintf("resume: embedded keywords.yaml is invalid: %v", err))
	}
	return kw
}

// LoadKeywords reads a keyword file from disk. Tables missing from the file fall back to the
// embedded defaults.
func LoadKeywords(path string) (*Keywords, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read keywords file %s: %w", path, err)
	}
	kw, err := ParseKeywords(data)
	if err != nil {
		return nil, fmt.Errorf("parse keywords file %s: %w", path, err)
	}
	kw.fill(DefaultKeywords())
	return kw, nil
}

// ParseKeywords decodes a YAML keyword document.
func ParseKeywords(data []byte) (*Keywords, error) {
	kw := &Keywords{}
	if err := yaml.Unmarshal(data, kw); err != nil {
		return nil, err
	}
	kw.normalize()
	return kw, nil
}

func (k *Keywords) fill(def *Keywords) {
	if len(k.Skills) == 0 {
		k.Skills = def.Skills
	}
	if len(k.DegreeAbbreviations) == 0 {
		k.DegreeAbbreviations = def.DegreeAbbreviations
	}
	if len(k.DegreeWords) == 0 {
		k.DegreeWords = def.DegreeWords
	}
	if len(k.EducationHeaders) == 0 {
		k.EducationHeaders = def.EducationHeaders
	}
	if len(k.LooseEducationHeaders) == 0 {
		k.LooseEducationHeaders = def.LooseEducationHeaders
	}
	if len(k.EducationStopKeywords) == 0 {
		k.EducationStopKeywords = def.EducationStopKeywords
	}
	if len(k.BulletMarkers) == 0 {
		k.BulletMarkers = def.BulletMarkers
	}
}

// normalize trims entries and drops blanks. Skills keep their casing since it is what the
// caller sees; the matching tables are case-folded once here.
func (k *Keywords) normalize() {
	k.Skills = cleanList(k.Skills, false)
	k.DegreeAbbreviations = cleanList(k.DegreeAbbreviations, true)
	k.DegreeWords = cleanList(k.DegreeWords, true)
	k.EducationHeaders = cleanList(k.EducationHeaders, true)
	k.LooseEducationHeaders = cleanList(k.LooseEducationHeaders, true)
	k.EducationStopKeywords = cleanList(k.EducationStopKeywords, true)
	k.BulletMarkers = cleanList(k.BulletMarkers, false)
}

func cleanList(in []string, fold bool) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if fold {
			s = strings.ToLower(s)
		}
		out = append(out, s)
	}
	return out
}
