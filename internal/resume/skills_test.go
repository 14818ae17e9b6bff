package resume

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEngine_SkillsCaseInsensitiveAndDeduplicated(t *testing.T) {
	e := NewEngine(WithKeywords(&Keywords{Skills: []string{"Python", "SQL"}}))

	got := e.Skills([]string{"python", "Python", "PYTHON"})
	assert.Equal(t, []string{"Python"}, got)
}

func TestEngine_SkillsSortedWithVocabularyCasing(t *testing.T) {
	e := NewEngine(WithKeywords(&Keywords{Skills: []string{"SQL", "Figma", "Excel", "Figma"}}))

	got := e.Skills([]string{"advanced excel and sql", "FIGMA prototypes"})
	assert.Equal(t, []string{"Excel", "Figma", "SQL"}, got)
}

func TestEngine_SkillsSubstringMatch(t *testing.T) {
	e := NewEngine(WithKeywords(&Keywords{Skills: []string{"AI", "Java"}}))

	// plain containment: "ai" inside "maintained", "java" inside "JavaScript"
	got := e.Skills([]string{"Maintained JavaScript services"})
	assert.Equal(t, []string{"AI", "Java"}, got)
}

func TestEngine_SkillsNoneFound(t *testing.T) {
	got := NewEngine(WithKeywords(&Keywords{Skills: []string{"Rust"}})).Skills([]string{"nothing here"})
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestEngine_SkillsMatchAcrossLines(t *testing.T) {
	e := NewEngine(WithKeywords(&Keywords{Skills: []string{"Google Analytics"}}))
	assert.Empty(t, e.Skills([]string{"Google", "Analytics"}))
	assert.Equal(t, []string{"Google Analytics"}, e.Skills([]string{"Google Analytics 4"}))
}
