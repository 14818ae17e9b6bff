package resume

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sampleResume = []string{
	"Jane Doe",
	"jane.doe@example.com | (555) 123-4567",
	"",
	"SUMMARY",
	"Marketing lead with a background in Python analytics.",
	"",
	"EXPERIENCE",
	"Senior Engineer",
	"Acme Corp",
	"01/20 - Present",
	"• Built the SEO pipeline",
	"Marketing Analyst",
	"Globex",
	"Jan 2017 – Dec 2019",
	"",
	"EDUCATION",
	"State University",
	"BS Computer Science",
	"2012-2016",
	"",
	"SKILLS",
	"Figma, PowerPoint, python, PYTHON",
}

func TestEngine_Parse(t *testing.T) {
	res := NewEngine().Parse(sampleResume)
	require.NotNil(t, res)

	assert.Equal(t, ContactInfo{
		Name:  "Jane Doe",
		Email: "jane.doe@example.com",
		Phone: "(555) 123-4567",
	}, res.Contact)

	assert.Equal(t, []ExperienceEntry{
		{Title: "Senior Engineer", Company: "Acme Corp", Dates: "01/20 - Present"},
		{Title: "Marketing Analyst", Company: "Globex", Dates: "Jan 2017 – Dec 2019"},
		{Title: "State University", Company: "BS Computer Science", Dates: "2012-2016"},
	}, res.Experience)

	assert.Equal(t, []EducationEntry{
		{Degree: "BS Computer Science", School: "State University", Extra: "2012-2016"},
	}, res.Education)

	assert.Contains(t, res.Skills, "Python")
	assert.Contains(t, res.Skills, "Figma")
	assert.Contains(t, res.Skills, "SEO")
}

func TestEngine_ParseIsIdempotent(t *testing.T) {
	e := NewEngine()

	first, err := json.Marshal(e.Parse(sampleResume))
	require.NoError(t, err)
	second, err := json.Marshal(e.Parse(sampleResume))
	require.NoError(t, err)

	assert.Equal(t, string(first), string(second))
}

func TestEngine_ParseEmptyDocumentIsFullyShaped(t *testing.T) {
	res := NewEngine().Parse(nil)

	data, err := json.Marshal(res)
	require.NoError(t, err)

	var shape map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &shape))
	for _, key := range []string{"contact", "skills", "experience", "education"} {
		assert.Contains(t, shape, key)
	}
	assert.JSONEq(t, `[]`, string(shape["skills"]))
	assert.JSONEq(t, `[]`, string(shape["experience"]))
	assert.JSONEq(t, `[]`, string(shape["education"]))
	assert.JSONEq(t, `{"Name":"Not found","Email":"Not found","Phone":"Not found"}`, string(shape["contact"]))
}

func TestEngine_ParseDoesNotMutateInput(t *testing.T) {
	lines := append([]string(nil), sampleResume...)
	NewEngine().Parse(lines)
	assert.Equal(t, sampleResume, lines)
}

func TestSplitLines(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c", ""}, SplitLines("a\r\nb\rc\n"))
	assert.Equal(t, []string{""}, SplitLines(""))
}

func TestEngine_ParseText(t *testing.T) {
	res := NewEngine().ParseText("Senior Engineer\r\nAcme Corp\r\n01/20 - Present")
	require.Len(t, res.Experience, 1)
	assert.Equal(t, "Acme Corp", res.Experience[0].Company)
}

func TestWithWindow(t *testing.T) {
	w := DefaultWindow()
	w.TitleOffset = 3
	e := NewEngine(WithWindow(w))

	got := e.Experience([]string{"Staff Engineer", "Remote", "Initech", "2019 - 2021"})
	assert.Equal(t, []ExperienceEntry{
		{Title: "Staff Engineer", Company: "Initech", Dates: "2019 - 2021"},
	}, got)
}
