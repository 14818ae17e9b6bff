package resume

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEngine_Experience(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  []ExperienceEntry
	}{
		{
			name:  "title and company above dates",
			lines: []string{"Senior Engineer", "Acme Corp", "01/20 - Present"},
			want:  []ExperienceEntry{{Title: "Senior Engineer", Company: "Acme Corp", Dates: "01/20 - Present"}},
		},
		{
			name:  "fewer than two preceding lines",
			lines: []string{"Acme Corp", "01/20 - Present"},
			want:  []ExperienceEntry{{Dates: "01/20 - Present"}},
		},
		{
			name:  "date line at the very top",
			lines: []string{"2015 to 2018"},
			want:  []ExperienceEntry{{Dates: "2015 to 2018"}},
		},
		{
			name:  "surrounding whitespace trimmed",
			lines: []string{"  Designer \t", "\tStudio X  ", "Mar 2018 to current"},
			want:  []ExperienceEntry{{Title: "Designer", Company: "Studio X", Dates: "Mar 2018 to current"}},
		},
		{
			name:  "bullet title rejected",
			lines: []string{"• Shipped features", "Acme Corp", "2019 - 2020"},
			want:  []ExperienceEntry{},
		},
		{
			name:  "dash bullet title rejected",
			lines: []string{"- Led a team", "Acme Corp", "2019 - 2020"},
			want:  []ExperienceEntry{},
		},
		{
			name:  "blank title rejected",
			lines: []string{"Intro", "", "Acme Corp", "2019 - 2020"},
			want:  []ExperienceEntry{},
		},
		{
			name:  "overlong title rejected",
			lines: []string{strings.Repeat("word ", 40), "Acme Corp", "2019 - 2020"},
			want:  []ExperienceEntry{},
		},
		{
			name: "sequential ranges stay independent and in document order",
			lines: []string{
				"Engineer", "Beta LLC", "2021 - Present",
				"Intern", "Alpha Inc", "06/18 – 08/18",
			},
			want: []ExperienceEntry{
				{Title: "Engineer", Company: "Beta LLC", Dates: "2021 - Present"},
				{Title: "Intern", Company: "Alpha Inc", Dates: "06/18 – 08/18"},
			},
		},
		{
			name:  "only the first range on a line counts",
			lines: []string{"Consultant", "Self", "2010-2012, 2014-2016"},
			want:  []ExperienceEntry{{Title: "Consultant", Company: "Self", Dates: "2010-2012"}},
		},
		{
			name:  "month names and long numeric years",
			lines: []string{"Analyst", "Initech", "Worked September 2015 — 04/2017 on site"},
			want:  []ExperienceEntry{{Title: "Analyst", Company: "Initech", Dates: "September 2015 — 04/2017"}},
		},
		{
			name:  "no date range",
			lines: []string{"Engineer", "Acme", "Since 2019", "Call 555-123-4567"},
			want:  []ExperienceEntry{},
		},
	}

	e := NewEngine()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, e.Experience(tt.lines))
		})
	}
}

func TestDateRangePattern(t *testing.T) {
	matches := []string{
		"01/20 - Present",
		"1/19-12/20",
		"2016-2020",
		"2016 – 2020",
		"Jan 2019 - Dec 2021",
		"Sept. 2019 to Present",
		"JUNE 2020 – CURRENT",
		"05/2019 — 07/2021",
	}
	for _, m := range matches {
		assert.Equal(t, m, dateRangePattern.FindString(m), m)
	}

	misses := []string{
		"2016",
		"Present",
		"Foo 2019 - 2020x",
		"(555) 123-4567",
	}
	for _, m := range misses {
		assert.Empty(t, dateRangePattern.FindString(m), m)
	}
}
