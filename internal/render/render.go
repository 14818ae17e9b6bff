// Package render turns a parsed resume into something a person or a program can read.
package render

import (
	"encoding/json"
	"html/template"
	"io"

	"github.com/muhammadolammi/resumeworker/internal/resume"
)

var resumeTemplate = template.Must(template.New("resume").Parse(`<h3>Contact Info</h3><ul>
<li><strong>Name:</strong> {{.Contact.Name}}</li>
<li><strong>Email:</strong> {{.Contact.Email}}</li>
<li><strong>Phone:</strong> {{.Contact.Phone}}</li>
</ul>
<h3>Skills</h3><ul>
{{- range .Skills}}
<li>{{.}}</li>
{{- end}}
</ul>
<h3>Experience</h3><ul>
{{- range .Experience}}
<li>{{.Title}} at {{.Company}} ({{.Dates}})</li>
{{- end}}
</ul>
<h3>Education</h3><ul>
{{- range .Education}}
<li>{{.Degree}} at {{.School}} ({{.Extra}})</li>
{{- end}}
</ul>
`))

// HTML writes an escaped HTML fragment with one list per section.
func HTML(w io.Writer, r *resume.ParsedResume) error {
	return resumeTemplate.Execute(w, r)
}

// JSON writes the record as indented JSON.
func JSON(w io.Writer, r *resume.ParsedResume) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}
