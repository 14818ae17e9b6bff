package resume

import (
	"regexp"
	"strings"
)

var (
	emailPattern = regexp.MustCompile(`[a-zA-Z0-9_.+-]+@[a-zA-Z0-9-]+(?:\.[a-zA-Z0-9-]+)+`)
	phonePattern = regexp.MustCompile(`\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`)
)

// Contact locates the candidate's name, email and phone. The name is simply the first
// non-blank line that is not the email line.
func (e *Engine) Contact(lines []string) ContactInfo {
	text := strings.Join(lines, "\n")

	info := ContactInfo{
		Name:  NotFound,
		Email: NotFound,
		Phone: NotFound,
	}
	if m := emailPattern.FindString(text); m != "" {
		info.Email = m
	}
	if m := phonePattern.FindString(text); m != "" {
		info.Phone = m
	}
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || strings.Contains(line, "@") {
			continue
		}
		info.Name = line
		break
	}
	return info
}
