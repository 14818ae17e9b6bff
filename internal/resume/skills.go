package resume

import (
	"sort"
	"strings"
)

// Skills reports every vocabulary entry that occurs anywhere in the text, ignoring case.
// Matching is plain substring containment, so short entries such as "AI" also hit inside
// longer words.
func (e *Engine) Skills(lines []string) []string {
	text := strings.ToLower(strings.Join(lines, "\n"))

	seen := make(map[string]struct{}, len(e.keywords.Skills))
	found := make([]string, 0)
	for _, skill := range e.keywords.Skills {
		if _, ok := seen[skill]; ok {
			continue
		}
		if strings.Contains(text, strings.ToLower(skill)) {
			seen[skill] = struct{}{}
			found = append(found, skill)
		}
	}
	sort.Strings(found)
	return found
}
