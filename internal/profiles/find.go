package profiles

import (
	"strings"

	"github.com/sahilm/fuzzy"
)

type nameSource []Profile

func (s nameSource) String(i int) string { return s[i].Name }
func (s nameSource) Len() int            { return len(s) }

// Find looks a profile up by GUID, then by case-insensitive name, then by the
// best fuzzy name match.
func Find(list []Profile, query string) (Profile, bool) {
	query = strings.TrimSpace(query)
	if query == "" {
		return Profile{}, false
	}
	for _, p := range list {
		if p.GUID != "" && strings.EqualFold(p.GUID, query) {
			return p, true
		}
	}
	for _, p := range list {
		if strings.EqualFold(p.Name, query) {
			return p, true
		}
	}
	matches := fuzzy.FindFrom(query, nameSource(list))
	if len(matches) == 0 {
		return Profile{}, false
	}
	return list[matches[0].Index], true
}
