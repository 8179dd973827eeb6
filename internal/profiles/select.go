package profiles

import (
	"os"
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SelectOptions tunes Select beyond the ordering policy.
type SelectOptions struct {
	// HideHidden drops profiles marked "hidden": true.
	HideHidden bool
	// Language drives name comparison. Zero means LocaleTag().
	Language language.Tag
}

// Select drops unnamed profiles and orders the rest. The input slice is
// never modified.
func Select(raw []Profile, order Order) []Profile {
	return SelectWith(raw, order, SelectOptions{})
}

// SelectWith is Select with explicit options.
func SelectWith(raw []Profile, order Order, opts SelectOptions) []Profile {
	out := make([]Profile, 0, len(raw))
	for _, p := range raw {
		if p.Name == "" {
			continue
		}
		if opts.HideHidden && p.Hidden {
			continue
		}
		out = append(out, p)
	}
	if order != OrderAlphabetical {
		return out
	}
	tag := opts.Language
	if tag == language.Und {
		tag = LocaleTag()
	}
	// Collators keep internal buffers; one per call.
	c := collate.New(tag)
	slices.SortStableFunc(out, func(a, b Profile) int {
		return c.CompareString(a.Name, b.Name)
	})
	return out
}

// LocaleTag derives a language tag from LC_ALL, LC_COLLATE or LANG
// ("de_DE.UTF-8" -> de-DE), defaulting to English.
func LocaleTag() language.Tag {
	for _, key := range []string{"LC_ALL", "LC_COLLATE", "LANG"} {
		value := strings.TrimSpace(os.Getenv(key))
		if value == "" || value == "C" || value == "POSIX" {
			continue
		}
		if idx := strings.IndexAny(value, ".@"); idx >= 0 {
			value = value[:idx]
		}
		value = strings.ReplaceAll(value, "_", "-")
		if tag, err := language.Parse(value); err == nil {
			return tag
		}
	}
	return language.English
}
