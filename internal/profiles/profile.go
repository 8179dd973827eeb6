// Package profiles loads Windows Terminal profiles from settings.json and
// turns them into the ordered list the launcher presents.
//
// The pipeline is: resolve path -> LoadSettings -> Select -> Cache.
package profiles

import (
	"fmt"
	"strings"
)

// Profile is one entry of profiles.list in settings.json.
type Profile struct {
	Name        string `json:"name"`
	GUID        string `json:"guid,omitempty"`
	Source      string `json:"source,omitempty"`
	Hidden      bool   `json:"hidden,omitempty"`
	Commandline string `json:"commandline,omitempty"`
	Icon        string `json:"icon,omitempty"`
}

// ID identifies the profile for the UI and for wt.exe: the GUID when set,
// otherwise the name.
func (p Profile) ID() string {
	if p.GUID != "" {
		return p.GUID
	}
	return p.Name
}

// Order selects how profiles are listed.
type Order string

const (
	OrderAlphabetical Order = "alphabetical"
	// OrderSettings keeps settings.json order.
	OrderSettings Order = "settings"
)

// ParseOrder converts a preference value into an Order.
func ParseOrder(value string) (Order, error) {
	switch Order(strings.ToLower(strings.TrimSpace(value))) {
	case OrderAlphabetical:
		return OrderAlphabetical, nil
	case OrderSettings:
		return OrderSettings, nil
	}
	return "", fmt.Errorf("profiles: unknown sort order %q", value)
}
