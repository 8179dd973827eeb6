package tui

import (
	"regexp"
	"strings"

	"github.com/kingrea/wtlaunch/internal/profiles"
)

// Commandlines that look like remote hosts are not shown as subtitles.
var remoteCommandline = regexp.MustCompile(`(?i)\b(?:\d{1,3}\.){3}\d{1,3}\b|ssh`)

// profileItem implements list.Item for a profile.
type profileItem struct {
	profile profiles.Profile
}

func (i profileItem) Title() string       { return profileIcon(i.profile) + " " + i.profile.Name }
func (i profileItem) Description() string { return subtitle(i.profile) }
func (i profileItem) FilterValue() string { return i.profile.Name }

func subtitle(p profiles.Profile) string {
	if p.Commandline == "" || remoteCommandline.MatchString(p.Commandline) {
		return ""
	}
	return p.Commandline
}

var iconRules = []struct {
	needles []string
	icon    string
}{
	{[]string{"powershell"}, "🟦"},
	{[]string{"cmd", "command"}, "💻"},
	{[]string{"ubuntu", "linux"}, "🐧"},
	{[]string{"git"}, "🔗"},
	{[]string{"azure"}, "☁️"},
	{[]string{"ssh"}, "🔑"},
}

// profileIcon picks a glyph from well-known words in the profile name.
func profileIcon(p profiles.Profile) string {
	name := strings.ToLower(p.Name)
	for _, rule := range iconRules {
		for _, needle := range rule.needles {
			if strings.Contains(name, needle) {
				return rule.icon
			}
		}
	}
	return "⚡"
}
