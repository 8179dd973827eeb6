package tui

import "strings"

// Revealer shows a file to the user. It returns false when the platform
// has no file manager to hand off to, in which case the caller prints the
// path instead.
type Revealer func(path string) (bool, error)

// explorerCmdLine builds the raw command line for "select this file".
// Explorer only accepts the path quoted after the comma, which the default
// Windows argument quoting does not produce.
func explorerCmdLine(path string) string {
	return `explorer.exe /select,"` + strings.ReplaceAll(path, `"`, "") + `"`
}
