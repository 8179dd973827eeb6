package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func setupEnv(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_CACHE_HOME", filepath.Join(dir, "cache"))
	t.Setenv("HOME", filepath.Join(dir, "home"))
	t.Setenv("USERPROFILE", "")
	t.Setenv("LC_ALL", "")
	t.Setenv("LANG", "en_US.UTF-8")
	for _, key := range []string{"WTLAUNCH_SETTINGS_PATH", "WTLAUNCH_SORT_ORDER", "WTLAUNCH_TERMINAL", "WTLAUNCH_QUAKE_MODE", "WTLAUNCH_HIDE_HIDDEN"} {
		t.Setenv(key, "")
	}
	return dir
}

func runRoot(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeSettings(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, "settings.json")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

const sampleSettings = `{"profiles":{"list":[
  {"name":"Ubuntu","guid":"{2c4de342}"},
  {"name":"Git Bash","commandline":"bash.exe"},
  {"guid":"{unnamed}"},
  {"name":"PowerShell","guid":"abc-123"}
]}}`

func TestListJSONAlphabetical(t *testing.T) {
	dir := setupEnv(t)
	settings := writeSettings(t, dir, sampleSettings)
	stdout, _, err := runRoot(t, "list", "--json", "--settings", settings)
	if err != nil {
		t.Fatalf("list returned error: %v", err)
	}
	var got []struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal([]byte(stdout), &got); err != nil {
		t.Fatalf("decode output: %v\n%s", err, stdout)
	}
	var names []string
	for _, p := range got {
		names = append(names, p.Name)
	}
	if strings.Join(names, ",") != "Git Bash,PowerShell,Ubuntu" {
		t.Fatalf("names = %v", names)
	}
}

func TestListSettingsOrderTable(t *testing.T) {
	dir := setupEnv(t)
	settings := writeSettings(t, dir, sampleSettings)
	stdout, _, err := runRoot(t, "list", "--sort", "settings", "--settings", settings)
	if err != nil {
		t.Fatalf("list returned error: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	if len(lines) != 4 {
		t.Fatalf("lines = %d, want header + 3\n%s", len(lines), stdout)
	}
	if !strings.HasPrefix(lines[1], "Ubuntu") || !strings.HasPrefix(lines[3], "PowerShell") {
		t.Fatalf("unexpected order:\n%s", stdout)
	}
}

func TestListMissingSettingsFails(t *testing.T) {
	dir := setupEnv(t)
	_, stderr, err := runRoot(t, "list", "-v", "--settings", filepath.Join(dir, "missing.json"))
	if err == nil {
		t.Fatalf("expected error for missing settings")
	}
	if !strings.Contains(stderr, "Settings file not found") {
		t.Fatalf("stderr = %q", stderr)
	}
}

func TestListRejectsUnknownSort(t *testing.T) {
	dir := setupEnv(t)
	settings := writeSettings(t, dir, sampleSettings)
	if _, _, err := runRoot(t, "list", "--sort", "newest", "--settings", settings); err == nil {
		t.Fatalf("expected invalid sort order to fail")
	}
}

func TestOpenDryRun(t *testing.T) {
	dir := setupEnv(t)
	settings := writeSettings(t, dir, sampleSettings)
	stdout, _, err := runRoot(t, "open", "powershell", "--dry-run", "--quake", "--settings", settings)
	if err != nil {
		t.Fatalf("open returned error: %v", err)
	}
	want := "wt.exe -w _quake -p abc-123 -d " + filepath.Join(dir, "home")
	if strings.TrimSpace(stdout) != want {
		t.Fatalf("stdout = %q, want %q", strings.TrimSpace(stdout), want)
	}

	stdout, _, err = runRoot(t, "open", "git bash", "--dry-run", "--settings", settings)
	if err != nil {
		t.Fatalf("open returned error: %v", err)
	}
	if !strings.Contains(stdout, `-p "Git Bash"`) {
		t.Fatalf("stdout = %q, want name fallback", stdout)
	}
}

func TestOpenUnknownProfile(t *testing.T) {
	dir := setupEnv(t)
	settings := writeSettings(t, dir, sampleSettings)
	if _, _, err := runRoot(t, "open", "zzz", "--settings", settings); err == nil {
		t.Fatalf("expected unknown profile to fail")
	}
}

func TestOpenMissingTerminalFails(t *testing.T) {
	dir := setupEnv(t)
	settings := writeSettings(t, dir, sampleSettings)
	_, _, err := runRoot(t, "open", "Ubuntu", "--terminal", filepath.Join(dir, "no-such-wt"), "--settings", settings)
	if err == nil {
		t.Fatalf("expected spawn failure")
	}
}

func TestPathPrintsOverride(t *testing.T) {
	dir := setupEnv(t)
	settings := filepath.Join(dir, "custom", "settings.json")
	stdout, _, err := runRoot(t, "path", "--settings", settings)
	if err != nil {
		t.Fatalf("path returned error: %v", err)
	}
	if first := strings.SplitN(stdout, "\n", 2)[0]; first != settings {
		t.Fatalf("path = %q, want %q", first, settings)
	}
}

func TestPathNotesGuessedUserOutsideWindows(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("user name is not guessed on windows")
	}
	setupEnv(t)
	t.Setenv("USERNAME", "")
	t.Setenv("USER", "dev")
	stdout, stderr, err := runRoot(t, "path")
	if err != nil {
		t.Fatalf("path returned error: %v", err)
	}
	if !strings.HasPrefix(stdout, "/mnt/c/Users/dev/") {
		t.Fatalf("stdout = %q", stdout)
	}
	if !strings.Contains(stderr, `assumed Windows user "dev"`) {
		t.Fatalf("stderr = %q", stderr)
	}

	setupEnv(t)
	_, stderr, err = runRoot(t, "path", "--settings", "/tmp/settings.json")
	if err != nil {
		t.Fatalf("path returned error: %v", err)
	}
	if stderr != "" {
		t.Fatalf("override must not print a note, stderr = %q", stderr)
	}
}
