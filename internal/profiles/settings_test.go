package profiles

import (
	"os"
	"path/filepath"
	"testing"
)

func writeSettings(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "settings.json")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadSettingsReturnsRawList(t *testing.T) {
	path := writeSettings(t, `{
  "defaultProfile": "{61c54bbd-c2c6-5271-96e7-009a87ff44bf}",
  "profiles": {
    "defaults": {"font": {"face": "Cascadia Mono"}},
    "list": [
      {"name": "Ubuntu", "guid": "{2c4de342}", "source": "Windows.Terminal.Wsl", "hidden": false},
      {"guid": "{0caa0dad}", "commandline": "cmd.exe"},
      {"name": "PowerShell", "commandline": "pwsh.exe", "icon": "ms-appx:///ProfileIcons/pwsh.png", "hidden": true}
    ]
  }
}`)
	list, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("LoadSettings returned error: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("len(list) = %d, want 3 (unfiltered)", len(list))
	}
	if list[0].Name != "Ubuntu" || list[0].GUID != "{2c4de342}" || list[0].Source != "Windows.Terminal.Wsl" {
		t.Fatalf("unexpected first profile: %+v", list[0])
	}
	if list[1].Name != "" {
		t.Fatalf("unnamed profile must be kept by the parser, got %+v", list[1])
	}
	if !list[2].Hidden || list[2].Icon == "" || list[2].Commandline != "pwsh.exe" {
		t.Fatalf("optional fields not decoded: %+v", list[2])
	}
}

func TestLoadSettingsStripsBOM(t *testing.T) {
	path := writeSettings(t, "\xEF\xBB\xBF"+`{"profiles":{"list":[{"name":"cmd"}]}}`)
	list, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("LoadSettings returned error: %v", err)
	}
	if len(list) != 1 || list[0].Name != "cmd" {
		t.Fatalf("list = %+v", list)
	}
}

func TestLoadSettingsEmptyListIsNotSchemaError(t *testing.T) {
	path := writeSettings(t, `{"profiles":{"list":[]}}`)
	list, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("LoadSettings returned error: %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("len(list) = %d, want 0", len(list))
	}
}

func TestLoadSettingsErrorKinds(t *testing.T) {
	dir := t.TempDir()
	cases := []struct {
		name string
		path func(t *testing.T) string
		want ErrorKind
	}{
		{
			name: "missing file",
			path: func(t *testing.T) string { return filepath.Join(dir, "absent.json") },
			want: KindNotFound,
		},
		{
			name: "directory",
			path: func(t *testing.T) string { return dir },
			want: KindNotFound,
		},
		{
			name: "malformed json",
			path: func(t *testing.T) string { return writeSettings(t, `{"profiles": {"list": [`) },
			want: KindParse,
		},
		{
			name: "invalid utf-8",
			path: func(t *testing.T) string { return writeSettings(t, "{\"profiles\":{\"list\":[{\"name\":\"\xff\"}]}}") },
			want: KindParse,
		},
		{
			name: "missing profiles",
			path: func(t *testing.T) string { return writeSettings(t, `{"theme":"dark"}`) },
			want: KindSchema,
		},
		{
			name: "missing list",
			path: func(t *testing.T) string { return writeSettings(t, `{"profiles":{"defaults":{}}}`) },
			want: KindSchema,
		},
		{
			name: "null list",
			path: func(t *testing.T) string { return writeSettings(t, `{"profiles":{"list":null}}`) },
			want: KindSchema,
		},
		{
			name: "keys differ in case",
			path: func(t *testing.T) string { return writeSettings(t, `{"Profiles":{"LIST":[{"NAME":"Ubuntu"}]}}`) },
			want: KindSchema,
		},
		{
			name: "list key differs in case",
			path: func(t *testing.T) string { return writeSettings(t, `{"profiles":{"List":[{"name":"Ubuntu"}]}}`) },
			want: KindSchema,
		},
		{
			name: "profiles is not an object",
			path: func(t *testing.T) string { return writeSettings(t, `{"profiles":[{"name":"Ubuntu"}]}`) },
			want: KindSchema,
		},
		{
			name: "top level is an array",
			path: func(t *testing.T) string { return writeSettings(t, `[{"name":"Ubuntu"}]`) },
			want: KindSchema,
		},
		{
			name: "list has wrong type",
			path: func(t *testing.T) string { return writeSettings(t, `{"profiles":{"list":{"name":"x"}}}`) },
			want: KindSchema,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			list, err := LoadSettings(tc.path(t))
			if err == nil {
				t.Fatalf("expected error, got list %+v", list)
			}
			if !IsKind(err, tc.want) {
				t.Fatalf("error = %v, want kind %s", err, tc.want)
			}
		})
	}
}

func TestParseSettingsToleratesBadOptionalFields(t *testing.T) {
	data := []byte(`{"profiles":{"list":[
  {"name":"Ubuntu","hidden":"false","guid":"{2c4de342}"},
  {"name":"cmd","icon":42},
  7,
  {"NAME":"shouty","name":"PowerShell","hidden":true}
]}}`)
	list, err := ParseSettings("settings.json", data)
	if err != nil {
		t.Fatalf("ParseSettings returned error: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("len(list) = %d, want 3: %+v", len(list), list)
	}
	if list[0].Name != "Ubuntu" || list[0].Hidden || list[0].GUID != "{2c4de342}" {
		t.Fatalf("first profile = %+v", list[0])
	}
	if list[1].Name != "cmd" || list[1].Icon != "" {
		t.Fatalf("second profile = %+v", list[1])
	}
	if list[2].Name != "PowerShell" || !list[2].Hidden {
		t.Fatalf("third profile = %+v", list[2])
	}
}
