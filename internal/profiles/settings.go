package profiles

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"unicode/utf8"
)

// ErrorKind classifies why settings.json could not be loaded.
type ErrorKind int

const (
	KindNotFound ErrorKind = iota + 1
	KindUnreadable
	KindParse
	KindSchema
)

func (k ErrorKind) String() string {
	switch k {
	case KindNotFound:
		return "not found"
	case KindUnreadable:
		return "unreadable"
	case KindParse:
		return "parse error"
	case KindSchema:
		return "schema error"
	default:
		return "unknown"
	}
}

// LoadError is returned by LoadSettings for every failure.
type LoadError struct {
	Kind ErrorKind
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("profiles: %s: %s", e.Path, e.Kind)
	}
	return fmt.Sprintf("profiles: %s: %s: %v", e.Path, e.Kind, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// IsKind reports whether err is a *LoadError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var le *LoadError
	return errors.As(err, &le) && le.Kind == kind
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// LoadSettings reads path and returns the records of profiles.list in file
// order. Unnamed and hidden profiles are kept; selection happens later.
func LoadSettings(path string) ([]Profile, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &LoadError{Kind: KindNotFound, Path: path, Err: err}
		}
		return nil, &LoadError{Kind: KindUnreadable, Path: path, Err: err}
	}
	if info.IsDir() {
		return nil, &LoadError{Kind: KindNotFound, Path: path, Err: errors.New("is a directory")}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Kind: KindUnreadable, Path: path, Err: err}
	}
	return ParseSettings(path, data)
}

// ParseSettings decodes settings.json content. path is only used in errors.
//
// Keys are matched exactly, as JSON is case-sensitive. Only the presence of an
// object at "profiles" holding an array at "list" is enforced; a record whose
// optional fields have the wrong type keeps those fields zero, and a record
// that is not an object is skipped.
func ParseSettings(path string, data []byte) ([]Profile, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	if !utf8.Valid(data) {
		return nil, &LoadError{Kind: KindParse, Path: path, Err: errors.New("content is not valid UTF-8")}
	}
	var root map[string]json.RawMessage
	if err := json.Unmarshal(data, &root); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, &LoadError{Kind: KindSchema, Path: path, Err: errors.New("top level is not an object")}
		}
		return nil, &LoadError{Kind: KindParse, Path: path, Err: err}
	}
	section, err := objectAt(root, "profiles")
	if err != nil {
		return nil, &LoadError{Kind: KindSchema, Path: path, Err: err}
	}
	records, err := arrayAt(section, "profiles.list", "list")
	if err != nil {
		return nil, &LoadError{Kind: KindSchema, Path: path, Err: err}
	}
	list := make([]Profile, 0, len(records))
	for _, raw := range records {
		if p, ok := decodeProfile(raw); ok {
			list = append(list, p)
		}
	}
	return list, nil
}

func objectAt(fields map[string]json.RawMessage, key string) (map[string]json.RawMessage, error) {
	raw, ok := fields[key]
	if !ok || isNull(raw) {
		return nil, fmt.Errorf("missing %s", key)
	}
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil, fmt.Errorf("%s is not an object", key)
	}
	return obj, nil
}

func arrayAt(fields map[string]json.RawMessage, name, key string) ([]json.RawMessage, error) {
	raw, ok := fields[key]
	if !ok || isNull(raw) {
		return nil, fmt.Errorf("missing %s", name)
	}
	var arr []json.RawMessage
	if err := json.Unmarshal(raw, &arr); err != nil {
		return nil, fmt.Errorf("%s is not an array", name)
	}
	return arr, nil
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

func decodeProfile(raw json.RawMessage) (Profile, bool) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil || fields == nil {
		return Profile{}, false
	}
	var p Profile
	field(fields, "name", &p.Name)
	field(fields, "guid", &p.GUID)
	field(fields, "source", &p.Source)
	field(fields, "hidden", &p.Hidden)
	field(fields, "commandline", &p.Commandline)
	field(fields, "icon", &p.Icon)
	return p, true
}

// field decodes fields[key] into dst, leaving dst untouched when the key is
// absent or holds a value of another type.
func field[T any](fields map[string]json.RawMessage, key string, dst *T) {
	raw, ok := fields[key]
	if !ok {
		return
	}
	var v T
	if err := json.Unmarshal(raw, &v); err == nil {
		*dst = v
	}
}
