package models

import "strings"

// Well-known desktop entry keys
const (
	KeyName       = "Name"
	KeyNameEnUS   = "Name[en_US]"
	KeyExec       = "Exec"
	KeyIcon       = "Icon"
	KeyCategories = "Categories"
)

// Entry is one parsed desktop entry file
type Entry struct {
	Path string            // Source file (empty for custom launchers)
	Keys map[string]string // Raw key/value pairs from the [Desktop Entry] group
}

// NewEntry creates an empty entry for the given source path
func NewEntry(path string) *Entry {
	return &Entry{
		Path: path,
		Keys: make(map[string]string),
	}
}

// Get returns the value for key and whether it was declared
func (e *Entry) Get(key string) (string, bool) {
	v, ok := e.Keys[key]
	return v, ok
}

// Set stores a value, replacing any previous one
func (e *Entry) Set(key, value string) {
	e.Keys[key] = value
}

// Exec returns the launch command, empty if missing
func (e *Entry) Exec() string {
	return e.Keys[KeyExec]
}

// HasExec reports whether the entry can be launched at all
func (e *Entry) HasExec() bool {
	return strings.TrimSpace(e.Keys[KeyExec]) != ""
}

// Name returns the resolved display name
func (e *Entry) Name() string {
	return e.Keys[KeyName]
}

// Icon returns the icon value and whether it was declared
func (e *Entry) Icon() (string, bool) {
	return e.Get(KeyIcon)
}

// Categories returns the trimmed, non-empty category names declared by the entry.
// The second return value is false when the entry has no Categories key.
func (e *Entry) Categories() ([]string, bool) {
	raw, ok := e.Keys[KeyCategories]
	if !ok {
		return nil, false
	}

	var cats []string
	for _, part := range strings.Split(raw, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		cats = append(cats, part)
	}
	return cats, true
}
