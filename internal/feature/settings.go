package feature

import (
	"fmt"
	"strings"
)

// notFoundValue replaces the value of a missing setting in formatted output.
const notFoundValue = "key not found"

// Setting is a single named entry in a [Settings] table.
type Setting struct {
	Key   string
	Value string
}

// Settings is an ordered, immutable mapping from setting name to value.
//
// The zero value is an empty table. Accessors never expose internal state,
// so callers may freely modify what they get back.
type Settings struct {
	entries []Setting
	index   map[string]int
}

// NewSettings builds a table from entries, keeping their order.
// It returns an error if a key appears more than once.
func NewSettings(entries ...Setting) (Settings, error) {
	s := Settings{
		entries: make([]Setting, 0, len(entries)),
		index:   make(map[string]int, len(entries)),
	}
	for _, e := range entries {
		if _, dup := s.index[e.Key]; dup {
			return Settings{}, fmt.Errorf("duplicate setting key %q", e.Key)
		}
		s.index[e.Key] = len(s.entries)
		s.entries = append(s.entries, e)
	}
	return s, nil
}

func mustSettings(entries ...Setting) Settings {
	s, err := NewSettings(entries...)
	if err != nil {
		panic(err)
	}
	return s
}

// Lookup returns the value stored under key and whether it was present.
func (s Settings) Lookup(key string) (string, bool) {
	i, ok := s.index[key]
	if !ok {
		return "", false
	}
	return s.entries[i].Value, true
}

// Len returns the number of entries.
func (s Settings) Len() int {
	return len(s.entries)
}

// Keys returns the setting names in table order.
func (s Settings) Keys() []string {
	keys := make([]string, len(s.entries))
	for i, e := range s.entries {
		keys[i] = e.Key
	}
	return keys
}

// Entries returns a copy of the entries in table order.
func (s Settings) Entries() []Setting {
	out := make([]Setting, len(s.entries))
	copy(out, s.entries)
	return out
}

// Map returns the table as a fresh map.
func (s Settings) Map() map[string]string {
	m := make(map[string]string, len(s.entries))
	for _, e := range s.entries {
		m[e.Key] = e.Value
	}
	return m
}

// Equal reports whether both tables hold the same entries in the same order.
func (s Settings) Equal(other Settings) bool {
	if len(s.entries) != len(other.entries) {
		return false
	}
	for i := range s.entries {
		if s.entries[i] != other.entries[i] {
			return false
		}
	}
	return true
}

// isBlank reports whether key is empty or only whitespace. Blank keys are
// treated as missing without looking them up.
func isBlank(key string) bool {
	return strings.TrimSpace(key) == ""
}

func formatSetting(key, value string, length int) string {
	return fmt.Sprintf("%s => `%s` with length %d", key, value, length)
}
