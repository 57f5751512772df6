// Package localized resolves display strings from fields that may be a plain
// string, a language-code map, or absent.
package localized

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/tidwall/gjson"
)

// DefaultLanguage is preferred when resolving a language map.
const DefaultLanguage = "en"

// Entry is one language/value pair of a language map.
type Entry struct {
	Lang  string
	Value string
}

// Text holds a raw localized field. Language maps keep their source order so
// the "first non-empty value" rule is deterministic.
type Text struct {
	plain   string
	entries []Entry
	kind    kind
}

type kind uint8

const (
	kindAbsent kind = iota
	kindPlain
	kindMap
)

// FromString wraps a plain string.
func FromString(s string) Text {
	return Text{plain: s, kind: kindPlain}
}

// FromEntries builds a language map in the given order.
func FromEntries(entries ...Entry) Text {
	return Text{entries: entries, kind: kindMap}
}

// FromResult converts a parsed JSON value. Strings become plain text, objects
// become language maps (non-string members are ignored), anything else is absent.
func FromResult(r gjson.Result) Text {
	switch {
	case r.Type == gjson.String:
		return FromString(r.String())
	case r.IsObject():
		t := Text{kind: kindMap}
		r.ForEach(func(key, value gjson.Result) bool {
			if value.Type == gjson.String {
				t.entries = append(t.entries, Entry{Lang: key.String(), Value: value.String()})
			}
			return true
		})
		return t
	default:
		return Text{}
	}
}

// IsAbsent reports whether the field was missing or not a string/map.
func (t Text) IsAbsent() bool {
	return t.kind == kindAbsent
}

// Resolve returns the display string: a plain string as-is, the "en" entry of a
// map when non-blank, else the first non-blank entry in source order, else fallback.
func (t Text) Resolve(fallback string) string {
	switch t.kind {
	case kindPlain:
		return t.plain
	case kindMap:
		for _, e := range t.entries {
			if e.Lang == DefaultLanguage && strings.TrimSpace(e.Value) != "" {
				return e.Value
			}
		}
		for _, e := range t.entries {
			if strings.TrimSpace(e.Value) != "" {
				return e.Value
			}
		}
	}
	return fallback
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *Text) UnmarshalJSON(data []byte) error {
	*t = FromResult(gjson.ParseBytes(data))
	return nil
}

// MarshalJSON implements json.Marshaler, preserving map order.
func (t Text) MarshalJSON() ([]byte, error) {
	switch t.kind {
	case kindPlain:
		return json.Marshal(t.plain)
	case kindMap:
		var buf bytes.Buffer
		buf.WriteByte('{')
		for i, e := range t.entries {
			if i > 0 {
				buf.WriteByte(',')
			}
			k, err := json.Marshal(e.Lang)
			if err != nil {
				return nil, err
			}
			v, err := json.Marshal(e.Value)
			if err != nil {
				return nil, err
			}
			buf.Write(k)
			buf.WriteByte(':')
			buf.Write(v)
		}
		buf.WriteByte('}')
		return buf.Bytes(), nil
	default:
		return []byte("null"), nil
	}
}
