package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// SettingKind is the declared type of a setting.
type SettingKind int

const (
	// KindText settings hold free text.
	KindText SettingKind = iota
	// KindBool settings hold a flag stored as True/False.
	KindBool
)

func (k SettingKind) String() string {
	if k == KindBool {
		return "bool"
	}
	return "text"
}

// SettingValue is either a Bool or a Text value.
type SettingValue struct {
	kind SettingKind
	text string
	flag bool
}

// Text returns a text setting value.
func Text(s string) SettingValue {
	return SettingValue{kind: KindText, text: s}
}

// Bool returns a boolean setting value.
func Bool(b bool) SettingValue {
	return SettingValue{kind: KindBool, flag: b}
}

// Kind returns the value's kind.
func (v SettingValue) Kind() SettingKind {
	return v.kind
}

// AsBool returns the flag and whether v is a Bool.
func (v SettingValue) AsBool() (bool, bool) {
	return v.flag, v.kind == KindBool
}

// AsText returns the text and whether v is a Text.
func (v SettingValue) AsText() (string, bool) {
	return v.text, v.kind == KindText
}

// Encode renders v as stored in the settings table. Booleans are written as
// True and False, the spelling already present in shipped settings files;
// decoding accepts any case.
func (v SettingValue) Encode() string {
	if v.kind == KindBool {
		if v.flag {
			return "True"
		}
		return "False"
	}
	return v.text
}

// String implements fmt.Stringer.
func (v SettingValue) String() string {
	return v.Encode()
}

// MarshalJSON encodes Bool values as JSON booleans and Text as strings.
func (v SettingValue) MarshalJSON() ([]byte, error) {
	if v.kind == KindBool {
		return json.Marshal(v.flag)
	}
	return json.Marshal(v.text)
}

// SettingsSchema declares the kind of each known setting key.
// Undeclared keys are treated as text.
type SettingsSchema map[string]SettingKind

// DefaultSettingsSchema returns the schema of the settings the app ships with.
func DefaultSettingsSchema() SettingsSchema {
	return SettingsSchema{
		"theme":        KindText,
		"data_privacy": KindBool,
	}
}

// KindOf returns the declared kind of key.
func (s SettingsSchema) KindOf(key string) SettingKind {
	if kind, ok := s[key]; ok {
		return kind
	}
	return KindText
}

// Decode converts stored text into a value of key's declared kind.
// Bool keys accept true/false in any letter case.
func (s SettingsSchema) Decode(key, raw string) (SettingValue, error) {
	if s.KindOf(key) != KindBool {
		return Text(raw), nil
	}
	switch {
	case strings.EqualFold(raw, "true"):
		return Bool(true), nil
	case strings.EqualFold(raw, "false"):
		return Bool(false), nil
	}
	return SettingValue{}, fmt.Errorf("%w: %s=%q is not a bool", ErrInvalidSetting, key, raw)
}

// Check verifies that v has key's declared kind.
func (s SettingsSchema) Check(key string, v SettingValue) error {
	if want := s.KindOf(key); v.Kind() != want {
		return fmt.Errorf("%w: %s must be %s, got %s", ErrInvalidSetting, key, want, v.Kind())
	}
	return nil
}

// Settings maps setting name to value, keeping first-insertion order.
type Settings struct {
	keys   []string
	values map[string]SettingValue
}

// NewSettings returns empty settings.
func NewSettings() *Settings {
	return &Settings{values: make(map[string]SettingValue)}
}

// Set stores v under key; the last write for a key wins.
func (s *Settings) Set(key string, v SettingValue) {
	if s.values == nil {
		s.values = make(map[string]SettingValue)
	}
	if _, ok := s.values[key]; !ok {
		s.keys = append(s.keys, key)
	}
	s.values[key] = v
}

// Get returns the value of key.
func (s *Settings) Get(key string) (SettingValue, bool) {
	v, ok := s.values[key]
	return v, ok
}

// Keys returns the setting names in order.
func (s *Settings) Keys() []string {
	return append([]string(nil), s.keys...)
}

// Len returns the number of settings.
func (s *Settings) Len() int {
	return len(s.keys)
}

// MarshalJSON encodes settings as a JSON object in key order.
func (s *Settings) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range s.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(s.values[k])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
