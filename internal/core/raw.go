package core

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// Truthy reports whether a raw JSON value counts as present: absent, null,
// false, zero, empty string, empty array and empty object do not.
func Truthy(raw json.RawMessage) bool {
	s := bytes.TrimSpace(raw)
	if len(s) == 0 {
		return false
	}

	switch s[0] {
	case 'n', 'f':
		return false
	case 't':
		return true
	case '"':
		var str string
		return json.Unmarshal(s, &str) == nil && str != ""
	case '[':
		var arr []json.RawMessage
		return json.Unmarshal(s, &arr) == nil && len(arr) > 0
	case '{':
		var obj map[string]json.RawMessage
		return json.Unmarshal(s, &obj) == nil && len(obj) > 0
	}

	f, err := strconv.ParseFloat(string(s), 64)
	return err == nil && f != 0
}

// rawText unquotes a JSON string and returns any other value as compact JSON
// text. Absent and null give "".
func rawText(raw json.RawMessage) string {
	s := bytes.TrimSpace(raw)
	if len(s) == 0 || string(s) == "null" {
		return ""
	}
	if s[0] == '"' {
		var str string
		if err := json.Unmarshal(s, &str); err == nil {
			return str
		}
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, s); err != nil {
		return string(s)
	}
	return buf.String()
}

// nullToNil drops an explicit JSON null so it stores and prints like an
// absent field.
func nullToNil(raw json.RawMessage) json.RawMessage {
	s := bytes.TrimSpace(raw)
	if len(s) == 0 || string(s) == "null" {
		return nil
	}
	return s
}
