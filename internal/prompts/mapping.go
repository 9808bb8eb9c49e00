package prompts

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ParseSections decodes a sections object, requiring every section key to be
// present with a string value. Empty strings are allowed.
func ParseSections(raw json.RawMessage) (Sections, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return Sections{}, fmt.Errorf("%w: secciones requeridas", ErrInvalidSections)
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return Sections{}, fmt.Errorf("%w: %v", ErrInvalidSections, err)
	}

	for _, name := range SectionNames {
		v, ok := fields[name]
		if !ok || !isString(v) {
			return Sections{}, fmt.Errorf("%w: seccion '%s' invalida o faltante", ErrInvalidSections, name)
		}
	}

	var s Sections
	if err := json.Unmarshal(raw, &s); err != nil {
		return Sections{}, fmt.Errorf("%w: %v", ErrInvalidSections, err)
	}
	return s, nil
}

func isString(v json.RawMessage) bool {
	v = bytes.TrimSpace(v)
	var s string
	return len(v) > 0 && v[0] == '"' && json.Unmarshal(v, &s) == nil
}
