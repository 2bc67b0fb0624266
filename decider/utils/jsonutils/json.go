package jsonutils

import (
	"encoding/json"
	"strings"
)

// ToJSON renders v as two-space indented JSON, or "" when v cannot be encoded.
func ToJSON(v any) string {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(b))
}
