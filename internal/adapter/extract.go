package adapter

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ExtractReplyText pulls candidates[0].content.parts[0].text out of a
// generateContent response.
//
// A document without a non-empty candidates array is returned whole, compacted,
// with Fallback set. A candidate that exists but cannot be walked down to its
// first part is ErrShape. A missing text field on an existing part yields "".
func ExtractReplyText(body []byte) (Reply, error) {
	var root any
	if err := json.Unmarshal(body, &root); err != nil {
		return Reply{}, fmt.Errorf("gemini: %w: %w", ErrParse, err)
	}

	doc, _ := root.(map[string]any)
	candidates, ok := doc["candidates"].([]any)
	if !ok || len(candidates) == 0 {
		var buf bytes.Buffer
		if err := json.Compact(&buf, body); err != nil {
			return Reply{}, fmt.Errorf("gemini: %w: %w", ErrParse, err)
		}
		return Reply{Text: buf.String(), Fallback: true}, nil
	}

	first, ok := candidates[0].(map[string]any)
	if !ok {
		return Reply{}, fmt.Errorf("gemini: %w: candidates[0] is not an object", ErrShape)
	}
	content, ok := first["content"].(map[string]any)
	if !ok {
		return Reply{}, fmt.Errorf("gemini: %w: candidates[0].content missing", ErrShape)
	}
	parts, ok := content["parts"].([]any)
	if !ok {
		return Reply{}, fmt.Errorf("gemini: %w: candidates[0].content.parts missing", ErrShape)
	}
	if len(parts) == 0 {
		return Reply{}, fmt.Errorf("gemini: %w: candidates[0].content.parts is empty", ErrShape)
	}

	part, _ := parts[0].(map[string]any)
	return Reply{Text: scalarText(part["text"])}, nil
}

// scalarText renders a JSON value as text. Containers and null are "".
func scalarText(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64, bool:
		b, _ := json.Marshal(t)
		return string(b)
	default:
		return ""
	}
}
