package usecase

import (
	"encoding/json"
	"strings"
)

// generationPayload is the wire shape expected back from the model
type generationPayload struct {
	Explanation      string   `json:"explanation"`
	Code             string   `json:"code"`
	FileName         string   `json:"fileName"`
	Language         string   `json:"language"`
	SuggestedActions []string `json:"suggestedActions"`
}

// parseGeneration turns raw model output into a GenerationOutput. It tries a
// strict JSON parse, then the first balanced {...} substring, and finally
// falls back to treating the whole text as the explanation. It never fails:
// degraded output beats a dropped response.
func parseGeneration(raw string) *GenerationOutput {
	trimmed := strings.TrimSpace(raw)

	if out, ok := parsePayload(trimmed); ok {
		return out
	}

	if sub := extractJSONObject(trimmed); sub != "" {
		if out, ok := parsePayload(sub); ok {
			return out
		}
	}

	return &GenerationOutput{Explanation: trimmed}
}

func parsePayload(s string) (*GenerationOutput, bool) {
	var p generationPayload
	if err := json.Unmarshal([]byte(s), &p); err != nil {
		return nil, false
	}
	if p.Explanation == "" && p.Code == "" {
		return nil, false
	}
	return &GenerationOutput{
		Explanation:      p.Explanation,
		Code:             p.Code,
		FileName:         p.FileName,
		Language:         p.Language,
		SuggestedActions: p.SuggestedActions,
	}, true
}

// extractJSONObject returns the first balanced top-level {...} substring,
// respecting string literals and escapes. Models often wrap JSON in prose or
// code fences; this strips the wrapping.
func extractJSONObject(s string) string {
	start := strings.IndexByte(s, '{')
	if start < 0 {
		return ""
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]
		if escaped {
			escaped = false
			continue
		}
		switch c {
		case '\\':
			if inString {
				escaped = true
			}
		case '"':
			inString = !inString
		case '{':
			if !inString {
				depth++
			}
		case '}':
			if !inString {
				depth--
				if depth == 0 {
					return s[start : i+1]
				}
			}
		}
	}
	return ""
}
