package usecase

import (
	"testing"

	"github.com/m-mizutani/gt"
)

func TestParseGeneration_StrictJSON(t *testing.T) {
	raw := `{"explanation":"built a list","code":"const x = 1","fileName":"lib/x.ts","language":"ts","suggestedActions":["Review the code"]}`

	out := parseGeneration(raw)
	gt.Value(t, out.Explanation).Equal("built a list")
	gt.Value(t, out.Code).Equal("const x = 1")
	gt.Value(t, out.FileName).Equal("lib/x.ts")
	gt.Value(t, out.Language).Equal("ts")
	gt.Array(t, out.SuggestedActions).Equal([]string{"Review the code"})
}

func TestParseGeneration_EmbeddedJSON(t *testing.T) {
	raw := "Here is the result:\n```json\n" +
		`{"explanation":"done","code":"","fileName":"","language":"","suggestedActions":[]}` +
		"\n```\nLet me know if you need changes."

	out := parseGeneration(raw)
	gt.Value(t, out.Explanation).Equal("done")
	gt.Value(t, out.Code).Equal("")
}

func TestParseGeneration_BracesInsideStrings(t *testing.T) {
	raw := `noise {"explanation":"uses {braces} and \"quotes\"","code":"if (x) { y() }"} trailing`

	out := parseGeneration(raw)
	gt.Value(t, out.Explanation).Equal(`uses {braces} and "quotes"`)
	gt.Value(t, out.Code).Equal("if (x) { y() }")
}

func TestParseGeneration_PlainTextFallback(t *testing.T) {
	out := parseGeneration("  I could not produce structured output.  ")
	gt.Value(t, out.Explanation).Equal("I could not produce structured output.")
	gt.Value(t, out.Code).Equal("")
	gt.Value(t, out.FileName).Equal("")
}

func TestParseGeneration_MalformedJSONFallsBack(t *testing.T) {
	raw := `{"explanation":"unterminated`

	out := parseGeneration(raw)
	gt.Value(t, out.Explanation).Equal(raw)
}

func TestParseGeneration_EmptyPayloadRejected(t *testing.T) {
	// A JSON object with neither explanation nor code is not a usable
	// payload; the raw text becomes the explanation instead.
	raw := `{"unrelated":"field"}`

	out := parseGeneration(raw)
	gt.Value(t, out.Explanation).Equal(raw)
}
