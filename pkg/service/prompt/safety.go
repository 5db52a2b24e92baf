package prompt

import "strings"

// sensitiveKeywords are crisis-indicating terms checked against the raw
// user input. Matching is case-insensitive and substring-based on purpose:
// a false positive inside an unrelated compound word is accepted as a
// conservative bias. This is a best-effort heuristic, not a safety
// guarantee.
var sensitiveKeywords = []string{
	"suizid",
	"selbstmord",
	"umbringen",
	"töten",
	"selbstverletzung",
}

// Verdict is the result of the safety check. When Triggered, the caller
// must discard the user-selected topic/style/content from the outbound
// request and show the help-resources notice on the result.
type Verdict struct {
	Triggered bool
}

// Evaluate checks the raw input for crisis-indicating keywords.
func Evaluate(rawInput string) Verdict {
	lowered := strings.ToLower(rawInput)
	for _, keyword := range sensitiveKeywords {
		if strings.Contains(lowered, keyword) {
			return Verdict{Triggered: true}
		}
	}
	return Verdict{}
}
