package util

import "strings"

// fenceTags are the info strings dropped from the first line of a fenced answer.
// Anything else on that line is treated as content.
var fenceTags = map[string]bool{
	"text":      true,
	"txt":       true,
	"plain":     true,
	"plaintext": true,
	"markdown":  true,
	"md":        true,
	"json":      true,
}

// StripCodeFences removes a surrounding ``` block (with optional language tag) that models
// sometimes wrap plain answers in.
func StripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimSuffix(strings.TrimPrefix(s, "```"), "```")
	if nl := strings.IndexByte(s, '\n'); nl >= 0 {
		tag, rest := strings.TrimSpace(s[:nl]), s[nl+1:]
		if tag == "" || (fenceTags[strings.ToLower(tag)] && strings.TrimSpace(rest) != "") {
			s = rest
		}
	}
	return strings.TrimSpace(s)
}
