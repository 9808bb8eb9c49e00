// Package formatting cleans up free-form model and webhook output: it strips
// markdown code fences and pulls JSON payloads out of them.
package formatting

import (
	"regexp"
	"strings"
)

// fence matches a closed ``` block. Group 1 is the language tag, group 2 the body.
var fence = regexp.MustCompile("(?s)```([A-Za-z0-9_+-]*)[ \\t]*\\n?(.*?)```")

// StripCodeFences removes every fenced block (including its contents) and
// trims surrounding whitespace. An unterminated fence is left in place.
func StripCodeFences(s string) string {
	return strings.TrimSpace(fence.ReplaceAllString(s, ""))
}

// fencedBodies returns the trimmed body of each closed block in s.
func fencedBodies(s string) []string {
	var bodies []string
	for _, m := range fence.FindAllStringSubmatch(s, -1) {
		bodies = append(bodies, strings.TrimSpace(m[2]))
	}
	return bodies
}
