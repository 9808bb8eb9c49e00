package formatting

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrParseFailed is returned when neither the content nor any fenced block
// inside it decodes as JSON.
var ErrParseFailed = errors.New("failed to parse response")

const maxQuoted = 120

// Parse decodes content as JSON into T. When the raw content is not JSON,
// each fenced block is tried in order and the first one that decodes wins.
func Parse[T any](content string) (T, error) {
	var result T
	content = strings.TrimSpace(content)

	if json.Unmarshal([]byte(content), &result) == nil {
		return result, nil
	}

	for _, body := range fencedBodies(content) {
		var candidate T
		if json.Unmarshal([]byte(body), &candidate) == nil {
			return candidate, nil
		}
	}

	return result, fmt.Errorf("%w: %q", ErrParseFailed, truncate(content, maxQuoted))
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
