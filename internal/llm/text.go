package llm

import (
	"encoding/json"
	"strings"
)

// jsonContent trims whitespace and a surrounding Markdown code fence from
// model output. Some models fence JSON even in structured-output mode.
func jsonContent(text string) json.RawMessage {
	s := strings.TrimSpace(text)
	if !strings.HasPrefix(s, "```") {
		return json.RawMessage(s)
	}

	s = strings.TrimPrefix(s, "```")
	if nl := strings.IndexByte(s, '\n'); nl >= 0 {
		// Drop the info string, e.g. "json".
		s = s[nl+1:]
	} else {
		s = strings.TrimPrefix(s, "json")
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return json.RawMessage(strings.TrimSpace(s))
}

// isAuthStatus reports whether an HTTP status means the key was rejected.
func isAuthStatus(code int) bool {
	return code == 401 || code == 403
}
