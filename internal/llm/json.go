package llm

import "strings"

// CleanJSON strips the wrappers models add around JSON despite being told not
// to: Markdown code fences and stray text before/after the document. It keeps
// only the region from the first '{' or '[' to the matching last '}' or ']'.
// The result still has to survive json.Unmarshal; this is cleanup, not repair.
func CleanJSON(raw string) string {
	s := strings.TrimSpace(raw)

	// Handle ```json ... ``` or ``` ... ``` wrappers.
	if strings.HasPrefix(s, "```") {
		// Drop the first line (``` or ```json).
		if idx := strings.Index(s, "\n"); idx != -1 {
			s = s[idx+1:]
		} else {
			return s
		}
		s = strings.TrimSpace(s)
	}

	// Remove trailing ``` if present.
	if idx := strings.LastIndex(s, "```"); idx != -1 {
		s = s[:idx]
	}

	s = strings.TrimSpace(s)

	// Keep only the outermost JSON value if there is still junk around it.
	objStart := strings.Index(s, "{")
	arrStart := strings.Index(s, "[")

	start, closer := objStart, "}"
	if arrStart != -1 && (objStart == -1 || arrStart < objStart) {
		start, closer = arrStart, "]"
	}

	if start != -1 {
		if end := strings.LastIndex(s, closer); end > start {
			s = strings.TrimSpace(s[start : end+1])
		}
	}

	return s
}
