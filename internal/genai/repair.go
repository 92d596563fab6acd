// File path: internal/genai/repair.go
package genai

import "strings"

// stripCodeFences removes a markdown code-fence wrapper (``` or ```json) if
// the payload carries one.
func stripCodeFences(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}
	trimmed = strings.TrimPrefix(trimmed, "```")
	if idx := strings.IndexByte(trimmed, '\n'); idx >= 0 {
		trimmed = trimmed[idx+1:]
	} else {
		// Fence with no body.
		return ""
	}
	if idx := strings.LastIndex(trimmed, "```"); idx >= 0 {
		trimmed = trimmed[:idx]
	}
	return strings.TrimSpace(trimmed)
}

// repairJSON recovers a parseable JSON document from a possibly truncated
// model response. It strips fence wrappers, locates the first top-level array
// or object, and walks it with a bracket-balance scan that tracks
// string-literal state and escape sequences. Token-limited models often stop
// mid-object; the scan truncates at the last syntactically complete point
// instead of letting one ragged tail abort the whole batch.
//
// Returns the repaired document, or "" when no complete element exists.
func repairJSON(raw string) string {
	s := stripCodeFences(raw)
	start := strings.IndexAny(s, "[{")
	if start < 0 {
		return ""
	}
	opener := s[start]

	var stack []byte
	inString := false
	escaped := false
	complete := -1    // index of the close that emptied the stack
	lastElement := -1 // index of the close that left only the top-level opener

scan:
	for i := start; i < len(s); i++ {
		ch := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case ch == '\\':
				escaped = true
			case ch == '"':
				inString = false
			}
			continue
		}
		switch ch {
		case '"':
			inString = true
		case '[', '{':
			stack = append(stack, ch)
		case ']', '}':
			if len(stack) == 0 {
				break scan
			}
			open := stack[len(stack)-1]
			if (ch == ']' && open != '[') || (ch == '}' && open != '{') {
				// Mismatched close: nothing past this point can be trusted.
				break scan
			}
			stack = stack[:len(stack)-1]
			switch len(stack) {
			case 0:
				complete = i
			case 1:
				lastElement = i
			}
		}
	}

	if complete >= 0 {
		return s[start : complete+1]
	}
	if lastElement >= 0 {
		closer := "]"
		if opener == '{' {
			closer = "}"
		}
		return s[start:lastElement+1] + closer
	}
	return ""
}
