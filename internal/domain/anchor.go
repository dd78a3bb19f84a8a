package domain

// AnchorPrefix restores the protected prefix byte-for-byte at the head of
// the rewritten code. Renaming may drift incidental whitespace even when it
// touches no protected identifier, while downstream evaluation needs the
// prompt to reappear verbatim.
//
// The non-whitespace characters of the prefix are matched one-for-one
// against the rewritten text, skipping whitespace runs in the rewritten
// text. On a full match the result is the exact prefix plus the remainder
// after the matched position; on any mismatch, or when the prefix is not
// fully consumed, the rewritten text is returned unchanged. Anchoring is
// best-effort, never destructive.
func AnchorPrefix(code, protected string) (string, bool) {
	if protected == "" || code == "" {
		return code, false
	}

	protectedNoWS := stripSpace(protected)
	if protectedNoWS == "" {
		return code, false
	}

	codePos := 0
	protectedPos := 0

	for protectedPos < len(protectedNoWS) && codePos < len(code) {
		for codePos < len(code) && isSpace(code[codePos]) {
			codePos++
		}

		if codePos >= len(code) {
			break
		}

		if code[codePos] != protectedNoWS[protectedPos] {
			return code, false
		}

		codePos++
		protectedPos++
	}

	if protectedPos == len(protectedNoWS) {
		return protected + code[codePos:], true
	}

	return code, false
}

func stripSpace(s string) string {
	out := make([]byte, 0, len(s))

	for i := 0; i < len(s); i++ {
		if !isSpace(s[i]) {
			out = append(out, s[i])
		}
	}

	return string(out)
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}
