package bodyfile

import "strings"

// The reserved set is escaped with a preceding backslash inside any
// free text field. '/' is the path segment separator, ':' joins data
// stream names, '|' delimits fields and the control ranges would
// corrupt line oriented parsing.
func needsEscape(r rune) bool {
	switch {
	case r < 0x20:
		return true
	case r == '/' || r == ':' || r == '\\' || r == '|':
		return true
	case r >= 0x7f && r < 0xa0:
		return true
	}
	return false
}

// EscapeField escapes reserved code points in a single left to right
// pass. All other code points are passed through untouched.
func EscapeField(text string) string {
	result := strings.Builder{}
	result.Grow(len(text))

	for _, r := range text {
		if needsEscape(r) {
			result.WriteByte('\\')
		}
		result.WriteRune(r)
	}
	return result.String()
}

// UnescapeField is the exact inverse of EscapeField. A trailing
// unpaired backslash or an escape of a non reserved code point is a
// decode error, not a silent pass through.
func UnescapeField(text string) (string, error) {
	result := strings.Builder{}
	result.Grow(len(text))

	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		if runes[i] != '\\' {
			result.WriteRune(runes[i])
			continue
		}

		i++
		if i >= len(runes) {
			return "", ErrUnterminatedEscape
		}
		if !needsEscape(runes[i]) {
			return "", ErrInvalidEscape
		}
		result.WriteRune(runes[i])
	}
	return result.String(), nil
}

// splitUnescaped splits on each occurrence of sep preceded by an even
// number of consecutive backslashes - an odd count means the
// separator is escaped data. sep must be an ASCII byte so a bytewise
// scan is safe in UTF-8.
func splitUnescaped(text string, sep byte) []string {
	result := []string{}
	start := 0
	backslashes := 0

	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '\\':
			backslashes++
			continue
		case sep:
			if backslashes%2 == 0 {
				result = append(result, text[start:i])
				start = i + 1
			}
		}
		backslashes = 0
	}
	return append(result, text[start:])
}

// containsUnescaped reports whether sep occurs unescaped in text.
func containsUnescaped(text string, sep byte) bool {
	backslashes := 0

	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '\\':
			backslashes++
			continue
		case sep:
			if backslashes%2 == 0 {
				return true
			}
		}
		backslashes = 0
	}
	return false
}

// SplitFields splits one record line into its raw, still escaped,
// fields honouring escaped delimiters.
func SplitFields(line string) []string {
	return splitUnescaped(line, '|')
}
