// Package jsonc strips // line comments and /* */ block comments from
// JSON-with-comments text while leaving string literals untouched.
package jsonc

// StripComments removes comments appearing outside string literals.
// Newlines inside removed comments are kept so line numbers of the
// surrounding document stay stable. The function is idempotent.
func StripComments(text string) string {
	data := []byte(text)
	result := make([]byte, 0, len(data))
	var inString bool
	var escaped bool

	for i := 0; i < len(data); i++ {
		char := data[i]

		if escaped {
			// Previous character was a backslash inside a string
			result = append(result, char)
			escaped = false
			continue
		}

		if inString {
			result = append(result, char)
			if char == '\\' {
				escaped = true
			} else if char == '"' {
				inString = false
			}
			continue
		}

		if char == '"' {
			inString = true
			result = append(result, char)
			continue
		}

		// Line comment: drop up to the newline, keep the newline
		if char == '/' && i+1 < len(data) && data[i+1] == '/' {
			i++
			for i+1 < len(data) && data[i+1] != '\n' {
				i++
			}
			continue
		}

		// Block comment: drop everything between the markers, keep any
		// newlines it spans
		if char == '/' && i+1 < len(data) && data[i+1] == '*' {
			i += 2
			for i < len(data) {
				if data[i] == '\n' {
					result = append(result, '\n')
				}
				if data[i] == '*' && i+1 < len(data) && data[i+1] == '/' {
					i++
					break
				}
				i++
			}
			continue
		}

		result = append(result, char)
	}

	return string(result)
}
