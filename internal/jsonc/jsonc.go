// Package jsonc strips comments from JSON-with-comments content so that
// annotated configuration files can be fed to a strict JSON parser.
package jsonc

import (
	"errors"

	"github.com/conn-castle/pack-release/internal/messages"
)

// Strip blanks // and /* */ comments in JSONC content.
// String literals are scanned escape-aware so comment markers inside them
// survive. Comment bytes are replaced with spaces and newlines are kept, so
// the output has the same length as the input and every byte offset or line
// number reported by a downstream parser maps back to the original content.
// Args: content is the raw JSONC text.
// Returns: the content with comments blanked out, or an error when a string
// or block comment is left unterminated.
func Strip(content []byte) ([]byte, error) {
	out := make([]byte, len(content))
	copy(out, content)
	inString := false
	inLineComment := false
	inBlockComment := false
	escaped := false

	for i := 0; i < len(content); i++ {
		ch := content[i]
		next := byte(0)
		if i+1 < len(content) {
			next = content[i+1]
		}

		if inString {
			if escaped {
				escaped = false
				continue
			}
			if ch == '\\' {
				escaped = true
				continue
			}
			if ch == '"' {
				inString = false
			}
			continue
		}

		if inLineComment {
			if ch == '\n' {
				inLineComment = false
				continue
			}
			out[i] = ' '
			continue
		}

		if inBlockComment {
			if ch == '\n' {
				continue
			}
			if ch == '*' && next == '/' {
				inBlockComment = false
				out[i] = ' '
				out[i+1] = ' '
				i++
				continue
			}
			out[i] = ' '
			continue
		}

		if ch == '"' {
			inString = true
			continue
		}
		if ch == '/' && next == '/' {
			inLineComment = true
			out[i] = ' '
			out[i+1] = ' '
			i++
			continue
		}
		if ch == '/' && next == '*' {
			inBlockComment = true
			out[i] = ' '
			out[i+1] = ' '
			i++
			continue
		}
	}

	if inString {
		return nil, errors.New(messages.JSONCUnterminatedString)
	}
	if inBlockComment {
		return nil, errors.New(messages.JSONCUnterminatedComment)
	}
	return out, nil
}
