// Package shellwords implements shell-style word splitting and pipeline
// segmentation for command lines. It honors single quotes, double quotes and
// backslash escapes, but performs no expansion: variable references and
// command substitutions are carried through as literal token content.
package shellwords

import (
	"strings"
	"unicode"
)

// quote states for the splitter.
const (
	stateNone = iota
	stateSingle
	stateDouble
)

// Split breaks a command line into shell words. Whitespace separates words
// unless quoted or escaped; quote characters are consumed, their content kept.
// An unterminated quote is tolerated: the remainder of the line becomes part
// of the current word. Empty or blank input yields no words.
func Split(line string) []string {
	var (
		words   []string
		cur     strings.Builder
		inWord  bool
		state   = stateNone
		escaped bool
	)

	flush := func() {
		if inWord {
			words = append(words, cur.String())
			cur.Reset()
			inWord = false
		}
	}

	for _, r := range line {
		switch state {
		case stateNone:
			if escaped {
				cur.WriteRune(r)
				inWord = true
				escaped = false
				continue
			}
			switch {
			case r == '\\':
				escaped = true
				inWord = true
			case r == '\'':
				state = stateSingle
				inWord = true
			case r == '"':
				state = stateDouble
				inWord = true
			case unicode.IsSpace(r):
				flush()
			default:
				cur.WriteRune(r)
				inWord = true
			}
		case stateSingle:
			if r == '\'' {
				state = stateNone
			} else {
				cur.WriteRune(r)
			}
		case stateDouble:
			if escaped {
				// Inside double quotes, backslash only escapes the
				// characters that are special there.
				if r != '"' && r != '\\' && r != '$' && r != '`' {
					cur.WriteRune('\\')
				}
				cur.WriteRune(r)
				escaped = false
				continue
			}
			switch r {
			case '\\':
				escaped = true
			case '"':
				state = stateNone
			default:
				cur.WriteRune(r)
			}
		}
	}

	// A trailing backslash outside quotes is kept literally.
	if escaped && state != stateSingle {
		cur.WriteRune('\\')
		inWord = true
	}
	flush()

	return words
}
