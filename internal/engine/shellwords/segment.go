package shellwords

import (
	"errors"
	"fmt"
	"regexp"
)

// Segment is one command within a pipeline or command sequence: the leading
// command name and its remaining argument tokens.
type Segment struct {
	Command string
	Args    []string
}

// ErrDanglingOperator is returned when a pipeline or sequencing operator has
// no command to apply to.
var ErrDanglingOperator = errors.New("dangling operator")

// operators are segment separators. They are only recognized as standalone
// tokens; an operator character embedded in a larger word is plain content.
var operators = map[string]bool{
	"|":  true,
	"||": true,
	"&&": true,
	";":  true,
	"&":  true,
}

// precommands are wrapper words that do not count as a segment's command when
// they lead it. Mid-segment they are ordinary arguments.
var precommands = map[string]bool{
	"nocorrect": true,
	"noglob":    true,
	"builtin":   true,
	"command":   true,
	"time":      true,
	"nice":      true,
	"nohup":     true,
	"sudo":      true,
	"env":       true,
}

// assignmentRe matches a leading NAME=value environment assignment.
var assignmentRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*=`)

// IsOperator reports whether tok is a pipeline/sequencing separator token.
func IsOperator(tok string) bool {
	return operators[tok]
}

// IsSkippable reports whether tok is a precommand or a NAME=value assignment,
// i.e. a token skipped while identifying a segment's real command.
func IsSkippable(tok string) bool {
	return precommands[tok] || assignmentRe.MatchString(tok)
}

// Segments groups tokens into pipeline segments. A trailing empty segment
// (operator at end of line) is silently dropped; any other segment with no
// command left after skipping leading precommands and assignments fails the
// whole line with ErrDanglingOperator.
func Segments(tokens []string) ([]Segment, error) {
	var segs []Segment
	start := 0
	for i := 0; i <= len(tokens); i++ {
		atEnd := i == len(tokens)
		if !atEnd && !operators[tokens[i]] {
			continue
		}
		raw := tokens[start:i]
		if atEnd && len(raw) == 0 {
			break
		}
		seg, err := buildSegment(raw)
		if err != nil {
			return nil, err
		}
		segs = append(segs, seg)
		start = i + 1
	}
	return segs, nil
}

// buildSegment strips leading skippable tokens and forms a Segment. The skip
// applies only while at the front: once a real command token is seen, later
// tokens matching the skip patterns are kept verbatim as arguments.
func buildSegment(raw []string) (Segment, error) {
	i := 0
	for i < len(raw) && IsSkippable(raw[i]) {
		i++
	}
	if i == len(raw) {
		return Segment{}, fmt.Errorf("%w: no command in segment", ErrDanglingOperator)
	}
	return Segment{Command: raw[i], Args: raw[i+1:]}, nil
}
