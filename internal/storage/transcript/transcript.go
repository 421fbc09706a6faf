package transcript

import "strings"

// Transcript is the ordered record of everything a session printed and read.
type Transcript struct {
	lines []string
}

func New() *Transcript {
	return &Transcript{}
}

// Append records text line by line. A trailing newline does not produce an
// empty line; blank lines inside text are kept.
func (t *Transcript) Append(text string) {
	text = strings.TrimSuffix(text, "\n")
	t.lines = append(t.lines, strings.Split(text, "\n")...)
}

func (t *Transcript) Lines() []string {
	out := make([]string, len(t.lines))
	copy(out, t.lines)
	return out
}

func (t *Transcript) Len() int {
	return len(t.lines)
}
