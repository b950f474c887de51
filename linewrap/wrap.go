package linewrap

import "strings"

// Policy determines how long containers stay open.
type Policy int

const (
	// PerLine opens and closes a container around every line; containers
	// never span line boundaries.
	PerLine Policy = iota

	// Span keeps a paragraph open across consecutive body lines, closing
	// it on a heading, a blank line, or at the end of the document.
	Span
)

func (p Policy) String() string {
	switch p {
	case PerLine:
		return "per-line"
	case Span:
		return "span"
	}
	return "invalid"
}

// ParsePolicy parses a policy name as returned by Policy.String.
func ParsePolicy(s string) (Policy, bool) {
	switch s {
	case "per-line", "perline", "":
		return PerLine, true
	case "span":
		return Span, true
	}
	return PerLine, false
}

// State tracks which containers are open between lines of a single pass.
// The zero value is the start of a pass.
type State struct {
	ParagraphOpen bool
	HeadingOpen   bool
}

// Wrap translates one line under the PerLine policy, returning its output
// fragment and the state for the next line.
// The returned bool is false if the fragment is suppressed, which only
// happens for an empty paragraph.
func Wrap(line string, st State) (string, bool, State) {
	var buf strings.Builder
	st.wrap(&buf, line, PerLine)
	out := buf.String()
	return out, !suppressed(out), st
}

func suppressed(out string) bool {
	return out == "" || out == emptyParagraph
}

func (st *State) wrap(buf *strings.Builder, line string, policy Policy) {
	switch kind, text := Resolve(line); kind {
	case Heading:
		st.closeParagraph(buf)
		st.closeHeading(buf)
		buf.WriteString(HeadingOpen)
		buf.WriteString(text)
		st.HeadingOpen = true
		if policy == Span {
			st.closeHeading(buf)
		}

	case Body:
		if policy == Span {
			st.closeHeading(buf)
			if line == "" {
				st.closeParagraph(buf)
				return
			}
			if st.ParagraphOpen {
				buf.WriteByte('\n')
			}
		}
		if !st.ParagraphOpen {
			buf.WriteString(ParagraphOpen)
			st.ParagraphOpen = true
		}
		buf.WriteString(line)
	}

	if policy == PerLine {
		st.closeAll(buf)
	}
}

func (st *State) closeAll(buf *strings.Builder) {
	st.closeParagraph(buf)
	st.closeHeading(buf)
}

func (st *State) closeParagraph(buf *strings.Builder) {
	if st.ParagraphOpen {
		buf.WriteString(ParagraphClose)
		st.ParagraphOpen = false
	}
}

func (st *State) closeHeading(buf *strings.Builder) {
	if st.HeadingOpen {
		buf.WriteString(HeadingClose)
		st.HeadingOpen = false
	}
}

// Wrapper drives a single translation pass, threading State between calls.
// The zero value is ready to use with the PerLine policy.
type Wrapper struct {
	Policy Policy
	State
}

// Wrap translates the next line of the pass.
func (w *Wrapper) Wrap(line string) (string, bool) {
	var buf strings.Builder
	w.State.wrap(&buf, line, w.Policy)
	out := buf.String()
	return out, !suppressed(out)
}

// Finish closes any containers left open at the end of the document,
// leaving the receiver ready for a new pass.
func (w *Wrapper) Finish() (string, bool) {
	var buf strings.Builder
	w.State.closeAll(&buf)
	out := buf.String()
	return out, !suppressed(out)
}

// Translate runs a complete pass over lines, returning all non-suppressed
// fragments in order.
func Translate(lines []string, policy Policy) []string {
	var (
		w   = Wrapper{Policy: policy}
		out []string
	)
	for _, line := range lines {
		if frag, ok := w.Wrap(line); ok {
			out = append(out, frag)
		}
	}
	if frag, ok := w.Finish(); ok {
		out = append(out, frag)
	}
	return out
}
