package wrapio

import (
	"bufio"
	"fmt"
	"io"

	"github.com/jcorbin/mdwrap/linewrap"
)

// DefaultMaxLine is the longest input line a Pass accepts by default.
const DefaultMaxLine = 1 << 20

// LineScanner returns a scanner over the lines of r, without their "\n" or
// "\r\n" terminators. Lines longer than maxLine (DefaultMaxLine if not
// positive) fail the scan with bufio.ErrTooLong.
func LineScanner(r io.Reader, maxLine int) *bufio.Scanner {
	if maxLine <= 0 {
		maxLine = DefaultMaxLine
	}
	initBuf := 64 * 1024
	if initBuf > maxLine {
		initBuf = maxLine
	}
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, initBuf), maxLine)
	sc.Split(bufio.ScanLines)
	return sc
}

// Stats counts what a Pass has seen and produced.
type Stats struct {
	Lines      int // input lines read
	Fragments  int // output fragments written
	Suppressed int // lines that produced no fragment
	Headings   int // heading containers opened
	Paragraphs int // paragraph containers opened
}

// Pass translates a whole document from a reader into a writer, one line at
// a time, in input order.
type Pass struct {
	Policy  linewrap.Policy
	MaxLine int // longest accepted line, DefaultMaxLine if zero
	Stats
}

// Run reads lines from r until EOF, writing every non-suppressed fragment to
// w. Any read error, including a line longer than MaxLine, takes precedence
// over a write error.
func (p *Pass) Run(r io.Reader, w io.Writer) error {
	sc := LineScanner(r, p.MaxLine)

	var (
		wrapper = linewrap.Wrapper{Policy: p.Policy}
		done    bool
	)
	werr := WriteFragments(w, func(out io.Writer) bool {
		if done {
			return false
		}

		if !sc.Scan() {
			done = true
			if frag, ok := wrapper.Finish(); ok {
				p.Fragments++
				io.WriteString(out, frag)
			}
			return true
		}

		line := sc.Text()
		p.Lines++
		wasOpen := wrapper.ParagraphOpen
		if kind, content := linewrap.Resolve(line); kind == linewrap.Heading {
			p.Headings++
		} else if content != "" && !wasOpen {
			p.Paragraphs++
		}

		if frag, ok := wrapper.Wrap(line); ok {
			p.Fragments++
			io.WriteString(out, frag)
		} else {
			p.Suppressed++
		}
		return true
	})

	if err := sc.Err(); err != nil {
		return fmt.Errorf("read line %v: %w", p.Lines+1, err)
	}
	return werr
}
