package wrapio

import (
	"bytes"
	"io"
)

// FragmentBuffer collects output fragments in memory, passing whole lines
// through to To as they complete. Example use:
//
// 	var buf FragmentBuffer
// 	buf.To = os.Stdout
// 	for _, frag := range frags {
// 		buf.WriteString(frag)
// 		if err := buf.FlushLines(); err != nil {
// 			return err
// 		}
// 	}
// 	return buf.Flush()
//
// Fragments do not align with output lines: a heading fragment starts with
// blank lines, and under the span policy a paragraph is spread over several
// fragments. Only complete lines are passed through before the final Flush.
type FragmentBuffer struct {
	To io.Writer
	bytes.Buffer
}

// Flush writes all buffered bytes to To.
// Should be called after the last fragment has been written.
func (buf *FragmentBuffer) Flush() error {
	_, err := buf.WriteTo(buf.To)
	return err
}

// FlushLines writes buffered bytes through the last newline to To, retaining
// any partial final line.
func (buf *FragmentBuffer) FlushLines() error {
	b := buf.Bytes()
	if i := bytes.LastIndexByte(b, '\n'); i >= 0 {
		n, err := buf.To.Write(b[:i+1])
		buf.Next(n)
		return err
	}
	return nil
}

// ErrWriter wraps a writer, tracking its first error and refusing any
// further writes after one.
type ErrWriter struct {
	io.Writer
	Err error
}

// Write passes through to Writer if Err is nil, retaining any returned error.
func (ew *ErrWriter) Write(p []byte) (n int, err error) {
	if ew.Err == nil {
		n, ew.Err = ew.Writer.Write(p)
	}
	return n, ew.Err
}

// WriteFragments calls next around an internal FragmentBuffer until it
// returns false, flushing complete lines after every call.
// Iteration stops early if a write error is encountered.
func WriteFragments(to io.Writer, next func(w io.Writer) bool) error {
	ew, _ := to.(*ErrWriter)
	if ew == nil {
		ew = &ErrWriter{Writer: to}
	}
	var buf FragmentBuffer
	buf.To = ew
	for ew.Err == nil && next(&buf) {
		buf.FlushLines()
	}
	buf.Flush()
	return ew.Err
}
