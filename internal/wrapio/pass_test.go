package wrapio

import (
	"bufio"
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcorbin/mdwrap/linewrap"
)

func TestPass_Run(t *testing.T) {
	for _, tc := range []struct {
		name   string
		policy linewrap.Policy
		in     string
		out    string
		stats  Stats
	}{
		{
			name: "empty",
		},
		{
			name:  "heading",
			in:    "# Hello\n",
			out:   "\n\n<h1>Hello</h1>\n",
			stats: Stats{Lines: 1, Fragments: 1, Headings: 1},
		},
		{
			name:  "unterminated last line",
			in:    "Hello, world!",
			out:   "<p>Hello, world!</p>\n",
			stats: Stats{Lines: 1, Fragments: 1, Paragraphs: 1},
		},
		{
			name:  "crlf line endings",
			in:    "# A\r\nB\r\n\r\n",
			out:   "\n\n<h1>A</h1>\n<p>B</p>\n",
			stats: Stats{Lines: 3, Fragments: 2, Suppressed: 1, Headings: 1, Paragraphs: 1},
		},
		{
			name:  "per-line",
			in:    "# A\nb\nc\n\n#d\n",
			out:   "\n\n<h1>A</h1>\n<p>b</p>\n<p>c</p>\n<p>#d</p>\n",
			stats: Stats{Lines: 5, Fragments: 4, Suppressed: 1, Headings: 1, Paragraphs: 3},
		},
		{
			name:   "span",
			policy: linewrap.Span,
			in:     "# A\nb\nc\n\n#d\n",
			out:    "\n\n<h1>A</h1>\n<p>b\nc</p>\n<p>#d</p>\n",
			stats:  Stats{Lines: 5, Fragments: 6, Headings: 1, Paragraphs: 2},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			p := Pass{Policy: tc.policy}
			require.NoError(t, p.Run(strings.NewReader(tc.in), &out), "unexpected pass error")
			assert.Equal(t, tc.out, out.String(), "expected output")
			assert.Equal(t, tc.stats, p.Stats, "expected stats")
		})
	}
}

func TestPass_Run_longLine(t *testing.T) {
	var out bytes.Buffer
	p := Pass{MaxLine: 16}
	err := p.Run(strings.NewReader("short\n"+strings.Repeat("x", 32)+"\n"), &out)
	require.Error(t, err, "expected a read error")
	assert.True(t, errors.Is(err, bufio.ErrTooLong), "expected a too long error, got %v", err)
	assert.Contains(t, err.Error(), "line 2")
}

type failWriter struct{ n int }

var errFail = errors.New("disk full")

func (fw *failWriter) Write(p []byte) (int, error) {
	if fw.n--; fw.n < 0 {
		return 0, errFail
	}
	return len(p), nil
}

func TestPass_Run_writeError(t *testing.T) {
	p := Pass{}
	err := p.Run(strings.NewReader("a\nb\nc\nd\n"), &failWriter{n: 1})
	assert.True(t, errors.Is(err, errFail), "expected write error, got %v", err)
	assert.Less(t, p.Lines, 4, "expected the pass to stop early")
}

func TestLineScanner(t *testing.T) {
	sc := LineScanner(strings.NewReader("# A\r\nb\n\nlast"), 0)
	var lines []string
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	require.NoError(t, sc.Err())
	assert.Equal(t, []string{"# A", "b", "", "last"}, lines)

	sc = LineScanner(strings.NewReader("abcdefgh\n"), 4)
	assert.False(t, sc.Scan(), "expected no line past the limit")
	assert.Equal(t, bufio.ErrTooLong, sc.Err())
}
