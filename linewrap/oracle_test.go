package linewrap

import (
	"strings"
	"testing"

	"github.com/russross/blackfriday"
	"github.com/stretchr/testify/assert"
)

// container is a (tag, text) pair, either read back from wrapped output or
// from a blackfriday AST.
type container struct {
	tag  string
	text string
}

func wrappedContainers(html string) (cs []container) {
	for len(html) > 0 {
		html = strings.TrimLeft(html, "\n")
		var openTag, closeTag, tag string
		switch {
		case strings.HasPrefix(html, "<h1>"):
			openTag, closeTag, tag = "<h1>", HeadingClose, "h1"
		case strings.HasPrefix(html, ParagraphOpen):
			openTag, closeTag, tag = ParagraphOpen, ParagraphClose, "p"
		default:
			return cs
		}
		html = html[len(openTag):]
		i := strings.Index(html, closeTag)
		if i < 0 {
			return cs
		}
		cs = append(cs, container{tag, html[:i]})
		html = html[i+len(closeTag):]
	}
	return cs
}

func blackfridayContainers(src string) (cs []container) {
	doc := blackfriday.New().Parse([]byte(src))
	doc.Walk(func(node *blackfriday.Node, entering bool) blackfriday.WalkStatus {
		if !entering {
			return blackfriday.GoToNext
		}
		switch node.Type {
		case blackfriday.Heading:
			cs = append(cs, container{"h1", literalText(node)})
			return blackfriday.SkipChildren
		case blackfriday.Paragraph:
			cs = append(cs, container{"p", literalText(node)})
			return blackfriday.SkipChildren
		}
		return blackfriday.GoToNext
	})
	return cs
}

func literalText(node *blackfriday.Node) string {
	var sb strings.Builder
	node.Walk(func(n *blackfriday.Node, entering bool) blackfriday.WalkStatus {
		if entering && n.Type == blackfriday.Text {
			sb.Write(n.Literal)
		}
		return blackfriday.GoToNext
	})
	return sb.String()
}

func TestTranslate_agreesWithMarkdown(t *testing.T) {
	for _, tc := range []struct {
		name string
		src  string
	}{
		{"heading", "# Hello\n"},
		{"paragraph", "Hello world\n"},
		{"heading and paragraph", "# Title\n\nSome text here\n"},
		{"mixed", "Intro line\n\n# First\n\nbody one\n\nbody two\n\n# Second\n\nlast words\n"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			expected := blackfridayContainers(tc.src)
			lines := strings.Split(strings.TrimSuffix(tc.src, "\n"), "\n")
			for _, policy := range []Policy{PerLine, Span} {
				html := strings.Join(Translate(lines, policy), "")
				assert.Equal(t, expected, wrappedContainers(html),
					"expected %v containers to match markdown structure", policy)
			}
		})
	}
}
