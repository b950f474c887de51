/* Package linewrap translates line-oriented markdown-ish text into HTML.

Every line is classified by its leading character and wrapped in a
container: lines starting with a "# " marker become level one headings,
everything else becomes paragraph content. Container state is carried from
line to line in a State value, so a translation pass is strictly sequential.

No nesting or inline formatting is recognized, and content is passed through
verbatim (no escaping).
*/
package linewrap

// Kind is the structural classification of a line.
type Kind int

const (
	// Body lines become paragraph content.
	Body Kind = iota
	// Heading lines start with the heading marker.
	Heading
)

func (k Kind) String() string {
	switch k {
	case Body:
		return "body"
	case Heading:
		return "heading"
	}
	return "invalid"
}

// HeadingMarker is the leading byte that classifies a line as a Heading.
const HeadingMarker = '#'

// Output fragments emitted around container content.
const (
	ParagraphOpen  = "<p>"
	ParagraphClose = "</p>\n"
	HeadingOpen    = "\n\n<h1>"
	HeadingClose   = "</h1>\n"

	// emptyParagraph is the fragment of a body line with no content; it is
	// never emitted.
	emptyParagraph = ParagraphOpen + ParagraphClose
)

// Classify returns Heading if the line starts with HeadingMarker, Body
// otherwise (including the empty line).
func Classify(line string) Kind {
	if len(line) > 0 && line[0] == HeadingMarker {
		return Heading
	}
	return Body
}

// HeadingText returns the content of a heading line: everything after the
// marker and its single following space. It returns false if the line does
// not start with a well formed marker, e.g. "#", "#title" or "## sub".
func HeadingText(line string) (string, bool) {
	if len(line) < 2 || line[0] != HeadingMarker || line[1] != ' ' {
		return "", false
	}
	return line[2:], true
}

// Resolve returns the kind a line is wrapped as, along with its container
// content. Unlike Classify, a malformed heading marker resolves to Body.
func Resolve(line string) (Kind, string) {
	if Classify(line) == Heading {
		if text, ok := HeadingText(line); ok {
			return Heading, text
		}
	}
	return Body, line
}
