package skillsync

import "strings"

// NodeKind identifies the kind of a block-level node.
type NodeKind int

// NodeKind constants.
const (
	KindOther NodeKind = iota
	KindHeading
	KindHTML
)

// String returns the name of the kind.
func (k NodeKind) String() string {
	switch k {
	case KindHeading:
		return "heading"
	case KindHTML:
		return "html"
	default:
		return "other"
	}
}

// Node is a block-level piece of a Markdown document.
type Node struct {
	Kind NodeKind

	// Level is the heading level (1-6). Zero for non-heading nodes.
	Level int

	// Text is the plain text of a heading, with inline markup removed.
	Text string

	// Raw holds the exact source bytes of the node, including its line
	// terminator. Joining Raw for every node reproduces the source.
	Raw string
}

// boilerplateMarkers are matched case-insensitively.
var boilerplateMarkers = []string{
	"table of contents",
	"img.shields.io",
}

// HasBoilerplate reports whether s mentions a table of contents or a shield
// badge.
func HasBoilerplate(s string) bool {
	s = strings.ToLower(s)
	for _, m := range boilerplateMarkers {
		if strings.Contains(s, m) {
			return true
		}
	}
	return false
}

// IsBoilerplate reports whether the node is an HTML block that is always
// dropped: table-of-contents blocks and shield badges.
func (n Node) IsBoilerplate() bool {
	return n.Kind == KindHTML && HasBoilerplate(n.Raw)
}

// Document is an ordered sequence of block-level nodes.
type Document struct {
	Nodes []Node
}

// Format names a Markdown codec.
type Format string

// Format constants.
const (
	FormatGoldmark Format = "goldmark"
	FormatLines    Format = "lines"
)

// Codec turns Markdown text into a Document and back.
type Codec interface {
	// Parse splits text into block-level nodes.
	Parse(text string) (*Document, error)

	// Render serializes the nodes of doc back to Markdown.
	// Nodes are emitted from their source bytes, so untouched syntax
	// round-trips unchanged.
	Render(doc *Document) (string, error)
}

// JoinNodes concatenates the raw source of nodes. Leading blank lines and
// trailing whitespace are dropped and non-empty output ends with exactly
// one newline.
func JoinNodes(nodes []Node) string {
	var b strings.Builder
	for _, n := range nodes {
		b.WriteString(n.Raw)
	}
	out := trimLeadingBlankLines(b.String())
	out = strings.TrimRight(out, " \t\r\n")
	if out == "" {
		return ""
	}
	return out + "\n"
}

// trimLeadingBlankLines removes whole lines that contain only whitespace
// from the start of s. Indentation of the first non-blank line is kept.
func trimLeadingBlankLines(s string) string {
	for {
		i := strings.IndexByte(s, '\n')
		if i < 0 || strings.TrimSpace(s[:i]) != "" {
			return s
		}
		s = s[i+1:]
	}
}
