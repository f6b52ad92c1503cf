// Package lines provides a line-based implementation of skillsync.Codec.
// It needs no Markdown grammar: every line is a node, lines starting with
// "#" are headings and lines starting with "<" are HTML. Any other line
// that mentions a table of contents or a shield badge is also treated as
// HTML, so badges written as Markdown images are dropped with the rest.
package lines

import (
	"strings"

	"github.com/fwojciec/skillsync"
)

// Ensure Codec implements skillsync.Codec at compile time.
var _ skillsync.Codec = (*Codec)(nil)

// Codec treats a document as an ordered sequence of lines.
type Codec struct{}

// NewCodec creates a new Codec.
func NewCodec() *Codec {
	return &Codec{}
}

// Parse returns one node per line. Each node keeps its line terminator.
func (c *Codec) Parse(text string) (*skillsync.Document, error) {
	doc := &skillsync.Document{}
	for text != "" {
		line := text
		if i := strings.IndexByte(text, '\n'); i >= 0 {
			line = text[:i+1]
		}
		text = text[len(line):]
		doc.Nodes = append(doc.Nodes, classify(line))
	}
	return doc, nil
}

// Render joins the lines of doc.
func (c *Codec) Render(doc *skillsync.Document) (string, error) {
	if doc == nil {
		return "", nil
	}
	return skillsync.JoinNodes(doc.Nodes), nil
}

func classify(raw string) skillsync.Node {
	line := strings.TrimRight(raw, "\r\n")

	if strings.HasPrefix(line, "#") {
		title := strings.TrimLeft(line, "#")
		return skillsync.Node{
			Kind:  skillsync.KindHeading,
			Level: len(line) - len(title),
			Text:  strings.TrimSpace(title),
			Raw:   raw,
		}
	}

	if strings.HasPrefix(strings.TrimSpace(line), "<") || skillsync.HasBoilerplate(line) {
		return skillsync.Node{Kind: skillsync.KindHTML, Raw: raw}
	}

	return skillsync.Node{Kind: skillsync.KindOther, Raw: raw}
}
