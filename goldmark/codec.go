// Package goldmark provides a goldmark-based implementation of skillsync.Codec.
//
// Documents are split along the top-level blocks goldmark finds. Headings
// and HTML blocks become their own nodes; the source between them is kept
// as opaque chunks. Nothing is re-rendered: every node carries its exact
// source bytes.
package goldmark

import (
	"bytes"
	"regexp"
	"strings"

	"github.com/fwojciec/skillsync"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// Ensure Codec implements skillsync.Codec at compile time.
var _ skillsync.Codec = (*Codec)(nil)

// atxHeadingRe matches the opening of an ATX heading line.
var atxHeadingRe = regexp.MustCompile(`^ {0,3}#{1,6}(?:[ \t]|$)`)

// Codec parses Markdown with goldmark.
type Codec struct {
	md goldmark.Markdown
}

// NewCodec creates a new Codec with GitHub Flavored Markdown enabled.
func NewCodec() *Codec {
	return &Codec{
		md: goldmark.New(goldmark.WithExtensions(extension.GFM)),
	}
}

// Parse splits text into block-level nodes.
func (c *Codec) Parse(s string) (*skillsync.Document, error) {
	src := []byte(s)
	root := c.md.Parser().Parse(text.NewReader(src))

	doc := &skillsync.Document{}
	cursor := 0
	for n := root.FirstChild(); n != nil; n = n.NextSibling() {
		node, start, end, ok := block(n, src)
		if !ok || start < cursor || end <= start {
			continue
		}
		if start > cursor {
			doc.Nodes = append(doc.Nodes, skillsync.Node{
				Kind: skillsync.KindOther,
				Raw:  string(src[cursor:start]),
			})
		}
		node.Raw = string(src[start:end])
		doc.Nodes = append(doc.Nodes, node)
		cursor = end
	}
	if cursor < len(src) {
		doc.Nodes = append(doc.Nodes, skillsync.Node{
			Kind: skillsync.KindOther,
			Raw:  string(src[cursor:]),
		})
	}

	return doc, nil
}

// Render joins the source of the remaining nodes.
func (c *Codec) Render(doc *skillsync.Document) (string, error) {
	if doc == nil {
		return "", nil
	}
	return skillsync.JoinNodes(doc.Nodes), nil
}

// block returns the node for a top-level block and its source range.
// Only headings and HTML blocks are split out; ok is false for the rest.
func block(n ast.Node, src []byte) (node skillsync.Node, start, end int, ok bool) {
	switch b := n.(type) {
	case *ast.Heading:
		lines := b.Lines()
		if lines.Len() == 0 {
			return node, 0, 0, false
		}
		first, last := lines.At(0), lines.At(lines.Len()-1)
		start = lineStart(src, first.Start)
		end = lineEnd(src, last.Start, last.Stop)
		if !atxHeadingRe.Match(src[start:end]) {
			// Setext heading: the underline is the next line.
			end = lineEnd(src, end, end+1)
		}
		return skillsync.Node{
			Kind:  skillsync.KindHeading,
			Level: b.Level,
			Text:  headingText(b, src),
		}, start, end, true

	case *ast.HTMLBlock:
		lines := b.Lines()
		if lines.Len() == 0 {
			return node, 0, 0, false
		}
		first, last := lines.At(0), lines.At(lines.Len()-1)
		start = lineStart(src, first.Start)
		end = lineEnd(src, last.Start, last.Stop)
		if b.HasClosure() {
			end = max(end, lineEnd(src, b.ClosureLine.Start, b.ClosureLine.Stop))
		}
		return skillsync.Node{Kind: skillsync.KindHTML}, start, end, true
	}

	return node, 0, 0, false
}

// lineStart returns the offset of the first byte of the line holding pos.
func lineStart(src []byte, pos int) int {
	pos = min(pos, len(src))
	return bytes.LastIndexByte(src[:pos], '\n') + 1
}

// lineEnd returns the offset just past the newline ending the line that
// holds the segment [start, stop). A segment may already include its
// newline.
func lineEnd(src []byte, start, stop int) int {
	pos := max(stop-1, start)
	if pos >= len(src) {
		return len(src)
	}
	if i := bytes.IndexByte(src[pos:], '\n'); i >= 0 {
		return pos + i + 1
	}
	return len(src)
}

// headingText collects the literal text of every inline node below a
// heading. Entity references and backslash escapes are decoded the way a
// renderer would; code spans are kept verbatim.
func headingText(n ast.Node, src []byte) string {
	var b strings.Builder
	_ = ast.Walk(n, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch t := n.(type) {
		case *ast.CodeSpan:
			for c := t.FirstChild(); c != nil; c = c.NextSibling() {
				if s, ok := c.(*ast.Text); ok {
					b.Write(s.Segment.Value(src))
				}
			}
			return ast.WalkSkipChildren, nil
		case *ast.Text:
			if t.IsRaw() {
				b.Write(t.Segment.Value(src))
			} else {
				b.Write(decode(t.Segment.Value(src)))
			}
			if t.SoftLineBreak() || t.HardLineBreak() {
				b.WriteByte(' ')
			}
		case *ast.String:
			if t.IsCode() || t.IsRaw() {
				b.Write(t.Value)
			} else {
				b.Write(decode(t.Value))
			}
		case *ast.AutoLink:
			b.Write(t.Label(src))
			return ast.WalkSkipChildren, nil
		case *ast.RawHTML:
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	return strings.TrimSpace(b.String())
}

// decode resolves backslash escapes and character references.
func decode(v []byte) []byte {
	v = util.UnescapePunctuations(v)
	v = util.ResolveNumericReferences(v)
	return util.ResolveEntityNames(v)
}
