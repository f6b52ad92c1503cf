package mock

import "github.com/fwojciec/skillsync"

var _ skillsync.Codec = (*Codec)(nil)

// Codec is a mock implementation of skillsync.Codec.
type Codec struct {
	ParseFn  func(text string) (*skillsync.Document, error)
	RenderFn func(doc *skillsync.Document) (string, error)
}

func (c *Codec) Parse(text string) (*skillsync.Document, error) {
	return c.ParseFn(text)
}

func (c *Codec) Render(doc *skillsync.Document) (string, error) {
	return c.RenderFn(doc)
}
