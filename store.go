package skillsync

import "context"

// Store reads and writes destination documents.
type Store interface {
	// Read returns the content of the document at path.
	// A missing document is not an error: exists is false.
	Read(ctx context.Context, path string) (content string, exists bool, err error)

	// Write replaces the document at path with content, creating parent
	// directories as needed.
	Write(ctx context.Context, path string, content string) error
}
