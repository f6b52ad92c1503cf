package skillsync

import "context"

// Fetcher retrieves the raw text of an upstream document.
type Fetcher interface {
	// Fetch returns the body of url. A non-2xx response is an error.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (string, error)

	// Close releases resources held by the fetcher.
	Close() error
}
