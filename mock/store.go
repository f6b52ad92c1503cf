package mock

import (
	"context"

	"github.com/fwojciec/skillsync"
)

var _ skillsync.Store = (*Store)(nil)

// Store is a mock implementation of skillsync.Store.
type Store struct {
	ReadFn  func(ctx context.Context, path string) (string, bool, error)
	WriteFn func(ctx context.Context, path string, content string) error
}

func (s *Store) Read(ctx context.Context, path string) (string, bool, error) {
	return s.ReadFn(ctx, path)
}

func (s *Store) Write(ctx context.Context, path string, content string) error {
	return s.WriteFn(ctx, path, content)
}
