package main_test

import (
	"bytes"
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/fwojciec/skillsync"
	main "github.com/fwojciec/skillsync/cmd/skillsync"
	"github.com/fwojciec/skillsync/goldmark"
	"github.com/fwojciec/skillsync/mock"
	"github.com/fwojciec/skillsync/update"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDeps(stdout, stderr *bytes.Buffer, store *mock.Store) *main.Dependencies {
	return &main.Dependencies{
		Ctx:     context.Background(),
		Stdout:  stdout,
		Stderr:  stderr,
		Targets: []skillsync.Target{skillsync.DefaultTarget()},
		Updater: &update.Updater{
			Fetcher: mockFetcher(upstream),
			Store:   store,
			Codecs: map[skillsync.Format]skillsync.Codec{
				skillsync.FormatGoldmark: goldmark.NewCodec(),
			},
		},
	}
}

func TestSyncCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("dry run prints document without writing", func(t *testing.T) {
		t.Parallel()

		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		store := &mock.Store{
			ReadFn: func(ctx context.Context, path string) (string, bool, error) {
				return "# Mine\n\n" + skillsync.DefaultMarker + "\n\nold\n", true, nil
			},
			WriteFn: func(ctx context.Context, path string, content string) error {
				t.Fatal("dry run must not write")
				return nil
			},
		}

		cmd := &main.SyncCmd{DryRun: true}
		err := cmd.Run(newDeps(stdout, stderr, store))

		require.NoError(t, err)
		output := stdout.String()
		assert.Contains(t, output, "==> skills/justfile/SKILL.md (updated) <==")
		assert.Contains(t, output, "# Mine\n\n"+skillsync.DefaultMarker+"\n\n# just\n\n## Quick Start")
		assert.NotContains(t, output, "Done.")
	})

	t.Run("writes and reports status", func(t *testing.T) {
		t.Parallel()

		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		var written string
		store := &mock.Store{
			ReadFn: func(ctx context.Context, path string) (string, bool, error) {
				return "", false, nil
			},
			WriteFn: func(ctx context.Context, path string, content string) error {
				written = content
				return nil
			},
		}

		cmd := &main.SyncCmd{Concurrency: 1}
		err := cmd.Run(newDeps(stdout, stderr, store))

		require.NoError(t, err)
		assert.Contains(t, written, "## Quick Start")
		assert.NotContains(t, written, "cargo install just")
		assert.Contains(t, stdout.String(),
			"justfile: created skills/justfile/SKILL.md ("+strconv.Itoa(len(written))+" bytes, xxh64 "+update.ComputeHash(written)+")")
		assert.Contains(t, stdout.String(), "Done.")
	})

	t.Run("shows old and new hash on update", func(t *testing.T) {
		t.Parallel()

		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		old := "# Mine\n\n" + skillsync.DefaultMarker + "\n\nold\n"
		var written string
		store := &mock.Store{
			ReadFn: func(ctx context.Context, path string) (string, bool, error) {
				return old, true, nil
			},
			WriteFn: func(ctx context.Context, path string, content string) error {
				written = content
				return nil
			},
		}

		cmd := &main.SyncCmd{}
		err := cmd.Run(newDeps(stdout, stderr, store))

		require.NoError(t, err)
		assert.Contains(t, stdout.String(),
			"xxh64 "+update.ComputeHash(old)+" -> "+update.ComputeHash(written)+")")
	})

	t.Run("reports finished targets when another fails", func(t *testing.T) {
		t.Parallel()

		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		store := &mock.Store{
			ReadFn: func(ctx context.Context, path string) (string, bool, error) {
				return "", false, nil
			},
			WriteFn: func(ctx context.Context, path string, content string) error {
				return nil
			},
		}
		broken := skillsync.DefaultTarget()
		broken.Name = "broken"
		broken.URL = "https://example.com/broken.md"
		broken.Destination = "skills/broken/SKILL.md"

		deps := newDeps(stdout, stderr, store)
		deps.Targets = append(deps.Targets, broken)
		deps.Updater.Fetcher = &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				if url == broken.URL {
					return "", errors.New("HTTP 502 for " + url)
				}
				return upstream, nil
			},
		}

		cmd := &main.SyncCmd{Concurrency: 1}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Contains(t, stdout.String(), "justfile: created skills/justfile/SKILL.md")
		assert.NotContains(t, stdout.String(), "broken:")
		assert.NotContains(t, stdout.String(), "Done.")
		assert.Contains(t, stderr.String(), "target broken: fetch https://example.com/broken.md: HTTP 502")
	})

	t.Run("rejects unknown target", func(t *testing.T) {
		t.Parallel()

		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}

		cmd := &main.SyncCmd{Target: []string{"nope"}}
		err := cmd.Run(newDeps(stdout, stderr, &mock.Store{}))

		require.Error(t, err)
		assert.Contains(t, stderr.String(), `target "nope" not found`)
	})
}
