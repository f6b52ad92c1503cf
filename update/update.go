// Package update orchestrates syncing skill documents with their upstream
// READMEs: fetch, filter by section, splice after the marker and write.
package update

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/skillsync"
	"golang.org/x/sync/errgroup"
)

// Status describes what happened to a destination.
type Status string

// Status constants.
const (
	StatusCreated   Status = "created"
	StatusUpdated   Status = "updated"
	StatusUnchanged Status = "unchanged"
	StatusStale     Status = "stale"
)

// Options controls how the updater treats destinations.
type Options struct {
	// Check compares without writing. Out-of-date destinations are
	// reported with StatusStale.
	Check bool

	// DryRun computes the new content without writing it.
	DryRun bool
}

// Result holds the outcome of syncing one target.
type Result struct {
	Target   string
	Path     string
	Status   Status
	Mode     skillsync.SpliceMode
	Sections []skillsync.SectionDecision
	Bytes    int
	Content  string

	// Hash identifies Content. PreviousHash identifies what the destination
	// held before the run and is empty when it did not exist.
	Hash         string
	PreviousHash string
}

// Updater syncs targets. Codecs maps each format to its codec.
type Updater struct {
	Fetcher skillsync.Fetcher
	Store   skillsync.Store
	Codecs  map[skillsync.Format]skillsync.Codec
	Logger  *slog.Logger
	Options Options

	// Concurrency limits how many targets UpdateAll processes at once.
	// Values below 1 mean one at a time.
	Concurrency int
}

// Build fetches the upstream document of t and returns the filtered
// Markdown along with the section decisions behind it.
func (u *Updater) Build(ctx context.Context, t skillsync.Target) (string, []skillsync.SectionDecision, error) {
	codec, ok := u.Codecs[t.Format]
	if !ok {
		return "", nil, skillsync.Errorf(skillsync.EINVALID, "target %q: no codec for format %q", t.Name, t.Format)
	}

	text, err := u.Fetcher.Fetch(ctx, t.URL)
	if err != nil {
		return "", nil, fmt.Errorf("fetch %s: %w", t.URL, err)
	}

	doc, err := codec.Parse(text)
	if err != nil {
		return "", nil, fmt.Errorf("parse %s: %w", t.URL, err)
	}

	filtered := skillsync.FilterSections(doc, t.Sections)
	content, err := codec.Render(filtered)
	if err != nil {
		return "", nil, fmt.Errorf("render %s: %w", t.URL, err)
	}

	return content, skillsync.PlanSections(doc, t.Sections), nil
}

// Update syncs a single target. The fetch happens before the destination is
// read, so a failed fetch never touches the file.
func (u *Updater) Update(ctx context.Context, t skillsync.Target) (*Result, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}

	content, sections, err := u.Build(ctx, t)
	if err != nil {
		return nil, err
	}

	existing, exists, err := u.Store.Read(ctx, t.Destination)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", t.Destination, err)
	}

	output, mode := skillsync.Splice(existing, exists, content, t.Marker, t.Title)
	if mode == skillsync.SpliceAppended {
		u.logger().Warn("marker not found, appending",
			"target", t.Name,
			"path", t.Destination,
		)
	}

	result := &Result{
		Target:   t.Name,
		Path:     t.Destination,
		Mode:     mode,
		Sections: sections,
		Bytes:    len(output),
		Content:  output,
		Hash:     ComputeHash(output),
	}
	if exists {
		result.PreviousHash = ComputeHash(existing)
	}

	switch {
	case result.PreviousHash == result.Hash:
		result.Status = StatusUnchanged
	case u.Options.Check:
		result.Status = StatusStale
	case !exists:
		result.Status = StatusCreated
	default:
		result.Status = StatusUpdated
	}

	u.logger().Debug("content",
		"target", t.Name,
		"path", t.Destination,
		"status", result.Status,
		"hash", result.Hash,
		"previous", result.PreviousHash,
	)

	if result.Status == StatusUnchanged || result.Status == StatusStale || u.Options.DryRun {
		return result, nil
	}

	if err := u.Store.Write(ctx, t.Destination, output); err != nil {
		return nil, fmt.Errorf("write %s: %w", t.Destination, err)
	}

	return result, nil
}

// UpdateAll syncs every target and returns results in target order.
// The first error cancels targets that have not started yet. Results of
// targets that finished are returned alongside the error; the others are nil.
func (u *Updater) UpdateAll(ctx context.Context, targets []skillsync.Target) ([]*Result, error) {
	if err := skillsync.ValidateTargets(targets); err != nil {
		return nil, err
	}

	concurrency := u.Concurrency
	if concurrency < 1 {
		concurrency = 1
	}

	results := make([]*Result, len(targets))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, t := range targets {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := u.Update(gctx, t)
			if err != nil {
				return fmt.Errorf("target %s: %w", t.Name, err)
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

func (u *Updater) logger() *slog.Logger {
	if u.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return u.Logger
}

// ComputeHash computes a hash of the content using xxhash.
func ComputeHash(content string) string {
	h := xxhash.Sum64String(content)
	return fmt.Sprintf("%x", h)
}
