package main

import (
	"fmt"

	"github.com/fwojciec/skillsync"
	"github.com/fwojciec/skillsync/update"
)

// Run executes the sync command.
func (c *SyncCmd) Run(deps *Dependencies) error {
	targets, err := selectTargets(deps.Targets, c.Target)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", skillsync.ErrorMessage(err))
		return err
	}

	u := *deps.Updater
	u.Options = update.Options{Check: c.Check, DryRun: c.DryRun}
	u.Concurrency = c.Concurrency

	results, err := u.UpdateAll(deps.Ctx, targets)

	var stale int
	for _, r := range results {
		if r == nil {
			continue
		}
		if r.Status == update.StatusStale {
			stale++
		}
		if c.DryRun {
			fmt.Fprintf(deps.Stdout, "==> %s (%s) <==\n%s\n", r.Path, r.Status, r.Content)
			continue
		}
		fmt.Fprintf(deps.Stdout, "%s: %s %s (%d bytes, %s)\n", r.Target, r.Status, r.Path, r.Bytes, hashLabel(r))
	}

	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}

	if stale > 0 {
		return skillsync.Errorf(skillsync.ECONFLICT, "%d of %d targets out of date", stale, len(results))
	}

	if !c.Check && !c.DryRun {
		fmt.Fprintln(deps.Stdout, "Done.")
	}
	return nil
}

// hashLabel shows the content hash, preceded by the old one when it changed.
func hashLabel(r *update.Result) string {
	if r.PreviousHash == "" || r.PreviousHash == r.Hash {
		return "xxh64 " + r.Hash
	}
	return "xxh64 " + r.PreviousHash + " -> " + r.Hash
}
