package main

import (
	"context"
	"io"
	"time"

	"github.com/fwojciec/skillsync"
	"github.com/fwojciec/skillsync/update"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	Targets []skillsync.Target
	Updater *update.Updater
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config    string        `short:"c" type:"path" env:"SKILLSYNC_CONFIG" help:"YAML file listing targets (default: the just README target)"`
	Dir       string        `short:"C" type:"path" default:"." help:"Base directory for relative destinations"`
	Timeout   time.Duration `default:"10s" help:"Fetch timeout"`
	RateLimit float64       `name:"rate-limit" default:"1" help:"Requests per second per host (0 disables)"`
	Verbose   bool          `short:"v" help:"Enable debug logging"`

	Sync     SyncCmd     `cmd:"" default:"withargs" help:"Fetch upstream READMEs and splice the filtered sections into destinations"`
	Sections SectionsCmd `cmd:"" help:"Show which upstream sections are kept or dropped"`
}

// SyncCmd is the "sync" subcommand.
type SyncCmd struct {
	Target      []string `short:"t" name:"target" help:"Only sync the named target (repeatable)"`
	Check       bool     `help:"Exit with an error if any destination is out of date, without writing"`
	DryRun      bool     `name:"dry-run" short:"n" help:"Print the resulting documents instead of writing them"`
	Concurrency int      `short:"j" default:"1" help:"Targets synced at once"`
}

// SectionsCmd is the "sections" subcommand.
type SectionsCmd struct {
	Target []string `short:"t" name:"target" help:"Only show the named target (repeatable)"`
}

// selectTargets returns the targets named in names, or all targets when
// names is empty.
func selectTargets(targets []skillsync.Target, names []string) ([]skillsync.Target, error) {
	if len(names) == 0 {
		return targets, nil
	}
	selected := make([]skillsync.Target, 0, len(names))
	for _, name := range names {
		t, err := skillsync.FindTarget(targets, name)
		if err != nil {
			return nil, err
		}
		selected = append(selected, *t)
	}
	return selected, nil
}
