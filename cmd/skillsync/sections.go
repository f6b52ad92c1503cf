package main

import (
	"fmt"

	"github.com/fwojciec/skillsync"
)

// Run executes the sections command.
func (c *SectionsCmd) Run(deps *Dependencies) error {
	targets, err := selectTargets(deps.Targets, c.Target)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", skillsync.ErrorMessage(err))
		return err
	}

	for i, t := range targets {
		if err := t.Validate(); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", skillsync.ErrorMessage(err))
			return err
		}

		_, decisions, err := deps.Updater.Build(deps.Ctx, t)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %v\n", err)
			return err
		}

		if i > 0 {
			fmt.Fprintln(deps.Stdout)
		}
		fmt.Fprintf(deps.Stdout, "%s (%s)\n", t.Name, t.URL)
		if len(decisions) == 0 {
			fmt.Fprintln(deps.Stdout, "No headings found.")
			continue
		}
		fmt.Fprintln(deps.Stdout, skillsync.FormatSections(decisions))
	}

	return nil
}
