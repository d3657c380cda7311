// Package sched runs the single cooperative control loop that interleaves
// firmware updates, connectivity, the remote fetch and the animations
// within a fixed per-tick time budget.
package sched

// State is the shared run state, owned by the loop and passed by
// reference. Single-writer rules: Counter is written only when a fetch
// cycle completes successfully; LastFetchOK only by the fetch step;
// Connected only by the status step.
type State struct {
	Counter     uint32
	LastFetchOK bool
	Connected   bool
}
