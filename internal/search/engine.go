package search

import (
	"context"
	"sync"
	"time"

	"github.com/jonathan/job-finder/internal/types"
)

// DefaultDebounce is the quiet period after the last criteria edit before
// the filtered view is recomputed.
const DefaultDebounce = 300 * time.Millisecond

// State is the engine's position in its load lifecycle.
type State int

// Engine states.
const (
	StateIdle State = iota
	StateLoading
	StateReady
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// JobLister fetches the full baseline job set. *api.Client satisfies it.
type JobLister interface {
	GetJobs(ctx context.Context) ([]types.Job, error)
}

// Snapshot is a consistent view of the engine handed to callers and the
// notify callback.
type Snapshot struct {
	State State
	Jobs  []types.Job
	Err   error
	// NoResults is set when a loaded baseline matched nothing. It is a
	// display signal, not an error.
	NoResults bool
}

// Options configures an Engine.
type Options struct {
	// Debounce overrides DefaultDebounce. Useful in tests.
	Debounce time.Duration
	// Notify, if set, is called after every committed load or recompute.
	// It runs outside the engine lock and may call back into the engine.
	Notify func(Snapshot)
}

// Engine owns the baseline job set for one screen and derives the filtered
// view from it. Loads carry a sequence number so a slow fetch that loses a
// refresh race is discarded instead of clobbering newer data; criteria edits
// carry a generation so only the newest pending recompute commits.
type Engine struct {
	lister   JobLister
	debounce time.Duration
	notify   func(Snapshot)

	mu       sync.Mutex
	state    State
	baseline []types.Job
	criteria Criteria
	results  []types.Job
	err      error
	loadSeq  uint64
	gen      uint64
	timer    *time.Timer
	closed   bool
}

// NewEngine creates an idle engine; nothing is fetched until Load.
func NewEngine(lister JobLister, opts *Options) *Engine {
	e := &Engine{
		lister:   lister,
		debounce: DefaultDebounce,
		state:    StateIdle,
	}
	if opts != nil {
		if opts.Debounce > 0 {
			e.debounce = opts.Debounce
		}
		e.notify = opts.Notify
	}
	return e
}

// Load fetches the baseline and computes the filtered view with the current
// criteria. It may be called from any state to refresh; if a newer Load is
// issued while this one is in flight, the stale completion is discarded.
// The returned error is also retained in the snapshot.
func (e *Engine) Load(ctx context.Context) error {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return nil
	}
	e.loadSeq++
	seq := e.loadSeq
	e.state = StateLoading
	e.mu.Unlock()

	jobs, err := e.lister.GetJobs(ctx)

	e.mu.Lock()
	if e.closed || seq != e.loadSeq {
		// A newer load superseded this one, or the screen is gone.
		e.mu.Unlock()
		return nil
	}
	if err != nil {
		e.state = StateFailed
		e.err = err
		e.baseline = nil
		e.results = nil
	} else {
		e.state = StateReady
		e.err = nil
		e.baseline = jobs
		e.results = Filter(e.baseline, e.criteria)
	}
	snap := e.snapshotLocked()
	e.mu.Unlock()

	e.emit(snap)
	return err
}

// SetCriteria records the new criteria and schedules a debounced recompute.
// Successive edits within the quiet period collapse into a single recompute
// using the latest criteria.
func (e *Engine) SetCriteria(c Criteria) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return
	}
	e.criteria = c
	e.gen++
	gen := e.gen
	if e.timer != nil {
		e.timer.Stop()
	}
	e.timer = time.AfterFunc(e.debounce, func() {
		e.recompute(gen)
	})
}

// recompute commits the filtered view for gen if it is still the newest
// pending edit.
func (e *Engine) recompute(gen uint64) {
	e.mu.Lock()
	if e.closed || gen != e.gen {
		e.mu.Unlock()
		return
	}
	if e.state != StateReady {
		// No baseline yet; the pending criteria apply when Load completes.
		e.mu.Unlock()
		return
	}
	e.results = Filter(e.baseline, e.criteria)
	snap := e.snapshotLocked()
	e.mu.Unlock()

	e.emit(snap)
}

// Criteria returns the most recently set criteria.
func (e *Engine) Criteria() Criteria {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.criteria
}

// Snapshot returns the current state and filtered view.
func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snapshotLocked()
}

// Results returns a copy of the current filtered view.
func (e *Engine) Results() []types.Job {
	return e.Snapshot().Jobs
}

// Close cancels any pending recompute. Late load completions and timer
// firings after Close are no-ops.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.closed = true
	if e.timer != nil {
		e.timer.Stop()
		e.timer = nil
	}
}

func (e *Engine) snapshotLocked() Snapshot {
	jobs := make([]types.Job, len(e.results))
	copy(jobs, e.results)
	return Snapshot{
		State:     e.state,
		Jobs:      jobs,
		Err:       e.err,
		NoResults: e.state == StateReady && len(e.results) == 0,
	}
}

func (e *Engine) emit(snap Snapshot) {
	if e.notify != nil {
		e.notify(snap)
	}
}
