package search

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/jonathan/job-finder/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeLister returns canned results, optionally blocking until released so
// tests can control completion order.
type fakeLister struct {
	mu      sync.Mutex
	results [][]types.Job
	errs    []error
	calls   int
	release chan struct{}
}

func (f *fakeLister) GetJobs(ctx context.Context) ([]types.Job, error) {
	f.mu.Lock()
	call := f.calls
	f.calls++
	release := f.release
	f.mu.Unlock()

	if release != nil {
		select {
		case <-release:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	var err error
	if call < len(f.errs) {
		err = f.errs[call]
	}
	if err != nil {
		return nil, err
	}
	if call < len(f.results) {
		return f.results[call], nil
	}
	return nil, nil
}

func TestEngine_LoadComputesViewWithCurrentCriteria(t *testing.T) {
	lister := &fakeLister{results: [][]types.Job{sampleJobs()}}
	e := NewEngine(lister, nil)
	defer e.Close()

	require.Equal(t, StateIdle, e.Snapshot().State)
	require.NoError(t, e.Load(context.Background()))

	snap := e.Snapshot()
	assert.Equal(t, StateReady, snap.State)
	assert.Len(t, snap.Jobs, len(sampleJobs()))
	assert.False(t, snap.NoResults)
}

func TestEngine_LoadFailureEntersFailedState(t *testing.T) {
	boom := errors.New("network unreachable")
	lister := &fakeLister{errs: []error{boom}}
	e := NewEngine(lister, nil)
	defer e.Close()

	err := e.Load(context.Background())
	require.ErrorIs(t, err, boom)

	snap := e.Snapshot()
	assert.Equal(t, StateFailed, snap.State)
	assert.ErrorIs(t, snap.Err, boom)
	assert.Empty(t, snap.Jobs)
}

func TestEngine_RefreshAfterFailure(t *testing.T) {
	lister := &fakeLister{
		errs:    []error{errors.New("timeout"), nil},
		results: [][]types.Job{nil, sampleJobs()},
	}
	e := NewEngine(lister, nil)
	defer e.Close()

	require.Error(t, e.Load(context.Background()))
	require.NoError(t, e.Load(context.Background()))

	snap := e.Snapshot()
	assert.Equal(t, StateReady, snap.State)
	assert.NoError(t, snap.Err)
	assert.Len(t, snap.Jobs, len(sampleJobs()))
}

func TestEngine_DebounceCoalescesEdits(t *testing.T) {
	notifies := make(chan Snapshot, 16)
	lister := &fakeLister{results: [][]types.Job{sampleJobs()}}
	e := NewEngine(lister, &Options{
		Debounce: 150 * time.Millisecond,
		Notify:   func(s Snapshot) { notifies <- s },
	})
	defer e.Close()

	require.NoError(t, e.Load(context.Background()))
	<-notifies // load completion

	// Three edits inside one quiet period: exactly one recompute, using the
	// latest criteria.
	e.SetCriteria(Criteria{Keyword: "b"})
	time.Sleep(30 * time.Millisecond)
	e.SetCriteria(Criteria{Keyword: "ba"})
	time.Sleep(30 * time.Millisecond)
	e.SetCriteria(Criteria{Keyword: "backend"})

	select {
	case snap := <-notifies:
		require.Len(t, snap.Jobs, 1)
		assert.Equal(t, "Backend Engineer", snap.Jobs[0].Title)
	case <-time.After(2 * time.Second):
		t.Fatal("debounced recompute never fired")
	}

	// No second recompute arrives for the earlier edits.
	select {
	case snap := <-notifies:
		t.Fatalf("unexpected extra recompute: %+v", snap)
	case <-time.After(400 * time.Millisecond):
	}

	assert.Equal(t, Criteria{Keyword: "backend"}, e.Criteria())
}

func TestEngine_NoResultsIsSignalNotError(t *testing.T) {
	notifies := make(chan Snapshot, 16)
	lister := &fakeLister{results: [][]types.Job{sampleJobs()}}
	e := NewEngine(lister, &Options{
		Debounce: 20 * time.Millisecond,
		Notify:   func(s Snapshot) { notifies <- s },
	})
	defer e.Close()

	require.NoError(t, e.Load(context.Background()))
	<-notifies

	e.SetCriteria(Criteria{Location: "Mars"})

	select {
	case snap := <-notifies:
		assert.Equal(t, StateReady, snap.State)
		assert.NoError(t, snap.Err)
		assert.Empty(t, snap.Jobs)
		assert.True(t, snap.NoResults)
	case <-time.After(2 * time.Second):
		t.Fatal("recompute never fired")
	}
}

func TestEngine_StaleLoadIsDiscarded(t *testing.T) {
	first := []types.Job{{ID: "old", Title: "Old"}}
	second := []types.Job{{ID: "new", Title: "New"}}
	release := make(chan struct{})
	lister := &fakeLister{results: [][]types.Job{first, second}, release: release}

	e := NewEngine(lister, nil)
	defer e.Close()

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		_ = e.Load(context.Background()) // seq 1, completes late
	}()
	// Give the first load time to register its sequence number.
	time.Sleep(50 * time.Millisecond)
	go func() {
		defer wg.Done()
		_ = e.Load(context.Background()) // seq 2
	}()
	time.Sleep(50 * time.Millisecond)

	// Release both fetches; completion order no longer matters because the
	// first carries a stale sequence number.
	close(release)
	wg.Wait()

	snap := e.Snapshot()
	require.Equal(t, StateReady, snap.State)
	require.Len(t, snap.Jobs, 1)
	assert.Equal(t, "new", snap.Jobs[0].ID)
}

func TestEngine_CloseSuppressesPendingRecompute(t *testing.T) {
	var mu sync.Mutex
	count := 0
	lister := &fakeLister{results: [][]types.Job{sampleJobs()}}
	e := NewEngine(lister, &Options{
		Debounce: 50 * time.Millisecond,
		Notify: func(Snapshot) {
			mu.Lock()
			count++
			mu.Unlock()
		},
	})

	require.NoError(t, e.Load(context.Background()))
	e.SetCriteria(Criteria{Keyword: "backend"})
	e.Close()

	time.Sleep(150 * time.Millisecond)
	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 1, count, "only the load notification should have fired")
}

func TestEngine_SetCriteriaBeforeLoadAppliesOnLoad(t *testing.T) {
	lister := &fakeLister{results: [][]types.Job{sampleJobs()}}
	e := NewEngine(lister, &Options{Debounce: 10 * time.Millisecond})
	defer e.Close()

	e.SetCriteria(Criteria{Keyword: "backend"})
	time.Sleep(50 * time.Millisecond) // timer fires with no baseline; no-op

	require.NoError(t, e.Load(context.Background()))
	jobs := e.Results()
	require.Len(t, jobs, 1)
	assert.Equal(t, "Backend Engineer", jobs[0].Title)
}
