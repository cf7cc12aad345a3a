package loader

import (
	"context"
	"log"
	"sync"
	"sync/atomic"

	"github.com/ziadkadry99/trendview/internal/snapshot"
)

// Status is the lifecycle of the one-shot load.
type Status int

const (
	StatusLoading Status = iota
	StatusLoaded
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusLoaded:
		return "loaded"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// result is published once and never modified.
type result struct {
	status  Status
	snap    *snapshot.Snapshot
	sources []string
	err     error
}

// Store holds the loaded snapshot and the source list derived from it.
// It is written once by Run (or Set/Fail) and read by any number of
// sessions.
type Store struct {
	current atomic.Pointer[result]
	ready   chan struct{}
	once    sync.Once
}

// NewStore returns a Store in the loading state.
func NewStore() *Store {
	s := &Store{ready: make(chan struct{})}
	s.current.Store(&result{status: StatusLoading})
	return s
}

// Run performs the single load and publishes its outcome.
func (s *Store) Run(ctx context.Context, l *Loader) error {
	snap, err := l.Load(ctx)
	if err != nil {
		log.Printf("loader: %v", err)
		s.Fail(err)
		return err
	}
	c := snap.Count()
	log.Printf("loader: snapshot loaded from %s (github=%d hackernews=%d rss=%d)",
		l.Location, c.GitHubRepos, c.HackerNewsStories, c.RSSArticles)
	s.Set(snap)
	return nil
}

// Set publishes a loaded snapshot and runs derived setup. Only the first
// call to Set or Fail takes effect.
func (s *Store) Set(snap *snapshot.Snapshot) {
	s.publish(&result{status: StatusLoaded, snap: snap, sources: snap.Sources()})
}

// Fail publishes a load failure. Only the first call to Set or Fail takes
// effect.
func (s *Store) Fail(err error) {
	s.publish(&result{status: StatusFailed, err: err})
}

func (s *Store) publish(r *result) {
	s.once.Do(func() {
		s.current.Store(r)
		close(s.ready)
	})
}

// Status reports the current load status.
func (s *Store) Status() Status { return s.current.Load().status }

// Snapshot returns the loaded snapshot, or nil unless the status is loaded.
func (s *Store) Snapshot() *snapshot.Snapshot { return s.current.Load().snap }

// Sources returns the derived source filter values ("all" first).
func (s *Store) Sources() []string { return s.current.Load().sources }

// Err returns the load failure, if any.
func (s *Store) Err() error { return s.current.Load().err }

// Ready is closed once the load has either succeeded or failed.
func (s *Store) Ready() <-chan struct{} { return s.ready }
