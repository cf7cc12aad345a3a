// Package loader fetches the trends snapshot exactly once and publishes it
// to a Store shared by every viewer session.
package loader

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/ziadkadry99/trendview/internal/snapshot"
)

// DefaultLocation is the relative path the aggregator publishes to.
const DefaultLocation = "data/latest.json"

// LoadFailure is the only error kind the loader returns. It covers network
// errors, non-success responses, unreadable files and malformed bodies.
type LoadFailure struct {
	Location string
	Status   int // HTTP status, 0 when no response was received
	Err      error
}

func (e *LoadFailure) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("loading snapshot from %s: status %d: %v", e.Location, e.Status, e.Err)
	}
	return fmt.Sprintf("loading snapshot from %s: %v", e.Location, e.Err)
}

func (e *LoadFailure) Unwrap() error { return e.Err }

// Loader performs a single attempt to read the snapshot at Location, which
// is either an http(s) URL or a filesystem path.
type Loader struct {
	Location string
	Client   *http.Client
}

// New returns a Loader for location. An empty location uses DefaultLocation.
func New(location string) *Loader {
	if location == "" {
		location = DefaultLocation
	}
	return &Loader{Location: location, Client: http.DefaultClient}
}

// Load fetches and decodes the snapshot. There is no retry; the only
// cancellation is ctx.
func (l *Loader) Load(ctx context.Context) (*snapshot.Snapshot, error) {
	if isRemote(l.Location) {
		return l.loadHTTP(ctx)
	}
	return l.loadFile()
}

func isRemote(location string) bool {
	return strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://")
}

func (l *Loader) loadHTTP(ctx context.Context) (*snapshot.Snapshot, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.Location, nil)
	if err != nil {
		return nil, &LoadFailure{Location: l.Location, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	client := l.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, &LoadFailure{Location: l.Location, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain a little of the body so the connection can be reused.
		io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return nil, &LoadFailure{
			Location: l.Location,
			Status:   resp.StatusCode,
			Err:      fmt.Errorf("unexpected response %s", resp.Status),
		}
	}

	snap, err := snapshot.Decode(resp.Body)
	if err != nil {
		return nil, &LoadFailure{Location: l.Location, Status: resp.StatusCode, Err: err}
	}
	return snap, nil
}

func (l *Loader) loadFile() (*snapshot.Snapshot, error) {
	f, err := os.Open(l.Location)
	if err != nil {
		return nil, &LoadFailure{Location: l.Location, Err: err}
	}
	defer f.Close()

	snap, err := snapshot.Decode(f)
	if err != nil {
		return nil, &LoadFailure{Location: l.Location, Err: err}
	}
	return snap, nil
}
