// Package id generates build ids for compiler runs.
//
// Build ids are prefixed ULIDs (build_01HQ...). ULIDs sort by creation
// time, so reports written to one directory list in run order, and the
// run's start time can be read back from the id.
package id

import (
	"crypto/rand"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// BuildPrefix is prepended to every build id
const BuildPrefix = "build"

// BuildID identifies one compiler run
type BuildID string

// Source mints build ids. It is safe for concurrent use.
type Source struct {
	mu      sync.Mutex // guards entropy
	entropy io.Reader
	now     func() time.Time
}

// NewSource returns a source backed by crypto/rand and the wall clock
func NewSource() *Source {
	return &Source{entropy: ulid.Monotonic(rand.Reader, 0), now: time.Now}
}

// NewFixedSource returns a source with caller supplied entropy and clock.
// Two fixed sources fed identical input mint identical ids.
func NewFixedSource(entropy io.Reader, now func() time.Time) *Source {
	if now == nil {
		now = time.Now
	}
	return &Source{entropy: entropy, now: now}
}

var (
	defaultSource *Source
	defaultOnce   sync.Once
)

// NewBuildID mints a build id from the process-wide source
func NewBuildID() BuildID {
	defaultOnce.Do(func() { defaultSource = NewSource() })
	return defaultSource.Next()
}

// Next mints a build id
func (s *Source) Next() BuildID {
	s.mu.Lock()
	u := ulid.MustNew(ulid.Timestamp(s.now()), s.entropy)
	s.mu.Unlock()
	return BuildID(BuildPrefix + "_" + u.String())
}

// Parse checks that s is a build id
func Parse(s string) (BuildID, error) {
	id := BuildID(s)
	if _, err := id.ULID(); err != nil {
		return "", err
	}
	return id, nil
}

func (id BuildID) String() string { return string(id) }

// ULID returns the ULID part of the id
func (id BuildID) ULID() (ulid.ULID, error) {
	raw, ok := strings.CutPrefix(string(id), BuildPrefix+"_")
	if !ok {
		return ulid.ULID{}, fmt.Errorf("build id %q lacks the %s_ prefix", string(id), BuildPrefix)
	}
	return ulid.Parse(raw)
}

// Time returns the millisecond timestamp embedded in the id
func (id BuildID) Time() (time.Time, error) {
	u, err := id.ULID()
	if err != nil {
		return time.Time{}, err
	}
	return ulid.Time(u.Time()), nil
}
