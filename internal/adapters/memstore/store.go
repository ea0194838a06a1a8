// Package memstore implements the repository and cache ports in memory. It
// backs local runs without a database URL and mirrors the Postgres adapter's
// ordering, cascade and not-found behavior.
package memstore

import (
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/jsamuelsen/disaster-response/internal/domain"
)

// Store holds every entity behind one lock so deletes can cascade.
type Store struct {
	mu        sync.RWMutex
	clock     clockwork.Clock
	disasters map[string]*domain.Disaster
	resources map[string]*domain.Resource
	reports   map[string]*domain.Report
}

// NewStore returns an empty store. A nil clock uses the real clock.
func NewStore(clock clockwork.Clock) *Store {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Store{
		clock:     clock,
		disasters: make(map[string]*domain.Disaster),
		resources: make(map[string]*domain.Resource),
		reports:   make(map[string]*domain.Report),
	}
}

func (s *Store) now() time.Time {
	return s.clock.Now().UTC()
}

func newID() string {
	return uuid.NewString()
}

// newestFirst orders by created_at then id, both descending, like the SQL
// listings.
func newestFirst(aCreated time.Time, aID string, bCreated time.Time, bID string) int {
	if c := bCreated.Compare(aCreated); c != 0 {
		return c
	}
	return strings.Compare(bID, aID)
}

// before reports whether (created, id) sorts after the cursor in a
// newest-first listing.
func before(created time.Time, id string, cursorCreated time.Time, cursorID string) bool {
	if c := created.Compare(cursorCreated); c != 0 {
		return c < 0
	}
	return id < cursorID
}

func sortNewestFirst[T any](items []T, key func(T) (time.Time, string)) {
	slices.SortFunc(items, func(a, b T) int {
		ac, aid := key(a)
		bc, bid := key(b)
		return newestFirst(ac, aid, bc, bid)
	})
}

func copyDisaster(d *domain.Disaster) *domain.Disaster {
	out := *d
	out.Tags = slices.Clone(d.Tags)
	out.AuditTrail = slices.Clone(d.AuditTrail)
	return &out
}

func copyReport(r *domain.Report) *domain.Report {
	out := *r
	out.AuditTrail = slices.Clone(r.AuditTrail)
	return &out
}
