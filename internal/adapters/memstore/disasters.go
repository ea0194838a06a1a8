package memstore

import (
	"context"
	"slices"
	"time"

	"github.com/jsamuelsen/disaster-response/internal/domain"
)

// DisasterRepo implements ports.DisasterRepository on a Store.
type DisasterRepo struct {
	s *Store
}

// NewDisasterRepo returns a DisasterRepo view of s.
func NewDisasterRepo(s *Store) *DisasterRepo {
	return &DisasterRepo{s: s}
}

func (r *DisasterRepo) Create(_ context.Context, d *domain.Disaster) (*domain.Disaster, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	stored := copyDisaster(d)
	stored.ID = newID()
	if stored.Tags == nil {
		stored.Tags = []string{}
	}
	stored.CreatedAt = r.s.now()
	stored.UpdatedAt = stored.CreatedAt
	r.s.disasters[stored.ID] = stored

	return copyDisaster(stored), nil
}

func (r *DisasterRepo) Get(_ context.Context, id string) (*domain.Disaster, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	d, ok := r.s.disasters[id]
	if !ok {
		return nil, domain.NewNotFoundError("disaster", id)
	}
	return copyDisaster(d), nil
}

func (r *DisasterRepo) List(_ context.Context, filter domain.DisasterFilter) ([]domain.Disaster, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]domain.Disaster, 0, len(r.s.disasters))
	for _, d := range r.s.disasters {
		if filter.Tag != "" && !slices.Contains(d.Tags, filter.Tag) {
			continue
		}
		out = append(out, *copyDisaster(d))
	}

	sortNewestFirst(out, func(d domain.Disaster) (created time.Time, id string) { return d.CreatedAt, d.ID })
	return out, nil
}

func (r *DisasterRepo) Update(
	_ context.Context, id string, u domain.DisasterUpdate, entry domain.AuditEntry,
) (*domain.Disaster, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	d, ok := r.s.disasters[id]
	if !ok {
		return nil, domain.NewNotFoundError("disaster", id)
	}

	if u.Title != nil {
		d.Title = *u.Title
	}
	if u.Description != nil {
		d.Description = *u.Description
	}
	if u.TagsSet {
		d.Tags = slices.Clone(u.Tags)
		if d.Tags == nil {
			d.Tags = []string{}
		}
	}
	d.AuditTrail = append(d.AuditTrail, entry)
	d.UpdatedAt = r.s.now()

	return copyDisaster(d), nil
}

// Delete removes the disaster with its resources and reports.
func (r *DisasterRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.disasters[id]; !ok {
		return domain.NewNotFoundError("disaster", id)
	}
	delete(r.s.disasters, id)

	for rid, res := range r.s.resources {
		if res.DisasterID == id {
			delete(r.s.resources, rid)
		}
	}
	for rid, rep := range r.s.reports {
		if rep.DisasterID == id {
			delete(r.s.reports, rid)
		}
	}
	return nil
}
