package memstore

import (
	"context"
	"slices"
	"time"

	"github.com/jsamuelsen/disaster-response/internal/domain"
	"github.com/jsamuelsen/disaster-response/internal/ports"
)

// ResourceRepo implements ports.ResourceRepository on a Store.
type ResourceRepo struct {
	s *Store
}

// NewResourceRepo returns a ResourceRepo view of s.
func NewResourceRepo(s *Store) *ResourceRepo {
	return &ResourceRepo{s: s}
}

func (r *ResourceRepo) Create(_ context.Context, nr domain.NewResource) (*domain.Resource, error) {
	if nr.Location == nil {
		return nil, domain.NewValidationError("location", "resource location is not resolved")
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.disasters[nr.DisasterID]; !ok {
		return nil, domain.NewNotFoundError("disaster", nr.DisasterID)
	}

	res := &domain.Resource{
		ID:           newID(),
		DisasterID:   nr.DisasterID,
		Name:         nr.Name,
		LocationName: nr.LocationName,
		Type:         nr.Type,
		Location:     *nr.Location,
		CreatedAt:    r.s.now(),
	}
	r.s.resources[res.ID] = res

	out := *res
	return &out, nil
}

func (r *ResourceRepo) List(_ context.Context, page ports.PageRequest) ([]domain.Resource, error) {
	r.s.mu.RLock()
	all := make([]domain.Resource, 0, len(r.s.resources))
	for _, res := range r.s.resources {
		if page.After != nil && !before(res.CreatedAt, res.ID, page.After.CreatedAt, page.After.ID) {
			continue
		}
		all = append(all, *res)
	}
	r.s.mu.RUnlock()

	sortNewestFirst(all, func(res domain.Resource) (created time.Time, id string) { return res.CreatedAt, res.ID })

	if len(all) > page.Limit+1 {
		all = all[:page.Limit+1]
	}
	return all, nil
}

func (r *ResourceRepo) Nearby(_ context.Context, q domain.NearbyQuery) ([]domain.Resource, error) {
	r.s.mu.RLock()
	candidates := make([]domain.Resource, 0)
	for _, res := range r.s.resources {
		if res.DisasterID == q.DisasterID {
			candidates = append(candidates, *res)
		}
	}
	r.s.mu.RUnlock()

	// Stable sort in FilterNearby keeps creation order among equal distances.
	sortNewestFirst(candidates, func(res domain.Resource) (created time.Time, id string) { return res.CreatedAt, res.ID })
	slices.Reverse(candidates)

	return domain.FilterNearby(candidates, q), nil
}
