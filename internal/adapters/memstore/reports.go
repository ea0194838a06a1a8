package memstore

import (
	"context"
	"time"

	"github.com/jsamuelsen/disaster-response/internal/domain"
)

// ReportRepo implements ports.ReportRepository on a Store.
type ReportRepo struct {
	s *Store
}

// NewReportRepo returns a ReportRepo view of s.
func NewReportRepo(s *Store) *ReportRepo {
	return &ReportRepo{s: s}
}

func (r *ReportRepo) Create(_ context.Context, nr domain.NewReport) (*domain.Report, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	rep, err := r.insertLocked(nr)
	if err != nil {
		return nil, err
	}
	return copyReport(rep), nil
}

// UpsertFromFeed inserts each report, or refreshes the content of the report
// already ingested for the same disaster and source URI.
func (r *ReportRepo) UpsertFromFeed(_ context.Context, reports []domain.NewReport) ([]domain.Report, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	out := make([]domain.Report, 0, len(reports))
	for _, nr := range reports {
		if existing := r.findBySourceLocked(nr.DisasterID, nr.SourceURI); existing != nil {
			existing.Content = nr.Content
			existing.UserID = nr.UserID
			existing.UpdatedAt = r.s.now()
			out = append(out, *copyReport(existing))
			continue
		}

		rep, err := r.insertLocked(nr)
		if err != nil {
			return nil, err
		}
		out = append(out, *copyReport(rep))
	}
	return out, nil
}

func (r *ReportRepo) Get(_ context.Context, id string) (*domain.Report, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	rep, ok := r.s.reports[id]
	if !ok {
		return nil, domain.NewNotFoundError("report", id)
	}
	return copyReport(rep), nil
}

func (r *ReportRepo) ListByDisaster(_ context.Context, disasterID string) ([]domain.Report, error) {
	r.s.mu.RLock()
	out := make([]domain.Report, 0)
	for _, rep := range r.s.reports {
		if rep.DisasterID == disasterID {
			out = append(out, *copyReport(rep))
		}
	}
	r.s.mu.RUnlock()

	sortNewestFirst(out, func(rep domain.Report) (created time.Time, id string) { return rep.CreatedAt, rep.ID })
	return out, nil
}

func (r *ReportRepo) Update(_ context.Context, id string, u domain.ReportUpdate) (*domain.Report, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	rep, ok := r.s.reports[id]
	if !ok {
		return nil, domain.NewNotFoundError("report", id)
	}

	if u.Content != nil {
		rep.Content = *u.Content
	}
	if u.ImageURL != nil {
		rep.ImageURL = *u.ImageURL
	}
	if u.VerificationStatus != nil {
		rep.VerificationStatus = *u.VerificationStatus
	}
	rep.UpdatedAt = r.s.now()

	return copyReport(rep), nil
}

func (r *ReportRepo) RecordVerification(
	_ context.Context, id string, v domain.ReportVerification,
) (*domain.Report, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	rep, ok := r.s.reports[id]
	if !ok {
		return nil, domain.NewNotFoundError("report", id)
	}

	rep.VerificationStatus = v.Status
	rep.VerificationLabel = v.Label
	rep.AuditTrail = append(rep.AuditTrail, v.Entry)
	rep.UpdatedAt = r.s.now()

	return copyReport(rep), nil
}

func (r *ReportRepo) insertLocked(nr domain.NewReport) (*domain.Report, error) {
	if _, ok := r.s.disasters[nr.DisasterID]; !ok {
		return nil, domain.NewNotFoundError("disaster", nr.DisasterID)
	}

	now := r.s.now()
	created := nr.CreatedAt.UTC()
	if nr.CreatedAt.IsZero() {
		created = now
	}

	rep := &domain.Report{
		ID:                 newID(),
		DisasterID:         nr.DisasterID,
		UserID:             nr.UserID,
		Content:            nr.Content,
		ImageURL:           nr.ImageURL,
		SourceURI:          nr.SourceURI,
		VerificationStatus: domain.StatusPending,
		AuditTrail:         []domain.AuditEntry{},
		CreatedAt:          created,
		UpdatedAt:          now,
	}
	r.s.reports[rep.ID] = rep
	return rep, nil
}

func (r *ReportRepo) findBySourceLocked(disasterID, sourceURI string) *domain.Report {
	if sourceURI == "" {
		return nil
	}
	for _, rep := range r.s.reports {
		if rep.DisasterID == disasterID && rep.SourceURI == sourceURI {
			return rep
		}
	}
	return nil
}
