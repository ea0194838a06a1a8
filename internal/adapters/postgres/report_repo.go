package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jsamuelsen/disaster-response/internal/domain"
)

const reportColumns = `id::text, disaster_id::text, user_id, content, image_url, COALESCE(source_uri, ''),
	verification_status, verification_label, audit_trail, created_at, updated_at`

// ReportRepo implements ports.ReportRepository.
type ReportRepo struct {
	db db
}

// NewReportRepo returns a ReportRepo backed by db.
func NewReportRepo(db db) *ReportRepo {
	return &ReportRepo{db: db}
}

// Create inserts a user-submitted report.
func (r *ReportRepo) Create(ctx context.Context, nr domain.NewReport) (*domain.Report, error) {
	if !validID(nr.DisasterID) {
		return nil, domain.NewNotFoundError("disaster", nr.DisasterID)
	}

	const q = `
		INSERT INTO reports (disaster_id, user_id, content, image_url, source_uri, verification_status, created_at)
		VALUES (@disaster_id::uuid, @user_id, @content, @image_url, NULLIF(@source_uri::text, ''), @status,
		        COALESCE(@created_at::timestamptz, now()))
		RETURNING ` + reportColumns

	out, err := scanReport(r.db.QueryRow(ctx, q, newReportArgs(nr)))
	if err != nil {
		return nil, fmt.Errorf("postgres.ReportRepo.Create: %w", missingParent(err, "disaster", nr.DisasterID))
	}
	return out, nil
}

// UpsertFromFeed inserts feed reports in one batch. A post already ingested
// for the disaster keeps its verification state and gets the new content.
func (r *ReportRepo) UpsertFromFeed(ctx context.Context, reports []domain.NewReport) ([]domain.Report, error) {
	if len(reports) == 0 {
		return []domain.Report{}, nil
	}

	const q = `
		INSERT INTO reports (disaster_id, user_id, content, image_url, source_uri, verification_status, created_at)
		VALUES (@disaster_id::uuid, @user_id, @content, @image_url, NULLIF(@source_uri::text, ''), @status,
		        COALESCE(@created_at::timestamptz, now()))
		ON CONFLICT (disaster_id, source_uri) DO UPDATE SET
			content    = EXCLUDED.content,
			user_id    = EXCLUDED.user_id,
			updated_at = now()
		RETURNING ` + reportColumns

	batch := &pgx.Batch{}
	for _, nr := range reports {
		if !validID(nr.DisasterID) {
			return nil, domain.NewNotFoundError("disaster", nr.DisasterID)
		}
		batch.Queue(q, newReportArgs(nr))
	}

	results := r.db.SendBatch(ctx, batch)
	defer results.Close()

	out := make([]domain.Report, 0, len(reports))
	for _, nr := range reports {
		rep, err := scanReport(results.QueryRow())
		if err != nil {
			return nil, fmt.Errorf("postgres.ReportRepo.UpsertFromFeed: %w",
				missingParent(err, "disaster", nr.DisasterID))
		}
		out = append(out, *rep)
	}
	return out, nil
}

// Get returns the report with id.
func (r *ReportRepo) Get(ctx context.Context, id string) (*domain.Report, error) {
	if !validID(id) {
		return nil, domain.NewNotFoundError("report", id)
	}

	const q = `SELECT ` + reportColumns + ` FROM reports WHERE id = @id::uuid`

	out, err := scanReport(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		return nil, fmt.Errorf("postgres.ReportRepo.Get: %w", notFound(err, "report", id))
	}
	return out, nil
}

// ListByDisaster returns the disaster's reports newest first.
func (r *ReportRepo) ListByDisaster(ctx context.Context, disasterID string) ([]domain.Report, error) {
	if !validID(disasterID) {
		return []domain.Report{}, nil
	}

	const q = `
		SELECT ` + reportColumns + `
		FROM reports
		WHERE disaster_id = @disaster_id::uuid
		ORDER BY created_at DESC, id DESC`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"disaster_id": disasterID})
	if err != nil {
		return nil, fmt.Errorf("postgres.ReportRepo.ListByDisaster: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Report, 0)
	for rows.Next() {
		rep, err := scanReport(rows)
		if err != nil {
			return nil, fmt.Errorf("postgres.ReportRepo.ListByDisaster: scan: %w", err)
		}
		out = append(out, *rep)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres.ReportRepo.ListByDisaster: rows: %w", err)
	}
	return out, nil
}

// Update applies the non-nil fields of u.
func (r *ReportRepo) Update(ctx context.Context, id string, u domain.ReportUpdate) (*domain.Report, error) {
	if !validID(id) {
		return nil, domain.NewNotFoundError("report", id)
	}

	const q = `
		UPDATE reports SET
			content             = COALESCE(@content::text, content),
			image_url           = COALESCE(@image_url::text, image_url),
			verification_status = COALESCE(@verification_status::text, verification_status),
			updated_at          = now()
		WHERE id = @id::uuid
		RETURNING ` + reportColumns

	args := pgx.NamedArgs{
		"id":                  id,
		"content":             u.Content,
		"image_url":           u.ImageURL,
		"verification_status": u.VerificationStatus,
	}

	out, err := scanReport(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return nil, fmt.Errorf("postgres.ReportRepo.Update: %w", notFound(err, "report", id))
	}
	return out, nil
}

// RecordVerification stores the verdict and appends v.Entry to the audit trail.
func (r *ReportRepo) RecordVerification(
	ctx context.Context, id string, v domain.ReportVerification,
) (*domain.Report, error) {
	if !validID(id) {
		return nil, domain.NewNotFoundError("report", id)
	}

	const q = `
		UPDATE reports SET
			verification_status = @status,
			verification_label  = @label,
			audit_trail         = audit_trail || jsonb_build_array(@entry::jsonb),
			updated_at          = now()
		WHERE id = @id::uuid
		RETURNING ` + reportColumns

	args := pgx.NamedArgs{
		"id":     id,
		"status": v.Status,
		"label":  string(v.Label),
		"entry":  toAuditRow(v.Entry),
	}

	out, err := scanReport(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return nil, fmt.Errorf("postgres.ReportRepo.RecordVerification: %w", notFound(err, "report", id))
	}
	return out, nil
}

func newReportArgs(nr domain.NewReport) pgx.NamedArgs {
	return pgx.NamedArgs{
		"disaster_id": nr.DisasterID,
		"user_id":     nr.UserID,
		"content":     nr.Content,
		"image_url":   nr.ImageURL,
		"source_uri":  nr.SourceURI,
		"status":      domain.StatusPending,
		"created_at":  nullTime(nr.CreatedAt),
	}
}

func scanReport(s scanner) (*domain.Report, error) {
	var (
		rep   domain.Report
		label string
		audit []auditRow
	)
	err := s.Scan(
		&rep.ID, &rep.DisasterID, &rep.UserID, &rep.Content, &rep.ImageURL, &rep.SourceURI,
		&rep.VerificationStatus, &label, &audit, &rep.CreatedAt, &rep.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	rep.VerificationLabel = domain.VerificationLabel(label)
	rep.AuditTrail = fromAuditRows(audit)
	rep.CreatedAt = rep.CreatedAt.UTC()
	rep.UpdatedAt = rep.UpdatedAt.UTC()
	return &rep, nil
}
