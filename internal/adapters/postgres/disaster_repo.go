package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jsamuelsen/disaster-response/internal/domain"
)

const disasterColumns = `id::text, title, location_name, description, tags, latitude, longitude,
	owner_id, audit_trail, created_at, updated_at`

// DisasterRepo implements ports.DisasterRepository.
type DisasterRepo struct {
	db db
}

// NewDisasterRepo returns a DisasterRepo backed by db.
func NewDisasterRepo(db db) *DisasterRepo {
	return &DisasterRepo{db: db}
}

// Create inserts d and returns the stored row.
func (r *DisasterRepo) Create(ctx context.Context, d *domain.Disaster) (*domain.Disaster, error) {
	const q = `
		INSERT INTO disasters (title, location_name, description, tags, latitude, longitude, owner_id, audit_trail)
		VALUES (@title, @location_name, @description, COALESCE(@tags::text[], '{}'), @latitude, @longitude,
		        @owner_id, @audit_trail::jsonb)
		RETURNING ` + disasterColumns

	args := pgx.NamedArgs{
		"title":         d.Title,
		"location_name": d.LocationName,
		"description":   d.Description,
		"tags":          d.Tags,
		"latitude":      d.Location.Lat,
		"longitude":     d.Location.Lng,
		"owner_id":      d.OwnerID,
		"audit_trail":   toAuditRows(d.AuditTrail),
	}

	out, err := scanDisaster(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return nil, fmt.Errorf("postgres.DisasterRepo.Create: %w", err)
	}
	return out, nil
}

// Get returns the disaster with id.
func (r *DisasterRepo) Get(ctx context.Context, id string) (*domain.Disaster, error) {
	if !validID(id) {
		return nil, domain.NewNotFoundError("disaster", id)
	}

	const q = `SELECT ` + disasterColumns + ` FROM disasters WHERE id = @id::uuid`

	out, err := scanDisaster(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		return nil, fmt.Errorf("postgres.DisasterRepo.Get: %w", notFound(err, "disaster", id))
	}
	return out, nil
}

// List returns disasters newest first, optionally those tagged filter.Tag.
func (r *DisasterRepo) List(ctx context.Context, filter domain.DisasterFilter) ([]domain.Disaster, error) {
	const q = `
		SELECT ` + disasterColumns + `
		FROM disasters
		WHERE @tag::text = '' OR @tag::text = ANY(tags)
		ORDER BY created_at DESC, id DESC`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"tag": filter.Tag})
	if err != nil {
		return nil, fmt.Errorf("postgres.DisasterRepo.List: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Disaster, 0)
	for rows.Next() {
		d, err := scanDisaster(rows)
		if err != nil {
			return nil, fmt.Errorf("postgres.DisasterRepo.List: scan: %w", err)
		}
		out = append(out, *d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres.DisasterRepo.List: rows: %w", err)
	}
	return out, nil
}

// Update applies u and appends entry to the audit trail in one statement.
func (r *DisasterRepo) Update(
	ctx context.Context, id string, u domain.DisasterUpdate, entry domain.AuditEntry,
) (*domain.Disaster, error) {
	if !validID(id) {
		return nil, domain.NewNotFoundError("disaster", id)
	}

	const q = `
		UPDATE disasters SET
			title       = COALESCE(@title::text, title),
			description = COALESCE(@description::text, description),
			tags        = CASE WHEN @tags_set::boolean THEN COALESCE(@tags::text[], '{}') ELSE tags END,
			audit_trail = audit_trail || jsonb_build_array(@entry::jsonb),
			updated_at  = now()
		WHERE id = @id::uuid
		RETURNING ` + disasterColumns

	args := pgx.NamedArgs{
		"id":          id,
		"title":       u.Title,
		"description": u.Description,
		"tags_set":    u.TagsSet,
		"tags":        u.Tags,
		"entry":       toAuditRow(entry),
	}

	out, err := scanDisaster(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return nil, fmt.Errorf("postgres.DisasterRepo.Update: %w", notFound(err, "disaster", id))
	}
	return out, nil
}

// Delete removes the disaster; its resources and reports cascade.
func (r *DisasterRepo) Delete(ctx context.Context, id string) error {
	if !validID(id) {
		return domain.NewNotFoundError("disaster", id)
	}

	tag, err := r.db.Exec(ctx, `DELETE FROM disasters WHERE id = @id::uuid`, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("postgres.DisasterRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.NewNotFoundError("disaster", id)
	}
	return nil
}

func scanDisaster(s scanner) (*domain.Disaster, error) {
	var (
		d     domain.Disaster
		audit []auditRow
	)
	err := s.Scan(
		&d.ID, &d.Title, &d.LocationName, &d.Description, &d.Tags,
		&d.Location.Lat, &d.Location.Lng, &d.OwnerID, &audit,
		&d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	d.AuditTrail = fromAuditRows(audit)
	d.CreatedAt = d.CreatedAt.UTC()
	d.UpdatedAt = d.UpdatedAt.UTC()
	return &d, nil
}
