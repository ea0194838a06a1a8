package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jsamuelsen/disaster-response/internal/domain"
	"github.com/jsamuelsen/disaster-response/internal/ports"
)

const resourceColumns = `id::text, disaster_id::text, name, location_name, type, latitude, longitude, created_at`

// ResourceRepo implements ports.ResourceRepository.
type ResourceRepo struct {
	db db
}

// NewResourceRepo returns a ResourceRepo backed by db.
func NewResourceRepo(db db) *ResourceRepo {
	return &ResourceRepo{db: db}
}

// Create inserts a resource. nr.Location must already be resolved.
func (r *ResourceRepo) Create(ctx context.Context, nr domain.NewResource) (*domain.Resource, error) {
	if nr.Location == nil {
		return nil, domain.NewValidationError("location", "resource location is not resolved")
	}
	if !validID(nr.DisasterID) {
		return nil, domain.NewNotFoundError("disaster", nr.DisasterID)
	}

	const q = `
		INSERT INTO resources (disaster_id, name, location_name, type, latitude, longitude)
		VALUES (@disaster_id::uuid, @name, @location_name, @type, @latitude, @longitude)
		RETURNING ` + resourceColumns

	args := pgx.NamedArgs{
		"disaster_id":   nr.DisasterID,
		"name":          nr.Name,
		"location_name": nr.LocationName,
		"type":          nr.Type,
		"latitude":      nr.Location.Lat,
		"longitude":     nr.Location.Lng,
	}

	out, err := scanResource(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return nil, fmt.Errorf("postgres.ResourceRepo.Create: %w", missingParent(err, "disaster", nr.DisasterID))
	}
	return out, nil
}

// List returns up to page.Limit+1 resources newest first, after page.After.
func (r *ResourceRepo) List(ctx context.Context, page ports.PageRequest) ([]domain.Resource, error) {
	q := `SELECT ` + resourceColumns + ` FROM resources`
	args := pgx.NamedArgs{"limit": page.Limit + 1}

	if page.After != nil {
		q += ` WHERE (created_at, id) < (@after_created_at, @after_id::uuid)`
		args["after_created_at"] = page.After.CreatedAt.UTC()
		args["after_id"] = page.After.ID
	}
	q += ` ORDER BY created_at DESC, id DESC LIMIT @limit`

	rows, err := r.db.Query(ctx, q, args)
	if err != nil {
		return nil, fmt.Errorf("postgres.ResourceRepo.List: %w", err)
	}

	out, err := collectResources(rows, scanResource)
	if err != nil {
		return nil, fmt.Errorf("postgres.ResourceRepo.List: %w", err)
	}
	return out, nil
}

// Nearby computes Haversine distances in SQL and returns the disaster's
// resources within the radius, nearest first.
func (r *ResourceRepo) Nearby(ctx context.Context, nq domain.NearbyQuery) ([]domain.Resource, error) {
	if !validID(nq.DisasterID) {
		return []domain.Resource{}, nil
	}

	const q = `
		SELECT ` + resourceColumns + `, distance
		FROM (
			SELECT *,
				2 * @earth_radius::float8 * asin(least(1, sqrt(
					power(sin(radians(latitude - @lat::float8) / 2), 2) +
					cos(radians(@lat::float8)) * cos(radians(latitude)) *
					power(sin(radians(longitude - @lng::float8) / 2), 2)
				))) AS distance
			FROM resources
			WHERE disaster_id = @disaster_id::uuid
		) AS r
		WHERE distance <= @radius::float8
		ORDER BY distance, created_at`

	args := pgx.NamedArgs{
		"earth_radius": domain.EarthRadiusMeters,
		"lat":          nq.Center.Lat,
		"lng":          nq.Center.Lng,
		"disaster_id":  nq.DisasterID,
		"radius":       nq.RadiusMeters,
	}

	rows, err := r.db.Query(ctx, q, args)
	if err != nil {
		return nil, fmt.Errorf("postgres.ResourceRepo.Nearby: %w", err)
	}

	out, err := collectResources(rows, scanNearbyResource)
	if err != nil {
		return nil, fmt.Errorf("postgres.ResourceRepo.Nearby: %w", err)
	}
	return out, nil
}

func collectResources(rows pgx.Rows, scan func(scanner) (*domain.Resource, error)) ([]domain.Resource, error) {
	defer rows.Close()

	out := make([]domain.Resource, 0)
	for rows.Next() {
		res, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		out = append(out, *res)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return out, nil
}

func scanResource(s scanner) (*domain.Resource, error) {
	var res domain.Resource
	err := s.Scan(
		&res.ID, &res.DisasterID, &res.Name, &res.LocationName, &res.Type,
		&res.Location.Lat, &res.Location.Lng, &res.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	res.CreatedAt = res.CreatedAt.UTC()
	return &res, nil
}

func scanNearbyResource(s scanner) (*domain.Resource, error) {
	var res domain.Resource
	err := s.Scan(
		&res.ID, &res.DisasterID, &res.Name, &res.LocationName, &res.Type,
		&res.Location.Lat, &res.Location.Lng, &res.CreatedAt, &res.DistanceMeters,
	)
	if err != nil {
		return nil, err
	}
	res.CreatedAt = res.CreatedAt.UTC()
	return &res, nil
}
