package repository

import (
	"context"
	"database/sql"

	"github.com/tomengsanchez/ecosys-main-sub000/internal/model"
	"github.com/tomengsanchez/ecosys-main-sub000/internal/scheduler"
)

// ResourceRepo reads the resource catalog.  The catalog is mutated by an
// external administration surface; this service only gates reservation
// creation on it and renders it for browsing, so the repository exposes
// lookups only.
type ResourceRepo struct {
	db *sql.DB
}

// NewResourceRepo returns a ResourceRepo bound to the given database.
func NewResourceRepo(db *sql.DB) *ResourceRepo { return &ResourceRepo{db: db} }

const resourceColumns = `id, name, type, status, description, created_at`

func scanResource(scan func(dest ...interface{}) error) (*model.Resource, error) {
	var res model.Resource
	var description sql.NullString
	if err := scan(&res.ID, &res.Name, &res.Type, &res.Status, &description, &res.CreatedAt); err != nil {
		return nil, err
	}
	if description.Valid {
		d := description.String
		res.Description = &d
	}
	return &res, nil
}

// GetResource loads a resource by id.  A missing row yields
// *scheduler.NotFoundError.  Implements scheduler.ResourceStore.
func (r *ResourceRepo) GetResource(ctx context.Context, id uint64) (*model.Resource, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+resourceColumns+` FROM resources WHERE id = ?`, id)
	res, err := scanResource(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, &scheduler.NotFoundError{Kind: "resource", ID: id}
		}
		return nil, err
	}
	return res, nil
}

// List returns catalog entries ordered by name, optionally filtered by
// type and status.  Empty filter values match everything.
func (r *ResourceRepo) List(ctx context.Context, resourceType model.ResourceType, status model.ResourceStatus) ([]model.Resource, error) {
	query := `SELECT ` + resourceColumns + ` FROM resources`
	args := []interface{}{}
	clauses := []string{}
	if resourceType != "" {
		clauses = append(clauses, `type = ?`)
		args = append(args, string(resourceType))
	}
	if status != "" {
		clauses = append(clauses, `status = ?`)
		args = append(args, string(status))
	}
	for i, clause := range clauses {
		if i == 0 {
			query += ` WHERE ` + clause
		} else {
			query += ` AND ` + clause
		}
	}
	query += ` ORDER BY name, id`
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.Resource, 0)
	for rows.Next() {
		res, err := scanResource(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, *res)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
