package repository

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/tomengsanchez/ecosys-main-sub000/internal/model"
	"github.com/tomengsanchez/ecosys-main-sub000/internal/scheduler"
)

// ReservationRepo provides CRUD and interval queries for reservations.
// It implements scheduler.ReservationStore.  All timestamps are stored
// and compared in UTC.
type ReservationRepo struct {
	db *sql.DB
}

// NewReservationRepo returns a ReservationRepo bound to the given database.
func NewReservationRepo(db *sql.DB) *ReservationRepo { return &ReservationRepo{db: db} }

// DB exposes the underlying handle so callers can open transactions that
// span repositories.
func (r *ReservationRepo) DB() *sql.DB { return r.db }

const reservationColumns = `id, resource_id, requester_id, status, purpose, destination, starts_at, ends_at, created_at, updated_at`

// scanReservation reads one row into a model.Reservation.  The scanner
// argument accepts both *sql.Row and *sql.Rows.
func scanReservation(scan func(dest ...interface{}) error) (*model.Reservation, error) {
	var res model.Reservation
	var destination sql.NullString
	if err := scan(
		&res.ID, &res.ResourceID, &res.RequesterID, &res.Status, &res.Purpose,
		&destination, &res.StartsAt, &res.EndsAt, &res.CreatedAt, &res.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if destination.Valid {
		d := destination.String
		res.Destination = &d
	}
	return &res, nil
}

// FindOverlapping returns every reservation on the resource whose
// half-open interval [starts_at, ends_at) overlaps [start, end) and whose
// status is in statuses.  Back-to-back intervals do not match.  When
// excludeID is non-zero that reservation is omitted from the result.  No
// ordering is imposed; callers sort where they need to.
func (r *ReservationRepo) FindOverlapping(ctx context.Context, resourceID uint64, start, end time.Time, statuses []model.ReservationStatus, excludeID uint64) ([]model.Reservation, error) {
	if len(statuses) == 0 {
		return []model.Reservation{}, nil
	}
	placeholders := make([]string, 0, len(statuses))
	args := []interface{}{resourceID, end, start}
	for _, s := range statuses {
		placeholders = append(placeholders, "?")
		args = append(args, string(s))
	}
	query := `SELECT ` + reservationColumns + ` FROM reservations
	          WHERE resource_id = ? AND starts_at < ? AND ends_at > ?
	          AND status IN (` + strings.Join(placeholders, ",") + `)`
	if excludeID != 0 {
		query += ` AND id <> ?`
		args = append(args, excludeID)
	}
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.Reservation, 0)
	for rows.Next() {
		res, err := scanReservation(rows.Scan)
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

// GetReservation loads a reservation by id.  A missing row yields
// *scheduler.NotFoundError.
func (r *ReservationRepo) GetReservation(ctx context.Context, id uint64) (*model.Reservation, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+reservationColumns+` FROM reservations WHERE id = ?`, id)
	res, err := scanReservation(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, &scheduler.NotFoundError{Kind: "reservation", ID: id}
		}
		return nil, err
	}
	return res, nil
}

// CreateBatch inserts the given reservations inside one transaction and
// populates their generated IDs.  Either every row is written or none;
// a failure part-way rolls the whole batch back.
func (r *ReservationRepo) CreateBatch(ctx context.Context, reservations []*model.Reservation) error {
	if len(reservations) == 0 {
		return nil
	}
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()
	const q = `INSERT INTO reservations
	           (resource_id, requester_id, status, purpose, destination, starts_at, ends_at, created_at, updated_at)
	           VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	for _, res := range reservations {
		var destination interface{}
		if res.Destination != nil {
			destination = *res.Destination
		}
		result, err := tx.ExecContext(ctx, q,
			res.ResourceID, res.RequesterID, string(res.Status), res.Purpose,
			destination, res.StartsAt, res.EndsAt, res.CreatedAt, res.UpdatedAt,
		)
		if err != nil {
			return err
		}
		id, err := result.LastInsertId()
		if err != nil {
			return err
		}
		res.ID = uint64(id)
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	committed = true
	return nil
}

// UpdateStatus transitions a reservation to the given status, stamps
// updated_at and returns the fresh record.  A missing row yields
// *scheduler.NotFoundError.
func (r *ReservationRepo) UpdateStatus(ctx context.Context, id uint64, status model.ReservationStatus) (*model.Reservation, error) {
	result, err := r.db.ExecContext(ctx,
		`UPDATE reservations SET status = ?, updated_at = UTC_TIMESTAMP() WHERE id = ?`,
		string(status), id)
	if err != nil {
		return nil, err
	}
	// RowsAffected is zero both for a missing row and for a no-op write;
	// the follow-up read distinguishes the two.
	if _, err := result.RowsAffected(); err != nil {
		return nil, err
	}
	return r.GetReservation(ctx, id)
}

// ListByRequester returns all reservations created by the given user,
// newest first.
func (r *ReservationRepo) ListByRequester(ctx context.Context, requesterID uint64) ([]model.Reservation, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+reservationColumns+` FROM reservations WHERE requester_id = ? ORDER BY created_at DESC, id DESC`,
		requesterID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectReservations(rows)
}

// List returns reservations across all requesters for administrators,
// optionally filtered by status, newest first.
func (r *ReservationRepo) List(ctx context.Context, status model.ReservationStatus) ([]model.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations`
	args := []interface{}{}
	if status != "" {
		query += ` WHERE status = ?`
		args = append(args, string(status))
	}
	query += ` ORDER BY created_at DESC, id DESC`
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectReservations(rows)
}

func collectReservations(rows *sql.Rows) ([]model.Reservation, error) {
	out := make([]model.Reservation, 0)
	for rows.Next() {
		res, err := scanReservation(rows.Scan)
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
