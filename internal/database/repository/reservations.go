package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/mattn/go-sqlite3"
)

// ErrDuplicateReference reports an insert whose reference code is taken.
var ErrDuplicateReference = errors.New("reservation reference already used")

const reservationColumns = `id, reference, guests, kid_chair, reserved_at, country_iso2, dial_code, phone, email, comment, created_at`

// ReservationRepo handles the reservation ledger.
type ReservationRepo struct {
	db *sql.DB
}

func NewReservationRepo(db *sql.DB) *ReservationRepo { return &ReservationRepo{db: db} }

func (r *ReservationRepo) Insert(ctx context.Context, res Reservation) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO reservations(
	 id, reference, guests, kid_chair, reserved_at, country_iso2, dial_code, phone, email, comment, created_at)
	VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);
	`,
		res.ID, res.Reference, res.Guests, res.KidChair, res.ReservedAt.UTC(), res.CountryISO2,
		res.DialCode, res.Phone, res.Email, res.Comment, res.CreatedAt.UTC())
	if isReferenceConflict(err) {
		return ErrDuplicateReference
	}
	return err
}

func isReferenceConflict(err error) bool {
	var se sqlite3.Error
	if !errors.As(err, &se) {
		return false
	}
	return se.ExtendedCode == sqlite3.ErrConstraintUnique && strings.Contains(se.Error(), "reservations.reference")
}

func (r *ReservationRepo) Get(ctx context.Context, id string) (*Reservation, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+reservationColumns+` FROM reservations WHERE id = ?`, id)
	return scanOne(row)
}

func (r *ReservationRepo) ByReference(ctx context.Context, ref string) (*Reservation, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+reservationColumns+` FROM reservations WHERE reference = ?`, strings.ToUpper(ref))
	return scanOne(row)
}

func (r *ReservationRepo) List(ctx context.Context, f ReservationFilters) ([]Reservation, error) {
	var where []string
	var args []interface{}

	if !f.From.IsZero() {
		where = append(where, "reserved_at >= ?")
		args = append(args, f.From.UTC())
	}
	if !f.To.IsZero() {
		where = append(where, "reserved_at < ?")
		args = append(args, f.To.UTC())
	}
	if f.Email != "" {
		where = append(where, "lower(email) = lower(?)")
		args = append(args, f.Email)
	}

	q := `SELECT ` + reservationColumns + ` FROM reservations`
	if len(where) > 0 {
		q += " WHERE " + strings.Join(where, " AND ")
	}
	q += " ORDER BY reserved_at ASC, created_at ASC"

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Reservation
	for rows.Next() {
		var res Reservation
		if err := scanInto(rows, &res); err != nil {
			return nil, err
		}
		out = append(out, res)
	}
	return out, rows.Err()
}

func (r *ReservationRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM reservations`).Scan(&n)
	return n, err
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanInto(s scanner, res *Reservation) error {
	return s.Scan(&res.ID, &res.Reference, &res.Guests, &res.KidChair, &res.ReservedAt, &res.CountryISO2,
		&res.DialCode, &res.Phone, &res.Email, &res.Comment, &res.CreatedAt)
}

func scanOne(row *sql.Row) (*Reservation, error) {
	var res Reservation
	if err := scanInto(row, &res); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &res, nil
}
