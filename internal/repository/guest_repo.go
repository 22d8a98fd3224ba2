package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"hotelbooking/internal/db"
	apperrors "hotelbooking/internal/errors"
)

type GuestRepository struct {
	DB *sql.DB
}

func NewGuestRepository(database *sql.DB) *GuestRepository {
	return &GuestRepository{DB: database}
}

func (r *GuestRepository) GetByEmail(ctx context.Context, email string) (*db.Guest, error) {
	var g db.Guest
	err := r.DB.QueryRowContext(ctx,
		`SELECT guest_id, fname, lname, email, phone_no, created_at FROM guests WHERE email = $1`,
		email,
	).Scan(&g.ID, &g.FirstName, &g.LastName, &g.Email, &g.Phone, &g.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrGuestNotFound
		}
		return nil, fmt.Errorf("error querying guest by email: %w", err)
	}
	return &g, nil
}

func (r *GuestRepository) Create(ctx context.Context, g *db.Guest) error {
	err := r.DB.QueryRowContext(ctx,
		`INSERT INTO guests (fname, lname, email, phone_no)
		 VALUES ($1, $2, $3, $4)
		 RETURNING guest_id, created_at`,
		g.FirstName, g.LastName, g.Email, g.Phone,
	).Scan(&g.ID, &g.CreatedAt)
	if err != nil {
		return fmt.Errorf("error inserting guest: %w", err)
	}
	return nil
}

// Upsert resolves a guest by email, creating the row if absent. A concurrent
// insert losing the unique-constraint race falls back to the lookup.
func (r *GuestRepository) Upsert(ctx context.Context, g *db.Guest) (*db.Guest, error) {
	existing, err := r.GetByEmail(ctx, g.Email)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, apperrors.ErrGuestNotFound) {
		return nil, err
	}
	if err := r.Create(ctx, g); err != nil {
		if apperrors.IsUniqueViolation(err) {
			return r.GetByEmail(ctx, g.Email)
		}
		return nil, err
	}
	return g, nil
}
