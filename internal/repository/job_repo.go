package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/lib/pq"

	"hotelbooking/internal/db"
)

type JobRepository struct {
	DB *sql.DB
}

func NewJobRepository(database *sql.DB) *JobRepository {
	return &JobRepository{DB: database}
}

// GetRoomsPastCheckout returns room numbers that are still marked
// unavailable although every booking holding them has checked out.
func (r *JobRepository) GetRoomsPastCheckout(ctx context.Context) ([]string, error) {
	query := `
		SELECT rm.room_number
		FROM rooms rm
		WHERE rm.status = $1
		  AND NOT EXISTS (
			SELECT 1 FROM bookings b
			WHERE b.room_number = rm.room_number
			  AND (b.check_out_date IS NULL OR b.check_out_date >= CURRENT_DATE)
		  )`
	rows, err := r.DB.QueryContext(ctx, query, db.RoomStatusUnavailable)
	if err != nil {
		return nil, fmt.Errorf("error querying rooms past checkout: %w", err)
	}
	defer rows.Close()

	var numbers []string
	for rows.Next() {
		var n string
		if err := rows.Scan(&n); err != nil {
			return nil, fmt.Errorf("error scanning room number: %w", err)
		}
		numbers = append(numbers, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating rows: %w", err)
	}
	return numbers, nil
}

// ReleaseRooms flips the given rooms back to available.
func (r *JobRepository) ReleaseRooms(ctx context.Context, roomNumbers []string) error {
	if len(roomNumbers) == 0 {
		return nil
	}
	result, err := r.DB.ExecContext(ctx,
		`UPDATE rooms SET status = $1 WHERE room_number = ANY($2)`,
		db.RoomStatusAvailable, pq.Array(roomNumbers),
	)
	if err != nil {
		return fmt.Errorf("error releasing rooms: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Printf("Could not get rows affected: %v", err)
	} else {
		log.Printf("Released %d rooms back to '%s'", rowsAffected, db.RoomStatusAvailable)
	}
	return nil
}
