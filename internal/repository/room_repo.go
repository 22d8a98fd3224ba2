package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"hotelbooking/internal/db"
	apperrors "hotelbooking/internal/errors"
)

type RoomRepository struct {
	DB *sql.DB
}

func NewRoomRepository(database *sql.DB) *RoomRepository {
	return &RoomRepository{DB: database}
}

func (r *RoomRepository) GetByNumber(ctx context.Context, roomNumber string) (*db.Room, error) {
	var room db.Room
	err := r.DB.QueryRowContext(ctx,
		`SELECT room_number, room_type, price, status FROM rooms WHERE room_number = $1`,
		roomNumber,
	).Scan(&room.RoomNumber, &room.RoomType, &room.Price, &room.Status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrRoomNotFound
		}
		return nil, fmt.Errorf("error querying room by number: %w", err)
	}
	return &room, nil
}

func (r *RoomRepository) ListRooms(ctx context.Context, status string) ([]db.Room, error) {
	query := `SELECT room_number, room_type, price, status FROM rooms`
	args := []interface{}{}
	if status != "" {
		query += ` WHERE status = $1`
		args = append(args, status)
	}
	query += ` ORDER BY room_number`

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing rooms: %w", err)
	}
	defer rows.Close()

	var rooms []db.Room
	for rows.Next() {
		var room db.Room
		if err := rows.Scan(&room.RoomNumber, &room.RoomType, &room.Price, &room.Status); err != nil {
			return nil, fmt.Errorf("error scanning room: %w", err)
		}
		rooms = append(rooms, room)
	}
	return rooms, rows.Err()
}

// SaveRoomInfo captures a raw room-details form submission and returns the
// new row's id.
func (r *RoomRepository) SaveRoomInfo(ctx context.Context, info *db.RoomInfo) (int, error) {
	var id int
	err := r.DB.QueryRowContext(ctx,
		`INSERT INTO roominfo (room_type, check_in, check_out, no_of_guests, room_rate)
		 VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		info.RoomType, info.CheckIn, info.CheckOut, info.NoOfGuests, info.RoomRate,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("error inserting room info: %w", err)
	}
	return id, nil
}
