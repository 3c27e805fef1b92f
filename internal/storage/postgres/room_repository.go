package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/salomebobokhidze/HotelManagement/internal/domain"
)

type RoomRepository struct {
	pool *pgxpool.Pool
}

func NewRoomRepository(pool *pgxpool.Pool) *RoomRepository {
	return &RoomRepository{pool: pool}
}

func (r *RoomRepository) CreateRoom(ctx context.Context, room domain.Room) error {
	const stmt = `
INSERT INTO rooms (id, hotel_id, name, price_cents, created_at)
VALUES ($1, $2, $3, $4, $5)`
	_, err := r.pool.Exec(ctx, stmt, room.ID, room.HotelID, room.Name, room.PriceCents, room.CreatedAt)
	if err != nil {
		if isInvalidUUID(err) {
			return domain.ErrInvalidID
		}
		if isForeignKeyViolation(err) {
			return domain.ErrHotelNotFound
		}
		return fmt.Errorf("create room: %w", err)
	}
	return nil
}

func (r *RoomRepository) GetRoom(ctx context.Context, id string) (domain.Room, error) {
	const query = `SELECT id, hotel_id, name, price_cents, created_at FROM rooms WHERE id = $1`
	var room domain.Room
	err := r.pool.QueryRow(ctx, query, id).
		Scan(&room.ID, &room.HotelID, &room.Name, &room.PriceCents, &room.CreatedAt)
	if err != nil {
		if isInvalidUUID(err) {
			return domain.Room{}, domain.ErrInvalidID
		}
		if err == pgx.ErrNoRows {
			return domain.Room{}, domain.ErrRoomNotFound
		}
		return domain.Room{}, fmt.Errorf("get room: %w", err)
	}
	return room, nil
}

func (r *RoomRepository) ListRooms(ctx context.Context, filter domain.RoomFilter) ([]domain.Room, error) {
	const query = `
SELECT id, hotel_id, name, price_cents, created_at
FROM rooms
WHERE ($1 = '' OR hotel_id::text = $1)
  AND ($2 = 0 OR price_cents >= $2)
  AND ($3 = 0 OR price_cents <= $3)
ORDER BY created_at ASC`
	rows, err := r.pool.Query(ctx, query, filter.HotelID, filter.MinPriceCents, filter.MaxPriceCents)
	if err != nil {
		if isInvalidUUID(err) {
			return nil, domain.ErrInvalidID
		}
		return nil, fmt.Errorf("list rooms: %w", err)
	}
	defer rows.Close()

	var rooms []domain.Room
	for rows.Next() {
		var room domain.Room
		if err := rows.Scan(&room.ID, &room.HotelID, &room.Name, &room.PriceCents, &room.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan room: %w", err)
		}
		rooms = append(rooms, room)
	}
	if rows.Err() != nil {
		if isInvalidUUID(rows.Err()) {
			return nil, domain.ErrInvalidID
		}
		return nil, fmt.Errorf("iterate rooms: %w", rows.Err())
	}
	return rooms, nil
}

func (r *RoomRepository) UpdateRoom(ctx context.Context, room domain.Room) error {
	const stmt = `UPDATE rooms SET name = $2, price_cents = $3 WHERE id = $1`
	tag, err := r.pool.Exec(ctx, stmt, room.ID, room.Name, room.PriceCents)
	if err != nil {
		if isInvalidUUID(err) {
			return domain.ErrInvalidID
		}
		return fmt.Errorf("update room: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrRoomNotFound
	}
	return nil
}

func (r *RoomRepository) DeleteRoom(ctx context.Context, id string) error {
	const stmt = `DELETE FROM rooms WHERE id = $1`
	tag, err := r.pool.Exec(ctx, stmt, id)
	if err != nil {
		if isInvalidUUID(err) {
			return domain.ErrInvalidID
		}
		return fmt.Errorf("delete room: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrRoomNotFound
	}
	return nil
}
