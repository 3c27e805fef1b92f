package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/salomebobokhidze/HotelManagement/internal/domain"
)

type HotelRepository struct {
	pool *pgxpool.Pool
}

func NewHotelRepository(pool *pgxpool.Pool) *HotelRepository {
	return &HotelRepository{pool: pool}
}

func (r *HotelRepository) CreateHotel(ctx context.Context, hotel domain.Hotel) error {
	const stmt = `
INSERT INTO hotels (id, name, rating, country, city, address, manager_id, created_at)
VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, ''), $8)`
	_, err := r.pool.Exec(ctx, stmt,
		hotel.ID, hotel.Name, hotel.Rating, hotel.Country, hotel.City, hotel.Address, hotel.ManagerID, hotel.CreatedAt)
	if err != nil {
		if isInvalidUUID(err) {
			return domain.ErrInvalidID
		}
		if isForeignKeyViolation(err) {
			return domain.ErrUserNotFound
		}
		return fmt.Errorf("create hotel: %w", err)
	}
	return nil
}

func (r *HotelRepository) GetHotel(ctx context.Context, id string) (domain.Hotel, error) {
	const query = `
SELECT id, name, rating, country, city, address, COALESCE(manager_id::text, ''), created_at
FROM hotels
WHERE id = $1`
	var h domain.Hotel
	err := r.pool.QueryRow(ctx, query, id).
		Scan(&h.ID, &h.Name, &h.Rating, &h.Country, &h.City, &h.Address, &h.ManagerID, &h.CreatedAt)
	if err != nil {
		if isInvalidUUID(err) {
			return domain.Hotel{}, domain.ErrInvalidID
		}
		if err == pgx.ErrNoRows {
			return domain.Hotel{}, domain.ErrHotelNotFound
		}
		return domain.Hotel{}, fmt.Errorf("get hotel: %w", err)
	}
	return h, nil
}

func (r *HotelRepository) ListHotels(ctx context.Context) ([]domain.Hotel, error) {
	const query = `
SELECT id, name, rating, country, city, address, COALESCE(manager_id::text, ''), created_at
FROM hotels
ORDER BY created_at ASC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list hotels: %w", err)
	}
	defer rows.Close()

	var hotels []domain.Hotel
	for rows.Next() {
		var h domain.Hotel
		if err := rows.Scan(&h.ID, &h.Name, &h.Rating, &h.Country, &h.City, &h.Address, &h.ManagerID, &h.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan hotel: %w", err)
		}
		hotels = append(hotels, h)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("iterate hotels: %w", rows.Err())
	}
	return hotels, nil
}

func (r *HotelRepository) UpdateHotel(ctx context.Context, hotel domain.Hotel) error {
	const stmt = `
UPDATE hotels
SET name = $2, rating = $3, country = $4, city = $5, address = $6
WHERE id = $1`
	tag, err := r.pool.Exec(ctx, stmt,
		hotel.ID, hotel.Name, hotel.Rating, hotel.Country, hotel.City, hotel.Address)
	if err != nil {
		if isInvalidUUID(err) {
			return domain.ErrInvalidID
		}
		return fmt.Errorf("update hotel: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrHotelNotFound
	}
	return nil
}

func (r *HotelRepository) DeleteHotel(ctx context.Context, id string) error {
	const stmt = `DELETE FROM hotels WHERE id = $1`
	tag, err := r.pool.Exec(ctx, stmt, id)
	if err != nil {
		if isInvalidUUID(err) {
			return domain.ErrInvalidID
		}
		return fmt.Errorf("delete hotel: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrHotelNotFound
	}
	return nil
}
