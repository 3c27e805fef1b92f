package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/salomebobokhidze/HotelManagement/internal/domain"
)

type ReservationRepository struct {
	pool *pgxpool.Pool
}

func NewReservationRepository(pool *pgxpool.Pool) *ReservationRepository {
	return &ReservationRepository{pool: pool}
}

func (r *ReservationRepository) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return withTx(ctx, r.pool, fn)
}

// GetRoomForUpdate locks the room row for the rest of the transaction.
// Concurrent bookings for the same room serialize on this lock.
func (r *ReservationRepository) GetRoomForUpdate(ctx context.Context, roomID string) (domain.Room, error) {
	const query = `SELECT id, hotel_id, name, price_cents, created_at FROM rooms WHERE id = $1 FOR UPDATE`
	var room domain.Room
	err := r.queryRow(ctx, query, roomID).
		Scan(&room.ID, &room.HotelID, &room.Name, &room.PriceCents, &room.CreatedAt)
	if err != nil {
		if isInvalidUUID(err) {
			return domain.Room{}, domain.ErrInvalidID
		}
		if err == pgx.ErrNoRows {
			return domain.Room{}, domain.ErrRoomNotFound
		}
		return domain.Room{}, fmt.Errorf("get room for update: %w", err)
	}
	return room, nil
}

func (r *ReservationRepository) ListActiveByRoom(ctx context.Context, roomID string) ([]domain.Reservation, error) {
	const query = `
SELECT id, room_id, hotel_id, guest_id, check_in, check_out, status, created_at
FROM reservations
WHERE room_id = $1 AND status = 'active'
ORDER BY check_in ASC`

	rows, err := r.query(ctx, query, roomID)
	if err != nil {
		if isInvalidUUID(err) {
			return nil, domain.ErrInvalidID
		}
		return nil, fmt.Errorf("list reservations: %w", err)
	}
	defer rows.Close()

	var reservations []domain.Reservation
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("scan reservation: %w", err)
		}
		reservations = append(reservations, res)
	}
	if rows.Err() != nil {
		if isInvalidUUID(rows.Err()) {
			return nil, domain.ErrInvalidID
		}
		return nil, fmt.Errorf("iterate reservations: %w", rows.Err())
	}
	return reservations, nil
}

func (r *ReservationRepository) CreateReservation(ctx context.Context, res domain.Reservation) error {
	const stmt = `
INSERT INTO reservations (id, room_id, hotel_id, guest_id, check_in, check_out, status, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.exec(ctx, stmt,
		res.ID,
		res.RoomID,
		res.HotelID,
		res.GuestID,
		res.CheckIn,
		res.CheckOut,
		res.Status,
		res.CreatedAt,
	)
	if err != nil {
		// The exclusion constraint is a backstop behind the room lock:
		// it fires only if the coordinator was bypassed.
		if isExclusionViolation(err) {
			return domain.ErrRoomUnavailable
		}
		if isUniqueViolation(err) {
			return fmt.Errorf("duplicate reservation id %s: %w", res.ID, err)
		}
		if isForeignKeyViolation(err) {
			return domain.ErrRoomNotFound
		}
		if isInvalidUUID(err) {
			return domain.ErrInvalidID
		}
		return fmt.Errorf("create reservation: %w", err)
	}
	return nil
}

func (r *ReservationRepository) GetReservation(ctx context.Context, id string) (domain.Reservation, error) {
	const query = `
SELECT id, room_id, hotel_id, guest_id, check_in, check_out, status, created_at
FROM reservations
WHERE id = $1`

	res, err := scanReservation(r.queryRow(ctx, query, id))
	if err != nil {
		if isInvalidUUID(err) {
			return domain.Reservation{}, domain.ErrInvalidID
		}
		if err == pgx.ErrNoRows {
			return domain.Reservation{}, domain.ErrReservationNotFound
		}
		return domain.Reservation{}, fmt.Errorf("get reservation: %w", err)
	}
	return res, nil
}

func (r *ReservationRepository) UpdateReservationStatus(ctx context.Context, id string, status domain.ReservationStatus) error {
	const stmt = `UPDATE reservations SET status = $2 WHERE id = $1`

	tag, err := r.exec(ctx, stmt, id, status)
	if err != nil {
		if isInvalidUUID(err) {
			return domain.ErrInvalidID
		}
		return fmt.Errorf("update reservation status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrReservationNotFound
	}
	return nil
}

func scanReservation(row pgx.Row) (domain.Reservation, error) {
	var res domain.Reservation
	var status string
	err := row.Scan(&res.ID, &res.RoomID, &res.HotelID, &res.GuestID,
		&res.CheckIn, &res.CheckOut, &status, &res.CreatedAt)
	if err != nil {
		return domain.Reservation{}, err
	}
	res.Status = domain.ReservationStatus(status)
	res.CheckIn = res.CheckIn.UTC()
	res.CheckOut = res.CheckOut.UTC()
	return res, nil
}

func (r *ReservationRepository) exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	if tx := txFromContext(ctx); tx != nil {
		return tx.Exec(ctx, sql, args...)
	}
	return r.pool.Exec(ctx, sql, args...)
}

func (r *ReservationRepository) query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	if tx := txFromContext(ctx); tx != nil {
		return tx.Query(ctx, sql, args...)
	}
	return r.pool.Query(ctx, sql, args...)
}

func (r *ReservationRepository) queryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	if tx := txFromContext(ctx); tx != nil {
		return tx.QueryRow(ctx, sql, args...)
	}
	return r.pool.QueryRow(ctx, sql, args...)
}
