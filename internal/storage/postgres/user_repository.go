package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/salomebobokhidze/HotelManagement/internal/domain"
)

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) CreateUser(ctx context.Context, user domain.User) error {
	const stmt = `
INSERT INTO users (id, email, password_hash, first_name, last_name, personal_number, role, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.pool.Exec(ctx, stmt,
		user.ID, user.Email, user.PasswordHash, user.FirstName, user.LastName,
		user.PersonalNumber, user.Role, user.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailTaken
		}
		if isInvalidUUID(err) {
			return domain.ErrInvalidID
		}
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	const query = `
SELECT id, email, password_hash, first_name, last_name, personal_number, role, created_at
FROM users
WHERE email = $1`
	return r.getUser(ctx, query, email)
}

func (r *UserRepository) GetUser(ctx context.Context, id string) (domain.User, error) {
	const query = `
SELECT id, email, password_hash, first_name, last_name, personal_number, role, created_at
FROM users
WHERE id = $1`
	return r.getUser(ctx, query, id)
}

func (r *UserRepository) getUser(ctx context.Context, query string, arg any) (domain.User, error) {
	var u domain.User
	var role string
	err := r.pool.QueryRow(ctx, query, arg).
		Scan(&u.ID, &u.Email, &u.PasswordHash, &u.FirstName, &u.LastName, &u.PersonalNumber, &role, &u.CreatedAt)
	if err != nil {
		if isInvalidUUID(err) {
			return domain.User{}, domain.ErrInvalidID
		}
		if err == pgx.ErrNoRows {
			return domain.User{}, domain.ErrUserNotFound
		}
		return domain.User{}, fmt.Errorf("get user: %w", err)
	}
	u.Role = domain.Role(role)
	return u, nil
}
