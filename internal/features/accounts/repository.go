// Package accounts — repository.go выполняет операции с таблицей users.
package accounts

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"gamerhub.ru/rewards-backend/internal/common"
)

// Repository предоставляет методы для работы с таблицей users.
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository создаёт новый репозиторий пользователей.
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

const userColumns = `id, email, username, password_hash, points, tickets,
	telegram_verified, last_daily_login_at, last_fortune_spin_at, created_at, updated_at`

func scanUser(row pgx.Row) (*User, error) {
	var u User
	err := row.Scan(
		&u.ID, &u.Email, &u.Username, &u.PasswordHash, &u.Points, &u.Tickets,
		&u.TelegramVerified, &u.LastDailyLoginAt, &u.LastFortuneSpinAt,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Create регистрирует нового пользователя с нулевыми балансами.
// Если email уже занят — возвращает common.ErrEmailTaken.
func (r *Repository) Create(ctx context.Context, email, username, passwordHash string) (*User, error) {
	query := `
		INSERT INTO users (email, username, password_hash)
		VALUES ($1, $2, $3)
		RETURNING ` + userColumns
	u, err := scanUser(r.db.QueryRow(ctx, query, email, username, passwordHash))
	if err != nil {
		// 23505 — нарушение уникальности (email занят)
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, common.ErrEmailTaken
		}
		return nil, fmt.Errorf("ошибка создания пользователя: %w", err)
	}
	return u, nil
}

// GetByEmail возвращает пользователя по email.
func (r *Repository) GetByEmail(ctx context.Context, email string) (*User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	u, err := scanUser(r.db.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, common.ErrUserNotFound
		}
		return nil, fmt.Errorf("ошибка поиска пользователя: %w", err)
	}
	return u, nil
}

// GetByID возвращает пользователя по ID.
func (r *Repository) GetByID(ctx context.Context, userID int64) (*User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	u, err := scanUser(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, common.ErrUserNotFound
		}
		return nil, fmt.Errorf("ошибка поиска пользователя: %w", err)
	}
	return u, nil
}
