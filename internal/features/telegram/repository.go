// Package telegram — repository.go выполняет операции с таблицей
// telegram_links.
package telegram

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"gamerhub.ru/rewards-backend/internal/common"
)

// Repository предоставляет методы для работы с привязками Telegram.
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository создаёт новый репозиторий привязок.
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// UpsertToken записывает новый токен привязки для пользователя.
// Повторный запрос перезаписывает старый токен — действителен
// всегда только последний.
func (r *Repository) UpsertToken(ctx context.Context, userID int64, token string) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO telegram_links (user_id, link_token)
		VALUES ($1, $2)
		ON CONFLICT (user_id) DO UPDATE
		SET link_token = EXCLUDED.link_token, created_at = NOW()
	`, userID, token)
	if err != nil {
		return fmt.Errorf("ошибка записи токена привязки: %w", err)
	}
	return nil
}

// CompleteLink подтверждает привязку по токену: записывает данные
// Telegram-аккаунта и помечает пользователя проверенным.
// Обе записи обновляются в одной транзакции.
func (r *Repository) CompleteLink(ctx context.Context, token string, telegramUserID int64, telegramUsername string) (int64, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("ошибка начала транзакции: %w", err)
	}
	defer tx.Rollback(ctx)

	link := Link{LinkToken: token}
	err = tx.QueryRow(ctx, `
		SELECT id, user_id FROM telegram_links WHERE link_token = $1 FOR UPDATE
	`, token).Scan(&link.ID, &link.UserID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, common.ErrLinkTokenNotFound
		}
		return 0, fmt.Errorf("ошибка поиска токена: %w", err)
	}

	_, err = tx.Exec(ctx, `
		UPDATE telegram_links
		SET telegram_user_id = $1, telegram_username = $2, linked_at = NOW()
		WHERE id = $3
	`, telegramUserID, telegramUsername, link.ID)
	if err != nil {
		return 0, fmt.Errorf("ошибка подтверждения привязки: %w", err)
	}

	_, err = tx.Exec(ctx, `
		UPDATE users SET telegram_verified = TRUE, updated_at = NOW() WHERE id = $1
	`, link.UserID)
	if err != nil {
		return 0, fmt.Errorf("ошибка установки флага проверки: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("ошибка фиксации транзакции: %w", err)
	}
	return link.UserID, nil
}

// PruneStale удаляет неподтверждённые токены старше cutoff.
// Запускается кроном, чтобы брошенные токены не жили вечно.
func (r *Repository) PruneStale(ctx context.Context, cutoff time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx, `
		DELETE FROM telegram_links WHERE linked_at IS NULL AND created_at < $1
	`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("ошибка очистки токенов: %w", err)
	}
	return tag.RowsAffected(), nil
}
