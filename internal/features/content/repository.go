// Package content — repository.go выполняет операции с таблицами
// streams и highlights.
package content

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrStreamNotFound — стрим не найден (витрина, не бизнес-отказ ядра).
var ErrStreamNotFound = errors.New("стрим не найден")

// Repository предоставляет методы для работы с витриной.
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository создаёт новый репозиторий витрины.
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

const streamColumns = `id, title, description, streamer_name, thumbnail_url,
	video_url, game, is_live, views, started_at, updated_at`

// ListStreams возвращает стримы: живые сверху, затем по свежести.
func (r *Repository) ListStreams(ctx context.Context) ([]*Stream, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+streamColumns+` FROM streams
		ORDER BY is_live DESC, started_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения стримов: %w", err)
	}
	defer rows.Close()

	var streams []*Stream
	for rows.Next() {
		var s Stream
		err := rows.Scan(&s.ID, &s.Title, &s.Description, &s.StreamerName,
			&s.ThumbnailURL, &s.VideoURL, &s.Game, &s.IsLive, &s.Views,
			&s.StartedAt, &s.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("ошибка сканирования стрима: %w", err)
		}
		streams = append(streams, &s)
	}
	return streams, rows.Err()
}

// GetStream возвращает один стрим.
func (r *Repository) GetStream(ctx context.Context, id int64) (*Stream, error) {
	var s Stream
	err := r.db.QueryRow(ctx, `
		SELECT `+streamColumns+` FROM streams WHERE id = $1
	`, id).Scan(&s.ID, &s.Title, &s.Description, &s.StreamerName,
		&s.ThumbnailURL, &s.VideoURL, &s.Game, &s.IsLive, &s.Views,
		&s.StartedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrStreamNotFound
		}
		return nil, fmt.Errorf("ошибка получения стрима: %w", err)
	}
	return &s, nil
}

// ListHighlights возвращает хайлайты по свежести.
func (r *Repository) ListHighlights(ctx context.Context) ([]*Highlight, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, stream_id, title, video_url, views, created_at
		FROM highlights
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения хайлайтов: %w", err)
	}
	defer rows.Close()

	var highlights []*Highlight
	for rows.Next() {
		var h Highlight
		if err := rows.Scan(&h.ID, &h.StreamID, &h.Title, &h.VideoURL, &h.Views, &h.CreatedAt); err != nil {
			return nil, fmt.Errorf("ошибка сканирования хайлайта: %w", err)
		}
		highlights = append(highlights, &h)
	}
	return highlights, rows.Err()
}

// UpsertStreamByTitle обновляет стрим по названию или создаёт новый.
// Используется воркером-инжестором.
func (r *Repository) UpsertStreamByTitle(ctx context.Context, s *Stream) error {
	var id int64
	err := r.db.QueryRow(ctx, `SELECT id FROM streams WHERE title = $1`, s.Title).Scan(&id)
	switch {
	case err == nil:
		_, err = r.db.Exec(ctx, `
			UPDATE streams SET is_live = $1, views = $2, updated_at = NOW() WHERE id = $3
		`, s.IsLive, s.Views, id)
		if err != nil {
			return fmt.Errorf("ошибка обновления стрима: %w", err)
		}
	case errors.Is(err, pgx.ErrNoRows):
		_, err = r.db.Exec(ctx, `
			INSERT INTO streams (title, description, streamer_name, thumbnail_url,
			                     video_url, game, is_live, views, started_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
		`, s.Title, s.Description, s.StreamerName, s.ThumbnailURL,
			s.VideoURL, s.Game, s.IsLive, s.Views)
		if err != nil {
			return fmt.Errorf("ошибка создания стрима: %w", err)
		}
	default:
		return fmt.Errorf("ошибка поиска стрима: %w", err)
	}
	return nil
}

// CreateHighlightForRandomStream добавляет хайлайт к случайному стриму.
// Используется воркером-инжестором.
func (r *Repository) CreateHighlightForRandomStream(ctx context.Context, title, videoURL string, views int) error {
	var streamID int64
	err := r.db.QueryRow(ctx, `SELECT id FROM streams ORDER BY random() LIMIT 1`).Scan(&streamID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil // Стримов ещё нет — хайлайт прикреплять не к чему
		}
		return fmt.Errorf("ошибка выбора стрима: %w", err)
	}

	_, err = r.db.Exec(ctx, `
		INSERT INTO highlights (stream_id, title, video_url, views)
		VALUES ($1, $2, $3, $4)
	`, streamID, title, videoURL, views)
	if err != nil {
		return fmt.Errorf("ошибка создания хайлайта: %w", err)
	}
	return nil
}
