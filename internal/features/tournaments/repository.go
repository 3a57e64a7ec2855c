// Package tournaments — repository.go выполняет операции с таблицами
// tournaments и ticket_offers. Обмен билета — одна транзакция:
// блокировки в каноническом порядке (пользователь → предложение),
// списание и уменьшение остатка атомарны.
package tournaments

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"gamerhub.ru/rewards-backend/internal/common"
)

// Repository предоставляет методы для работы с таблицами турниров.
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository создаёт новый репозиторий турниров.
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// List возвращает все турниры с их предложениями.
func (r *Repository) List(ctx context.Context) ([]*Tournament, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, description, game, prize_pool, start_date, status, banner_image_url, created_at
		FROM tournaments
		ORDER BY start_date ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения турниров: %w", err)
	}
	defer rows.Close()

	var tournaments []*Tournament
	for rows.Next() {
		var t Tournament
		err := rows.Scan(&t.ID, &t.Name, &t.Description, &t.Game,
			&t.PrizePool, &t.StartDate, &t.Status, &t.BannerURL, &t.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("ошибка сканирования турнира: %w", err)
		}
		tournaments = append(tournaments, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, t := range tournaments {
		offers, err := r.listOffers(ctx, t.ID)
		if err != nil {
			return nil, err
		}
		t.Offers = offers
	}
	return tournaments, nil
}

// Get возвращает один турнир с предложениями.
func (r *Repository) Get(ctx context.Context, id int64) (*Tournament, error) {
	var t Tournament
	err := r.db.QueryRow(ctx, `
		SELECT id, name, description, game, prize_pool, start_date, status, banner_image_url, created_at
		FROM tournaments
		WHERE id = $1
	`, id).Scan(&t.ID, &t.Name, &t.Description, &t.Game, &t.PrizePool,
		&t.StartDate, &t.Status, &t.BannerURL, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, common.ErrTournamentNotFound
		}
		return nil, fmt.Errorf("ошибка получения турнира: %w", err)
	}

	offers, err := r.listOffers(ctx, t.ID)
	if err != nil {
		return nil, err
	}
	t.Offers = offers
	return &t, nil
}

func (r *Repository) listOffers(ctx context.Context, tournamentID int64) ([]*TicketOffer, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, tournament_id, name, price_points, price_tickets, quantity_available, created_at
		FROM ticket_offers
		WHERE tournament_id = $1
		ORDER BY id
	`, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения предложений: %w", err)
	}
	defer rows.Close()

	var offers []*TicketOffer
	for rows.Next() {
		var o TicketOffer
		err := rows.Scan(&o.ID, &o.TournamentID, &o.Name,
			&o.PricePoints, &o.PriceTickets, &o.QuantityAvailable, &o.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("ошибка сканирования предложения: %w", err)
		}
		offers = append(offers, &o)
	}
	return offers, rows.Err()
}

// RedeemOffer обменивает предложение: списывает заданные цены
// (очки и/или билеты независимо) и уменьшает остаток.
//
// Запись о входе в турнир НЕ создаётся — учёт участников делегирован
// внешнему сервису турниров и не входит в гарантии этого модуля.
func (r *Repository) RedeemOffer(ctx context.Context, userID, offerID int64) (*RedeemResult, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("ошибка начала транзакции: %w", err)
	}
	defer tx.Rollback(ctx)

	// Канонический порядок блокировок: сначала пользователь, потом предложение
	var telegramVerified bool
	var userPoints, userTickets int64
	err = tx.QueryRow(ctx, `
		SELECT telegram_verified, points, tickets FROM users WHERE id = $1 FOR UPDATE
	`, userID).Scan(&telegramVerified, &userPoints, &userTickets)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, common.ErrUserNotFound
		}
		return nil, fmt.Errorf("ошибка чтения пользователя: %w", err)
	}

	// Telegram-барьер решается до поиска предложения: без привязки
	// пользователь не узнаёт даже, существует ли offerId
	if err := CheckTelegramGate(telegramVerified); err != nil {
		return nil, err
	}

	var offer TicketOffer
	err = tx.QueryRow(ctx, `
		SELECT id, tournament_id, name, price_points, price_tickets, quantity_available, created_at
		FROM ticket_offers
		WHERE id = $1
		FOR UPDATE
	`, offerID).Scan(&offer.ID, &offer.TournamentID, &offer.Name,
		&offer.PricePoints, &offer.PriceTickets, &offer.QuantityAvailable, &offer.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, common.ErrOfferNotFound
		}
		return nil, fmt.Errorf("ошибка чтения предложения: %w", err)
	}

	// Telegram-барьер, цены, остаток — в строгом порядке
	if err := ValidateRedemption(telegramVerified, &offer, userPoints, userTickets); err != nil {
		return nil, err
	}

	// Списываем заданные компоненты цены независимо
	if offer.PricePoints != nil {
		_, err = tx.Exec(ctx, `
			UPDATE users SET points = points - $2, updated_at = NOW() WHERE id = $1
		`, userID, *offer.PricePoints)
		if err != nil {
			return nil, fmt.Errorf("ошибка списания очков: %w", err)
		}
	}
	if offer.PriceTickets != nil {
		_, err = tx.Exec(ctx, `
			UPDATE users SET tickets = tickets - $2, updated_at = NOW() WHERE id = $1
		`, userID, *offer.PriceTickets)
		if err != nil {
			return nil, fmt.Errorf("ошибка списания билетов: %w", err)
		}
	}

	// Уменьшаем остаток (если предложение лимитировано)
	if offer.QuantityAvailable != nil {
		_, err = tx.Exec(ctx, `
			UPDATE ticket_offers SET quantity_available = quantity_available - 1 WHERE id = $1
		`, offerID)
		if err != nil {
			return nil, fmt.Errorf("ошибка уменьшения остатка: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("ошибка фиксации транзакции: %w", err)
	}

	return &RedeemResult{TournamentID: offer.TournamentID}, nil
}
