// Package rewards — repository.go выполняет все операции с наградами.
// Каждая операция — одна транзакция БД: блокировки берутся в каноническом
// порядке (строка пользователя, затем строка ресурса), правила проверяются
// по снимку под блокировкой, изменения и история пишутся атомарно.
// Любой отказ приводит к полному откату — частичных начислений не бывает.
package rewards

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"gamerhub.ru/rewards-backend/internal/common"
)

// Repository предоставляет методы для работы с таблицами наград.
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository создаёт новый репозиторий наград.
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// ClaimDaily выдаёт ежедневный бонус.
// Строка пользователя блокируется FOR UPDATE, поэтому два одновременных
// запроса сериализуются: первый коммитит новую дату, второй видит её
// и получает ErrAlreadyClaimed.
func (r *Repository) ClaimDaily(ctx context.Context, userID, points, tickets int64, now time.Time, loc *time.Location) (*ClaimResult, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("ошибка начала транзакции: %w", err)
	}
	defer tx.Rollback(ctx)

	// Блокируем строку пользователя и читаем текущее состояние
	var last *time.Time
	var curPoints, curTickets int64
	err = tx.QueryRow(ctx, `
		SELECT last_daily_login_at, points, tickets FROM users WHERE id = $1 FOR UPDATE
	`, userID).Scan(&last, &curPoints, &curTickets)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, common.ErrUserNotFound
		}
		return nil, fmt.Errorf("ошибка чтения пользователя: %w", err)
	}

	// Один бонус в календарный день
	if err := CheckDailyGate(last, now, loc, common.ErrAlreadyClaimed); err != nil {
		return nil, err
	}

	// Начисляем и фиксируем дату получения
	_, err = tx.Exec(ctx, `
		UPDATE users
		SET points = points + $2, tickets = tickets + $3,
		    last_daily_login_at = $4, updated_at = NOW()
		WHERE id = $1
	`, userID, points, tickets, now)
	if err != nil {
		return nil, fmt.Errorf("ошибка начисления бонуса: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("ошибка фиксации транзакции: %w", err)
	}

	return &ClaimResult{Points: curPoints + points, Tickets: curTickets + tickets}, nil
}

// RedeemCode активирует промокод для пользователя.
//
// Счётчик used_count и число прошлых активаций пользователя читаются
// той же транзакцией, что держит блокировку строки промокода, поэтому
// на последний оставшийся глобальный слот не могут успешно претендовать
// два запроса одновременно.
func (r *Repository) RedeemCode(ctx context.Context, userID int64, code string, now time.Time) (*RedeemResult, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("ошибка начала транзакции: %w", err)
	}
	defer tx.Rollback(ctx)

	// Канонический порядок блокировок: сначала пользователь, потом ресурс
	var exists bool
	err = tx.QueryRow(ctx, `
		SELECT TRUE FROM users WHERE id = $1 FOR UPDATE
	`, userID).Scan(&exists)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, common.ErrUserNotFound
		}
		return nil, fmt.Errorf("ошибка чтения пользователя: %w", err)
	}

	// Блокируем строку промокода
	var reward CodeReward
	err = tx.QueryRow(ctx, `
		SELECT id, code, description, points_reward, tickets_reward,
		       max_uses_per_user, global_max_uses, used_count,
		       valid_from, valid_until, is_active
		FROM code_rewards
		WHERE code = $1
		FOR UPDATE
	`, code).Scan(
		&reward.ID, &reward.Code, &reward.Description,
		&reward.PointsReward, &reward.TicketsReward,
		&reward.MaxUsesPerUser, &reward.GlobalMaxUses, &reward.UsedCount,
		&reward.ValidFrom, &reward.ValidUntil, &reward.IsActive,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, common.ErrInvalidCode
		}
		return nil, fmt.Errorf("ошибка чтения промокода: %w", err)
	}

	// Сколько раз этот пользователь уже активировал этот код
	var priorUses int
	err = tx.QueryRow(ctx, `
		SELECT COUNT(*) FROM user_code_redemptions
		WHERE user_id = $1 AND code_reward_id = $2
	`, userID, reward.ID).Scan(&priorUses)
	if err != nil {
		return nil, fmt.Errorf("ошибка подсчёта активаций: %w", err)
	}

	// Проверки в строгом порядке приоритета
	if err := ValidateCodeReward(&reward, priorUses, now); err != nil {
		return nil, err
	}

	// Начисляем награду
	_, err = tx.Exec(ctx, `
		UPDATE users SET points = points + $2, tickets = tickets + $3, updated_at = NOW()
		WHERE id = $1
	`, userID, reward.PointsReward, reward.TicketsReward)
	if err != nil {
		return nil, fmt.Errorf("ошибка начисления награды: %w", err)
	}

	// Увеличиваем глобальный счётчик использований
	_, err = tx.Exec(ctx, `
		UPDATE code_rewards SET used_count = used_count + 1 WHERE id = $1
	`, reward.ID)
	if err != nil {
		return nil, fmt.Errorf("ошибка обновления счётчика: %w", err)
	}

	// Записываем активацию в историю (по ней считается лимит на пользователя)
	_, err = tx.Exec(ctx, `
		INSERT INTO user_code_redemptions (user_id, code_reward_id) VALUES ($1, $2)
	`, userID, reward.ID)
	if err != nil {
		return nil, fmt.Errorf("ошибка записи активации: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("ошибка фиксации транзакции: %w", err)
	}

	return &RedeemResult{PointsAdded: reward.PointsReward, TicketsAdded: reward.TicketsReward}, nil
}

// SpinFortune крутит колесо фортуны.
// draw — равномерная случайная величина из [0, 1), полученная сервисом;
// репозиторий детерминирован относительно draw, что позволяет тестировать
// выбор сектора отдельно от случайности.
func (r *Repository) SpinFortune(ctx context.Context, userID int64, draw float64, now time.Time, loc *time.Location) (*SpinResult, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("ошибка начала транзакции: %w", err)
	}
	defer tx.Rollback(ctx)

	// Блокируем строку пользователя
	var last *time.Time
	var curPoints int64
	err = tx.QueryRow(ctx, `
		SELECT last_fortune_spin_at, points FROM users WHERE id = $1 FOR UPDATE
	`, userID).Scan(&last, &curPoints)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, common.ErrUserNotFound
		}
		return nil, fmt.Errorf("ошибка чтения пользователя: %w", err)
	}

	// Одно вращение в календарный день
	if err := CheckDailyGate(last, now, loc, common.ErrAlreadySpun); err != nil {
		return nil, err
	}

	// Загружаем активные секторы в устойчивом порядке
	tiers, err := loadActiveTiers(ctx, tx)
	if err != nil {
		return nil, err
	}

	// Взвешенный выбор приза
	tier, err := PickTier(tiers, draw)
	if err != nil {
		return nil, err
	}

	// Начисляем приз и фиксируем дату вращения
	_, err = tx.Exec(ctx, `
		UPDATE users SET points = points + $2, last_fortune_spin_at = $3, updated_at = NOW()
		WHERE id = $1
	`, userID, tier.PointsReward, now)
	if err != nil {
		return nil, fmt.Errorf("ошибка начисления приза: %w", err)
	}

	// Записываем вращение в историю
	spin := FortuneSpin{UserID: userID, PrizeTierID: tier.ID, PointsAwarded: tier.PointsReward}
	_, err = tx.Exec(ctx, `
		INSERT INTO fortune_spins (user_id, prize_tier_id, points_awarded)
		VALUES ($1, $2, $3)
	`, spin.UserID, spin.PrizeTierID, spin.PointsAwarded)
	if err != nil {
		return nil, fmt.Errorf("ошибка записи вращения: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("ошибка фиксации транзакции: %w", err)
	}

	return &SpinResult{
		PrizeName:     tier.Name,
		PointsAwarded: tier.PointsReward,
		NewPoints:     curPoints + tier.PointsReward,
	}, nil
}

// loadActiveTiers читает активные секторы колеса по возрастанию id.
func loadActiveTiers(ctx context.Context, tx pgx.Tx) ([]*FortunePrizeTier, error) {
	rows, err := tx.Query(ctx, `
		SELECT id, name, points_reward, weight, is_active
		FROM fortune_prize_tiers
		WHERE is_active = TRUE
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения секторов: %w", err)
	}
	defer rows.Close()

	var tiers []*FortunePrizeTier
	for rows.Next() {
		var t FortunePrizeTier
		if err := rows.Scan(&t.ID, &t.Name, &t.PointsReward, &t.Weight, &t.IsActive); err != nil {
			return nil, fmt.Errorf("ошибка сканирования сектора: %w", err)
		}
		tiers = append(tiers, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка обхода секторов: %w", err)
	}
	return tiers, nil
}
