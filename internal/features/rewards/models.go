// Package rewards управляет начислением наград: ежедневный бонус,
// промокоды и колесо фортуны.
// models.go описывает структуры для таблиц code_rewards,
// user_code_redemptions, fortune_prize_tiers и fortune_spins.
package rewards

import "time"

// CodeReward представляет промокод.
// Строки создаются администратором извне; ядро только увеличивает
// used_count и никогда не создаёт и не удаляет промокоды.
type CodeReward struct {
	ID             int64      `db:"id"`                // ID промокода
	Code           string     `db:"code"`              // Сам код (уникальный)
	Description    string     `db:"description"`       // Описание для отображения
	PointsReward   int64      `db:"points_reward"`     // Сколько очков начисляется
	TicketsReward  int64      `db:"tickets_reward"`    // Сколько билетов начисляется
	MaxUsesPerUser int        `db:"max_uses_per_user"` // Лимит на одного пользователя
	GlobalMaxUses  *int       `db:"global_max_uses"`   // Глобальный лимит (nil = без лимита)
	UsedCount      int        `db:"used_count"`        // Сколько раз уже использован (только растёт)
	ValidFrom      *time.Time `db:"valid_from"`        // Начало действия (nil = сразу)
	ValidUntil     *time.Time `db:"valid_until"`       // Конец действия (nil = бессрочно)
	IsActive       bool       `db:"is_active"`         // Включён ли код
}

// FortunePrizeTier — один сектор колеса фортуны.
// Чем больше вес, тем выше вероятность выпадения.
type FortunePrizeTier struct {
	ID           int64  `db:"id"`
	Name         string `db:"name"`          // Название приза ("Jackpot")
	PointsReward int64  `db:"points_reward"` // Сколько очков за приз
	Weight       int    `db:"weight"`        // Вес сектора (>= 0; 0 = никогда не выпадает)
	IsActive     bool   `db:"is_active"`
}

// FortuneSpin — запись одного вращения колеса (append-only история).
type FortuneSpin struct {
	ID            int64     `db:"id"`
	UserID        int64     `db:"user_id"`
	PrizeTierID   int64     `db:"prize_tier_id"`
	PointsAwarded int64     `db:"points_awarded"`
	CreatedAt     time.Time `db:"created_at"`
}

// ClaimResult — итог получения ежедневного бонуса: новые балансы.
type ClaimResult struct {
	Points  int64 `json:"points"`
	Tickets int64 `json:"tickets"`
}

// RedeemResult — итог активации промокода.
type RedeemResult struct {
	PointsAdded  int64 `json:"pointsAdded"`
	TicketsAdded int64 `json:"ticketsAdded"`
}

// SpinResult — итог вращения колеса фортуны.
type SpinResult struct {
	PrizeName     string `json:"prizeName"`
	PointsAwarded int64  `json:"pointsAwarded"`
	NewPoints     int64  `json:"newPoints"`
}
