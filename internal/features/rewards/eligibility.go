// Package rewards — eligibility.go содержит чистые проверки допустимости
// операций. Функции не ходят в БД: им передаётся снимок состояния,
// прочитанный транзакцией под блокировкой, а они возвращают либо nil,
// либо конкретный бизнес-отказ. Благодаря этому правила тестируются
// без PostgreSQL, а транзакции остаются короткими.
package rewards

import (
	"time"

	"gamerhub.ru/rewards-backend/internal/common"
)

// CheckDailyGate проверяет правило «один раз в календарный день».
// last — момент прошлого успеха (nil, если его не было),
// alreadyErr — какой отказ вернуть (ErrAlreadyClaimed или ErrAlreadySpun).
func CheckDailyGate(last *time.Time, now time.Time, loc *time.Location, alreadyErr error) error {
	if last != nil && common.SameCalendarDay(*last, now, loc) {
		return alreadyErr
	}
	return nil
}

// ValidateCodeReward проверяет промокод по правилам в строгом порядке:
// активность → начало действия → конец действия → глобальный лимит →
// лимит на пользователя. Побеждает ПЕРВАЯ нарушенная проверка —
// порядок зафиксирован и проверяется тестами.
//
// priorUses — сколько раз ЭТОТ пользователь уже активировал код;
// значение должно быть прочитано той же транзакцией, что держит
// блокировку строки промокода, иначе два одновременных запроса
// могут пройти проверку на последний оставшийся слот.
func ValidateCodeReward(r *CodeReward, priorUses int, now time.Time) error {
	if !r.IsActive {
		return common.ErrCodeInactive
	}
	if r.ValidFrom != nil && now.Before(*r.ValidFrom) {
		return common.ErrCodeNotYetActive
	}
	if r.ValidUntil != nil && now.After(*r.ValidUntil) {
		return common.ErrCodeExpired
	}
	if r.GlobalMaxUses != nil && r.UsedCount >= *r.GlobalMaxUses {
		return common.ErrCodeFullyRedeemed
	}
	if priorUses >= r.MaxUsesPerUser {
		return common.ErrMaxUsesReached
	}
	return nil
}
