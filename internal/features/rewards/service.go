// Package rewards — service.go координирует операции с наградами.
package rewards

import (
	"context"
	"math/rand/v2"
	"time"

	"gamerhub.ru/rewards-backend/internal/config"
)

// Service управляет наградами.
type Service struct {
	repo *Repository
	cfg  *config.Config
}

// NewService создаёт сервис наград.
func NewService(repo *Repository, cfg *config.Config) *Service {
	return &Service{repo: repo, cfg: cfg}
}

// ClaimDaily выдаёт ежедневный бонус текущему пользователю.
// Размер бонуса берётся из конфигурации.
func (s *Service) ClaimDaily(ctx context.Context, userID int64) (*ClaimResult, error) {
	return s.repo.ClaimDaily(ctx, userID,
		s.cfg.DailyLoginPoints, s.cfg.DailyLoginTickets,
		time.Now(), s.cfg.Location)
}

// RedeemCode активирует промокод.
func (s *Service) RedeemCode(ctx context.Context, userID int64, code string) (*RedeemResult, error) {
	return s.repo.RedeemCode(ctx, userID, code, time.Now())
}

// SpinFortune крутит колесо фортуны.
// Случайная величина берётся из глобального генератора math/rand/v2:
// он потокобезопасен и независим для каждого вызова. Криптостойкость
// здесь не требуется.
func (s *Service) SpinFortune(ctx context.Context, userID int64) (*SpinResult, error) {
	return s.repo.SpinFortune(ctx, userID, rand.Float64(), time.Now(), s.cfg.Location)
}
