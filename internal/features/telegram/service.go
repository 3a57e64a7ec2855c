// Package telegram — service.go содержит логику привязки аккаунтов.
package telegram

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"gamerhub.ru/rewards-backend/internal/config"
)

// Сколько живёт неподтверждённый токен до очистки кроном.
const staleTokenTTL = 7 * 24 * time.Hour

// Service управляет привязками Telegram.
type Service struct {
	repo *Repository
	cfg  *config.Config
}

// NewService создаёт сервис привязок.
func NewService(repo *Repository, cfg *config.Config) *Service {
	return &Service{repo: repo, cfg: cfg}
}

// StartLink генерирует одноразовый токен и deep-link на бота.
func (s *Service) StartLink(ctx context.Context, userID int64) (*StartLinkResult, error) {
	// UUID без дефисов, чтобы ссылка /start пережила любые мессенджеры
	token := strings.ReplaceAll(uuid.NewString(), "-", "")

	if err := s.repo.UpsertToken(ctx, userID, token); err != nil {
		return nil, err
	}

	return &StartLinkResult{
		Link:      fmt.Sprintf("https://t.me/%s?start=%s", s.cfg.TelegramBotName, token),
		LinkToken: token,
	}, nil
}

// CompleteLink подтверждает привязку по токену из команды /start.
// Возвращает ID пользователя платформы.
func (s *Service) CompleteLink(ctx context.Context, token string, telegramUserID int64, telegramUsername string) (int64, error) {
	return s.repo.CompleteLink(ctx, token, telegramUserID, telegramUsername)
}

// PruneStaleTokens удаляет брошенные токены привязки. Запускается кроном.
func (s *Service) PruneStaleTokens(ctx context.Context) error {
	n, err := s.repo.PruneStale(ctx, time.Now().Add(-staleTokenTTL))
	if err != nil {
		return err
	}
	if n > 0 {
		log.WithField("count", n).Info("Удалены устаревшие токены привязки")
	}
	return nil
}
