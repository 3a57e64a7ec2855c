// Package jobs управляет фоновыми задачами (cron).
// scheduler.go настраивает расписание: инжестия витрины стримов
// и ночная очистка брошенных токенов привязки.
package jobs

import (
	"context"

	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"

	"gamerhub.ru/rewards-backend/internal/config"
	"gamerhub.ru/rewards-backend/internal/features/content"
	"gamerhub.ru/rewards-backend/internal/features/telegram"
)

// Scheduler управляет фоновыми задачами.
type Scheduler struct {
	cron            *cron.Cron
	cfg             *config.Config
	contentService  *content.Service
	telegramService *telegram.Service
}

// NewScheduler создаёт планировщик задач в часовом поясе приложения.
func NewScheduler(cfg *config.Config, contentService *content.Service, telegramService *telegram.Service) *Scheduler {
	c := cron.New(cron.WithLocation(cfg.Location))

	return &Scheduler{
		cron:            c,
		cfg:             cfg,
		contentService:  contentService,
		telegramService: telegramService,
	}
}

// Start запускает все фоновые задачи.
func (s *Scheduler) Start(ctx context.Context) {
	// Инжестия витрины стримов (по умолчанию раз в минуту)
	s.cron.AddFunc(s.cfg.StreamIngestSchedule, func() {
		log.Debug("[CRON] Инжестия стримов")
		if err := s.contentService.Ingest(ctx); err != nil {
			log.WithError(err).Error("[CRON] Ошибка инжестии")
		}
	})

	// Очистка брошенных токенов привязки в 04:00
	s.cron.AddFunc("0 4 * * *", func() {
		log.Info("[CRON] Очистка токенов привязки")
		if err := s.telegramService.PruneStaleTokens(ctx); err != nil {
			log.WithError(err).Error("[CRON] Ошибка очистки токенов")
		}
	})

	s.cron.Start()
	log.Infof("Планировщик задач запущен (%s)", s.cfg.AppTimezone)
}

// Stop останавливает планировщик.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	log.Info("Планировщик задач остановлен")
}
