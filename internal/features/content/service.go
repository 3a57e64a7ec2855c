// Package content — service.go координирует витрину и фоновую
// инжестию мок-стримов (в реальном деплое её место занял бы
// коннектор к Twitch/YouTube API).
package content

import (
	"context"
	"fmt"
	"math/rand/v2"

	log "github.com/sirupsen/logrus"
)

// mockStreams — заготовки стримов для инжестора.
var mockStreams = []Stream{
	{
		Title:        "Grand Finals - Team A vs Team B",
		Description:  "The ultimate showdown.",
		StreamerName: "OfficialLeague",
		ThumbnailURL: "https://via.placeholder.com/320x180.png?text=Grand+Finals",
		VideoURL:     "https://www.youtube.com/embed/dQw4w9WgXcQ",
		Game:         "League of Legends",
	},
	{
		Title:        "Casual Friday Stream",
		Description:  "Just chilling with viewers.",
		StreamerName: "CoolGamer123",
		ThumbnailURL: "https://via.placeholder.com/320x180.png?text=Casual+Friday",
		VideoURL:     "https://www.youtube.com/embed/dQw4w9WgXcQ",
		Game:         "Valorant",
	},
	{
		Title:        "Speedrun Any% WR Attempt",
		Description:  "Trying to beat the record.",
		StreamerName: "SpeedyBoi",
		ThumbnailURL: "https://via.placeholder.com/320x180.png?text=Speedrun",
		VideoURL:     "https://www.youtube.com/embed/dQw4w9WgXcQ",
		Game:         "Super Mario 64",
	},
}

// Service управляет витриной.
type Service struct {
	repo *Repository
}

// NewService создаёт сервис витрины.
func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

// ListStreams возвращает стримы для витрины.
func (s *Service) ListStreams(ctx context.Context) ([]*Stream, error) {
	return s.repo.ListStreams(ctx)
}

// GetStream возвращает один стрим.
func (s *Service) GetStream(ctx context.Context, id int64) (*Stream, error) {
	return s.repo.GetStream(ctx, id)
}

// ListHighlights возвращает хайлайты.
func (s *Service) ListHighlights(ctx context.Context) ([]*Highlight, error) {
	return s.repo.ListHighlights(ctx)
}

// Ingest выполняет один проход инжестора: обновляет случайный стрим
// и иногда добавляет хайлайт. Запускается кроном.
func (s *Service) Ingest(ctx context.Context) error {
	stream := mockStreams[rand.IntN(len(mockStreams))]
	stream.IsLive = rand.Float64() > 0.5
	stream.Views = rand.IntN(10000)

	if err := s.repo.UpsertStreamByTitle(ctx, &stream); err != nil {
		return fmt.Errorf("ошибка инжестии стрима: %w", err)
	}

	log.WithFields(log.Fields{
		"title": stream.Title,
		"live":  stream.IsLive,
	}).Debug("Стрим обновлён инжестором")

	// Изредка генерируем хайлайт к случайному стриму
	if rand.Float64() > 0.7 {
		title := fmt.Sprintf("Highlight #%d", rand.IntN(1000))
		err := s.repo.CreateHighlightForRandomStream(ctx, title,
			"https://www.youtube.com/embed/dQw4w9WgXcQ", rand.IntN(5000))
		if err != nil {
			return fmt.Errorf("ошибка создания хайлайта: %w", err)
		}
	}
	return nil
}
