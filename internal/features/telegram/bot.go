// Package telegram — bot.go запускает Telegram-бота привязки.
// Бот слушает long polling и обрабатывает единственную команду:
// /start <токен> — подтверждение привязки аккаунта.
package telegram

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mymmrac/telego"
	tu "github.com/mymmrac/telego/telegoutil"
	log "github.com/sirupsen/logrus"

	"gamerhub.ru/rewards-backend/internal/common"
)

// Bot обрабатывает апдейты Telegram для привязки аккаунтов.
type Bot struct {
	api     *telego.Bot
	service *Service
}

// NewBot создаёт бота привязки.
func NewBot(token string, service *Service) (*Bot, error) {
	api, err := telego.NewBot(token)
	if err != nil {
		return nil, fmt.Errorf("ошибка создания Telegram-бота: %w", err)
	}
	return &Bot{api: api, service: service}, nil
}

// Start запускает обработку апдейтов. Блокирует до отмены контекста.
func (b *Bot) Start(ctx context.Context) {
	updates, err := b.api.UpdatesViaLongPolling(ctx, &telego.GetUpdatesParams{
		Timeout: 30,
	})
	if err != nil {
		log.WithError(err).Error("Не удалось запустить long polling")
		return
	}

	log.Info("Telegram-бот привязки запущен")

	for update := range updates {
		if update.Message == nil || update.Message.Text == "" {
			continue
		}
		b.handleMessage(ctx, update.Message)
	}
}

// handleMessage обрабатывает одно входящее сообщение.
func (b *Bot) handleMessage(ctx context.Context, msg *telego.Message) {
	text := strings.TrimSpace(msg.Text)
	if !strings.HasPrefix(text, "/start ") {
		return
	}

	token := strings.TrimSpace(strings.TrimPrefix(text, "/start "))
	if token == "" {
		return
	}

	var username string
	if msg.From != nil {
		username = msg.From.Username
	}

	userID, err := b.service.CompleteLink(ctx, token, msg.Chat.ID, username)
	if err != nil {
		if errors.Is(err, common.ErrLinkTokenNotFound) {
			b.reply(ctx, msg.Chat.ID, "❌ Токен привязки не найден. Запросите новую ссылку на сайте.")
			return
		}
		log.WithError(err).Error("Ошибка подтверждения привязки")
		b.reply(ctx, msg.Chat.ID, "❌ Не получилось привязать аккаунт, попробуйте позже.")
		return
	}

	log.WithFields(log.Fields{
		"user_id":           userID,
		"telegram_username": username,
	}).Info("Аккаунт привязан к Telegram")

	b.reply(ctx, msg.Chat.ID, "✅ Аккаунт привязан! Теперь вам доступны билетные предложения турниров.")
}

// reply отправляет текстовый ответ в чат.
func (b *Bot) reply(ctx context.Context, chatID int64, text string) {
	_, err := b.api.SendMessage(ctx, tu.Message(tu.ID(chatID), text))
	if err != nil {
		log.WithError(err).Error("Ошибка отправки сообщения в Telegram")
	}
}
