// Package telegram привязывает аккаунты платформы к Telegram.
// Пользователь получает одноразовый токен и deep-link на бота;
// бот, увидев /start <токен>, помечает аккаунт проверенным.
// models.go описывает структуры для таблицы telegram_links.
package telegram

import "time"

// Link представляет привязку аккаунта к Telegram.
// До подтверждения ботом заполнены только user_id и link_token.
type Link struct {
	ID               int64      `db:"id"`
	UserID           int64      `db:"user_id"`
	LinkToken        string     `db:"link_token"`
	TelegramUserID   *int64     `db:"telegram_user_id"`
	TelegramUsername *string    `db:"telegram_username"`
	CreatedAt        time.Time  `db:"created_at"`
	LinkedAt         *time.Time `db:"linked_at"`
}

// StartLinkResult — ответ на запрос привязки: ссылка для пользователя.
type StartLinkResult struct {
	Link      string `json:"link"`
	LinkToken string `json:"linkToken"`
}
