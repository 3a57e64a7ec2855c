// Package accounts управляет пользователями платформы:
// регистрация, вход, балансы очков и билетов.
// models.go описывает структуры для таблицы users.
package accounts

import "time"

// User представляет пользователя платформы.
// Балансы points/tickets меняются ТОЛЬКО внутри транзакций БД
// (фичи rewards, market, tournaments); CHECK-ограничения в схеме
// не дают им уйти в минус.
type User struct {
	ID                int64      `db:"id"`                   // ID пользователя
	Email             string     `db:"email"`                // Email (уникальный)
	Username          string     `db:"username"`             // Отображаемое имя
	PasswordHash      string     `db:"password_hash"`        // bcrypt-хеш пароля
	Points            int64      `db:"points"`               // Баланс очков (>= 0)
	Tickets           int64      `db:"tickets"`              // Баланс билетов (>= 0)
	TelegramVerified  bool       `db:"telegram_verified"`    // Привязан ли Telegram
	LastDailyLoginAt  *time.Time `db:"last_daily_login_at"`  // Когда последний раз забирали ежедневный бонус
	LastFortuneSpinAt *time.Time `db:"last_fortune_spin_at"` // Когда последний раз крутили колесо
	CreatedAt         time.Time  `db:"created_at"`
	UpdatedAt         time.Time  `db:"updated_at"`
}

// Profile — публичное представление пользователя для API-ответов.
// Хеш пароля наружу не отдаём никогда.
type Profile struct {
	ID               int64  `json:"id"`
	Email            string `json:"email"`
	Username         string `json:"username"`
	Points           int64  `json:"points"`
	Tickets          int64  `json:"tickets"`
	TelegramVerified bool   `json:"telegramVerified"`
}

// ToProfile преобразует User в Profile.
func (u *User) ToProfile() *Profile {
	return &Profile{
		ID:               u.ID,
		Email:            u.Email,
		Username:         u.Username,
		Points:           u.Points,
		Tickets:          u.Tickets,
		TelegramVerified: u.TelegramVerified,
	}
}
