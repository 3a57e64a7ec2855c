// Package config загружает конфигурацию сервера из переменных окружения.
// Используется envconfig для маппинга переменных окружения на поля структуры.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config содержит ВСЕ настройки приложения.
type Config struct {
	// --- HTTP ---
	HTTPPort int `envconfig:"HTTP_PORT" default:"8080"`
	// Список разрешённых origin для CORS через запятую
	CORSOriginsRaw string   `envconfig:"CORS_ORIGINS" default:"http://localhost:5173"`
	CORSOrigins    []string `envconfig:"-"` // заполним вручную

	// --- Database ---
	// В Docker внутри контейнера "localhost" почти всегда неправильно.
	// Дефолт ставим "postgres" (имя сервиса в docker-compose), а для локалки переопределяй DB_HOST=localhost.
	DBHost     string `envconfig:"DB_HOST" default:"postgres"`
	DBPort     int    `envconfig:"DB_PORT" default:"5432"`
	DBUser     string `envconfig:"DB_USER" default:"rewards"`
	DBPassword string `envconfig:"DB_PASSWORD" required:"true"`
	DBName     string `envconfig:"DB_NAME" default:"rewards"`
	DBSSLMode  string `envconfig:"DB_SSLMODE" default:"disable"`
	DBMaxConns int32  `envconfig:"DB_MAX_CONNS" default:"25"`
	DBMinConns int32  `envconfig:"DB_MIN_CONNS" default:"5"`

	// --- Application ---
	AppEnv      string `envconfig:"APP_ENV" default:"development"`
	AppLogLevel string `envconfig:"APP_LOG_LEVEL" default:"debug"`
	// Часовой пояс сервера. От него зависит, когда наступает «новый день»
	// для ежедневного бонуса и колеса фортуны.
	AppTimezone string         `envconfig:"APP_TIMEZONE" default:"Europe/Moscow"`
	Location    *time.Location `envconfig:"-"` // загружается из AppTimezone

	// --- Auth ---
	JWTSecret   string        `envconfig:"JWT_SECRET" required:"true"`
	JWTLifetime time.Duration `envconfig:"JWT_LIFETIME" default:"24h"`
	BcryptCost  int           `envconfig:"BCRYPT_COST" default:"10"`

	// --- Telegram ---
	// Токен бота для привязки аккаунтов. Если пустой — бот не запускается,
	// привязка Telegram недоступна (но остальной сервер работает).
	TelegramBotToken string `envconfig:"TELEGRAM_BOT_TOKEN" default:""`
	TelegramBotName  string `envconfig:"TELEGRAM_BOT_NAME" default:"GamerHubBot"`

	// --- Rewards ---
	DailyLoginPoints  int64 `envconfig:"DAILY_LOGIN_POINTS" default:"10"`
	DailyLoginTickets int64 `envconfig:"DAILY_LOGIN_TICKETS" default:"1"`

	// --- Rate Limiting ---
	RateLimitRequests int           `envconfig:"RATE_LIMIT_REQUESTS" default:"30"`
	RateLimitWindow   time.Duration `envconfig:"RATE_LIMIT_WINDOW" default:"1m"`

	// --- Jobs ---
	// Cron-выражение для воркера, который обновляет витрину стримов.
	StreamIngestSchedule string `envconfig:"STREAM_INGEST_SCHEDULE" default:"@every 1m"`
}

// DatabaseDSN возвращает строку подключения к PostgreSQL в формате DSN.
func (c *Config) DatabaseDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName, c.DBSSLMode,
	)
}

func (c *Config) Validate() error {
	if c.HTTPPort <= 0 || c.HTTPPort > 65535 {
		return fmt.Errorf("некорректный HTTP_PORT: %d", c.HTTPPort)
	}
	if len(c.JWTSecret) < 16 {
		return fmt.Errorf("JWT_SECRET слишком короткий (минимум 16 символов)")
	}
	if c.DBMaxConns <= 0 || c.DBMinConns < 0 || c.DBMinConns > c.DBMaxConns {
		return fmt.Errorf("некорректные DB_MIN_CONNS/DB_MAX_CONNS")
	}
	if c.DailyLoginPoints < 0 || c.DailyLoginTickets < 0 {
		return fmt.Errorf("ежедневный бонус не может быть отрицательным")
	}
	if c.RateLimitRequests <= 0 {
		return fmt.Errorf("RATE_LIMIT_REQUESTS должен быть > 0")
	}
	return nil
}

// Load читает переменные окружения и заполняет структуру Config.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("не удалось загрузить конфигурацию: %w", err)
	}

	cfg.CORSOrigins = parseCSV(cfg.CORSOriginsRaw)

	loc, err := time.LoadLocation(cfg.AppTimezone)
	if err != nil {
		return nil, fmt.Errorf("APP_TIMEZONE %q: %w", cfg.AppTimezone, err)
	}
	cfg.Location = loc

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func parseCSV(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
