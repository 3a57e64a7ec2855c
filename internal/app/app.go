// Package app инициализирует все компоненты приложения.
// app.go — точка сборки: создаёт БД-пул, репозитории, сервисы, обработчики
// и собирает всё в один объект App.
package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"

	"gamerhub.ru/rewards-backend/internal/config"
	"gamerhub.ru/rewards-backend/internal/db/postgres"
	"gamerhub.ru/rewards-backend/internal/features/accounts"
	"gamerhub.ru/rewards-backend/internal/features/content"
	"gamerhub.ru/rewards-backend/internal/features/market"
	"gamerhub.ru/rewards-backend/internal/features/rewards"
	"gamerhub.ru/rewards-backend/internal/features/telegram"
	"gamerhub.ru/rewards-backend/internal/features/tournaments"
	"gamerhub.ru/rewards-backend/internal/jobs"
	"gamerhub.ru/rewards-backend/internal/server"
	"gamerhub.ru/rewards-backend/internal/server/middleware"
)

// App содержит все компоненты приложения.
type App struct {
	Server    *http.Server
	Scheduler *jobs.Scheduler
	Limiter   *middleware.RateLimiter
	DB        *pgxpool.Pool
	Bot       *telegram.Bot // nil, если бот не настроен
}

// New создаёт и инициализирует приложение.
// Порядок инициализации важен — компоненты зависят друг от друга.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	// === 1. База данных ===
	pool, err := postgres.NewPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("ошибка подключения к БД: %w", err)
	}

	// Запускаем миграции
	if err := runMigrations(ctx, pool); err != nil {
		return nil, fmt.Errorf("ошибка миграций: %w", err)
	}

	// === 2. Репозитории ===
	accountRepo := accounts.NewRepository(pool)
	rewardRepo := rewards.NewRepository(pool)
	marketRepo := market.NewRepository(pool)
	tournamentRepo := tournaments.NewRepository(pool)
	contentRepo := content.NewRepository(pool)
	telegramRepo := telegram.NewRepository(pool)

	// === 3. Сервисы ===
	accountService := accounts.NewService(accountRepo, cfg)
	rewardService := rewards.NewService(rewardRepo, cfg)
	marketService := market.NewService(marketRepo)
	tournamentService := tournaments.NewService(tournamentRepo)
	contentService := content.NewService(contentRepo)
	telegramService := telegram.NewService(telegramRepo, cfg)

	// === 4. Обработчики ===
	handlers := &server.Handlers{
		Accounts:    accounts.NewHandler(accountService),
		Rewards:     rewards.NewHandler(rewardService),
		Market:      market.NewHandler(marketService),
		Tournaments: tournaments.NewHandler(tournamentService),
		Content:     content.NewHandler(contentService),
		Telegram:    telegram.NewHandler(telegramService),
	}

	// === 5. Telegram-бот (опционально) ===
	var bot *telegram.Bot
	if cfg.TelegramBotToken != "" {
		bot, err = telegram.NewBot(cfg.TelegramBotToken, telegramService)
		if err != nil {
			return nil, fmt.Errorf("ошибка создания Telegram-бота: %w", err)
		}
	} else {
		log.Warn("TELEGRAM_BOT_TOKEN не задан — привязка Telegram отключена")
	}

	// === 6. HTTP-сервер и rate-limiter ===
	limiter := middleware.NewRateLimiter(cfg.RateLimitRequests, cfg.RateLimitWindow)
	srv := server.New(cfg, handlers, limiter)

	// === 7. Планировщик задач ===
	scheduler := jobs.NewScheduler(cfg, contentService, telegramService)

	return &App{
		Server:    srv,
		Scheduler: scheduler,
		Limiter:   limiter,
		DB:        pool,
		Bot:       bot,
	}, nil
}

// runMigrations выполняет все SQL-миграции.
func runMigrations(ctx context.Context, pool *pgxpool.Pool) error {
	// Инициализируем систему миграций
	if err := postgres.EnsureMigrationsTable(ctx, pool); err != nil {
		return err
	}

	// Выполняем миграции по порядку
	migrations := []struct {
		version int
		sql     string
	}{
		{1, migration001Users},
		{2, migration002Rewards},
		{3, migration003Fortune},
		{4, migration004Market},
		{5, migration005Tournaments},
		{6, migration006Content},
	}

	for _, m := range migrations {
		if err := postgres.ExecMigrationSQL(ctx, pool, m.version, m.sql); err != nil {
			return fmt.Errorf("миграция %d: %w", m.version, err)
		}
		log.Infof("Миграция %d применена", m.version)
	}

	return nil
}

// SQL-миграции встроены в код для упрощения деплоя.

var migration001Users = `
CREATE TABLE IF NOT EXISTS users (
    id BIGSERIAL PRIMARY KEY,
    email VARCHAR(255) UNIQUE NOT NULL,
    username VARCHAR(255) NOT NULL,
    password_hash VARCHAR(255) NOT NULL,
    points BIGINT NOT NULL DEFAULT 0 CHECK (points >= 0),
    tickets BIGINT NOT NULL DEFAULT 0 CHECK (tickets >= 0),
    telegram_verified BOOLEAN NOT NULL DEFAULT FALSE,
    last_daily_login_at TIMESTAMPTZ,
    last_fortune_spin_at TIMESTAMPTZ,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_users_email ON users(email);

CREATE TABLE IF NOT EXISTS telegram_links (
    id BIGSERIAL PRIMARY KEY,
    user_id BIGINT UNIQUE NOT NULL REFERENCES users(id),
    link_token VARCHAR(64) UNIQUE NOT NULL,
    telegram_user_id BIGINT,
    telegram_username VARCHAR(255),
    linked_at TIMESTAMPTZ,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_telegram_links_token ON telegram_links(link_token);
`

var migration002Rewards = `
CREATE TABLE IF NOT EXISTS code_rewards (
    id BIGSERIAL PRIMARY KEY,
    code VARCHAR(64) UNIQUE NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    points_reward BIGINT NOT NULL DEFAULT 0,
    tickets_reward BIGINT NOT NULL DEFAULT 0,
    max_uses_per_user INTEGER NOT NULL DEFAULT 1,
    global_max_uses INTEGER,
    used_count INTEGER NOT NULL DEFAULT 0,
    valid_from TIMESTAMPTZ,
    valid_until TIMESTAMPTZ,
    is_active BOOLEAN NOT NULL DEFAULT TRUE,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_code_rewards_code ON code_rewards(code);

CREATE TABLE IF NOT EXISTS user_code_redemptions (
    id BIGSERIAL PRIMARY KEY,
    user_id BIGINT NOT NULL REFERENCES users(id),
    code_reward_id BIGINT NOT NULL REFERENCES code_rewards(id),
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_redemptions_user ON user_code_redemptions(user_id, code_reward_id);
`

var migration003Fortune = `
CREATE TABLE IF NOT EXISTS fortune_prize_tiers (
    id BIGSERIAL PRIMARY KEY,
    name VARCHAR(255) NOT NULL,
    points_reward BIGINT NOT NULL DEFAULT 0,
    weight INTEGER NOT NULL DEFAULT 0 CHECK (weight >= 0),
    is_active BOOLEAN NOT NULL DEFAULT TRUE,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS fortune_spins (
    id BIGSERIAL PRIMARY KEY,
    user_id BIGINT NOT NULL REFERENCES users(id),
    prize_tier_id BIGINT NOT NULL REFERENCES fortune_prize_tiers(id),
    points_awarded BIGINT NOT NULL DEFAULT 0,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_fortune_spins_user ON fortune_spins(user_id, created_at DESC);
`

var migration004Market = `
CREATE TABLE IF NOT EXISTS market_items (
    id BIGSERIAL PRIMARY KEY,
    name VARCHAR(255) NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    image_url TEXT NOT NULL DEFAULT '',
    price_points BIGINT NOT NULL CHECK (price_points >= 0),
    stock_quantity INTEGER CHECK (stock_quantity >= 0),
    is_active BOOLEAN NOT NULL DEFAULT TRUE,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS market_item_grants (
    id BIGSERIAL PRIMARY KEY,
    market_item_id BIGINT NOT NULL REFERENCES market_items(id),
    code VARCHAR(255) NOT NULL,
    is_redeemed BOOLEAN NOT NULL DEFAULT FALSE,
    redeemed_by_user_id BIGINT REFERENCES users(id),
    redeemed_at TIMESTAMPTZ,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    UNIQUE(market_item_id, code)
);
CREATE INDEX IF NOT EXISTS idx_grants_available ON market_item_grants(market_item_id) WHERE is_redeemed = FALSE;

CREATE TABLE IF NOT EXISTS user_market_purchases (
    id BIGSERIAL PRIMARY KEY,
    user_id BIGINT NOT NULL REFERENCES users(id),
    market_item_id BIGINT NOT NULL REFERENCES market_items(id),
    market_item_grant_id BIGINT NOT NULL REFERENCES market_item_grants(id),
    points_spent BIGINT NOT NULL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_purchases_user ON user_market_purchases(user_id, created_at DESC);
`

var migration005Tournaments = `
CREATE TABLE IF NOT EXISTS tournaments (
    id BIGSERIAL PRIMARY KEY,
    name VARCHAR(255) NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    game VARCHAR(255) NOT NULL DEFAULT '',
    prize_pool VARCHAR(255) NOT NULL DEFAULT '',
    start_date TIMESTAMPTZ,
    status VARCHAR(32) NOT NULL DEFAULT 'upcoming',
    banner_image_url TEXT NOT NULL DEFAULT '',
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS ticket_offers (
    id BIGSERIAL PRIMARY KEY,
    tournament_id BIGINT NOT NULL REFERENCES tournaments(id),
    name VARCHAR(255) NOT NULL,
    price_points BIGINT CHECK (price_points >= 0),
    price_tickets BIGINT CHECK (price_tickets >= 0),
    quantity_available INTEGER CHECK (quantity_available >= 0),
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_ticket_offers_tournament ON ticket_offers(tournament_id);
`

var migration006Content = `
CREATE TABLE IF NOT EXISTS streams (
    id BIGSERIAL PRIMARY KEY,
    title VARCHAR(255) UNIQUE NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    streamer_name VARCHAR(255) NOT NULL,
    thumbnail_url TEXT NOT NULL DEFAULT '',
    video_url TEXT NOT NULL DEFAULT '',
    game VARCHAR(255) NOT NULL DEFAULT '',
    is_live BOOLEAN NOT NULL DEFAULT FALSE,
    views INTEGER NOT NULL DEFAULT 0,
    started_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS highlights (
    id BIGSERIAL PRIMARY KEY,
    stream_id BIGINT NOT NULL REFERENCES streams(id),
    title VARCHAR(255) NOT NULL,
    video_url TEXT NOT NULL,
    views INTEGER NOT NULL DEFAULT 0,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_highlights_stream ON highlights(stream_id);
`
