// Package main — наполнение базы демо-данными.
// Запускается вручную после старта сервера (миграции применяет сервер):
//
//	go run ./cmd/seed
package main

import (
	"context"
	"os"

	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"gamerhub.ru/rewards-backend/internal/config"
	"gamerhub.ru/rewards-backend/internal/db/postgres"
)

func main() {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	log.SetOutput(os.Stdout)

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("Не удалось загрузить конфигурацию")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg)
	if err != nil {
		log.WithError(err).Fatal("Не удалось подключиться к БД")
	}
	defer pool.Close()

	log.Info("Наполняем базу демо-данными...")

	// === Пользователи ===
	adminHash, err := bcrypt.GenerateFromPassword([]byte("admin123"), cfg.BcryptCost)
	if err != nil {
		log.WithError(err).Fatal("Ошибка хеширования пароля")
	}
	_, err = pool.Exec(ctx, `
		INSERT INTO users (email, username, password_hash, points, tickets)
		VALUES ('admin@example.com', 'admin', $1, 10000, 100)
		ON CONFLICT (email) DO NOTHING
	`, string(adminHash))
	if err != nil {
		log.WithError(err).Fatal("Ошибка создания администратора")
	}

	userHash, err := bcrypt.GenerateFromPassword([]byte("password"), cfg.BcryptCost)
	if err != nil {
		log.WithError(err).Fatal("Ошибка хеширования пароля")
	}
	_, err = pool.Exec(ctx, `
		INSERT INTO users (email, username, password_hash, points, tickets)
		VALUES ('user@example.com', 'testuser', $1, 500, 10)
		ON CONFLICT (email) DO NOTHING
	`, string(userHash))
	if err != nil {
		log.WithError(err).Fatal("Ошибка создания пользователя")
	}

	// === Товары магазина и коды к ним ===
	var steamID, nitroID int64
	err = pool.QueryRow(ctx, `
		INSERT INTO market_items (name, description, price_points, stock_quantity, image_url)
		VALUES ('Steam Gift Card $10', 'Пополнение кошелька Steam.', 1000, 5, 'https://via.placeholder.com/200?text=Steam')
		RETURNING id
	`).Scan(&steamID)
	if err != nil {
		log.WithError(err).Fatal("Ошибка создания товара")
	}
	err = pool.QueryRow(ctx, `
		INSERT INTO market_items (name, description, price_points, stock_quantity, image_url)
		VALUES ('Discord Nitro 1 Month', 'Буст для вашего сервера.', 500, 10, 'https://via.placeholder.com/200?text=Nitro')
		RETURNING id
	`).Scan(&nitroID)
	if err != nil {
		log.WithError(err).Fatal("Ошибка создания товара")
	}

	grants := []struct {
		itemID int64
		code   string
	}{
		{steamID, "STEAM-XXXX-YYYY"},
		{steamID, "STEAM-AAAA-BBBB"},
		{nitroID, "NITRO-1234-5678"},
	}
	for _, g := range grants {
		_, err = pool.Exec(ctx, `
			INSERT INTO market_item_grants (market_item_id, code)
			VALUES ($1, $2)
			ON CONFLICT (market_item_id, code) DO NOTHING
		`, g.itemID, g.code)
		if err != nil {
			log.WithError(err).Fatal("Ошибка создания кода товара")
		}
	}

	// === Турниры и предложения билетов ===
	var summerID int64
	err = pool.QueryRow(ctx, `
		INSERT INTO tournaments (name, description, game, prize_pool, start_date, status, banner_image_url)
		VALUES ('Summer Championship 2026', 'Главное событие лета.', 'League of Legends', '10000', NOW() + INTERVAL '7 days',
		        'upcoming', 'https://via.placeholder.com/800x300?text=Summer+Championship')
		RETURNING id
	`).Scan(&summerID)
	if err != nil {
		log.WithError(err).Fatal("Ошибка создания турнира")
	}
	_, err = pool.Exec(ctx, `
		INSERT INTO tournaments (name, description, game, prize_pool, start_date, status, banner_image_url)
		VALUES ('Weekly Valorant Bash', 'Еженедельный коммьюнити-турнир.', 'Valorant', '500', NOW() + INTERVAL '2 days',
		        'upcoming', 'https://via.placeholder.com/800x300?text=Valorant+Bash')
	`)
	if err != nil {
		log.WithError(err).Fatal("Ошибка создания турнира")
	}

	_, err = pool.Exec(ctx, `
		INSERT INTO ticket_offers (tournament_id, name, price_points, quantity_available)
		VALUES ($1, 'Standard Entry', 100, 50)
	`, summerID)
	if err != nil {
		log.WithError(err).Fatal("Ошибка создания предложения")
	}
	_, err = pool.Exec(ctx, `
		INSERT INTO ticket_offers (tournament_id, name, price_tickets, quantity_available)
		VALUES ($1, 'VIP Entry', 5, 10)
	`, summerID)
	if err != nil {
		log.WithError(err).Fatal("Ошибка создания предложения")
	}

	// === Промокоды ===
	_, err = pool.Exec(ctx, `
		INSERT INTO code_rewards (code, description, points_reward, max_uses_per_user)
		VALUES ('WELCOME', 'Приветственный бонус', 100, 1)
		ON CONFLICT (code) DO NOTHING
	`)
	if err != nil {
		log.WithError(err).Fatal("Ошибка создания промокода")
	}
	_, err = pool.Exec(ctx, `
		INSERT INTO code_rewards (code, description, tickets_reward, max_uses_per_user)
		VALUES ('TICKET1', 'Бесплатный билет', 1, 1)
		ON CONFLICT (code) DO NOTHING
	`)
	if err != nil {
		log.WithError(err).Fatal("Ошибка создания промокода")
	}

	// === Секторы колеса фортуны ===
	// Чистим перед вставкой, чтобы повторный запуск не плодил дубликаты
	if _, err = pool.Exec(ctx, `DELETE FROM fortune_spins`); err != nil {
		log.WithError(err).Fatal("Ошибка очистки истории вращений")
	}
	if _, err = pool.Exec(ctx, `DELETE FROM fortune_prize_tiers`); err != nil {
		log.WithError(err).Fatal("Ошибка очистки секторов")
	}
	tiers := []struct {
		name   string
		points int64
		weight int
	}{
		{"Small Win", 10, 60},
		{"Big Win", 100, 30},
		{"Jackpot", 1000, 10},
	}
	for _, t := range tiers {
		_, err = pool.Exec(ctx, `
			INSERT INTO fortune_prize_tiers (name, points_reward, weight)
			VALUES ($1, $2, $3)
		`, t.name, t.points, t.weight)
		if err != nil {
			log.WithError(err).Fatal("Ошибка создания сектора")
		}
	}

	log.Info("Демо-данные загружены")
}
