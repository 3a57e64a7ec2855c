// Package market — repository.go выполняет операции с таблицами магазина.
// Покупка — одна транзакция: блокировки в каноническом порядке
// (пользователь → товар → код), списание, выдача кода и запись истории
// атомарны.
package market

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"gamerhub.ru/rewards-backend/internal/common"
)

// Repository предоставляет методы для работы с таблицами магазина.
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository создаёт новый репозиторий магазина.
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// ListActive возвращает активные товары магазина.
func (r *Repository) ListActive(ctx context.Context) ([]*MarketItem, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, description, image_url, price_points, stock_quantity, is_active, created_at
		FROM market_items
		WHERE is_active = TRUE
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения товаров: %w", err)
	}
	defer rows.Close()

	var items []*MarketItem
	for rows.Next() {
		var i MarketItem
		err := rows.Scan(&i.ID, &i.Name, &i.Description, &i.ImageURL,
			&i.PricePoints, &i.StockQuantity, &i.IsActive, &i.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("ошибка сканирования товара: %w", err)
		}
		items = append(items, &i)
	}
	return items, rows.Err()
}

// Purchase покупает товар: списывает очки и выдаёт один свободный код.
//
// Код выбирается запросом FOR UPDATE SKIP LOCKED: строки, уже
// заблокированные параллельной покупкой, пропускаются, а не ждутся.
// Поэтому N одновременных покупателей при N свободных кодах получают
// N РАЗНЫХ кодов, не выстраиваясь в очередь друг за другом.
// Если свободного незаблокированного кода нет — ErrNoCodesAvailable,
// даже когда счётчик остатка выглядит положительным.
func (r *Repository) Purchase(ctx context.Context, userID, itemID int64) (*PurchaseResult, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("ошибка начала транзакции: %w", err)
	}
	defer tx.Rollback(ctx)

	// Канонический порядок блокировок: сначала пользователь, потом товар
	var userPoints int64
	err = tx.QueryRow(ctx, `
		SELECT points FROM users WHERE id = $1 FOR UPDATE
	`, userID).Scan(&userPoints)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, common.ErrUserNotFound
		}
		return nil, fmt.Errorf("ошибка чтения пользователя: %w", err)
	}

	var item MarketItem
	err = tx.QueryRow(ctx, `
		SELECT id, name, description, image_url, price_points, stock_quantity, is_active, created_at
		FROM market_items
		WHERE id = $1
		FOR UPDATE
	`, itemID).Scan(&item.ID, &item.Name, &item.Description, &item.ImageURL,
		&item.PricePoints, &item.StockQuantity, &item.IsActive, &item.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, common.ErrItemNotFound
		}
		return nil, fmt.Errorf("ошибка чтения товара: %w", err)
	}

	// Остаток и баланс
	if err := ValidatePurchase(&item, userPoints); err != nil {
		return nil, err
	}

	// Резервируем ровно один свободный код, пропуская занятые
	// параллельными транзакциями строки вместо ожидания
	grant := Grant{MarketItemID: itemID}
	err = tx.QueryRow(ctx, `
		SELECT id, code FROM market_item_grants
		WHERE market_item_id = $1 AND is_redeemed = FALSE
		LIMIT 1
		FOR UPDATE SKIP LOCKED
	`, itemID).Scan(&grant.ID, &grant.Code)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, common.ErrNoCodesAvailable
		}
		return nil, fmt.Errorf("ошибка резервирования кода: %w", err)
	}

	// Списываем очки
	_, err = tx.Exec(ctx, `
		UPDATE users SET points = points - $2, updated_at = NOW() WHERE id = $1
	`, userID, item.PricePoints)
	if err != nil {
		return nil, fmt.Errorf("ошибка списания очков: %w", err)
	}

	// Уменьшаем счётчик остатка (если товар лимитирован)
	if item.StockQuantity != nil {
		_, err = tx.Exec(ctx, `
			UPDATE market_items SET stock_quantity = stock_quantity - 1 WHERE id = $1
		`, itemID)
		if err != nil {
			return nil, fmt.Errorf("ошибка уменьшения остатка: %w", err)
		}
	}

	// Помечаем код выданным — терминальное состояние, назад пути нет
	_, err = tx.Exec(ctx, `
		UPDATE market_item_grants
		SET is_redeemed = TRUE, redeemed_by_user_id = $1, redeemed_at = NOW()
		WHERE id = $2
	`, userID, grant.ID)
	if err != nil {
		return nil, fmt.Errorf("ошибка выдачи кода: %w", err)
	}

	// Записываем покупку в историю со ссылкой на конкретный код
	_, err = tx.Exec(ctx, `
		INSERT INTO user_market_purchases (user_id, market_item_id, market_item_grant_id, points_spent)
		VALUES ($1, $2, $3, $4)
	`, userID, itemID, grant.ID, item.PricePoints)
	if err != nil {
		return nil, fmt.Errorf("ошибка записи покупки: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("ошибка фиксации транзакции: %w", err)
	}

	return &PurchaseResult{Code: grant.Code, ItemName: item.Name}, nil
}

// ListPurchases возвращает историю покупок пользователя с кодами.
func (r *Repository) ListPurchases(ctx context.Context, userID int64) ([]*Purchase, error) {
	rows, err := r.db.Query(ctx, `
		SELECT p.id, p.user_id, p.market_item_id, p.market_item_grant_id,
		       p.points_spent, p.created_at, i.name AS item_name, g.code
		FROM user_market_purchases p
		JOIN market_items i ON p.market_item_id = i.id
		JOIN market_item_grants g ON p.market_item_grant_id = g.id
		WHERE p.user_id = $1
		ORDER BY p.created_at DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения покупок: %w", err)
	}
	defer rows.Close()

	var purchases []*Purchase
	for rows.Next() {
		var p Purchase
		err := rows.Scan(&p.ID, &p.UserID, &p.MarketItemID, &p.MarketItemGrantID,
			&p.PointsSpent, &p.CreatedAt, &p.ItemName, &p.Code)
		if err != nil {
			return nil, fmt.Errorf("ошибка сканирования покупки: %w", err)
		}
		purchases = append(purchases, &p)
	}
	return purchases, rows.Err()
}
