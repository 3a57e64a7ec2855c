// Package market управляет магазином: товары за очки, пул одноразовых
// кодов под каждым товаром и история покупок.
// models.go описывает структуры для таблиц market_items,
// market_item_grants и user_market_purchases.
package market

import "time"

// MarketItem представляет товар в магазине.
// stock_quantity — счётчик остатка (nil = не ограничен). Он обязан
// сходиться с числом свободных кодов, но решающим при покупке всегда
// является пул кодов.
type MarketItem struct {
	ID            int64     `db:"id" json:"id"`
	Name          string    `db:"name" json:"name"`
	Description   string    `db:"description" json:"description"`
	ImageURL      string    `db:"image_url" json:"imageUrl"`
	PricePoints   int64     `db:"price_points" json:"pricePoints"`     // Цена в очках (>= 0)
	StockQuantity *int      `db:"stock_quantity" json:"stockQuantity"` // Остаток (nil = без лимита)
	IsActive      bool      `db:"is_active" json:"isActive"`
	CreatedAt     time.Time `db:"created_at" json:"createdAt"`
}

// Grant — один одноразовый код из пула товара.
// После is_redeemed = TRUE запись терминальна: код никогда
// не переиспользуется и не сбрасывается.
type Grant struct {
	ID               int64      `db:"id"`
	MarketItemID     int64      `db:"market_item_id"`
	Code             string     `db:"code"`
	IsRedeemed       bool       `db:"is_redeemed"`
	RedeemedByUserID *int64     `db:"redeemed_by_user_id"`
	RedeemedAt       *time.Time `db:"redeemed_at"`
}

// Purchase — запись истории покупок (append-only).
// Ссылается на конкретный выданный код.
type Purchase struct {
	ID                int64     `db:"id" json:"id"`
	UserID            int64     `db:"user_id" json:"-"`
	MarketItemID      int64     `db:"market_item_id" json:"marketItemId"`
	MarketItemGrantID int64     `db:"market_item_grant_id" json:"-"`
	PointsSpent       int64     `db:"points_spent" json:"pointsSpent"`
	CreatedAt         time.Time `db:"created_at" json:"createdAt"`

	// Поля из JOIN для выдачи истории
	ItemName string `db:"item_name" json:"itemName"`
	Code     string `db:"code" json:"code"`
}

// PurchaseResult — итог успешной покупки.
type PurchaseResult struct {
	Code     string `json:"code"`
	ItemName string `json:"itemName"`
}
