// Package market — eligibility.go содержит чистые проверки покупки.
package market

import "gamerhub.ru/rewards-backend/internal/common"

// ValidatePurchase проверяет покупку по снимку состояния под блокировкой:
// остаток товара, затем баланс покупателя. Наличие свободного кода
// проверяется отдельно при выборке из пула — счётчик остатка и пул
// могут временно расходиться.
func ValidatePurchase(item *MarketItem, userPoints int64) error {
	if item.StockQuantity != nil && *item.StockQuantity <= 0 {
		return common.ErrOutOfStock
	}
	if userPoints < item.PricePoints {
		return common.ErrInsufficientPoints
	}
	return nil
}
