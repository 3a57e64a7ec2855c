package market

import (
	"errors"
	"testing"

	"gamerhub.ru/rewards-backend/internal/common"
)

func ptrInt(n int) *int { return &n }

func TestValidatePurchase(t *testing.T) {
	tests := []struct {
		name    string
		item    *MarketItem
		points  int64
		wantErr error
	}{
		{"достаточно очков, есть остаток", &MarketItem{PricePoints: 500, StockQuantity: ptrInt(3)}, 1000, nil},
		{"очков ровно на цену", &MarketItem{PricePoints: 500, StockQuantity: ptrInt(3)}, 500, nil},
		{"не хватает очков", &MarketItem{PricePoints: 500, StockQuantity: ptrInt(3)}, 499, common.ErrInsufficientPoints},
		{"остаток исчерпан", &MarketItem{PricePoints: 500, StockQuantity: ptrInt(0)}, 1000, common.ErrOutOfStock},
		{"безлимитный остаток (nil)", &MarketItem{PricePoints: 500}, 1000, nil},
		{"бесплатный товар при нуле очков", &MarketItem{PricePoints: 0, StockQuantity: ptrInt(1)}, 0, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePurchase(tt.item, tt.points)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidatePurchase = %v, ожидалось %v", err, tt.wantErr)
			}
		})
	}
}

// Остаток проверяется раньше баланса: при нарушении обоих
// пользователь видит «нет в наличии», а не «не хватает очков».
func TestValidatePurchaseOrder(t *testing.T) {
	item := &MarketItem{PricePoints: 500, StockQuantity: ptrInt(0)}
	if err := ValidatePurchase(item, 0); !errors.Is(err, common.ErrOutOfStock) {
		t.Errorf("ожидался ErrOutOfStock, получено %v", err)
	}
}
