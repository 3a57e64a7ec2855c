package tournaments

import (
	"errors"
	"testing"

	"gamerhub.ru/rewards-backend/internal/common"
)

func ptrInt(n int) *int       { return &n }
func ptrInt64(n int64) *int64 { return &n }

func TestValidateRedemption(t *testing.T) {
	tests := []struct {
		name     string
		verified bool
		offer    *TicketOffer
		points   int64
		tickets  int64
		wantErr  error
	}{
		{
			"всё в порядке, цена в очках",
			true, &TicketOffer{PricePoints: ptrInt64(100), QuantityAvailable: ptrInt(10)},
			500, 0, nil,
		},
		{
			"всё в порядке, цена в билетах",
			true, &TicketOffer{PriceTickets: ptrInt64(5), QuantityAvailable: ptrInt(10)},
			0, 5, nil,
		},
		{
			"без привязки Telegram",
			false, &TicketOffer{PricePoints: ptrInt64(100), QuantityAvailable: ptrInt(10)},
			500, 0, common.ErrTelegramRequired,
		},
		{
			"не хватает очков",
			true, &TicketOffer{PricePoints: ptrInt64(100), QuantityAvailable: ptrInt(10)},
			99, 0, common.ErrInsufficientPoints,
		},
		{
			"не хватает билетов",
			true, &TicketOffer{PriceTickets: ptrInt64(5), QuantityAvailable: ptrInt(10)},
			0, 4, common.ErrInsufficientTickets,
		},
		{
			"распродано",
			true, &TicketOffer{PricePoints: ptrInt64(100), QuantityAvailable: ptrInt(0)},
			500, 0, common.ErrSoldOut,
		},
		{
			"двойная цена, хватает на обе",
			true, &TicketOffer{PricePoints: ptrInt64(100), PriceTickets: ptrInt64(2), QuantityAvailable: ptrInt(1)},
			100, 2, nil,
		},
		{
			"цены не заданы (nil) — бесплатный вход",
			true, &TicketOffer{QuantityAvailable: ptrInt(1)},
			0, 0, nil,
		},
		{
			"безлимитное количество (nil)",
			true, &TicketOffer{PricePoints: ptrInt64(100)},
			100, 0, nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRedemption(tt.verified, tt.offer, tt.points, tt.tickets)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateRedemption = %v, ожидалось %v", err, tt.wantErr)
			}
		})
	}
}

// Привязка Telegram проверяется раньше цен: даже при пустом балансе
// пользователь без привязки получает именно этот отказ.
func TestValidateRedemptionTelegramFirst(t *testing.T) {
	offer := &TicketOffer{PricePoints: ptrInt64(100), QuantityAvailable: ptrInt(0)}
	if err := ValidateRedemption(false, offer, 0, 0); !errors.Is(err, common.ErrTelegramRequired) {
		t.Errorf("ожидался ErrTelegramRequired, получено %v", err)
	}
}

// Барьер привязки не зависит от предложения вовсе: он решается по одному
// лишь флагу пользователя, до запроса ticket_offers. Пользователь без
// привязки получает ErrTelegramRequired и для несуществующего offerId.
func TestCheckTelegramGate(t *testing.T) {
	if err := CheckTelegramGate(false); !errors.Is(err, common.ErrTelegramRequired) {
		t.Errorf("без привязки ожидался ErrTelegramRequired, получено %v", err)
	}
	if err := CheckTelegramGate(true); err != nil {
		t.Errorf("с привязкой ожидался nil, получено %v", err)
	}
}
