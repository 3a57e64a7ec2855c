// Package tournaments — eligibility.go содержит чистые проверки обмена.
package tournaments

import "gamerhub.ru/rewards-backend/internal/common"

// CheckTelegramGate — жёсткий входной барьер обмена билетов.
// Решается сразу после блокировки строки пользователя, ДО поиска
// предложения: без привязки пользователь получает этот отказ даже
// по несуществующему offerId.
func CheckTelegramGate(telegramVerified bool) error {
	if !telegramVerified {
		return common.ErrTelegramRequired
	}
	return nil
}

// ValidateRedemption проверяет обмен билета по снимку под блокировкой.
// Порядок проверок зафиксирован: привязка Telegram идёт ПЕРЕД ценами —
// это жёсткий входной барьер, не зависящий от баланса.
func ValidateRedemption(telegramVerified bool, offer *TicketOffer, userPoints, userTickets int64) error {
	if err := CheckTelegramGate(telegramVerified); err != nil {
		return err
	}
	if offer.PricePoints != nil && userPoints < *offer.PricePoints {
		return common.ErrInsufficientPoints
	}
	if offer.PriceTickets != nil && userTickets < *offer.PriceTickets {
		return common.ErrInsufficientTickets
	}
	if offer.QuantityAvailable != nil && *offer.QuantityAvailable <= 0 {
		return common.ErrSoldOut
	}
	return nil
}
