// Package tournaments управляет турнирами и билетными предложениями.
// models.go описывает структуры для таблиц tournaments и ticket_offers.
package tournaments

import "time"

// Tournament представляет турнир (контент, авторится извне).
type Tournament struct {
	ID          int64      `db:"id" json:"id"`
	Name        string     `db:"name" json:"name"`
	Description string     `db:"description" json:"description"`
	Game        string     `db:"game" json:"game"`
	PrizePool   string     `db:"prize_pool" json:"prizePool"`
	StartDate   *time.Time `db:"start_date" json:"startDate"`
	Status      string     `db:"status" json:"status"` // upcoming / live / finished
	BannerURL   string     `db:"banner_image_url" json:"bannerImageUrl"`
	CreatedAt   time.Time  `db:"created_at" json:"createdAt"`

	// Предложения турнира (подгружаются отдельным запросом)
	Offers []*TicketOffer `db:"-" json:"offers"`
}

// TicketOffer — право войти в турнир за очки и/или билеты.
// Цены независимы: может быть задана одна из них или обе сразу.
// quantity_available уменьшается атомарно и не может уйти в минус.
type TicketOffer struct {
	ID                int64     `db:"id" json:"id"`
	TournamentID      int64     `db:"tournament_id" json:"tournamentId"`
	Name              string    `db:"name" json:"name"`
	PricePoints       *int64    `db:"price_points" json:"pricePoints"`             // Цена в очках (nil = не взимается)
	PriceTickets      *int64    `db:"price_tickets" json:"priceTickets"`           // Цена в билетах (nil = не взимается)
	QuantityAvailable *int      `db:"quantity_available" json:"quantityAvailable"` // Остаток (nil = без лимита)
	CreatedAt         time.Time `db:"created_at" json:"createdAt"`
}

// RedeemResult — итог успешного обмена билета.
type RedeemResult struct {
	TournamentID int64 `json:"tournamentId"`
}
