// Package market — service.go координирует операции магазина.
package market

import "context"

// Service управляет магазином.
type Service struct {
	repo *Repository
}

// NewService создаёт сервис магазина.
func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

// ListItems возвращает витрину магазина.
func (s *Service) ListItems(ctx context.Context) ([]*MarketItem, error) {
	return s.repo.ListActive(ctx)
}

// Purchase покупает товар и возвращает выданный код.
func (s *Service) Purchase(ctx context.Context, userID, itemID int64) (*PurchaseResult, error) {
	return s.repo.Purchase(ctx, userID, itemID)
}

// MyPurchases возвращает историю покупок пользователя.
func (s *Service) MyPurchases(ctx context.Context, userID int64) ([]*Purchase, error) {
	return s.repo.ListPurchases(ctx, userID)
}
