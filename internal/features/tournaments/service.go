// Package tournaments — service.go координирует операции турниров.
package tournaments

import "context"

// Service управляет турнирами.
type Service struct {
	repo *Repository
}

// NewService создаёт сервис турниров.
func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

// List возвращает все турниры с предложениями.
func (s *Service) List(ctx context.Context) ([]*Tournament, error) {
	return s.repo.List(ctx)
}

// Get возвращает один турнир.
func (s *Service) Get(ctx context.Context, id int64) (*Tournament, error) {
	return s.repo.Get(ctx, id)
}

// RedeemOffer обменивает билетное предложение.
func (s *Service) RedeemOffer(ctx context.Context, userID, offerID int64) (*RedeemResult, error) {
	return s.repo.RedeemOffer(ctx, userID, offerID)
}
