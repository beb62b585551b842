package ledger

import (
	"context"
	"database/sql"
)

// 台帳の読み取り系サービス。書き込みはライフサイクルエンジンの
// トランザクション内でのみ行われる。
type Service struct {
	store *Store
}

func NewService(database *sql.DB) *Service {
	return &Service{store: NewStore(database)}
}

func (s *Service) ActiveBorrows(ctx context.Context, memberID string) ([]BorrowEntry, error) {
	return s.store.ActiveBorrows(ctx, memberID)
}

func (s *Service) ActiveReservations(ctx context.Context, memberID string) ([]ReservationEntry, error) {
	return s.store.ActiveReservations(ctx, memberID)
}

func (s *Service) Payments(ctx context.Context, memberID string) ([]PaymentRecord, error) {
	return s.store.Payments(ctx, memberID)
}
