package lifecycle

import (
	"context"
	"database/sql"
	"errors"

	"LMS-backend/internal/library/books"
	"LMS-backend/internal/library/ledger"
	"LMS-backend/internal/platform/db"
)

type sqlStore struct {
	db     *sql.DB
	ledger *ledger.Store
}

func NewStore(database *sql.DB) Store {
	return &sqlStore{db: database, ledger: ledger.NewStore(database)}
}

// books 側のエラーをこのパッケージのコードに読み替える
func mapBookErr(err error) error {
	var api *books.APIError
	if errors.As(err, &api) {
		switch api.Code {
		case books.CodeNotFound:
			return ErrNotFound(api.Message)
		case books.CodeInvalidState:
			return ErrInvalidState(api.Message)
		}
	}
	return err
}

// ExecBorrow: 行ロック → 状態確認 → 条件付き更新 → 台帳追記 を1Txで行う。
// 条件付き更新が0行なら他の貸出に先を越されている（InvalidState）。
func (s *sqlStore) ExecBorrow(ctx context.Context, bookID string, entry *ledger.BorrowEntry) error {
	return db.RunInTx(ctx, s.db, &sql.TxOptions{}, func(ctx context.Context, tx db.DBTX) error {
		b, err := books.GetBookTx(ctx, tx, bookID)
		if err != nil {
			return mapBookErr(err)
		}
		if b.Status != books.StatusAvailable {
			return ErrInvalidState("book is not available")
		}

		aff, err := books.SetStatusTx(ctx, tx, bookID,
			books.StatusAvailable, books.StatusBorrowed,
			&entry.MemberID, nil, &entry.DueDate)
		if err != nil {
			return err
		}
		if aff != 1 {
			return ErrInvalidState("book is not available")
		}

		entry.BookID = b.BookID
		entry.Title = b.Title
		return ledger.AddBorrowTx(ctx, tx, entry)
	})
}

func (s *sqlStore) ExecReserve(ctx context.Context, bookID string, entry *ledger.ReservationEntry) error {
	return db.RunInTx(ctx, s.db, &sql.TxOptions{}, func(ctx context.Context, tx db.DBTX) error {
		b, err := books.GetBookTx(ctx, tx, bookID)
		if err != nil {
			return mapBookErr(err)
		}
		if b.Status != books.StatusAvailable {
			return ErrInvalidState("book is not available")
		}

		aff, err := books.SetStatusTx(ctx, tx, bookID,
			books.StatusAvailable, books.StatusReserved,
			nil, &entry.MemberID, nil)
		if err != nil {
			return err
		}
		if aff != 1 {
			return ErrInvalidState("book is not available")
		}

		entry.BookID = b.BookID
		entry.Title = b.Title
		return ledger.AddReservationTx(ctx, tx, entry)
	})
}

// ExecReturn: 台帳エントリの存在が前提条件。蔵書側は「本人が借り手に
// なっている場合」だけ解除し、0行でも続行する（司書の mark-returned が
// 先行して本だけ available に戻っていたり、その後すでに別の利用者へ
// 貸し出されているケースでも、利用者側の精算は成立させる）。
func (s *sqlStore) ExecReturn(ctx context.Context, bookID, memberID string, settle func(ledger.BorrowEntry) ledger.PaymentRecord) (*ledger.PaymentRecord, error) {
	var out *ledger.PaymentRecord
	err := db.RunInTx(ctx, s.db, &sql.TxOptions{}, func(ctx context.Context, tx db.DBTX) error {
		entry, err := ledger.GetBorrowTx(ctx, tx, memberID, bookID)
		if err != nil {
			return err
		}
		if entry == nil {
			return ErrNotFound("no active borrow for this book")
		}

		if _, err := books.ReleaseBorrowTx(ctx, tx, bookID, memberID); err != nil {
			return err
		}

		if _, err := ledger.RemoveBorrowTx(ctx, tx, memberID, bookID); err != nil {
			return err
		}

		rec := settle(*entry)
		if err := ledger.AppendPaymentTx(ctx, tx, &rec); err != nil {
			return err
		}
		out = &rec
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *sqlStore) ExecCancel(ctx context.Context, bookID, memberID string) error {
	return db.RunInTx(ctx, s.db, &sql.TxOptions{}, func(ctx context.Context, tx db.DBTX) error {
		aff, err := ledger.RemoveReservationTx(ctx, tx, memberID, bookID)
		if err != nil {
			return err
		}
		if aff == 0 {
			return ErrNotFound("no reservation for this book")
		}

		// 蔵書側は reserved からの復帰のみ。0行でも台帳の削除は活かす
		_, err = books.SetStatusTx(ctx, tx, bookID,
			books.StatusReserved, books.StatusAvailable, nil, nil, nil)
		return err
	})
}

// ExecMarkReturned は蔵書だけを available に戻す。台帳は触らない。
func (s *sqlStore) ExecMarkReturned(ctx context.Context, bookID string) error {
	return db.RunInTx(ctx, s.db, &sql.TxOptions{}, func(ctx context.Context, tx db.DBTX) error {
		b, err := books.GetBookTx(ctx, tx, bookID)
		if err != nil {
			return mapBookErr(err)
		}
		if b.Status != books.StatusBorrowed {
			return ErrInvalidState("book is not borrowed")
		}

		aff, err := books.SetStatusTx(ctx, tx, bookID,
			books.StatusBorrowed, books.StatusAvailable, nil, nil, nil)
		if err != nil {
			return err
		}
		if aff != 1 {
			return ErrInvalidState("book is not borrowed")
		}
		return nil
	})
}

func (s *sqlStore) ActiveBorrows(ctx context.Context, memberID string) ([]ledger.BorrowEntry, error) {
	return s.ledger.ActiveBorrows(ctx, memberID)
}
