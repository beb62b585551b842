package ledger

import (
	"context"
	"database/sql"
	"errors"

	"LMS-backend/internal/platform/db"
)

type Store struct{ db *sql.DB }

func NewStore(database *sql.DB) *Store { return &Store{db: database} }

// ---- Tx functions ----
// ライフサイクルエンジンが蔵書側の更新と同一トランザクションで呼ぶため、
// 書き込み系は db.DBTX を受ける関数として公開する。

func AddBorrowTx(ctx context.Context, tx db.DBTX, e *BorrowEntry) error {
	const q = `
	INSERT INTO ledger_borrows
	(borrow_id, member_id, book_id, title, borrowed_date, due_date, borrow_days, total_cost, paid)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := tx.ExecContext(ctx, q,
		e.BorrowID, e.MemberID, e.BookID, e.Title,
		e.BorrowedDate, e.DueDate, e.BorrowDays, e.TotalCost, e.Paid,
	)
	return err
}

// GetBorrowTx は member×book の有効な貸出エントリを行ロック付きで返す。
// 見つからなければ (nil, nil)。
func GetBorrowTx(ctx context.Context, tx db.DBTX, memberID, bookID string) (*BorrowEntry, error) {
	const q = `
	SELECT borrow_id, member_id, book_id, title, borrowed_date, due_date, borrow_days, total_cost, paid
	FROM ledger_borrows
	WHERE member_id = ? AND book_id = ?
	LIMIT 1 FOR UPDATE`
	var e BorrowEntry
	err := tx.QueryRowContext(ctx, q, memberID, bookID).Scan(
		&e.BorrowID, &e.MemberID, &e.BookID, &e.Title,
		&e.BorrowedDate, &e.DueDate, &e.BorrowDays, &e.TotalCost, &e.Paid,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func RemoveBorrowTx(ctx context.Context, tx db.DBTX, memberID, bookID string) (int64, error) {
	res, err := tx.ExecContext(ctx,
		`DELETE FROM ledger_borrows WHERE member_id = ? AND book_id = ?`, memberID, bookID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func AddReservationTx(ctx context.Context, tx db.DBTX, e *ReservationEntry) error {
	const q = `
	INSERT INTO ledger_reservations
	(reservation_id, member_id, book_id, title, reserved_date)
	VALUES (?, ?, ?, ?, ?)`
	_, err := tx.ExecContext(ctx, q, e.ReservationID, e.MemberID, e.BookID, e.Title, e.ReservedDate)
	return err
}

func RemoveReservationTx(ctx context.Context, tx db.DBTX, memberID, bookID string) (int64, error) {
	res, err := tx.ExecContext(ctx,
		`DELETE FROM ledger_reservations WHERE member_id = ? AND book_id = ?`, memberID, bookID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// AppendPaymentTx は支払い履歴への追記。UPDATE は存在しない（追記専用の監査ログ）。
func AppendPaymentTx(ctx context.Context, tx db.DBTX, p *PaymentRecord) error {
	const q = `
	INSERT INTO ledger_payments
	(payment_id, member_id, book_id, title, borrowed_date, returned_date,
	 planned_days, actual_days, total_cost, paid, payment_date)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := tx.ExecContext(ctx, q,
		p.PaymentID, p.MemberID, p.BookID, p.Title, p.BorrowedDate, p.ReturnedDate,
		p.PlannedDays, p.ActualDays, p.TotalCost, p.Paid, p.PaymentDate,
	)
	return err
}

// ---- Queries (read views) ----

func (s *Store) ActiveBorrows(ctx context.Context, memberID string) ([]BorrowEntry, error) {
	const q = `
	SELECT borrow_id, member_id, book_id, title, borrowed_date, due_date, borrow_days, total_cost, paid
	FROM ledger_borrows
	WHERE member_id = ?
	ORDER BY borrowed_date`
	rows, err := s.db.QueryContext(ctx, q, memberID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []BorrowEntry
	for rows.Next() {
		var e BorrowEntry
		if err := rows.Scan(
			&e.BorrowID, &e.MemberID, &e.BookID, &e.Title,
			&e.BorrowedDate, &e.DueDate, &e.BorrowDays, &e.TotalCost, &e.Paid,
		); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (s *Store) ActiveReservations(ctx context.Context, memberID string) ([]ReservationEntry, error) {
	const q = `
	SELECT reservation_id, member_id, book_id, title, reserved_date
	FROM ledger_reservations
	WHERE member_id = ?
	ORDER BY reserved_date`
	rows, err := s.db.QueryContext(ctx, q, memberID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []ReservationEntry
	for rows.Next() {
		var e ReservationEntry
		if err := rows.Scan(&e.ReservationID, &e.MemberID, &e.BookID, &e.Title, &e.ReservedDate); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (s *Store) Payments(ctx context.Context, memberID string) ([]PaymentRecord, error) {
	const q = `
	SELECT payment_id, member_id, book_id, title, borrowed_date, returned_date,
	       planned_days, actual_days, total_cost, paid, payment_date
	FROM ledger_payments
	WHERE member_id = ?
	ORDER BY payment_date`
	rows, err := s.db.QueryContext(ctx, q, memberID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []PaymentRecord
	for rows.Next() {
		var p PaymentRecord
		if err := rows.Scan(
			&p.PaymentID, &p.MemberID, &p.BookID, &p.Title, &p.BorrowedDate, &p.ReturnedDate,
			&p.PlannedDays, &p.ActualDays, &p.TotalCost, &p.Paid, &p.PaymentDate,
		); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
