package books

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"LMS-backend/internal/platform/db"
)

type Store struct{ db *sql.DB }

func NewStore(database *sql.DB) *Store { return &Store{db: database} }

const bookColumns = `book_id, title, author, price, status, borrowed_by, reserved_by, due_date, added_date`

func scanBook(row *sql.Row) (*Book, error) {
	var b Book
	err := row.Scan(
		&b.BookID, &b.Title, &b.Author, &b.Price, &b.Status,
		&b.BorrowedBy, &b.ReservedBy, &b.DueDate, &b.AddedDate,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound("book not found")
		}
		return nil, err
	}
	return &b, nil
}

func (s *Store) GetBook(ctx context.Context, bookID string) (*Book, error) {
	const q = `SELECT ` + bookColumns + ` FROM books WHERE book_id = ?`
	return scanBook(s.db.QueryRowContext(ctx, q, bookID))
}

// ListBooks は status で絞った一覧を返す。
// 全件および available の一覧は表示用にタイトル順、それ以外は順序保証なし。
func (s *Store) ListBooks(ctx context.Context, f ListFilter) ([]Book, error) {
	q := `SELECT ` + bookColumns + ` FROM books`
	args := []any{}
	if f.Status != "" {
		q += ` WHERE status = ?`
		args = append(args, string(f.Status))
	}
	if f.Status == "" || f.Status == StatusAvailable {
		q += ` ORDER BY title`
	}

	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Book
	for rows.Next() {
		var b Book
		if err := rows.Scan(
			&b.BookID, &b.Title, &b.Author, &b.Price, &b.Status,
			&b.BorrowedBy, &b.ReservedBy, &b.DueDate, &b.AddedDate,
		); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

// DeleteBook は貸出中でない本だけを削除する。
// 0行だった場合は存在有無を確認して NotFound / InvalidState を区別する。
func (s *Store) DeleteBook(ctx context.Context, bookID string) error {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM books WHERE book_id = ? AND status <> ?`, bookID, string(StatusBorrowed))
	if err != nil {
		return err
	}
	aff, _ := res.RowsAffected()
	if aff == 1 {
		return nil
	}

	var status string
	err = s.db.QueryRowContext(ctx, `SELECT status FROM books WHERE book_id = ?`, bookID).Scan(&status)
	if err == sql.ErrNoRows {
		return ErrNotFound("book not found")
	}
	if err != nil {
		return err
	}
	return ErrInvalidState("cannot delete a borrowed book")
}

// ---- Tx functions (ライフサイクル側のトランザクションから呼ばれる) ----

func InsertBookTx(ctx context.Context, tx db.DBTX, b *Book) error {
	const q = `
	INSERT INTO books
	(book_id, title, author, price, status, borrowed_by, reserved_by, due_date, added_date)
	VALUES (?, ?, ?, ?, ?, NULL, NULL, NULL, ?)`
	_, err := tx.ExecContext(ctx, q, b.BookID, b.Title, b.Author, b.Price, string(b.Status), b.AddedDate)
	return err
}

// GetBookTx は行ロック付きで1冊を取得する
func GetBookTx(ctx context.Context, tx db.DBTX, bookID string) (*Book, error) {
	const q = `SELECT ` + bookColumns + ` FROM books WHERE book_id = ? FOR UPDATE`
	return scanBook(tx.QueryRowContext(ctx, q, bookID))
}

// SetStatusTx は現在の status を条件にした原子的な状態更新。
// 遷移表にないエッジは DB に触れる前に InvalidState で弾く。
// 期待した状態から変わっていた場合は 0 行更新となり、呼び出し側が
// InvalidState として扱う。同じ1冊への同時 borrow はここで直列化される。
// borrowed_by / reserved_by / due_date は常に全カラム書き換えるので
// 「どちらか一方のみ非NULL」の不変条件は遷移のたびに作り直される。
func SetStatusTx(ctx context.Context, tx db.DBTX, bookID string, from, to Status, borrowedBy, reservedBy *string, dueDate *time.Time) (int64, error) {
	if !CanTransition(from, to) {
		return 0, ErrInvalidState(fmt.Sprintf("no transition from %s to %s", from, to))
	}
	const q = `
	UPDATE books
	SET status = ?, borrowed_by = ?, reserved_by = ?, due_date = ?
	WHERE book_id = ? AND status = ?`
	res, err := tx.ExecContext(ctx, q,
		string(to), ptrOrNil(borrowedBy), ptrOrNil(reservedBy), timeOrNil(dueDate),
		bookID, string(from),
	)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// ReleaseBorrowTx は借り手本人が持っている貸出だけを解除する。
// 別の利用者に貸出中の同じ1冊を巻き込まないよう borrowed_by も
// 条件に含める。該当しなければ 0 行のまま何も変えない。
func ReleaseBorrowTx(ctx context.Context, tx db.DBTX, bookID, memberID string) (int64, error) {
	const q = `
	UPDATE books
	SET status = ?, borrowed_by = NULL, reserved_by = NULL, due_date = NULL
	WHERE book_id = ? AND status = ? AND borrowed_by = ?`
	res, err := tx.ExecContext(ctx, q,
		string(StatusAvailable), bookID, string(StatusBorrowed), memberID,
	)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func ptrOrNil(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

func timeOrNil(t *time.Time) any {
	if t == nil {
		return nil
	}
	return *t
}
