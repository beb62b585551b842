package lifecycle

import (
	"context"
	"crypto/rand"
	"database/sql"
	"math"
	"time"

	"github.com/oklog/ulid/v2"

	"LMS-backend/internal/library/ledger"
)

// 料金まわりの定数。DailyRate は貸出時の料金と延滞金の両方に使う。
const (
	DailyRate         = 10 // 通貨単位/日
	DefaultBorrowDays = 14
	dueSoonWindowDays = 3
)

// ===== インターフェース群 =====

type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now().UTC()
}

type IDGen interface {
	New() string
}

type ulidGen struct{}

func (ulidGen) New() string {
	t := time.Now().UTC()
	entropy := ulid.Monotonic(rand.Reader, 0)
	return ulid.MustNew(ulid.Timestamp(t), entropy).String()
}

// Store はライフサイクル操作のトランザクション境界。蔵書と台帳の
// 両方の変更を1トランザクションで commit するか、まとめて abort する。
type Store interface {
	// ExecBorrow は entry の BookID/Title を蔵書から補完して返す
	ExecBorrow(ctx context.Context, bookID string, entry *ledger.BorrowEntry) error
	ExecReserve(ctx context.Context, bookID string, entry *ledger.ReservationEntry) error
	// ExecReturn はロック済みの貸出エントリを settle に渡し、
	// 返ってきた支払いレコードを追記してエントリを削除する
	ExecReturn(ctx context.Context, bookID, memberID string, settle func(ledger.BorrowEntry) ledger.PaymentRecord) (*ledger.PaymentRecord, error)
	ExecCancel(ctx context.Context, bookID, memberID string) error
	ExecMarkReturned(ctx context.Context, bookID string) error
	ActiveBorrows(ctx context.Context, memberID string) ([]ledger.BorrowEntry, error)
}

// ===== Service本体 =====

type Service struct {
	store Store
	clock Clock
	id    IDGen
}

func NewService(database *sql.DB) *Service {
	return &Service{
		store: NewStore(database),
		clock: realClock{},
		id:    ulidGen{},
	}
}

// ceilDays は経過時間を暦日の切り上げで日数にする。
// 1時間でも日をまたげば1日扱い（期限超過も同じ規則で数える）。
func ceilDays(d time.Duration) int {
	return int(math.Ceil(d.Hours() / 24))
}

// 貸出。available の本にしか成立しない。
func (s *Service) Borrow(ctx context.Context, bookID, memberID string, days int) (*BorrowResponse, error) {
	if memberID == "" {
		return nil, ErrUnauthenticated("no authenticated member")
	}
	if bookID == "" {
		return nil, ErrInvalid("book_id is required")
	}
	if days < 1 {
		return nil, ErrInvalid("days must be >= 1")
	}

	now := s.clock.Now()
	entry := &ledger.BorrowEntry{
		BorrowID:     s.id.New(),
		MemberID:     memberID,
		BorrowedDate: now,
		DueDate:      now.Add(time.Duration(days) * 24 * time.Hour),
		BorrowDays:   days,
		TotalCost:    days * DailyRate,
		Paid:         false,
	}

	if err := s.store.ExecBorrow(ctx, bookID, entry); err != nil {
		return nil, err
	}

	return &BorrowResponse{
		BookID:       entry.BookID,
		Title:        entry.Title,
		MemberID:     memberID,
		BorrowedDate: entry.BorrowedDate,
		DueDate:      entry.DueDate,
		BorrowDays:   entry.BorrowDays,
		TotalCost:    entry.TotalCost,
	}, nil
}

// 予約。予約中の本は available の一覧から外れるので、キャンセルを
// 経由しないと借りられない。
func (s *Service) Reserve(ctx context.Context, bookID, memberID string) (*ReserveResponse, error) {
	if memberID == "" {
		return nil, ErrUnauthenticated("no authenticated member")
	}
	if bookID == "" {
		return nil, ErrInvalid("book_id is required")
	}

	now := s.clock.Now()
	entry := &ledger.ReservationEntry{
		ReservationID: s.id.New(),
		MemberID:      memberID,
		ReservedDate:  now,
	}

	if err := s.store.ExecReserve(ctx, bookID, entry); err != nil {
		return nil, err
	}

	return &ReserveResponse{
		BookID:       entry.BookID,
		Title:        entry.Title,
		MemberID:     memberID,
		ReservedDate: entry.ReservedDate,
	}, nil
}

// 返却。延滞なら (実日数-予定日数)×日額 を加算。早期返却の返金はせず、
// 未使用日数はレスポンスで報告するだけ。
func (s *Service) Return(ctx context.Context, bookID, memberID string) (*ReturnResponse, error) {
	if memberID == "" {
		return nil, ErrUnauthenticated("no authenticated member")
	}
	if bookID == "" {
		return nil, ErrInvalid("book_id is required")
	}

	now := s.clock.Now()
	settle := func(e ledger.BorrowEntry) ledger.PaymentRecord {
		actualDays := ceilDays(now.Sub(e.BorrowedDate))
		if actualDays < 0 {
			actualDays = 0
		}
		total := e.TotalCost
		if actualDays > e.BorrowDays {
			total += (actualDays - e.BorrowDays) * DailyRate
		}
		return ledger.PaymentRecord{
			PaymentID:    s.id.New(),
			MemberID:     e.MemberID,
			BookID:       e.BookID,
			Title:        e.Title,
			BorrowedDate: e.BorrowedDate,
			ReturnedDate: now,
			PlannedDays:  e.BorrowDays,
			ActualDays:   actualDays,
			TotalCost:    total,
			Paid:         true,
			PaymentDate:  now,
		}
	}

	rec, err := s.store.ExecReturn(ctx, bookID, memberID, settle)
	if err != nil {
		return nil, err
	}

	resp := &ReturnResponse{
		BookID:       rec.BookID,
		Title:        rec.Title,
		MemberID:     memberID,
		PaymentID:    rec.PaymentID,
		ReturnedDate: rec.ReturnedDate,
		PlannedDays:  rec.PlannedDays,
		ActualDays:   rec.ActualDays,
		LateFee:      rec.TotalCost - rec.PlannedDays*DailyRate,
		TotalCost:    rec.TotalCost,
	}
	if rec.ActualDays < rec.PlannedDays {
		resp.ShortfallDays = rec.PlannedDays - rec.ActualDays
	}
	return resp, nil
}

// 予約キャンセル
func (s *Service) CancelReservation(ctx context.Context, bookID, memberID string) error {
	if memberID == "" {
		return ErrUnauthenticated("no authenticated member")
	}
	if bookID == "" {
		return ErrInvalid("book_id is required")
	}
	return s.store.ExecCancel(ctx, bookID, memberID)
}

// 司書による返却処理。蔵書の状態だけを available に戻し、利用者の
// 台帳には触れない（台帳側の精算は利用者の返却操作で行う）。
func (s *Service) MarkReturned(ctx context.Context, bookID string) error {
	if bookID == "" {
		return ErrInvalid("book_id is required")
	}
	return s.store.ExecMarkReturned(ctx, bookID)
}

// Stats は利用者ダッシュボード用の集計。アクティブな貸出から都度計算する。
func (s *Service) Stats(ctx context.Context, memberID string) (*StatsResponse, error) {
	if memberID == "" {
		return nil, ErrUnauthenticated("no authenticated member")
	}

	entries, err := s.store.ActiveBorrows(ctx, memberID)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	out := &StatsResponse{BorrowedCount: len(entries)}
	for _, e := range entries {
		daysLeft := ceilDays(e.DueDate.Sub(now))
		if daysLeft >= 0 && daysLeft <= dueSoonWindowDays {
			out.DueSoonCount++
		}
		if daysLeft < 0 {
			out.TotalFines += -daysLeft * DailyRate
		}
	}
	return out, nil
}
