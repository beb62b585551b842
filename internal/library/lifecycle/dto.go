package lifecycle

import "time"

// 貸出リクエスト。days 未指定ならフロントの既定と同じ14日になる。
type BorrowRequest struct {
	Days *int `json:"days,omitempty"`
}

type BorrowResponse struct {
	BookID       string    `json:"book_id"`
	Title        string    `json:"title"`
	MemberID     string    `json:"member_id"`
	BorrowedDate time.Time `json:"borrowed_date"`
	DueDate      time.Time `json:"due_date"`
	BorrowDays   int       `json:"borrow_days"`
	TotalCost    int       `json:"total_cost"`
}

type ReserveResponse struct {
	BookID       string    `json:"book_id"`
	Title        string    `json:"title"`
	MemberID     string    `json:"member_id"`
	ReservedDate time.Time `json:"reserved_date"`
}

// 返却レスポンス。shortfall_days は早く返した分の日数で、表示専用
// （返金はしない）。
type ReturnResponse struct {
	BookID        string    `json:"book_id"`
	Title         string    `json:"title"`
	MemberID      string    `json:"member_id"`
	PaymentID     string    `json:"payment_id"`
	ReturnedDate  time.Time `json:"returned_date"`
	PlannedDays   int       `json:"planned_days"`
	ActualDays    int       `json:"actual_days"`
	LateFee       int       `json:"late_fee"`
	ShortfallDays int       `json:"shortfall_days"`
	TotalCost     int       `json:"total_cost"`
}

// 利用者ダッシュボードの集計。都度計算でどこにも保存しない。
type StatsResponse struct {
	BorrowedCount int `json:"borrowed_count"`
	DueSoonCount  int `json:"due_soon_count"`
	TotalFines    int `json:"total_fines"`
}
