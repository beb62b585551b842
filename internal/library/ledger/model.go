package ledger

import "time"

// BorrowEntry は利用者台帳の「借りている本」1件。
// 貸出時に作られ、返却で payment_history へ移る。
type BorrowEntry struct {
	BorrowID     string    `json:"borrow_id"`
	MemberID     string    `json:"member_id"`
	BookID       string    `json:"book_id"`
	Title        string    `json:"title"`
	BorrowedDate time.Time `json:"borrowed_date"`
	DueDate      time.Time `json:"due_date"`
	BorrowDays   int       `json:"borrow_days"`
	TotalCost    int       `json:"total_cost"`
	Paid         bool      `json:"paid"`
}

// ReservationEntry は「予約している本」1件
type ReservationEntry struct {
	ReservationID string    `json:"reservation_id"`
	MemberID      string    `json:"member_id"`
	BookID        string    `json:"book_id"`
	Title         string    `json:"title"`
	ReservedDate  time.Time `json:"reserved_date"`
}

// PaymentRecord は支払い履歴1件。追記専用で、一度書いたら更新しない。
type PaymentRecord struct {
	PaymentID    string    `json:"payment_id"`
	MemberID     string    `json:"member_id"`
	BookID       string    `json:"book_id"`
	Title        string    `json:"title"`
	BorrowedDate time.Time `json:"borrowed_date"`
	ReturnedDate time.Time `json:"returned_date"`
	PlannedDays  int       `json:"planned_days"`
	ActualDays   int       `json:"actual_days"`
	TotalCost    int       `json:"total_cost"`
	Paid         bool      `json:"paid"`
	PaymentDate  time.Time `json:"payment_date"`
}
