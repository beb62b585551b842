package books

import (
	"database/sql"
	"time"
)

// Status は蔵書1冊の貸出状態。自由文字列ではなく閉じた列挙として扱い、
// 遷移は transitions 表でのみ許可する。
type Status string

const (
	StatusAvailable Status = "available"
	StatusBorrowed  Status = "borrowed"
	StatusReserved  Status = "reserved"
)

func (s Status) Valid() bool {
	switch s {
	case StatusAvailable, StatusBorrowed, StatusReserved:
		return true
	}
	return false
}

// 許可する状態遷移。borrowed と reserved の間に直接の辺は無い：
// 予約中の本は一度キャンセルしてからでないと借りられない。
var transitions = map[Status][]Status{
	StatusAvailable: {StatusBorrowed, StatusReserved},
	StatusBorrowed:  {StatusAvailable},
	StatusReserved:  {StatusAvailable},
}

func CanTransition(from, to Status) bool {
	for _, t := range transitions[from] {
		if t == to {
			return true
		}
	}
	return false
}

// Book は books テーブルの1行＝物理的な1冊を表す。
// borrowed_by / reserved_by は status が一致する時だけ非NULL。
type Book struct {
	BookID     string
	Title      string
	Author     string
	Price      float64
	Status     Status
	BorrowedBy sql.NullString
	ReservedBy sql.NullString
	DueDate    sql.NullTime
	AddedDate  time.Time
}

// 一覧取得用の検索条件
type ListFilter struct {
	Status Status // 空なら全件
}
