package books

import "time"

// 蔵書登録リクエスト（count 冊分の独立したコピーを作る）
type CreateBooksRequest struct {
	Title  string  `json:"title" binding:"required"`
	Author string  `json:"author" binding:"required"`
	Price  float64 `json:"price"`
	Count  int     `json:"count" binding:"required"`
}

type BookResponse struct {
	BookID     string     `json:"book_id"`
	Title      string     `json:"title"`
	Author     string     `json:"author"`
	Price      float64    `json:"price"`
	Status     Status     `json:"status"`
	BorrowedBy *string    `json:"borrowed_by,omitempty"`
	ReservedBy *string    `json:"reserved_by,omitempty"`
	DueDate    *time.Time `json:"due_date,omitempty"`
	AddedDate  time.Time  `json:"added_date"`
}

func buildBookResponse(b *Book) BookResponse {
	resp := BookResponse{
		BookID:    b.BookID,
		Title:     b.Title,
		Author:    b.Author,
		Price:     b.Price,
		Status:    b.Status,
		AddedDate: b.AddedDate,
	}
	if b.BorrowedBy.Valid {
		val := b.BorrowedBy.String
		resp.BorrowedBy = &val
	}
	if b.ReservedBy.Valid {
		val := b.ReservedBy.String
		resp.ReservedBy = &val
	}
	if b.DueDate.Valid {
		val := b.DueDate.Time
		resp.DueDate = &val
	}
	return resp
}
