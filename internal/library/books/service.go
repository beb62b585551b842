package books

import (
	"context"
	"crypto/rand"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"

	"LMS-backend/internal/platform/db"
)

// ===== Error model (lifecycle と同型) =====
type Code string

const (
	CodeInvalidArgument Code = "INVALID_ARGUMENT"
	CodeNotFound        Code = "NOT_FOUND"
	CodeInvalidState    Code = "INVALID_STATE"
	CodeInternal        Code = "INTERNAL"
)

type APIError struct {
	Code    Code
	Message string
}

func (e *APIError) Error() string { return fmt.Sprintf("%s: %s", e.Code, e.Message) }

func ErrInvalid(msg string) *APIError      { return &APIError{Code: CodeInvalidArgument, Message: msg} }
func ErrNotFound(msg string) *APIError     { return &APIError{Code: CodeNotFound, Message: msg} }
func ErrInvalidState(msg string) *APIError { return &APIError{Code: CodeInvalidState, Message: msg} }
func ErrInternal(msg string) *APIError     { return &APIError{Code: CodeInternal, Message: msg} }

func toHTTPStatus(err error) int {
	var api *APIError
	if errors.As(err, &api) {
		switch api.Code {
		case CodeInvalidArgument:
			return 400
		case CodeNotFound:
			return 404
		case CodeInvalidState:
			return 409
		default:
			return 500
		}
	}
	return 500
}

// ===== Clock & ID =====

type Clock interface{ Now() time.Time }
type realClock struct{}

func (realClock) Now() time.Time { return time.Now().UTC() }

type IDGen interface{ NewULID(t time.Time) string }
type ulidGen struct{}

func (ulidGen) NewULID(t time.Time) string {
	entropy := ulid.Monotonic(rand.Reader, 0)
	return ulid.MustNew(ulid.Timestamp(t), entropy).String()
}

// ===== Service =====

type Service struct {
	db    *sql.DB
	store *Store
	clock Clock
	id    IDGen
}

func NewService(database *sql.DB) *Service {
	return &Service{
		db:    database,
		store: NewStore(database),
		clock: realClock{},
		id:    ulidGen{},
	}
}

// 蔵書登録。count 冊分の独立したコピーを1トランザクションで作成する。
func (s *Service) Create(ctx context.Context, req CreateBooksRequest) ([]BookResponse, error) {
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Author) == "" {
		return nil, ErrInvalid("title and author are required")
	}
	if req.Price < 0 {
		return nil, ErrInvalid("price must be >= 0")
	}
	if req.Count < 1 {
		return nil, ErrInvalid("count must be >= 1")
	}

	now := s.clock.Now()
	copies := make([]*Book, 0, req.Count)
	for i := 0; i < req.Count; i++ {
		copies = append(copies, &Book{
			BookID:    s.id.NewULID(now),
			Title:     req.Title,
			Author:    req.Author,
			Price:     req.Price,
			Status:    StatusAvailable,
			AddedDate: now,
		})
	}

	err := db.RunInTx(ctx, s.db, &sql.TxOptions{}, func(ctx context.Context, tx db.DBTX) error {
		for _, b := range copies {
			if err := InsertBookTx(ctx, tx, b); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	out := make([]BookResponse, 0, len(copies))
	for _, b := range copies {
		out = append(out, buildBookResponse(b))
	}
	return out, nil
}

func (s *Service) Get(ctx context.Context, bookID string) (*BookResponse, error) {
	if bookID == "" {
		return nil, ErrInvalid("book_id is required")
	}
	b, err := s.store.GetBook(ctx, bookID)
	if err != nil {
		return nil, err
	}
	resp := buildBookResponse(b)
	return &resp, nil
}

func (s *Service) List(ctx context.Context, f ListFilter) ([]BookResponse, error) {
	if f.Status != "" && !f.Status.Valid() {
		return nil, ErrInvalid("status must be available, borrowed or reserved")
	}
	items, err := s.store.ListBooks(ctx, f)
	if err != nil {
		return nil, err
	}
	out := make([]BookResponse, 0, len(items))
	for i := range items {
		out = append(out, buildBookResponse(&items[i]))
	}
	return out, nil
}

// 蔵書削除。貸出中 (borrowed) の本は削除できない。
func (s *Service) Delete(ctx context.Context, bookID string) error {
	if bookID == "" {
		return ErrInvalid("book_id is required")
	}
	return s.store.DeleteBook(ctx, bookID)
}
