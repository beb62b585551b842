package books

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_DeleteBook_Borrowed(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close()

	// 条件付き DELETE が0行 → 存在確認で borrowed と判明 → InvalidState
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM books WHERE book_id = ? AND status <> ?`)).
		WithArgs("B1", "borrowed").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT status FROM books WHERE book_id = ?`)).
		WithArgs("B1").
		WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow("borrowed"))

	s := NewStore(mockDB)
	err = s.DeleteBook(context.Background(), "B1")
	var api *APIError
	require.ErrorAs(t, err, &api)
	assert.Equal(t, CodeInvalidState, api.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func Test_DeleteBook_NotFound(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close()

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM books WHERE book_id = ? AND status <> ?`)).
		WithArgs("missing", "borrowed").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT status FROM books WHERE book_id = ?`)).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"status"}))

	s := NewStore(mockDB)
	err = s.DeleteBook(context.Background(), "missing")
	var api *APIError
	require.ErrorAs(t, err, &api)
	assert.Equal(t, CodeNotFound, api.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func Test_DeleteBook_Available(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close()

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM books WHERE book_id = ? AND status <> ?`)).
		WithArgs("B2", "borrowed").
		WillReturnResult(sqlmock.NewResult(0, 1))

	s := NewStore(mockDB)
	assert.NoError(t, s.DeleteBook(context.Background(), "B2"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func Test_ListBooks_AvailableIsOrderedByTitle(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close()

	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{
		"book_id", "title", "author", "price", "status",
		"borrowed_by", "reserved_by", "due_date", "added_date",
	}).
		AddRow("B1", "Aardvark Tales", "A", 500.0, "available", nil, nil, nil, now).
		AddRow("B2", "Zebra Stories", "Z", 300.0, "available", nil, nil, nil, now)

	mock.ExpectQuery(`SELECT .+ FROM books WHERE status = \? ORDER BY title`).
		WithArgs("available").
		WillReturnRows(rows)

	s := NewStore(mockDB)
	out, err := s.ListBooks(context.Background(), ListFilter{Status: StatusAvailable})
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "Aardvark Tales", out[0].Title)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func Test_ListBooks_BorrowedIsUnordered(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close()

	rows := sqlmock.NewRows([]string{
		"book_id", "title", "author", "price", "status",
		"borrowed_by", "reserved_by", "due_date", "added_date",
	})

	// ORDER BY が付かないクエリ
	mock.ExpectQuery(`SELECT .+ FROM books WHERE status = \?$`).
		WithArgs("borrowed").
		WillReturnRows(rows)

	s := NewStore(mockDB)
	_, err = s.ListBooks(context.Background(), ListFilter{Status: StatusBorrowed})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func Test_SetStatusTx_GuardsOnCurrentStatus(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close()

	member := "M1"
	due := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	// 期待した status から変わっていると0行更新になる
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE books`)).
		WithArgs("borrowed", member, nil, due, "B1", "available").
		WillReturnResult(sqlmock.NewResult(0, 0))

	aff, err := SetStatusTx(context.Background(), mockDB, "B1",
		StatusAvailable, StatusBorrowed, &member, nil, &due)
	require.NoError(t, err)
	assert.Equal(t, int64(0), aff)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func Test_SetStatusTx_RejectsUnknownTransition(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close()

	member := "M1"

	// 遷移表にないエッジは DB に触れる前に弾かれる（Exec の期待なし）
	_, err = SetStatusTx(context.Background(), mockDB, "B1",
		StatusBorrowed, StatusReserved, nil, &member, nil)
	var api *APIError
	require.ErrorAs(t, err, &api)
	assert.Equal(t, CodeInvalidState, api.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func Test_ReleaseBorrowTx_GuardsOnBorrower(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close()

	// borrowed_by が本人でなければ0行のまま何も変えない
	mock.ExpectExec(`(?s)UPDATE books.+WHERE book_id = \? AND status = \? AND borrowed_by = \?`).
		WithArgs("available", "B1", "borrowed", "M1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	aff, err := ReleaseBorrowTx(context.Background(), mockDB, "B1", "M1")
	require.NoError(t, err)
	assert.Equal(t, int64(0), aff)
	assert.NoError(t, mock.ExpectationsWereMet())
}
