package auth

import (
	"context"
	"database/sql"
	"errors"
)

type Account struct {
	MemberID     string
	Email        string
	PasswordHash string
	Role         string
	IsDisabled   bool
	CreatedAt    string
}

type AccountStore interface {
	GetByEmail(ctx context.Context, email string) (*Account, error)
	GetByID(ctx context.Context, memberID string) (*Account, error)
	Create(ctx context.Context, a *Account) error
	Delete(ctx context.Context, memberID string) (int64, error)
}

type Store struct{ db *sql.DB }

func NewStore(db *sql.DB) AccountStore {
	return &Store{db: db}
}

func (s *Store) GetByEmail(ctx context.Context, email string) (*Account, error) {
	const q = `
SELECT member_id, email, password_hash, role, is_disabled, created_at
FROM accounts
WHERE email = ?
LIMIT 1
`
	var a Account
	var isDisabledInt int
	err := s.db.QueryRowContext(ctx, q, email).Scan(
		&a.MemberID,
		&a.Email,
		&a.PasswordHash,
		&a.Role,
		&isDisabledInt,
		&a.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	a.IsDisabled = isDisabledInt != 0
	return &a, nil
}

func (s *Store) GetByID(ctx context.Context, memberID string) (*Account, error) {
	const q = `
SELECT member_id, email, password_hash, role, is_disabled, created_at
FROM accounts
WHERE member_id = ?
LIMIT 1
`
	var a Account
	var isDisabledInt int
	err := s.db.QueryRowContext(ctx, q, memberID).Scan(
		&a.MemberID,
		&a.Email,
		&a.PasswordHash,
		&a.Role,
		&isDisabledInt,
		&a.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	a.IsDisabled = isDisabledInt != 0
	return &a, nil
}

func (s *Store) Create(ctx context.Context, a *Account) error {
	const q = `
INSERT INTO accounts (member_id, email, password_hash, role, is_disabled, created_at)
VALUES (?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
`
	_, err := s.db.ExecContext(ctx, q, a.MemberID, a.Email, a.PasswordHash, a.Role, boolToInt(a.IsDisabled))
	return err
}

func (s *Store) Delete(ctx context.Context, memberID string) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM accounts WHERE member_id = ?`, memberID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
