package auth

import (
	"context"
	"crypto/rand"
	"database/sql"
	"errors"
	"time"

	mysql "github.com/go-sql-driver/mysql"
	"github.com/golang-jwt/jwt/v5"
	"github.com/oklog/ulid/v2"
	"golang.org/x/crypto/bcrypt"
)

// アカウント種別（librarian: 司書／member: 利用者）
const (
	RoleLibrarian = "librarian"
	RoleMember    = "member"
)

var (
	ErrAlreadyExists = errors.New("already exists")
	ErrNotFound      = errors.New("not found")
	ErrInvalidRole   = errors.New("invalid role")
)

type Service struct {
	store  AccountStore
	secret []byte
}

func NewService(db *sql.DB, secret []byte) *Service {
	return &Service{store: NewStore(db), secret: secret}
}

type AuthService interface {
	Login(ctx context.Context, email, password string) (string, error)
	Register(ctx context.Context, email, password, role string) (string, error)
	Profile(ctx context.Context, memberID string) (*Account, error)
	Delete(ctx context.Context, memberID string) error
}

func newMemberID() string {
	t := time.Now().UTC()
	entropy := ulid.Monotonic(rand.Reader, 0)
	return ulid.MustNew(ulid.Timestamp(t), entropy).String()
}

func (s *Service) Login(ctx context.Context, email, password string) (string, error) {
	acct, err := s.store.GetByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if acct == nil {
		return "", errors.New("authentication failed")
	}
	if acct.IsDisabled {
		return "", errors.New("account disabled")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(acct.PasswordHash), []byte(password)); err != nil {
		return "", errors.New("authentication failed")
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  acct.MemberID,
		"role": acct.Role,
		"exp":  time.Now().Add(24 * time.Hour).Unix(),
	})

	tokenString, err := token.SignedString(s.secret)
	if err != nil {
		return "", err
	}
	return tokenString, nil
}

// Register は新規アカウントを作成し member_id を返す。
// 未指定 role は member 扱い（フロントのサインアップ画面に合わせる）。
func (s *Service) Register(ctx context.Context, email, password, role string) (string, error) {
	if role != RoleLibrarian && role != RoleMember {
		return "", ErrInvalidRole
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	a := &Account{
		MemberID:     newMemberID(),
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		IsDisabled:   false,
	}
	if err := s.store.Create(ctx, a); err != nil {
		var me *mysql.MySQLError
		if errors.As(err, &me) && me.Number == 1062 { // duplicate key
			return "", ErrAlreadyExists
		}
		return "", err
	}
	return a.MemberID, nil
}

// Profile は本人のアカウント情報を返す
func (s *Service) Profile(ctx context.Context, memberID string) (*Account, error) {
	acct, err := s.store.GetByID(ctx, memberID)
	if err != nil {
		return nil, err
	}
	if acct == nil {
		return nil, ErrNotFound
	}
	return acct, nil
}

func (s *Service) Delete(ctx context.Context, memberID string) error {
	n, err := s.store.Delete(ctx, memberID)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
