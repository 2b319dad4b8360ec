package token

import (
	"context"
	"errors"
	"fmt"
	"time"

	"uptime/internal/domain/user"
	"uptime/internal/domain/validate"

	"golang.org/x/exp/slog"
)

// PasswordChecker сравнивает пароль с сохраненным хэшем.
type PasswordChecker interface {
	Equal(hash, value string) bool
}

// IDGenerator выдает случайные идентификаторы заданной длины.
type IDGenerator func(n int) (string, error)

type Servicer interface {
	Issue(ctx context.Context, req CreateRequest) (Token, error)
	Get(ctx context.Context, id string) (Token, error)
	Renew(ctx context.Context, req RenewRequest) (Token, error)
	Revoke(ctx context.Context, id string) error
	Verify(ctx context.Context, id, phone string) bool
	Resolve(ctx context.Context, id string) (string, error)
}

type Service struct {
	repo   Repository
	users  UserFinder
	hasher PasswordChecker
	newID  IDGenerator
	ttl    time.Duration
	now    func() time.Time
	log    *slog.Logger
}

func NewService(repo Repository, users UserFinder, hasher PasswordChecker, newID IDGenerator, ttl time.Duration, log *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		users:  users,
		hasher: hasher,
		newID:  newID,
		ttl:    ttl,
		now:    time.Now,
		log:    log.With(slog.String("component", "token_service")),
	}
}

// Issue выдает новый токен на TTL после проверки пароля.
func (s *Service) Issue(ctx context.Context, req CreateRequest) (Token, error) {
	phone, okPhone := validate.Exact(req.Phone, user.PhoneLength)
	password, okPassword := validate.String(req.Password)
	if !okPhone || !okPassword {
		return Token{}, ErrInvalidInput
	}

	u, err := s.users.FindByPhone(ctx, phone)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return Token{}, ErrUserNotFound
		}
		return Token{}, fmt.Errorf("lookup user: %w", err)
	}

	if !s.hasher.Equal(u.HashedPassword, password) {
		s.log.Debug("password mismatch", slog.String("phone", phone))
		return Token{}, ErrInvalidCredentials
	}

	id, err := s.newID(IDLength)
	if err != nil {
		return Token{}, fmt.Errorf("generate token id: %w", err)
	}

	t := Token{
		ID:      id,
		Phone:   phone,
		Expires: s.now().Add(s.ttl).UnixMilli(),
	}

	if err := s.repo.Create(ctx, t); err != nil {
		return Token{}, fmt.Errorf("save token: %w", err)
	}

	return t, nil
}

func (s *Service) Get(ctx context.Context, id string) (Token, error) {
	tokenID, ok := validate.ExactValue(id, IDLength)
	if !ok {
		return Token{}, ErrInvalidInput
	}

	return s.repo.Find(ctx, tokenID)
}

// Renew продлевает еще не истекший токен до now+TTL.
func (s *Service) Renew(ctx context.Context, req RenewRequest) (Token, error) {
	id, ok := validate.Exact(req.ID, IDLength)
	if !ok || !validate.True(req.Extend) {
		return Token{}, ErrInvalidInput
	}

	t, err := s.repo.Find(ctx, id)
	if err != nil {
		return Token{}, err
	}

	now := s.now()
	if !t.Valid(now) {
		return Token{}, ErrExpired
	}

	t.Expires = now.Add(s.ttl).UnixMilli()
	if err := s.repo.Update(ctx, t); err != nil {
		return Token{}, fmt.Errorf("update token: %w", err)
	}

	return t, nil
}

func (s *Service) Revoke(ctx context.Context, id string) error {
	tokenID, ok := validate.ExactValue(id, IDLength)
	if !ok {
		return ErrInvalidInput
	}

	if _, err := s.repo.Find(ctx, tokenID); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, tokenID); err != nil {
		return fmt.Errorf("delete token: %w", err)
	}

	return nil
}

// Verify reports whether id names an existing unexpired token bound to phone.
func (s *Service) Verify(ctx context.Context, id, phone string) bool {
	if id == "" {
		return false
	}

	t, err := s.repo.Find(ctx, id)
	if err != nil {
		return false
	}

	return t.Phone == phone && t.Valid(s.now())
}

// Resolve возвращает телефон владельца действующего токена.
func (s *Service) Resolve(ctx context.Context, id string) (string, error) {
	tokenID, ok := validate.ExactValue(id, IDLength)
	if !ok {
		return "", ErrInvalidToken
	}

	t, err := s.repo.Find(ctx, tokenID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return "", ErrInvalidToken
		}
		return "", fmt.Errorf("read token: %w", err)
	}

	if t.Phone == "" || !t.Valid(s.now()) {
		return "", ErrInvalidToken
	}

	return t.Phone, nil
}
