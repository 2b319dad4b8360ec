package user

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/exp/slog"
)

// Hasher детерминированно хэширует пароль.
type Hasher interface {
	Hash(value string) (string, error)
}

type Servicer interface {
	Register(ctx context.Context, req CreateRequest) error
	Get(ctx context.Context, phone string) (User, error)
	Update(ctx context.Context, req UpdateRequest) error
	Delete(ctx context.Context, phone string) error
}

type Service struct {
	repo      Repository
	validator Validator
	hasher    Hasher
	log       *slog.Logger
}

func NewService(repo Repository, validator Validator, hasher Hasher, log *slog.Logger) *Service {
	return &Service{
		repo:      repo,
		validator: validator,
		hasher:    hasher,
		log:       log.With(slog.String("component", "user_service")),
	}
}

func (s *Service) Register(ctx context.Context, req CreateRequest) error {
	params, err := s.validator.ValidateCreate(req)
	if err != nil {
		s.log.Debug("validation failed", slog.String("error", err.Error()))
		return err
	}

	if _, err := s.repo.FindByPhone(ctx, params.Phone); err == nil {
		return ErrAlreadyExists
	} else if !errors.Is(err, ErrNotFound) {
		return fmt.Errorf("lookup user: %w", err)
	}

	hash, err := s.hasher.Hash(params.Password)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrHashPassword, err)
	}

	u := User{
		FirstName:      params.FirstName,
		LastName:       params.LastName,
		Phone:          params.Phone,
		HashedPassword: hash,
		TOSAgreement:   true,
		Checks:         []string{},
	}

	if err := s.repo.Create(ctx, u); err != nil {
		return fmt.Errorf("create user: %w", err)
	}

	return nil
}

// Get возвращает пользователя. Хэш пароля вырезается до выхода из сервиса.
func (s *Service) Get(ctx context.Context, phone string) (User, error) {
	p, err := s.validator.ValidatePhone(phone)
	if err != nil {
		return User{}, err
	}

	u, err := s.repo.FindByPhone(ctx, p)
	if err != nil {
		return User{}, err
	}

	u.HashedPassword = ""
	return u, nil
}

func (s *Service) Update(ctx context.Context, req UpdateRequest) error {
	params, err := s.validator.ValidateUpdate(req)
	if err != nil {
		return err
	}

	u, err := s.repo.FindByPhone(ctx, params.Phone)
	if err != nil {
		return err
	}

	if params.FirstName != "" {
		u.FirstName = params.FirstName
	}
	if params.LastName != "" {
		u.LastName = params.LastName
	}
	if params.Password != "" {
		hash, err := s.hasher.Hash(params.Password)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrHashPassword, err)
		}
		u.HashedPassword = hash
	}

	if err := s.repo.Update(ctx, u); err != nil {
		return fmt.Errorf("update user: %w", err)
	}

	return nil
}

// Delete удаляет только запись пользователя, его проверки остаются на месте.
func (s *Service) Delete(ctx context.Context, phone string) error {
	p, err := s.validator.ValidatePhone(phone)
	if err != nil {
		return err
	}

	if _, err := s.repo.FindByPhone(ctx, p); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, p); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}

	return nil
}
