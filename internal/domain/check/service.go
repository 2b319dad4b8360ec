package check

import (
	"context"
	"errors"
	"fmt"

	"uptime/internal/domain/user"

	"golang.org/x/exp/slog"
)

// IDGenerator выдает случайные идентификаторы заданной длины.
type IDGenerator func(n int) (string, error)

type Servicer interface {
	Create(ctx context.Context, tokenID string, req CreateRequest) (Check, error)
	Get(ctx context.Context, tokenID, id string) (Check, error)
	Update(ctx context.Context, tokenID string, req UpdateRequest) (Check, error)
	Delete(ctx context.Context, tokenID, id string) error
}

// Service defines the business logic for check operations
type Service struct {
	repo      Repository
	users     UserStore
	tokens    TokenVerifier
	validator Validator
	newID     IDGenerator
	maxChecks int
	log       *slog.Logger
}

func NewService(
	repo Repository,
	users UserStore,
	tokens TokenVerifier,
	validator Validator,
	newID IDGenerator,
	maxChecks int,
	log *slog.Logger,
) *Service {
	return &Service{
		repo:      repo,
		users:     users,
		tokens:    tokens,
		validator: validator,
		newID:     newID,
		maxChecks: maxChecks,
		log:       log.With(slog.String("component", "check_service")),
	}
}

// Create создает проверку и добавляет ее id владельцу токена.
// Это две независимые записи: если вторая не удалась, проверка остается
// без владельца и вызывающий получает ErrOwnerUpdate.
func (s *Service) Create(ctx context.Context, tokenID string, req CreateRequest) (Check, error) {
	params, err := s.validator.ValidateCreate(req)
	if err != nil {
		return Check{}, err
	}

	phone, err := s.tokens.Resolve(ctx, tokenID)
	if err != nil {
		s.log.Debug("token rejected", slog.String("error", err.Error()))
		return Check{}, ErrForbidden
	}

	owner, err := s.users.FindByPhone(ctx, phone)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return Check{}, ErrForbidden
		}
		return Check{}, fmt.Errorf("lookup owner: %w", err)
	}

	if len(owner.Checks) >= s.maxChecks {
		return Check{}, &QuotaError{Max: s.maxChecks}
	}

	id, err := s.newID(IDLength)
	if err != nil {
		return Check{}, fmt.Errorf("generate check id: %w", err)
	}

	c := Check{
		ID:             id,
		UserPhone:      phone,
		Protocol:       params.Protocol,
		URL:            params.URL,
		Method:         params.Method,
		SuccessCodes:   params.SuccessCodes,
		TimeoutSeconds: params.TimeoutSeconds,
	}

	if err := s.repo.Create(ctx, c); err != nil {
		return Check{}, fmt.Errorf("create check: %w", err)
	}

	owner.Checks = append(owner.Checks, id)
	if err := s.users.Update(ctx, owner); err != nil {
		s.log.Error("check left without owner",
			slog.String("check_id", id),
			slog.String("phone", phone),
			slog.String("error", err.Error()),
		)
		return Check{}, fmt.Errorf("%w: %v", ErrOwnerUpdate, err)
	}

	return c, nil
}

func (s *Service) Get(ctx context.Context, tokenID, id string) (Check, error) {
	checkID, err := s.validator.ValidateID(id)
	if err != nil {
		return Check{}, err
	}

	c, err := s.repo.Find(ctx, checkID)
	if err != nil {
		return Check{}, err
	}

	if !s.tokens.Verify(ctx, tokenID, c.UserPhone) {
		return Check{}, ErrForbidden
	}

	return c, nil
}

func (s *Service) Update(ctx context.Context, tokenID string, req UpdateRequest) (Check, error) {
	params, err := s.validator.ValidateUpdate(req)
	if err != nil {
		return Check{}, err
	}

	c, err := s.repo.Find(ctx, params.ID)
	if err != nil {
		return Check{}, err
	}

	if !s.tokens.Verify(ctx, tokenID, c.UserPhone) {
		return Check{}, ErrForbidden
	}

	c = params.Apply(c)
	if err := s.repo.Update(ctx, c); err != nil {
		return Check{}, fmt.Errorf("update check: %w", err)
	}

	return c, nil
}

// Delete удаляет проверку и убирает ее id у владельца.
func (s *Service) Delete(ctx context.Context, tokenID, id string) error {
	checkID, err := s.validator.ValidateID(id)
	if err != nil {
		return err
	}

	c, err := s.repo.Find(ctx, checkID)
	if err != nil {
		return err
	}

	if !s.tokens.Verify(ctx, tokenID, c.UserPhone) {
		return ErrForbidden
	}

	if err := s.repo.Delete(ctx, checkID); err != nil {
		return fmt.Errorf("delete check: %w", err)
	}

	owner, err := s.users.FindByPhone(ctx, c.UserPhone)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrOwnerNotFound, err)
	}

	if !owner.HasCheck(checkID) {
		s.log.Warn("deleted check was not listed on its owner",
			slog.String("check_id", checkID),
			slog.String("phone", c.UserPhone),
		)
		return nil
	}

	owner.Checks = owner.WithoutCheck(checkID)
	if err := s.users.Update(ctx, owner); err != nil {
		return fmt.Errorf("%w: %v", ErrOwnerUpdate, err)
	}

	return nil
}
