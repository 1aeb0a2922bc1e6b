package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/MyDevVinicius/PainelAdminMinisterio/internal/auth"
	"github.com/MyDevVinicius/PainelAdminMinisterio/internal/models"
	"github.com/MyDevVinicius/PainelAdminMinisterio/internal/repositories"
)

// AdminUserService manages panel operator accounts and their login.
type AdminUserService struct {
	Repo *repositories.AdminUserRepository
}

func NewAdminUserService(repo *repositories.AdminUserRepository) *AdminUserService {
	return &AdminUserService{Repo: repo}
}

func (s *AdminUserService) CreateUser(ctx context.Context, req *models.CreateAdminUserRequest) (*models.AdminUser, error) {
	if req.Name == "" || req.Email == "" || req.Secret == "" || req.Role == "" {
		return nil, fmt.Errorf("%w: all fields are required", ErrValidation)
	}
	if !models.ValidAdminRole(req.Role) {
		return nil, fmt.Errorf("%w: role must be admin or manager", ErrValidation)
	}

	if _, err := s.Repo.GetByEmail(ctx, req.Email); err == nil {
		return nil, fmt.Errorf("%w: user with this email is already registered", ErrDuplicate)
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	hash, err := auth.HashSecret(req.Secret)
	if err != nil {
		return nil, fmt.Errorf("hash secret: %w", err)
	}

	user := &models.AdminUser{
		Name:   req.Name,
		Email:  req.Email,
		Secret: hash,
		Role:   req.Role,
	}

	if err := s.Repo.Create(ctx, user); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return nil, fmt.Errorf("%w: user with this email is already registered", ErrDuplicate)
		}
		return nil, err
	}

	return user, nil
}

func (s *AdminUserService) UpdateUser(ctx context.Context, req *models.UpdateAdminUserRequest) error {
	if req.ID == 0 || req.Name == "" || req.Email == "" || req.Role == "" {
		return fmt.Errorf("%w: id, name, email and role are required", ErrValidation)
	}
	if !models.ValidAdminRole(req.Role) {
		return fmt.Errorf("%w: role must be admin or manager", ErrValidation)
	}

	var secretHash *string
	if req.Secret != "" {
		h, err := auth.HashSecret(req.Secret)
		if err != nil {
			return fmt.Errorf("hash secret: %w", err)
		}
		secretHash = &h
	}

	affected, err := s.Repo.Update(ctx, req.ID, req.Name, req.Email, req.Role, secretHash)
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("%w: user %d", ErrNotFound, req.ID)
	}
	return nil
}

func (s *AdminUserService) DeleteUser(ctx context.Context, id int) error {
	affected, err := s.Repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("%w: user %d", ErrNotFound, id)
	}
	return nil
}

func (s *AdminUserService) ListUsers(ctx context.Context) ([]*models.AdminUser, error) {
	return s.Repo.List(ctx)
}

// Login authenticates an operator by email and secret.
func (s *AdminUserService) Login(ctx context.Context, req *models.LoginRequest) (*models.AdminUser, error) {
	if req.Email == "" || req.Secret == "" {
		return nil, fmt.Errorf("%w: email and secret are required", ErrValidation)
	}

	user, err := s.Repo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: no user with this email", ErrNotFound)
		}
		return nil, err
	}

	if !auth.VerifySecret(user.Secret, req.Secret) {
		return nil, ErrWrongSecret
	}

	return user, nil
}
