package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MyDevVinicius/PainelAdminMinisterio/internal/models"
)

func TestCreateUserValidation(t *testing.T) {
	s := NewAdminUserService(nil)

	_, err := s.CreateUser(context.Background(), &models.CreateAdminUserRequest{
		Name: "Op", Email: "op@panel.dev", Secret: "pw",
	})
	require.ErrorIs(t, err, ErrValidation)

	_, err = s.CreateUser(context.Background(), &models.CreateAdminUserRequest{
		Name: "Op", Email: "op@panel.dev", Secret: "pw", Role: "superuser",
	})
	require.ErrorIs(t, err, ErrValidation)
}

func TestUpdateUserValidation(t *testing.T) {
	s := NewAdminUserService(nil)

	err := s.UpdateUser(context.Background(), &models.UpdateAdminUserRequest{
		Name: "Op", Email: "op@panel.dev", Role: "admin",
	})
	require.ErrorIs(t, err, ErrValidation, "missing id")

	err = s.UpdateUser(context.Background(), &models.UpdateAdminUserRequest{
		ID: 1, Name: "Op", Email: "op@panel.dev", Role: "owner",
	})
	require.ErrorIs(t, err, ErrValidation, "bad role")
}

func TestLoginValidation(t *testing.T) {
	s := NewAdminUserService(nil)

	_, err := s.Login(context.Background(), &models.LoginRequest{Email: "op@panel.dev"})
	require.ErrorIs(t, err, ErrValidation)

	_, err = s.Login(context.Background(), &models.LoginRequest{Secret: "pw"})
	require.ErrorIs(t, err, ErrValidation)
}
