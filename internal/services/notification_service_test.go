package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MyDevVinicius/PainelAdminMinisterio/internal/models"
)

func TestCreateNotificationValidation(t *testing.T) {
	s := NewNotificationService(nil)

	reqs := []*models.CreateNotificationRequest{
		{},
		{Title: "Maintenance"},
		{Title: "Maintenance", Message: "Panel will be down"},
	}

	for _, req := range reqs {
		_, err := s.CreateNotification(context.Background(), req)
		require.ErrorIs(t, err, ErrValidation)
	}
}

func TestDeleteNotificationRequiresID(t *testing.T) {
	s := NewNotificationService(nil)

	err := s.DeleteNotification(context.Background(), 0)
	require.ErrorIs(t, err, ErrValidation)
}
