package services

import (
	"context"
	"fmt"

	"github.com/MyDevVinicius/PainelAdminMinisterio/internal/models"
	"github.com/MyDevVinicius/PainelAdminMinisterio/internal/repositories"
)

type NotificationService struct {
	Repo *repositories.NotificationRepository
}

func NewNotificationService(repo *repositories.NotificationRepository) *NotificationService {
	return &NotificationService{Repo: repo}
}

func (s *NotificationService) CreateNotification(ctx context.Context, req *models.CreateNotificationRequest) (*models.Notification, error) {
	if req.Title == "" || req.Message == "" || req.Author == "" {
		return nil, fmt.Errorf("%w: title, message and author are required", ErrValidation)
	}

	n := &models.Notification{
		Title:  req.Title,
		Body:   req.Message,
		Author: req.Author,
	}

	if err := s.Repo.Create(ctx, n); err != nil {
		return nil, err
	}
	return n, nil
}

func (s *NotificationService) ListNotifications(ctx context.Context) ([]*models.Notification, error) {
	return s.Repo.List(ctx)
}

func (s *NotificationService) DeleteNotification(ctx context.Context, id int) error {
	if id == 0 {
		return fmt.Errorf("%w: notification id is required", ErrValidation)
	}

	affected, err := s.Repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("%w: notification %d", ErrNotFound, id)
	}
	return nil
}
