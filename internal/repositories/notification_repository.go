package repositories

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/MyDevVinicius/PainelAdminMinisterio/internal/models"
)

type NotificationRepository struct {
	DB *pgxpool.Pool
}

func NewNotificationRepository(db *pgxpool.Pool) *NotificationRepository {
	return &NotificationRepository{DB: db}
}

func (r *NotificationRepository) Create(ctx context.Context, n *models.Notification) error {
	return r.DB.QueryRow(ctx,
		`INSERT INTO notifications(title, body, author, published_at)
         VALUES($1, $2, $3, NOW())
         RETURNING id, published_at`,
		n.Title, n.Body, n.Author,
	).Scan(&n.ID, &n.PublishedAt)
}

func (r *NotificationRepository) List(ctx context.Context) ([]*models.Notification, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT id, title, body, author, published_at
         FROM notifications ORDER BY published_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notifications []*models.Notification
	for rows.Next() {
		var n models.Notification
		err := rows.Scan(&n.ID, &n.Title, &n.Body, &n.Author, &n.PublishedAt)
		if err != nil {
			return nil, err
		}
		notifications = append(notifications, &n)
	}
	return notifications, rows.Err()
}

func (r *NotificationRepository) Delete(ctx context.Context, id int) (int64, error) {
	tag, err := r.DB.Exec(ctx, `DELETE FROM notifications WHERE id=$1`, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
