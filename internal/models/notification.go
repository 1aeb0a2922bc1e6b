package models

import "time"

// Notification is a panel-wide announcement, independent of tenancy.
type Notification struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Body        string    `json:"body"`
	Author      string    `json:"author"`
	PublishedAt time.Time `json:"publishedAt"`
}

// CreateNotificationRequest is the body of POST /api/notificacoes.
type CreateNotificationRequest struct {
	Title   string `json:"title"`
	Message string `json:"message"`
	Author  string `json:"author"`
}
