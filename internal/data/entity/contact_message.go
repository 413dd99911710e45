package entity

import "time"

type ContactStatus string

const (
	ContactStatusNew        ContactStatus = "new"
	ContactStatusInProgress ContactStatus = "in_progress"
	ContactStatusClosed     ContactStatus = "closed"
)

type ContactMessage struct {
	ID         int64         `db:"id"`
	Name       string        `db:"name"`
	Email      string        `db:"email"`
	Phone      *string       `db:"phone"`
	Message    string        `db:"message"`
	Status     ContactStatus `db:"status"`
	CreatedAt  time.Time     `db:"created_at"`
	ResolvedAt *time.Time    `db:"resolved_at"`
}

type ContactFilter struct {
	Status string
}
