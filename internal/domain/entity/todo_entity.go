package entity

import "time"

// Todo belongs to exactly one owner, set at creation and immutable after.
type Todo struct {
	ID          string
	OwnerID     string
	Title       string
	Description string
	Completed   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
