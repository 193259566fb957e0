package domain

import "time"

// Field limits enforced before any write reaches the database.
const (
	MaxTitleLen       = 200
	MaxDescriptionLen = 1000
)

type Task struct {
	ID          int64     `db:"id" json:"id"`
	UserID      string    `db:"user_id" json:"user_id"`
	Title       string    `db:"title" json:"title"`
	Description *string   `db:"description" json:"description"`
	Completed   bool      `db:"completed" json:"completed"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

// StatusFilter narrows a task listing by completion state.
type StatusFilter string

const (
	StatusAll       StatusFilter = "all"
	StatusPending   StatusFilter = "pending"
	StatusCompleted StatusFilter = "completed"
)

// ParseStatusFilter maps a query value to a filter; empty means all.
func ParseStatusFilter(s string) (StatusFilter, bool) {
	switch StatusFilter(s) {
	case StatusAll, "":
		return StatusAll, true
	case StatusPending:
		return StatusPending, true
	case StatusCompleted:
		return StatusCompleted, true
	}
	return "", false
}

// TaskUpdate carries a partial update. A nil pointer leaves the field
// untouched; a non-nil empty description clears the stored value.
type TaskUpdate struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
}
