package models

import "time"

type Board struct {
	ID          string    `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description" db:"description"`
	OwnerID     string    `json:"owner_id" db:"owner_id"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// BoardDetail is a board with its owner and the tasks the requesting
// identity may see.
type BoardDetail struct {
	Board
	Owner *User
	Tasks []TaskDetail
}
