package sqlite

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"workboard/internal/domain/models"
)

// Records map to tables named by the naming strategy with "Record" dropped
// (UserRecord -> <prefix>users). Timestamps are supplied by the service
// layer, so gorm's automatic time tracking is disabled.

type UserRecord struct {
	ID           string    `gorm:"primaryKey"`
	Username     string    `gorm:"size:150;not null;uniqueIndex"`
	Email        string    `gorm:"not null;default:''"`
	FirstName    string    `gorm:"not null;default:''"`
	LastName     string    `gorm:"not null;default:''"`
	PasswordHash string    `gorm:"not null;default:''"`
	CreatedAt    time.Time `gorm:"autoCreateTime:false"`
}

func (r *UserRecord) BeforeCreate(*gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

type BoardRecord struct {
	ID          string     `gorm:"primaryKey"`
	Name        string     `gorm:"size:255;not null"`
	Description string     `gorm:"not null;default:''"`
	OwnerID     string     `gorm:"not null;index"`
	Owner       UserRecord `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time  `gorm:"autoCreateTime:false"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime:false"`
}

func (r *BoardRecord) BeforeCreate(*gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

type TaskRecord struct {
	ID          string      `gorm:"primaryKey"`
	Title       string      `gorm:"size:255;not null"`
	Description string      `gorm:"not null;default:''"`
	Status      string      `gorm:"size:20;not null;default:todo"`
	BoardID     string      `gorm:"not null;index"`
	Board       BoardRecord `gorm:"foreignKey:BoardID;constraint:OnDelete:CASCADE"`
	AssigneeID  *string     `gorm:"index"`
	Assignee    *UserRecord `gorm:"foreignKey:AssigneeID;constraint:OnDelete:SET NULL"`
	CreatedBy   string      `gorm:"not null"`
	Creator     UserRecord  `gorm:"foreignKey:CreatedBy;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time   `gorm:"autoCreateTime:false"`
	UpdatedAt   time.Time   `gorm:"autoUpdateTime:false"`
}

func (r *TaskRecord) BeforeCreate(*gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

func userFromModel(u *models.User) *UserRecord {
	return &UserRecord{
		ID:           u.ID,
		Username:     u.Username,
		Email:        u.Email,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		PasswordHash: u.PasswordHash,
		CreatedAt:    u.CreatedAt,
	}
}

func (r *UserRecord) toModel() models.User {
	return models.User{
		ID:           r.ID,
		Username:     r.Username,
		Email:        r.Email,
		FirstName:    r.FirstName,
		LastName:     r.LastName,
		PasswordHash: r.PasswordHash,
		CreatedAt:    r.CreatedAt,
	}
}

func boardFromModel(b *models.Board) *BoardRecord {
	return &BoardRecord{
		ID:          b.ID,
		Name:        b.Name,
		Description: b.Description,
		OwnerID:     b.OwnerID,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

func (r *BoardRecord) toModel() models.Board {
	return models.Board{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		OwnerID:     r.OwnerID,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func taskFromModel(t *models.Task) *TaskRecord {
	return &TaskRecord{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Status:      string(t.Status),
		BoardID:     t.BoardID,
		AssigneeID:  t.AssigneeID,
		CreatedBy:   t.CreatedBy,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func (r *TaskRecord) toModel() models.Task {
	return models.Task{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Status:      models.TaskStatus(r.Status),
		BoardID:     r.BoardID,
		AssigneeID:  r.AssigneeID,
		CreatedBy:   r.CreatedBy,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}
