package model

import (
	"time"

	"github.com/google/uuid"
)

// ComplaintModel mirrors the 'complaints' table.
type ComplaintModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key"`
	CustomerPhone string    `gorm:"type:varchar(32);index;not null"`
	Text          string    `gorm:"type:text;not null"`
	Status        string    `gorm:"type:varchar(20);not null"`
	CreatedAt     time.Time
	ResolvedAt    *time.Time
}

// TableName explicitly sets the table name for GORM.
func (ComplaintModel) TableName() string {
	return "complaints"
}
