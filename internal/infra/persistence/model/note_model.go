package model

import (
	"time"

	"github.com/google/uuid"
)

// NoteModel is the GORM-specific struct for the 'notes' table.
type NoteModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	Title     string    `gorm:"type:varchar(200);not null"`
	Body      string    `gorm:"type:text;not null;default:''"`
	CreatedAt time.Time `gorm:"not null;index"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (NoteModel) TableName() string {
	return "notes"
}

// All lists every model managed by auto-migration.
func All() []any {
	return []any{
		&NoteModel{},
	}
}
