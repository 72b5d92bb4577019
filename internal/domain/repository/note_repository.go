// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"outcome/internal/domain/entity"
	"outcome/internal/errors"

	"github.com/google/uuid"
)

// ErrNoteNotFound is returned when a note does not exist.
var ErrNoteNotFound = errors.New("note not found")

// NoteRepository defines the interface for note-related database operations.
type NoteRepository interface {
	// Create persists a new note.
	Create(ctx context.Context, note *entity.Note) error

	// FindByID retrieves a note by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Note, error)

	// List returns notes ordered from newest to oldest.
	List(ctx context.Context, limit, offset int) ([]*entity.Note, error)

	// Delete removes a note; ErrNoteNotFound when nothing was deleted.
	Delete(ctx context.Context, id uuid.UUID) error
}
