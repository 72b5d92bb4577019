package usecase

import (
	"context"

	"outcome/internal/domain/entity"

	"github.com/google/uuid"
)

// NoteInput carries the writable fields of a note
type NoteInput struct {
	Title string
	Body  string
}

// NoteUsecase defines the interface for note use cases.
// Failures are returned as *errors.ErrorResult from the domain errors package.
type NoteUsecase interface {
	CreateNote(ctx context.Context, input *NoteInput) (*entity.Note, error)
	GetNote(ctx context.Context, id uuid.UUID) (*entity.Note, error)
	ListNotes(ctx context.Context, limit, offset int) ([]*entity.Note, error)
	DeleteNote(ctx context.Context, id uuid.UUID) error
}
