package impl

import (
	"context"
	"net/http"
	"strings"
	"time"

	"outcome/internal/domain/entity"
	domainerrors "outcome/internal/domain/errors"
	"outcome/internal/domain/repository"
	"outcome/internal/errors"
	"outcome/internal/usecase"

	"github.com/google/uuid"
)

const noteNotFoundMessage = "Note not found"

type noteService struct {
	noteRepo repository.NoteRepository
	now      func() time.Time
}

// NewNoteService creates a new note service instance
func NewNoteService(noteRepo repository.NoteRepository) usecase.NoteUsecase {
	return &noteService{
		noteRepo: noteRepo,
		now:      time.Now,
	}
}

// CreateNote stores a new note with a generated ID
func (s *noteService) CreateNote(ctx context.Context, input *usecase.NoteInput) (*entity.Note, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, domainerrors.BadRequest("Invalid note input", domainerrors.FieldError{Field: "title", Reason: "is required"})
	}

	now := s.now().UTC()
	note := &entity.Note{
		ID:        uuid.New(),
		Title:     title,
		Body:      input.Body,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.noteRepo.Create(ctx, note); err != nil {
		return nil, domainerrors.Wrap(http.StatusInternalServerError, err, "Failed to create note")
	}

	return note, nil
}

// GetNote fetches a single note
func (s *noteService) GetNote(ctx context.Context, id uuid.UUID) (*entity.Note, error) {
	note, err := s.noteRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNoteNotFound) {
			return nil, domainerrors.NotFound(noteNotFoundMessage, domainerrors.FieldError{Field: "id", Reason: "missing"})
		}

		return nil, domainerrors.Wrap(http.StatusInternalServerError, err, "Failed to fetch note")
	}

	return note, nil
}

// ListNotes returns a page of notes
func (s *noteService) ListNotes(ctx context.Context, limit, offset int) ([]*entity.Note, error) {
	notes, err := s.noteRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, domainerrors.Wrap(http.StatusInternalServerError, err, "Failed to list notes")
	}

	if notes == nil {
		notes = []*entity.Note{}
	}

	return notes, nil
}

// DeleteNote removes a note
func (s *noteService) DeleteNote(ctx context.Context, id uuid.UUID) error {
	if err := s.noteRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNoteNotFound) {
			return domainerrors.NotFound(noteNotFoundMessage, domainerrors.FieldError{Field: "id", Reason: "missing"})
		}

		return domainerrors.Wrap(http.StatusInternalServerError, err, "Failed to delete note")
	}

	return nil
}
