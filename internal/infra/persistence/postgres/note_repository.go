// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"outcome/internal/domain/entity"
	"outcome/internal/domain/repository"
	"outcome/internal/errors"
	"outcome/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type noteRepository struct {
	db *gorm.DB
}

// NewNoteRepository is the constructor for noteRepository.
func NewNoteRepository(db *gorm.DB) repository.NoteRepository {
	return &noteRepository{
		db: db,
	}
}

// Create persists a new note.
func (repo *noteRepository) Create(ctx context.Context, note *entity.Note) error {
	noteM := fromNoteDomain(note)

	if err := repo.db.WithContext(ctx).Create(noteM).Error; err != nil {
		if reason := constraintViolation(err); reason != "" {
			return errors.Wrapf(err, "create note: %s", reason)
		}

		return errors.Wrap(err, "failed to create note")
	}

	note.CreatedAt = noteM.CreatedAt
	note.UpdatedAt = noteM.UpdatedAt

	return nil
}

// FindByID retrieves a note by its ID.
func (repo *noteRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Note, error) {
	var noteM model.NoteModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&noteM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNoteNotFound
		}

		return nil, errors.Wrap(err, "failed to find note by ID")
	}

	return toNoteDomain(&noteM), nil
}

// List returns notes ordered from newest to oldest.
func (repo *noteRepository) List(ctx context.Context, limit, offset int) ([]*entity.Note, error) {
	var noteModels []*model.NoteModel

	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&noteModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list notes")
	}

	notes := make([]*entity.Note, 0, len(noteModels))
	for _, noteM := range noteModels {
		notes = append(notes, toNoteDomain(noteM))
	}

	return notes, nil
}

// Delete removes a note.
func (repo *noteRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.NoteModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete note")
	}

	if result.RowsAffected == 0 {
		return repository.ErrNoteNotFound
	}

	return nil
}

func fromNoteDomain(note *entity.Note) *model.NoteModel {
	return &model.NoteModel{
		ID:        note.ID,
		Title:     note.Title,
		Body:      note.Body,
		CreatedAt: note.CreatedAt,
		UpdatedAt: note.UpdatedAt,
	}
}

func toNoteDomain(noteM *model.NoteModel) *entity.Note {
	return &entity.Note{
		ID:        noteM.ID,
		Title:     noteM.Title,
		Body:      noteM.Body,
		CreatedAt: noteM.CreatedAt,
		UpdatedAt: noteM.UpdatedAt,
	}
}
