package impl

import (
	"context"
	"net/http"
	"testing"
	"time"

	"outcome/internal/domain/entity"
	domainerrors "outcome/internal/domain/errors"
	"outcome/internal/domain/repository"
	"outcome/internal/errors"
	mockRepo "outcome/internal/mocks/repository"
	"outcome/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type noteServiceFixtures struct {
	service  *noteService
	noteRepo *mockRepo.MockNoteRepository
}

func createTestNoteService(t *testing.T) noteServiceFixtures {
	noteRepo := mockRepo.NewMockNoteRepository(t)
	service := NewNoteService(noteRepo).(*noteService)
	service.now = func() time.Time {
		return time.Date(2024, 5, 1, 12, 0, 0, 0, time.FixedZone("UTC+8", 8*3600))
	}

	return noteServiceFixtures{
		service:  service,
		noteRepo: noteRepo,
	}
}

func requireErrorResult(t *testing.T, err error) *domainerrors.ErrorResult {
	t.Helper()

	var result *domainerrors.ErrorResult
	require.True(t, errors.As(err, &result), "expected *ErrorResult, got %T", err)

	return result
}

func TestNoteService_CreateNote_Success(t *testing.T) {
	fx := createTestNoteService(t)
	ctx := context.Background()

	fx.noteRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Note")).
		Return(nil)

	note, err := fx.service.CreateNote(ctx, &usecase.NoteInput{Title: "  Groceries  ", Body: "milk"})
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, note.ID)
	assert.Equal(t, "Groceries", note.Title)
	assert.Equal(t, "milk", note.Body)
	assert.Equal(t, time.Date(2024, 5, 1, 4, 0, 0, 0, time.UTC), note.CreatedAt)
	assert.Equal(t, note.CreatedAt, note.UpdatedAt)
}

func TestNoteService_CreateNote_BlankTitle(t *testing.T) {
	fx := createTestNoteService(t)

	note, err := fx.service.CreateNote(context.Background(), &usecase.NoteInput{Title: "   "})
	require.Error(t, err)
	assert.Nil(t, note)

	result := requireErrorResult(t, err)
	assert.Equal(t, http.StatusBadRequest, result.StatusCode())
	assert.Equal(t, "Invalid note input", result.Message())
	assert.Equal(t, []any{domainerrors.FieldError{Field: "title", Reason: "is required"}}, result.Errors())
	assert.Contains(t, result.Trace(), "noteService).CreateNote")
}

func TestNoteService_CreateNote_RepositoryFailure(t *testing.T) {
	fx := createTestNoteService(t)
	ctx := context.Background()
	dbErr := errors.New("connection reset")

	fx.noteRepo.EXPECT().
		Create(ctx, mock.Anything).
		Return(dbErr)

	_, err := fx.service.CreateNote(ctx, &usecase.NoteInput{Title: "Title"})

	result := requireErrorResult(t, err)
	assert.Equal(t, http.StatusInternalServerError, result.StatusCode())
	assert.Equal(t, "Failed to create note", result.Message())
	assert.ErrorIs(t, err, dbErr)
	assert.Contains(t, result.Trace(), "TestNoteService_CreateNote_RepositoryFailure")
}

func TestNoteService_GetNote(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("found", func(t *testing.T) {
		fx := createTestNoteService(t)
		want := &entity.Note{ID: id, Title: "Title"}

		fx.noteRepo.EXPECT().FindByID(ctx, id).Return(want, nil)

		got, err := fx.service.GetNote(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("not found", func(t *testing.T) {
		fx := createTestNoteService(t)

		fx.noteRepo.EXPECT().FindByID(ctx, id).Return(nil, errors.WithStack(repository.ErrNoteNotFound))

		_, err := fx.service.GetNote(ctx, id)

		result := requireErrorResult(t, err)
		assert.Equal(t, http.StatusNotFound, result.StatusCode())
		assert.Equal(t, "Note not found", result.Message())
		assert.Equal(t, []any{domainerrors.FieldError{Field: "id", Reason: "missing"}}, result.Errors())
	})

	t.Run("repository failure", func(t *testing.T) {
		fx := createTestNoteService(t)

		fx.noteRepo.EXPECT().FindByID(ctx, id).Return(nil, errors.New("timeout"))

		_, err := fx.service.GetNote(ctx, id)

		result := requireErrorResult(t, err)
		assert.Equal(t, http.StatusInternalServerError, result.StatusCode())
		assert.Equal(t, "Failed to fetch note", result.Message())
	})
}

func TestNoteService_ListNotes(t *testing.T) {
	ctx := context.Background()

	t.Run("returns page", func(t *testing.T) {
		fx := createTestNoteService(t)
		notes := []*entity.Note{{ID: uuid.New()}, {ID: uuid.New()}}

		fx.noteRepo.EXPECT().List(ctx, 10, 5).Return(notes, nil)

		got, err := fx.service.ListNotes(ctx, 10, 5)
		require.NoError(t, err)
		assert.Equal(t, notes, got)
	})

	t.Run("nil page becomes empty", func(t *testing.T) {
		fx := createTestNoteService(t)

		fx.noteRepo.EXPECT().List(ctx, 20, 0).Return(nil, nil)

		got, err := fx.service.ListNotes(ctx, 20, 0)
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("repository failure", func(t *testing.T) {
		fx := createTestNoteService(t)

		fx.noteRepo.EXPECT().List(ctx, 20, 0).Return(nil, errors.New("timeout"))

		_, err := fx.service.ListNotes(ctx, 20, 0)

		result := requireErrorResult(t, err)
		assert.Equal(t, "Failed to list notes", result.Message())
	})
}

func TestNoteService_DeleteNote(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("deleted", func(t *testing.T) {
		fx := createTestNoteService(t)

		fx.noteRepo.EXPECT().Delete(ctx, id).Return(nil)

		assert.NoError(t, fx.service.DeleteNote(ctx, id))
	})

	t.Run("not found", func(t *testing.T) {
		fx := createTestNoteService(t)

		fx.noteRepo.EXPECT().Delete(ctx, id).Return(repository.ErrNoteNotFound)

		result := requireErrorResult(t, fx.service.DeleteNote(ctx, id))
		assert.Equal(t, http.StatusNotFound, result.StatusCode())
	})

	t.Run("repository failure", func(t *testing.T) {
		fx := createTestNoteService(t)

		fx.noteRepo.EXPECT().Delete(ctx, id).Return(errors.New("timeout"))

		result := requireErrorResult(t, fx.service.DeleteNote(ctx, id))
		assert.Equal(t, http.StatusInternalServerError, result.StatusCode())
		assert.Equal(t, "Failed to delete note", result.Message())
	})
}
