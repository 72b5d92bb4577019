package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"outcome/internal/delivery/http/response"
	domainerrors "outcome/internal/domain/errors"
	"outcome/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

// NoteHandlerParams holds dependencies for NoteHandler, injected by Fx.
type NoteHandlerParams struct {
	fx.In

	NoteUC usecase.NoteUsecase
	Logger *slog.Logger
}

// NoteHandler holds dependencies for note-related handlers
type NoteHandler struct {
	noteUC usecase.NoteUsecase
	logger *slog.Logger
}

// NewNoteHandler is the constructor for NoteHandler
func NewNoteHandler(params NoteHandlerParams) *NoteHandler {
	return &NoteHandler{
		noteUC: params.NoteUC,
		logger: params.Logger,
	}
}

// CreateNoteRequest represents the request body for creating a note
type CreateNoteRequest struct {
	Title string `json:"title" validate:"required,max=200"`
	Body  string `json:"body" validate:"max=10000"`
}

// CreateNote handles note creation
func (h *NoteHandler) CreateNote(c echo.Context) error {
	var req CreateNoteRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.BadRequest("Invalid note input")
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	note, err := h.noteUC.CreateNote(c.Request().Context(), &usecase.NoteInput{
		Title: req.Title,
		Body:  req.Body,
	})
	if err != nil {
		return err
	}

	return response.Created(c, note, "Note created successfully")
}

// GetNote handles retrieving a single note
func (h *NoteHandler) GetNote(c echo.Context) error {
	noteID, err := parseNoteID(c)
	if err != nil {
		return err
	}

	note, err := h.noteUC.GetNote(c.Request().Context(), noteID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, note, "Note fetched successfully")
}

// ListNotes handles retrieving a page of notes
func (h *NoteHandler) ListNotes(c echo.Context) error {
	limit, offset, err := parsePage(c)
	if err != nil {
		return err
	}

	notes, err := h.noteUC.ListNotes(c.Request().Context(), limit, offset)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, notes, "Notes fetched successfully")
}

// DeleteNote handles deleting a note
func (h *NoteHandler) DeleteNote(c echo.Context) error {
	noteID, err := parseNoteID(c)
	if err != nil {
		return err
	}

	if err := h.noteUC.DeleteNote(c.Request().Context(), noteID); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, nil, "Note deleted successfully")
}

func parseNoteID(c echo.Context) (uuid.UUID, error) {
	noteID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, domainerrors.BadRequest("Invalid note ID", domainerrors.FieldError{Field: "id", Reason: "must be a valid UUID"})
	}

	return noteID, nil
}

func parsePage(c echo.Context) (limit, offset int, err error) {
	var details []any

	limit = defaultListLimit
	if raw := c.QueryParam("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit < 1 || limit > maxListLimit {
			details = append(details, domainerrors.FieldError{Field: "limit", Reason: "must be between 1 and " + strconv.Itoa(maxListLimit)})
		}
	}

	if raw := c.QueryParam("offset"); raw != "" {
		offset, err = strconv.Atoi(raw)
		if err != nil || offset < 0 {
			details = append(details, domainerrors.FieldError{Field: "offset", Reason: "must be a non-negative integer"})
		}
	}

	if len(details) > 0 {
		return 0, 0, domainerrors.BadRequest("Invalid pagination parameters", details...)
	}

	return limit, offset, nil
}
