package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mikiasgoitom/Notebook/internal/domain/contract"
	"github.com/mikiasgoitom/Notebook/internal/handler/http/dto"
	"github.com/mikiasgoitom/Notebook/internal/handler/http/middleware"
	usecasecontract "github.com/mikiasgoitom/Notebook/internal/usecase/contract"
)

// NoteHandlerInterface defines the methods for note handler to allow interface-based dependency injection (for testing/mocking)
type NoteHandlerInterface interface {
	GetAllNotes(*gin.Context)
	GetNote(*gin.Context)
	CreateNote(*gin.Context)
	UpdateNote(*gin.Context)
	DeleteNote(*gin.Context)
}

// Ensure NoteHandler implements NoteHandlerInterface
var _ NoteHandlerInterface = (*NoteHandler)(nil)

type NoteHandler struct {
	noteUsecase usecasecontract.INoteUseCase
}

func NewNoteHandler(noteUsecase usecasecontract.INoteUseCase) *NoteHandler {
	return &NoteHandler{
		noteUsecase: noteUsecase,
	}
}

// requestUsername resolves the owner for the current request from the
// authenticated principal. The authorization stage guarantees a
// principal on these routes; the check here covers misconfiguration.
func requestUsername(c *gin.Context) (string, bool) {
	principal, ok := middleware.PrincipalFromContext(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "Authentication required")
		return "", false
	}
	return principal.Username, true
}

// GetAllNotes lists the authenticated user's notes
func (h *NoteHandler) GetAllNotes(c *gin.Context) {
	username, ok := requestUsername(c)
	if !ok {
		return
	}
	notes, err := h.noteUsecase.GetAllNotesForUser(c.Request.Context(), username)
	if err != nil {
		ErrorHandler(c, http.StatusInternalServerError, "Failed to list notes")
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToNoteResponses(notes))
}

// GetNote fetches one of the authenticated user's notes by ID
func (h *NoteHandler) GetNote(c *gin.Context) {
	username, ok := requestUsername(c)
	if !ok {
		return
	}
	note, err := h.noteUsecase.GetNoteForUser(c.Request.Context(), username, c.Param("noteID"))
	if err != nil {
		if errors.Is(err, contract.ErrNoteNotFound) {
			ErrorHandler(c, http.StatusNotFound, "Note not found")
			return
		}
		ErrorHandler(c, http.StatusInternalServerError, "Failed to fetch note")
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToNoteResponse(*note))
}

// CreateNote creates a note owned by the authenticated user
func (h *NoteHandler) CreateNote(c *gin.Context) {
	username, ok := requestUsername(c)
	if !ok {
		return
	}
	var req dto.NoteRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}
	note, err := h.noteUsecase.CreateNoteForUser(c.Request.Context(), username, req.Title, req.Content)
	if err != nil {
		ErrorHandler(c, http.StatusBadRequest, err.Error())
		return
	}
	SuccessHandler(c, http.StatusCreated, dto.ToNoteResponse(*note))
}

// UpdateNote updates one of the authenticated user's notes
func (h *NoteHandler) UpdateNote(c *gin.Context) {
	username, ok := requestUsername(c)
	if !ok {
		return
	}
	var req dto.NoteRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}
	note, err := h.noteUsecase.UpdateNoteForUser(c.Request.Context(), username, c.Param("noteID"), req.Title, req.Content)
	if err != nil {
		if errors.Is(err, contract.ErrNoteNotFound) {
			ErrorHandler(c, http.StatusNotFound, "Note not found")
			return
		}
		ErrorHandler(c, http.StatusBadRequest, err.Error())
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToNoteResponse(*note))
}

// DeleteNote deletes one of the authenticated user's notes
func (h *NoteHandler) DeleteNote(c *gin.Context) {
	username, ok := requestUsername(c)
	if !ok {
		return
	}
	if err := h.noteUsecase.DeleteNoteForUser(c.Request.Context(), username, c.Param("noteID")); err != nil {
		if errors.Is(err, contract.ErrNoteNotFound) {
			ErrorHandler(c, http.StatusNotFound, "Note not found")
			return
		}
		ErrorHandler(c, http.StatusInternalServerError, "Failed to delete note")
		return
	}
	MessageHandler(c, http.StatusOK, "Note deleted successfully")
}
