package dto

import (
	"time"

	"github.com/mikiasgoitom/Notebook/internal/domain/entity"
)

// NoteRequest is the DTO for creating or updating a note.
type NoteRequest struct {
	Title   string `json:"title" binding:"required,max=200"`
	Content string `json:"content"`
}

// NoteResponse is the DTO for a note.
type NoteResponse struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// ToNoteResponse converts an entity.Note to a NoteResponse DTO.
func ToNoteResponse(note entity.Note) NoteResponse {
	return NoteResponse{
		ID:        note.ID,
		Title:     note.Title,
		Content:   note.Content,
		CreatedAt: note.CreatedAt.Format(time.RFC3339),
		UpdatedAt: note.UpdatedAt.Format(time.RFC3339),
	}
}

// ToNoteResponses converts a slice of notes.
func ToNoteResponses(notes []entity.Note) []NoteResponse {
	out := make([]NoteResponse, 0, len(notes))
	for _, n := range notes {
		out = append(out, ToNoteResponse(n))
	}
	return out
}
