package contract

import (
	"context"

	"github.com/mikiasgoitom/Notebook/internal/domain/entity"
)

type INoteRepository interface {
	CreateNote(ctx context.Context, note *entity.Note) error
	GetNoteByID(ctx context.Context, id string) (*entity.Note, error)
	// ListNotesByOwner returns all notes owned by the username.
	ListNotesByOwner(ctx context.Context, username string) ([]entity.Note, error)
	// UpdateNote updates an existing note and returns the updated note.
	UpdateNote(ctx context.Context, note *entity.Note) (*entity.Note, error)
	DeleteNote(ctx context.Context, id string) error
}
