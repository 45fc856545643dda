package usecasecontract

import (
	"context"

	"github.com/mikiasgoitom/Notebook/internal/domain/entity"
)

// INoteUseCase defines the interface for owner-scoped note operations.
type INoteUseCase interface {
	CreateNoteForUser(ctx context.Context, username, title, content string) (*entity.Note, error)
	GetNoteForUser(ctx context.Context, username, noteID string) (*entity.Note, error)
	UpdateNoteForUser(ctx context.Context, username, noteID, title, content string) (*entity.Note, error)
	DeleteNoteForUser(ctx context.Context, username, noteID string) error
	GetAllNotesForUser(ctx context.Context, username string) ([]entity.Note, error)
}
