package contract

import (
	"context"

	"github.com/mikiasgoitom/Notebook/internal/domain/entity"
)

// INoteCache defines caching operations for notes. Authentication and
// authorization never read or write this cache.
type INoteCache interface {
	// Detail (by note ID)
	GetNoteByID(ctx context.Context, id string) (*entity.Note, bool, error)
	SetNoteByID(ctx context.Context, note *entity.Note) error
	InvalidateNoteByID(ctx context.Context, id string) error

	// Per-owner note lists
	GetNotesByOwner(ctx context.Context, username string) ([]entity.Note, bool, error)
	SetNotesByOwner(ctx context.Context, username string, notes []entity.Note) error
	InvalidateNotesByOwner(ctx context.Context, username string) error
}
