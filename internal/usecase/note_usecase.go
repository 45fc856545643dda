package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mikiasgoitom/Notebook/internal/domain/contract"
	"github.com/mikiasgoitom/Notebook/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/Notebook/internal/usecase/contract"
)

// NoteUsecase implements owner-scoped note CRUD. It is a thin
// delegation layer over the note repository with an optional redis
// read-through cache.
type NoteUsecase struct {
	noteRepo  contract.INoteRepository
	uuidGen   contract.IUUIDGenerator
	logger    usecasecontract.IAppLogger
	validator usecasecontract.IValidator
	noteCache contract.INoteCache
}

// NewNoteUsecase creates a new NoteUsecase instance.
func NewNoteUsecase(
	noteRepo contract.INoteRepository,
	uuidGen contract.IUUIDGenerator,
	logger usecasecontract.IAppLogger,
	validator usecasecontract.IValidator,
) *NoteUsecase {
	return &NoteUsecase{
		noteRepo:  noteRepo,
		uuidGen:   uuidGen,
		logger:    logger,
		validator: validator,
	}
}

// check if NoteUsecase implements the INoteUseCase
var _ usecasecontract.INoteUseCase = (*NoteUsecase)(nil)

// SetNoteCache attaches an optional cache. Called once during startup
// when a redis URL is configured.
func (uc *NoteUsecase) SetNoteCache(cache contract.INoteCache) {
	uc.noteCache = cache
}

func (uc *NoteUsecase) CreateNoteForUser(ctx context.Context, username, title, content string) (*entity.Note, error) {
	if err := uc.validator.ValidateNoteTitle(title); err != nil {
		return nil, fmt.Errorf("invalid note: %w", err)
	}
	now := time.Now()
	note := &entity.Note{
		ID:            uc.uuidGen.NewUUID(),
		Title:         title,
		Content:       content,
		OwnerUsername: username,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.noteRepo.CreateNote(ctx, note); err != nil {
		uc.logger.Errorf("failed to create note: %v", err)
		return nil, fmt.Errorf("failed to create note")
	}
	uc.invalidateOwner(ctx, username)
	return note, nil
}

func (uc *NoteUsecase) GetNoteForUser(ctx context.Context, username, noteID string) (*entity.Note, error) {
	if uc.noteCache != nil {
		if note, ok, err := uc.noteCache.GetNoteByID(ctx, noteID); err == nil && ok {
			if note.OwnerUsername != username {
				return nil, contract.ErrNoteNotFound
			}
			return note, nil
		}
	}

	note, err := uc.noteRepo.GetNoteByID(ctx, noteID)
	if err != nil {
		return nil, err
	}
	// A foreign note is reported as absent, not as forbidden.
	if note.OwnerUsername != username {
		return nil, contract.ErrNoteNotFound
	}
	if uc.noteCache != nil {
		if err := uc.noteCache.SetNoteByID(ctx, note); err != nil {
			uc.logger.Warnf("failed to cache note %s: %v", note.ID, err)
		}
	}
	return note, nil
}

func (uc *NoteUsecase) UpdateNoteForUser(ctx context.Context, username, noteID, title, content string) (*entity.Note, error) {
	if err := uc.validator.ValidateNoteTitle(title); err != nil {
		return nil, fmt.Errorf("invalid note: %w", err)
	}
	note, err := uc.noteRepo.GetNoteByID(ctx, noteID)
	if err != nil {
		return nil, err
	}
	if note.OwnerUsername != username {
		return nil, contract.ErrNoteNotFound
	}
	note.Title = title
	note.Content = content
	updated, err := uc.noteRepo.UpdateNote(ctx, note)
	if err != nil {
		if errors.Is(err, contract.ErrNoteNotFound) {
			return nil, err
		}
		uc.logger.Errorf("failed to update note %s: %v", noteID, err)
		return nil, fmt.Errorf("failed to update note")
	}
	uc.invalidateNote(ctx, noteID, username)
	return updated, nil
}

func (uc *NoteUsecase) DeleteNoteForUser(ctx context.Context, username, noteID string) error {
	note, err := uc.noteRepo.GetNoteByID(ctx, noteID)
	if err != nil {
		return err
	}
	if note.OwnerUsername != username {
		return contract.ErrNoteNotFound
	}
	if err := uc.noteRepo.DeleteNote(ctx, noteID); err != nil {
		return err
	}
	uc.invalidateNote(ctx, noteID, username)
	return nil
}

func (uc *NoteUsecase) GetAllNotesForUser(ctx context.Context, username string) ([]entity.Note, error) {
	if uc.noteCache != nil {
		if notes, ok, err := uc.noteCache.GetNotesByOwner(ctx, username); err == nil && ok {
			return notes, nil
		}
	}
	notes, err := uc.noteRepo.ListNotesByOwner(ctx, username)
	if err != nil {
		return nil, err
	}
	if uc.noteCache != nil {
		if err := uc.noteCache.SetNotesByOwner(ctx, username, notes); err != nil {
			uc.logger.Warnf("failed to cache notes for %q: %v", username, err)
		}
	}
	return notes, nil
}

func (uc *NoteUsecase) invalidateNote(ctx context.Context, noteID, username string) {
	if uc.noteCache == nil {
		return
	}
	if err := uc.noteCache.InvalidateNoteByID(ctx, noteID); err != nil {
		uc.logger.Warnf("failed to invalidate note %s: %v", noteID, err)
	}
	uc.invalidateOwner(ctx, username)
}

func (uc *NoteUsecase) invalidateOwner(ctx context.Context, username string) {
	if uc.noteCache == nil {
		return
	}
	if err := uc.noteCache.InvalidateNotesByOwner(ctx, username); err != nil {
		uc.logger.Warnf("failed to invalidate notes list for %q: %v", username, err)
	}
}
