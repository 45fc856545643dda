package mocks

import (
	"context"
	"time"

	"github.com/mikiasgoitom/Notebook/internal/domain/contract"
	"github.com/mikiasgoitom/Notebook/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/Notebook/internal/usecase/contract"
)

// MockNoteUsecase is a mock implementation of the INoteUseCase interface
type MockNoteUsecase struct {
	// Control mock behavior
	ShouldFailCreate bool
	ShouldFailGet    bool
	ShouldFailUpdate bool
	ShouldFailDelete bool
	ShouldFailList   bool
	NotFoundOnGet    bool
	NotFoundOnUpdate bool
	NotFoundOnDelete bool

	// Return values
	MockNote entity.Note
}

// Ensure MockNoteUsecase implements the correct interface for handler.NewNoteHandler
var _ usecasecontract.INoteUseCase = (*MockNoteUsecase)(nil)

func NewMockNoteUsecase() *MockNoteUsecase {
	return &MockNoteUsecase{
		MockNote: entity.Note{
			ID:            "mock-note-id",
			Title:         "mock title",
			Content:       "mock content",
			OwnerUsername: "testuser",
			CreatedAt:     time.Now(),
			UpdatedAt:     time.Now(),
		},
	}
}

func (m *MockNoteUsecase) CreateNoteForUser(ctx context.Context, username, title, content string) (*entity.Note, error) {
	if m.ShouldFailCreate {
		return nil, contract.ErrNoteNotFound
	}
	note := m.MockNote
	note.Title = title
	note.Content = content
	note.OwnerUsername = username
	return &note, nil
}

func (m *MockNoteUsecase) GetNoteForUser(ctx context.Context, username, noteID string) (*entity.Note, error) {
	if m.NotFoundOnGet {
		return nil, contract.ErrNoteNotFound
	}
	if m.ShouldFailGet {
		return nil, context.DeadlineExceeded
	}
	return &m.MockNote, nil
}

func (m *MockNoteUsecase) UpdateNoteForUser(ctx context.Context, username, noteID, title, content string) (*entity.Note, error) {
	if m.NotFoundOnUpdate {
		return nil, contract.ErrNoteNotFound
	}
	if m.ShouldFailUpdate {
		return nil, context.DeadlineExceeded
	}
	note := m.MockNote
	note.Title = title
	note.Content = content
	return &note, nil
}

func (m *MockNoteUsecase) DeleteNoteForUser(ctx context.Context, username, noteID string) error {
	if m.NotFoundOnDelete {
		return contract.ErrNoteNotFound
	}
	if m.ShouldFailDelete {
		return context.DeadlineExceeded
	}
	return nil
}

func (m *MockNoteUsecase) GetAllNotesForUser(ctx context.Context, username string) ([]entity.Note, error) {
	if m.ShouldFailList {
		return nil, context.DeadlineExceeded
	}
	return []entity.Note{m.MockNote}, nil
}
