package usecase_test

import (
	"context"
	"testing"

	"github.com/mikiasgoitom/Notebook/internal/domain/contract"
	"github.com/mikiasgoitom/Notebook/internal/infrastructure/validator"
	"github.com/mikiasgoitom/Notebook/internal/usecase"
	"github.com/stretchr/testify/assert"
)

func newNoteUsecase(repo *fakeNoteRepo) *usecase.NoteUsecase {
	return usecase.NewNoteUsecase(repo, &fakeUUIDGen{}, noopLogger{}, validator.NewValidator())
}

func TestNoteUsecase_CreateAndGet(t *testing.T) {
	repo := newFakeNoteRepo()
	uc := newNoteUsecase(repo)

	note, err := uc.CreateNoteForUser(context.Background(), "user1", "shopping", "milk, eggs")
	assert.NoError(t, err)
	assert.Equal(t, "user1", note.OwnerUsername)

	got, err := uc.GetNoteForUser(context.Background(), "user1", note.ID)
	assert.NoError(t, err)
	assert.Equal(t, "shopping", got.Title)
}

func TestNoteUsecase_CreateRejectsBlankTitle(t *testing.T) {
	uc := newNoteUsecase(newFakeNoteRepo())
	_, err := uc.CreateNoteForUser(context.Background(), "user1", "   ", "content")
	assert.Error(t, err)
}

func TestNoteUsecase_ForeignNoteReportedAbsent(t *testing.T) {
	repo := newFakeNoteRepo()
	uc := newNoteUsecase(repo)

	note, err := uc.CreateNoteForUser(context.Background(), "user1", "private", "secret")
	assert.NoError(t, err)

	_, err = uc.GetNoteForUser(context.Background(), "user2", note.ID)
	assert.ErrorIs(t, err, contract.ErrNoteNotFound)

	_, err = uc.UpdateNoteForUser(context.Background(), "user2", note.ID, "new", "new")
	assert.ErrorIs(t, err, contract.ErrNoteNotFound)

	err = uc.DeleteNoteForUser(context.Background(), "user2", note.ID)
	assert.ErrorIs(t, err, contract.ErrNoteNotFound)
}

func TestNoteUsecase_UpdateAndDelete(t *testing.T) {
	repo := newFakeNoteRepo()
	uc := newNoteUsecase(repo)

	note, err := uc.CreateNoteForUser(context.Background(), "user1", "draft", "v1")
	assert.NoError(t, err)

	updated, err := uc.UpdateNoteForUser(context.Background(), "user1", note.ID, "draft", "v2")
	assert.NoError(t, err)
	assert.Equal(t, "v2", updated.Content)

	assert.NoError(t, uc.DeleteNoteForUser(context.Background(), "user1", note.ID))
	_, err = uc.GetNoteForUser(context.Background(), "user1", note.ID)
	assert.ErrorIs(t, err, contract.ErrNoteNotFound)
}

func TestNoteUsecase_ListByOwner(t *testing.T) {
	repo := newFakeNoteRepo()
	uc := newNoteUsecase(repo)

	_, err := uc.CreateNoteForUser(context.Background(), "user1", "a", "1")
	assert.NoError(t, err)
	_, err = uc.CreateNoteForUser(context.Background(), "user1", "b", "2")
	assert.NoError(t, err)
	_, err = uc.CreateNoteForUser(context.Background(), "user2", "c", "3")
	assert.NoError(t, err)

	notes, err := uc.GetAllNotesForUser(context.Background(), "user1")
	assert.NoError(t, err)
	assert.Len(t, notes, 2)
}
