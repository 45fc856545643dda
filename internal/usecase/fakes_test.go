package usecase_test

import (
	"context"
	"fmt"
	"sync"

	"github.com/mikiasgoitom/Notebook/internal/domain/contract"
	"github.com/mikiasgoitom/Notebook/internal/domain/entity"
)

// In-memory repository fakes shared by the usecase tests.

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*entity.User // keyed by username
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*entity.User{}}
}

func (r *fakeUserRepo) CreateUser(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.Username]; ok {
		return fmt.Errorf("duplicate username %q", user.Username)
	}
	cp := *user
	r.users[user.Username] = &cp
	return nil
}

func (r *fakeUserRepo) GetUserByID(_ context.Context, id string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, contract.ErrUserNotFound
}

func (r *fakeUserRepo) GetUserByUsername(_ context.Context, username string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[username]
	if !ok {
		return nil, contract.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) ExistsUserByUsername(_ context.Context, username string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.users[username]
	return ok, nil
}

func (r *fakeUserRepo) UpdateUser(_ context.Context, user *entity.User) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for name, u := range r.users {
		if u.ID == user.ID {
			cp := *user
			r.users[name] = &cp
			out := cp
			return &out, nil
		}
	}
	return nil, contract.ErrUserNotFound
}

func (r *fakeUserRepo) ListUsers(_ context.Context) ([]entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entity.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

type fakeRoleRepo struct {
	mu    sync.Mutex
	roles map[entity.UserRole]*entity.Role
}

func newFakeRoleRepo() *fakeRoleRepo {
	return &fakeRoleRepo{roles: map[entity.UserRole]*entity.Role{}}
}

func (r *fakeRoleRepo) GetRoleByName(_ context.Context, name entity.UserRole) (*entity.Role, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	role, ok := r.roles[name]
	if !ok {
		return nil, contract.ErrRoleNotFound
	}
	cp := *role
	return &cp, nil
}

func (r *fakeRoleRepo) CreateRole(_ context.Context, role *entity.Role) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.roles[role.Name]; ok {
		return fmt.Errorf("duplicate role %q", role.Name)
	}
	cp := *role
	r.roles[role.Name] = &cp
	return nil
}

func (r *fakeRoleRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.roles)
}

type fakeNoteRepo struct {
	mu    sync.Mutex
	notes map[string]*entity.Note // keyed by ID
}

func newFakeNoteRepo() *fakeNoteRepo {
	return &fakeNoteRepo{notes: map[string]*entity.Note{}}
}

func (r *fakeNoteRepo) CreateNote(_ context.Context, note *entity.Note) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *note
	r.notes[note.ID] = &cp
	return nil
}

func (r *fakeNoteRepo) GetNoteByID(_ context.Context, id string) (*entity.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n, ok := r.notes[id]
	if !ok {
		return nil, contract.ErrNoteNotFound
	}
	cp := *n
	return &cp, nil
}

func (r *fakeNoteRepo) ListNotesByOwner(_ context.Context, username string) ([]entity.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []entity.Note
	for _, n := range r.notes {
		if n.OwnerUsername == username {
			out = append(out, *n)
		}
	}
	return out, nil
}

func (r *fakeNoteRepo) UpdateNote(_ context.Context, note *entity.Note) (*entity.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.notes[note.ID]; !ok {
		return nil, contract.ErrNoteNotFound
	}
	cp := *note
	r.notes[note.ID] = &cp
	out := cp
	return &out, nil
}

func (r *fakeNoteRepo) DeleteNote(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.notes[id]; !ok {
		return contract.ErrNoteNotFound
	}
	delete(r.notes, id)
	return nil
}

type fakeUUIDGen struct {
	mu sync.Mutex
	n  int
}

func (g *fakeUUIDGen) NewUUID() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.n++
	return fmt.Sprintf("id-%d", g.n)
}

type noopLogger struct{}

func (noopLogger) Debugf(string, ...interface{}) {}
func (noopLogger) Infof(string, ...interface{})  {}
func (noopLogger) Warnf(string, ...interface{})  {}
func (noopLogger) Errorf(string, ...interface{}) {}
func (noopLogger) Fatalf(string, ...interface{}) {}

type fakeConfig struct{}

func (fakeConfig) GetPort() string              { return "8080" }
func (fakeConfig) GetBcryptCost() int           { return 4 }
func (fakeConfig) GetSeedUserPassword() string  { return "password1" }
func (fakeConfig) GetSeedAdminPassword() string { return "password1" }
