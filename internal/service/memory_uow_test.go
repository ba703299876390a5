package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"collabnotes-be/internal/apperror"
	"collabnotes-be/internal/entity"
	"collabnotes-be/internal/repository/contract"
	"collabnotes-be/internal/repository/specification"
	"collabnotes-be/internal/repository/unitofwork"
)

// memoryStore is an in-memory stand-in for the database, honoring the same
// invariants the real schema enforces (unique email, unique collaboration
// pair). The repositories over it interpret the query specifications the
// services actually use.
type memoryStore struct {
	mu sync.Mutex

	users   map[uint]*entity.User
	notes   map[uint]*entity.Note
	collabs []*entity.NoteCollaborator

	nextUserId   uint
	nextNoteId   uint
	nextCollabId uint
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		users: make(map[uint]*entity.User),
		notes: make(map[uint]*entity.Note),
	}
}

type memoryFactory struct {
	store *memoryStore
}

func newMemoryFactory() *memoryFactory {
	return &memoryFactory{store: newMemoryStore()}
}

func (f *memoryFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return &memoryUow{store: f.store}
}

type memoryUow struct {
	store *memoryStore
}

func (u *memoryUow) Begin(ctx context.Context) error { return nil }
func (u *memoryUow) Commit() error                   { return nil }
func (u *memoryUow) Rollback() error                 { return nil }

func (u *memoryUow) UserRepository() contract.UserRepository {
	return &memoryUserRepo{store: u.store}
}

func (u *memoryUow) NoteRepository() contract.NoteRepository {
	return &memoryNoteRepo{store: u.store}
}

func (u *memoryUow) CollaboratorRepository() contract.CollaboratorRepository {
	return &memoryCollaboratorRepo{store: u.store}
}

// Users

type memoryUserRepo struct {
	store *memoryStore
}

func copyUser(u *entity.User) *entity.User {
	c := *u
	return &c
}

func (r *memoryUserRepo) Create(ctx context.Context, user *entity.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, existing := range r.store.users {
		if existing.Email == user.Email {
			return apperror.Conflict("email already registered")
		}
	}

	r.store.nextUserId++
	user.Id = r.store.nextUserId
	user.CreatedAt = time.Now()
	r.store.users[user.Id] = copyUser(user)
	return nil
}

func (r *memoryUserRepo) Update(ctx context.Context, user *entity.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.users[user.Id] = copyUser(user)
	return nil
}

func (r *memoryUserRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, u := range r.store.users {
		if userMatches(u, specs) {
			return copyUser(u), nil
		}
	}
	return nil, nil
}

func (r *memoryUserRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var out []*entity.User
	for _, u := range r.store.users {
		if userMatches(u, specs) {
			out = append(out, copyUser(u))
		}
	}
	return out, nil
}

func (r *memoryUserRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, _ := r.FindAll(ctx, specs...)
	return int64(len(all)), nil
}

func userMatches(u *entity.User, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			if u.Id != s.ID {
				return false
			}
		case specification.ByEmail:
			if u.Email != s.Email {
				return false
			}
		}
	}
	return true
}

// Notes

type memoryNoteRepo struct {
	store *memoryStore
}

func (r *memoryNoteRepo) copyNote(n *entity.Note, withCollaborators bool) *entity.Note {
	c := *n
	c.Collaborators = nil
	if withCollaborators {
		for _, col := range r.store.collabs {
			if col.NoteId == n.Id {
				cc := *col
				c.Collaborators = append(c.Collaborators, &cc)
			}
		}
	}
	return &c
}

func (r *memoryNoteRepo) Create(ctx context.Context, note *entity.Note) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.nextNoteId++
	note.Id = r.store.nextNoteId
	note.CreatedAt = time.Now()
	note.UpdatedAt = note.CreatedAt
	r.store.notes[note.Id] = r.copyNote(note, false)
	return nil
}

func (r *memoryNoteRepo) Update(ctx context.Context, note *entity.Note) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	note.UpdatedAt = time.Now()
	r.store.notes[note.Id] = r.copyNote(note, false)
	return nil
}

func (r *memoryNoteRepo) Delete(ctx context.Context, id uint) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	delete(r.store.notes, id)
	// Cascade, as the foreign key would.
	kept := r.store.collabs[:0]
	for _, col := range r.store.collabs {
		if col.NoteId != id {
			kept = append(kept, col)
		}
	}
	r.store.collabs = kept
	return nil
}

func (r *memoryNoteRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Note, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	withCollaborators := hasWithCollaborators(specs)
	for _, n := range r.store.notes {
		if noteMatches(n, specs) {
			return r.copyNote(n, withCollaborators), nil
		}
	}
	return nil, nil
}

func (r *memoryNoteRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Note, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	withCollaborators := hasWithCollaborators(specs)
	var out []*entity.Note
	for _, n := range r.store.notes {
		if noteMatches(n, specs) {
			out = append(out, r.copyNote(n, withCollaborators))
		}
	}

	for _, spec := range specs {
		if s, ok := spec.(specification.OrderBy); ok && s.Field == "updated_at" {
			sort.Slice(out, func(i, j int) bool {
				if s.Desc {
					return out[i].UpdatedAt.After(out[j].UpdatedAt)
				}
				return out[i].UpdatedAt.Before(out[j].UpdatedAt)
			})
		}
	}
	return out, nil
}

func (r *memoryNoteRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, _ := r.FindAll(ctx, specs...)
	return int64(len(all)), nil
}

func hasWithCollaborators(specs []specification.Specification) bool {
	for _, spec := range specs {
		if _, ok := spec.(specification.WithCollaborators); ok {
			return true
		}
	}
	return false
}

func noteMatches(n *entity.Note, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			if n.Id != s.ID {
				return false
			}
		case specification.OwnedBy:
			if n.OwnerId != s.UserID {
				return false
			}
		}
	}
	return true
}

// Collaborators

type memoryCollaboratorRepo struct {
	store *memoryStore
}

func (r *memoryCollaboratorRepo) Create(ctx context.Context, collaborator *entity.NoteCollaborator) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, existing := range r.store.collabs {
		if existing.NoteId == collaborator.NoteId && existing.UserId == collaborator.UserId {
			return apperror.Conflict("user is already a collaborator")
		}
	}

	r.store.nextCollabId++
	collaborator.Id = r.store.nextCollabId
	collaborator.CreatedAt = time.Now()
	c := *collaborator
	r.store.collabs = append(r.store.collabs, &c)
	return nil
}

func (r *memoryCollaboratorRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.NoteCollaborator, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, col := range r.store.collabs {
		if collaborationMatches(col, specs) {
			c := *col
			return &c, nil
		}
	}
	return nil, nil
}

func (r *memoryCollaboratorRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.NoteCollaborator, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var out []*entity.NoteCollaborator
	for _, col := range r.store.collabs {
		if collaborationMatches(col, specs) {
			c := *col
			out = append(out, &c)
		}
	}
	return out, nil
}

func (r *memoryCollaboratorRepo) FindNotesForCollaborator(ctx context.Context, userId uint) ([]*entity.Note, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var out []*entity.Note
	for _, col := range r.store.collabs {
		if col.UserId != userId {
			continue
		}
		if n, ok := r.store.notes[col.NoteId]; ok {
			c := *n
			out = append(out, &c)
		}
	}
	return out, nil
}

func collaborationMatches(col *entity.NoteCollaborator, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.CollaborationByUser:
			if col.UserId != s.UserID {
				return false
			}
		case specification.CollaborationByNoteAndUser:
			if col.NoteId != s.NoteID || col.UserId != s.UserID {
				return false
			}
		}
	}
	return true
}
