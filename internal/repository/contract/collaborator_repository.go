package contract

import (
	"context"

	"collabnotes-be/internal/entity"
	"collabnotes-be/internal/repository/specification"
)

type CollaboratorRepository interface {
	Create(ctx context.Context, collaborator *entity.NoteCollaborator) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.NoteCollaborator, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.NoteCollaborator, error)
	// FindNotesForCollaborator loads the notes a user collaborates on,
	// resolved through the join rows.
	FindNotesForCollaborator(ctx context.Context, userId uint) ([]*entity.Note, error)
}
