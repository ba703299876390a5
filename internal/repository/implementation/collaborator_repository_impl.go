package implementation

import (
	"context"
	"errors"

	"collabnotes-be/internal/apperror"
	"collabnotes-be/internal/entity"
	"collabnotes-be/internal/mapper"
	"collabnotes-be/internal/model"
	"collabnotes-be/internal/repository/contract"
	"collabnotes-be/internal/repository/specification"

	"gorm.io/gorm"
)

type CollaboratorRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.NoteMapper
}

func NewCollaboratorRepository(db *gorm.DB) contract.CollaboratorRepository {
	return &CollaboratorRepositoryImpl{
		db:     db,
		mapper: mapper.NewNoteMapper(),
	}
}

func (r *CollaboratorRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

// Create inserts a collaboration row. The unique index on (note_id,user_id)
// is authoritative: a duplicate that slipped past the service-level check
// comes back as a Conflict here.
func (r *CollaboratorRepositoryImpl) Create(ctx context.Context, collaborator *entity.NoteCollaborator) error {
	m := r.mapper.CollaboratorToModel(collaborator)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperror.Conflict("user is already a collaborator")
		}
		return apperror.Persistence(err)
	}
	*collaborator = *r.mapper.CollaboratorToEntity(m)
	return nil
}

func (r *CollaboratorRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.NoteCollaborator, error) {
	var m model.NoteCollaborator
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apperror.Persistence(err)
	}
	return r.mapper.CollaboratorToEntity(&m), nil
}

func (r *CollaboratorRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.NoteCollaborator, error) {
	var models []*model.NoteCollaborator
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, apperror.Persistence(err)
	}
	return r.mapper.CollaboratorsToEntities(models), nil
}

func (r *CollaboratorRepositoryImpl) FindNotesForCollaborator(ctx context.Context, userId uint) ([]*entity.Note, error) {
	var models []*model.Note
	err := r.db.WithContext(ctx).
		Joins("JOIN note_collaborators ON note_collaborators.note_id = notes.id").
		Where("note_collaborators.user_id = ?", userId).
		Find(&models).Error
	if err != nil {
		return nil, apperror.Persistence(err)
	}
	return r.mapper.ToEntities(models), nil
}
