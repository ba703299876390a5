package mapper

import (
	"collabnotes-be/internal/entity"
	"collabnotes-be/internal/model"
)

type NoteMapper struct{}

func NewNoteMapper() *NoteMapper {
	return &NoteMapper{}
}

func (m *NoteMapper) ToEntity(n *model.Note) *entity.Note {
	if n == nil {
		return nil
	}
	return &entity.Note{
		Id:            n.Id,
		Title:         n.Title,
		Content:       n.Content,
		OwnerId:       n.OwnerId,
		CreatedAt:     n.CreatedAt,
		UpdatedAt:     n.UpdatedAt,
		Collaborators: m.CollaboratorsToEntities(n.Collaborators),
	}
}

func (m *NoteMapper) ToModel(n *entity.Note) *model.Note {
	if n == nil {
		return nil
	}
	// Collaborators are managed through their own repository; writing them
	// back here would let gorm upsert association rows behind our back.
	return &model.Note{
		Id:        n.Id,
		Title:     n.Title,
		Content:   n.Content,
		OwnerId:   n.OwnerId,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
}

func (m *NoteMapper) ToEntities(notes []*model.Note) []*entity.Note {
	entities := make([]*entity.Note, len(notes))
	for i, n := range notes {
		entities[i] = m.ToEntity(n)
	}
	return entities
}

func (m *NoteMapper) CollaboratorToEntity(c *model.NoteCollaborator) *entity.NoteCollaborator {
	if c == nil {
		return nil
	}
	return &entity.NoteCollaborator{
		Id:        c.Id,
		NoteId:    c.NoteId,
		UserId:    c.UserId,
		CreatedAt: c.CreatedAt,
	}
}

func (m *NoteMapper) CollaboratorToModel(c *entity.NoteCollaborator) *model.NoteCollaborator {
	if c == nil {
		return nil
	}
	return &model.NoteCollaborator{
		Id:        c.Id,
		NoteId:    c.NoteId,
		UserId:    c.UserId,
		CreatedAt: c.CreatedAt,
	}
}

func (m *NoteMapper) CollaboratorsToEntities(cs []*model.NoteCollaborator) []*entity.NoteCollaborator {
	if cs == nil {
		return nil
	}
	entities := make([]*entity.NoteCollaborator, len(cs))
	for i, c := range cs {
		entities[i] = m.CollaboratorToEntity(c)
	}
	return entities
}
