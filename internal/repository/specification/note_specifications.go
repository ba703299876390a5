package specification

import (
	"gorm.io/gorm"
)

// OwnedBy filters notes by their owner column.
type OwnedBy struct {
	UserID uint
}

func (s OwnedBy) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("owner_id = ?", s.UserID)
}

// WithCollaborators preloads the collaborator rows so the access-control
// tier can be resolved from a single fetch.
type WithCollaborators struct{}

func (s WithCollaborators) Apply(db *gorm.DB) *gorm.DB {
	return db.Preload("Collaborators")
}

// Collaboration specs

type CollaborationByUser struct {
	UserID uint
}

func (s CollaborationByUser) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("user_id = ?", s.UserID)
}

type CollaborationByNoteAndUser struct {
	NoteID uint
	UserID uint
}

func (s CollaborationByNoteAndUser) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("note_id = ? AND user_id = ?", s.NoteID, s.UserID)
}
