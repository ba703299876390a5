package model

import (
	"time"
)

// The composite unique index is the final authority on duplicate
// collaborators: concurrent share requests can both pass the
// application-level existence check, the constraint cannot.
type NoteCollaborator struct {
	Id        uint      `gorm:"primaryKey;autoIncrement"`
	NoteId    uint      `gorm:"not null;uniqueIndex:idx_note_collaborators_note_user"`
	UserId    uint      `gorm:"not null;uniqueIndex:idx_note_collaborators_note_user"`
	CreatedAt time.Time `gorm:"autoCreateTime"`

	Note *Note `gorm:"foreignKey:NoteId;constraint:OnDelete:CASCADE"`
	User *User `gorm:"foreignKey:UserId;constraint:OnDelete:CASCADE"`
}

func (NoteCollaborator) TableName() string {
	return "note_collaborators"
}
