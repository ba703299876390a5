package entity

import (
	"time"
)

type Note struct {
	Id        uint
	Title     string
	Content   string
	OwnerId   uint
	CreatedAt time.Time
	UpdatedAt time.Time

	// Loaded on demand by the repository, not persisted as a column.
	Collaborators []*NoteCollaborator
}

// IsCollaborator reports whether userId appears among the loaded collaborators.
func (n *Note) IsCollaborator(userId uint) bool {
	for _, c := range n.Collaborators {
		if c.UserId == userId {
			return true
		}
	}
	return false
}

type NoteCollaborator struct {
	Id        uint
	NoteId    uint
	UserId    uint
	CreatedAt time.Time
}
