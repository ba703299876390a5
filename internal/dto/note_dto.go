package dto

import (
	"time"
)

type CreateNoteRequest struct {
	Title   string `json:"title" validate:"required,max=255"`
	Content string `json:"content"`
}

// UpdateNoteRequest is a partial patch: nil fields keep their prior value.
type UpdateNoteRequest struct {
	Id      uint
	Title   *string `json:"title" validate:"omitempty,min=1,max=255"`
	Content *string `json:"content"`
}

type ShareNoteRequest struct {
	Id    uint
	Email string `json:"email" validate:"required,email"`
}

type NoteDTO struct {
	Id        uint      `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	OwnerId   uint      `json:"owner_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	IsShared  bool      `json:"is_shared,omitempty"`
}

type ShowNoteResponse struct {
	Note    NoteDTO `json:"note"`
	IsOwner bool    `json:"is_owner"`
}

type ListNotesResponse struct {
	Own    []NoteDTO `json:"own"`
	Shared []NoteDTO `json:"shared"`
}

type ShareNoteResponse struct {
	NoteId         uint   `json:"note_id"`
	CollaboratorId uint   `json:"collaborator_id"`
	Message        string `json:"message"`
}
