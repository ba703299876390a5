package service

import (
	"context"

	"collabnotes-be/internal/apperror"
	"collabnotes-be/internal/dto"
	"collabnotes-be/internal/entity"
	"collabnotes-be/internal/repository/specification"
	"collabnotes-be/internal/repository/unitofwork"
)

type INoteService interface {
	Create(ctx context.Context, userId uint, req *dto.CreateNoteRequest) (*dto.NoteDTO, error)
	List(ctx context.Context, userId uint) (*dto.ListNotesResponse, error)
	Show(ctx context.Context, userId uint, id uint) (*dto.ShowNoteResponse, error)
	Update(ctx context.Context, userId uint, req *dto.UpdateNoteRequest) (*dto.NoteDTO, error)
	Delete(ctx context.Context, userId uint, id uint) error
	Share(ctx context.Context, userId uint, req *dto.ShareNoteRequest) (*dto.ShareNoteResponse, error)
}

type noteService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewNoteService(uowFactory unitofwork.RepositoryFactory) INoteService {
	return &noteService{
		uowFactory: uowFactory,
	}
}

func toNoteDTO(n *entity.Note) dto.NoteDTO {
	return dto.NoteDTO{
		Id:        n.Id,
		Title:     n.Title,
		Content:   n.Content,
		OwnerId:   n.OwnerId,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
}

// resolve is the single authorization gate for every note operation. It
// loads the note with its collaborator rows and admits only the owner or a
// collaborator. Delete and Share layer an owner-only check on top.
func (s *noteService) resolve(ctx context.Context, uow unitofwork.UnitOfWork, noteId, userId uint) (*entity.Note, bool, error) {
	note, err := uow.NoteRepository().FindOne(ctx,
		specification.ByID{ID: noteId},
		specification.WithCollaborators{},
	)
	if err != nil {
		return nil, false, err
	}
	if note == nil {
		return nil, false, apperror.NotFound("note not found")
	}

	isOwner := note.OwnerId == userId
	if !isOwner && !note.IsCollaborator(userId) {
		return nil, false, apperror.Forbidden("you do not have access to this note")
	}

	return note, isOwner, nil
}

func (s *noteService) Create(ctx context.Context, userId uint, req *dto.CreateNoteRequest) (*dto.NoteDTO, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	note := &entity.Note{
		Title:   req.Title,
		Content: req.Content,
		OwnerId: userId,
	}

	if err := uow.NoteRepository().Create(ctx, note); err != nil {
		return nil, err
	}

	res := toNoteDTO(note)
	return &res, nil
}

func (s *noteService) List(ctx context.Context, userId uint) (*dto.ListNotesResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	ownNotes, err := uow.NoteRepository().FindAll(ctx,
		specification.OwnedBy{UserID: userId},
		specification.OrderBy{Field: "updated_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	sharedNotes, err := uow.CollaboratorRepository().FindNotesForCollaborator(ctx, userId)
	if err != nil {
		return nil, err
	}

	res := &dto.ListNotesResponse{
		Own:    make([]dto.NoteDTO, 0, len(ownNotes)),
		Shared: make([]dto.NoteDTO, 0, len(sharedNotes)),
	}
	for _, n := range ownNotes {
		res.Own = append(res.Own, toNoteDTO(n))
	}
	for _, n := range sharedNotes {
		d := toNoteDTO(n)
		d.IsShared = true
		res.Shared = append(res.Shared, d)
	}

	return res, nil
}

func (s *noteService) Show(ctx context.Context, userId uint, id uint) (*dto.ShowNoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	note, isOwner, err := s.resolve(ctx, uow, id, userId)
	if err != nil {
		return nil, err
	}

	return &dto.ShowNoteResponse{
		Note:    toNoteDTO(note),
		IsOwner: isOwner,
	}, nil
}

func (s *noteService) Update(ctx context.Context, userId uint, req *dto.UpdateNoteRequest) (*dto.NoteDTO, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	// Owner and collaborators both hold update rights.
	note, _, err := s.resolve(ctx, uow, req.Id, userId)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		note.Title = *req.Title
	}
	if req.Content != nil {
		note.Content = *req.Content
	}

	if err := uow.NoteRepository().Update(ctx, note); err != nil {
		return nil, err
	}

	res := toNoteDTO(note)
	return &res, nil
}

func (s *noteService) Delete(ctx context.Context, userId uint, id uint) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	_, isOwner, err := s.resolve(ctx, uow, id, userId)
	if err != nil {
		return err
	}
	if !isOwner {
		return apperror.Forbidden("only the owner can delete this note")
	}

	// Collaborator rows cascade with the note row.
	return uow.NoteRepository().Delete(ctx, id)
}

func (s *noteService) Share(ctx context.Context, userId uint, req *dto.ShareNoteRequest) (*dto.ShareNoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	_, isOwner, err := s.resolve(ctx, uow, req.Id, userId)
	if err != nil {
		return nil, err
	}
	if !isOwner {
		return nil, apperror.Forbidden("only the owner can share this note")
	}

	// The target must resolve before the self-share and duplicate checks,
	// both of which need its id.
	collaborator, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return nil, err
	}
	if collaborator == nil {
		return nil, apperror.NotFound("collaborator user not found")
	}

	if collaborator.Id == userId {
		return nil, apperror.Validation("cannot share a note with yourself")
	}

	existing, err := uow.CollaboratorRepository().FindOne(ctx,
		specification.CollaborationByNoteAndUser{NoteID: req.Id, UserID: collaborator.Id},
	)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.Validation("user is already a collaborator")
	}

	// Two concurrent shares for the same pair can both reach this insert;
	// the unique index decides, and the repository reports it as Conflict.
	row := &entity.NoteCollaborator{
		NoteId: req.Id,
		UserId: collaborator.Id,
	}
	if err := uow.CollaboratorRepository().Create(ctx, row); err != nil {
		return nil, err
	}

	return &dto.ShareNoteResponse{
		NoteId:         req.Id,
		CollaboratorId: collaborator.Id,
		Message:        "note shared successfully",
	}, nil
}
