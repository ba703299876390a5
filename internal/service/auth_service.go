package service

import (
	"context"

	"collabnotes-be/internal/apperror"
	"collabnotes-be/internal/dto"
	"collabnotes-be/internal/entity"
	"collabnotes-be/internal/repository/specification"
	"collabnotes-be/internal/repository/unitofwork"
	"collabnotes-be/internal/token"

	"golang.org/x/crypto/bcrypt"
)

type IAuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
	GetUser(ctx context.Context, id uint) (*dto.UserDTO, error)
}

type authService struct {
	uowFactory   unitofwork.RepositoryFactory
	tokenService token.IService
}

func NewAuthService(uowFactory unitofwork.RepositoryFactory, tokenService token.IService) IAuthService {
	return &authService{
		uowFactory:   uowFactory,
		tokenService: tokenService,
	}
}

func toUserDTO(u *entity.User) dto.UserDTO {
	return dto.UserDTO{
		Id:        u.Id,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}

func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.Conflict("email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperror.Wrap(apperror.KindPersistence, "failed to hash password", err)
	}

	user := &entity.User{
		Email:        req.Email,
		PasswordHash: string(hash),
	}

	// The unique index on email backs up the existence check above; the
	// repository maps a racing duplicate insert to the same Conflict.
	if err := uow.UserRepository().Create(ctx, user); err != nil {
		return nil, err
	}

	signed, err := s.tokenService.Issue(token.Identity{Id: user.Id, Email: user.Email})
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		User:  toUserDTO(user),
		Token: signed,
	}, nil
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return nil, err
	}
	// Unknown email and wrong password are indistinguishable to the caller.
	if user == nil {
		return nil, apperror.Unauthorized("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apperror.Unauthorized("invalid credentials")
	}

	signed, err := s.tokenService.Issue(token.Identity{Id: user.Id, Email: user.Email})
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		User:  toUserDTO(user),
		Token: signed,
	}, nil
}

func (s *authService) GetUser(ctx context.Context, id uint) (*dto.UserDTO, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NotFound("user not found")
	}

	res := toUserDTO(user)
	return &res, nil
}
