package controller

import (
	"strconv"

	"collabnotes-be/internal/apperror"
	"collabnotes-be/internal/dto"
	"collabnotes-be/internal/pkg/logger"
	"collabnotes-be/internal/pkg/serverutils"
	"collabnotes-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type INoteController interface {
	RegisterRoutes(r fiber.Router, authMiddleware fiber.Handler, createLimiter fiber.Handler)
	Create(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	Share(ctx *fiber.Ctx) error
}

type noteController struct {
	noteService service.INoteService
	log         logger.ILogger
}

func NewNoteController(noteService service.INoteService, log logger.ILogger) INoteController {
	return &noteController{
		noteService: noteService,
		log:         log,
	}
}

func (c *noteController) RegisterRoutes(r fiber.Router, authMiddleware fiber.Handler, createLimiter fiber.Handler) {
	h := r.Group("/note/v1")
	h.Use(authMiddleware)
	h.Post("", createLimiter, c.Create)
	h.Get("", c.List)
	h.Get(":id", c.Show)
	h.Put(":id", c.Update)
	h.Delete(":id", c.Delete)
	h.Post(":id/share", c.Share)
}

func noteIdParam(ctx *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(ctx.Params("id"), 10, 64)
	if err != nil {
		return 0, apperror.Validation("invalid note id")
	}
	return uint(id), nil
}

func (c *noteController) Create(ctx *fiber.Ctx) error {
	userId := serverutils.UserId(ctx)

	var req dto.CreateNoteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.Validation("invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.noteService.Create(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	c.log.Info("note", "note created", map[string]interface{}{
		"request_id": serverutils.RequestId(ctx),
		"user_id":    userId,
		"note_id":    res.Id,
	})

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.CreatedResponse("Success create note", res))
}

func (c *noteController) List(ctx *fiber.Ctx) error {
	userId := serverutils.UserId(ctx)

	res, err := c.noteService.List(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list notes", res))
}

func (c *noteController) Show(ctx *fiber.Ctx) error {
	userId := serverutils.UserId(ctx)

	id, err := noteIdParam(ctx)
	if err != nil {
		return err
	}

	res, err := c.noteService.Show(ctx.Context(), userId, id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show note", res))
}

func (c *noteController) Update(ctx *fiber.Ctx) error {
	userId := serverutils.UserId(ctx)

	id, err := noteIdParam(ctx)
	if err != nil {
		return err
	}

	var req dto.UpdateNoteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.Validation("invalid request body")
	}
	req.Id = id

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.noteService.Update(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	c.log.Info("note", "note updated", map[string]interface{}{
		"request_id": serverutils.RequestId(ctx),
		"user_id":    userId,
		"note_id":    id,
	})

	return ctx.JSON(serverutils.SuccessResponse("Success update note", res))
}

func (c *noteController) Delete(ctx *fiber.Ctx) error {
	userId := serverutils.UserId(ctx)

	id, err := noteIdParam(ctx)
	if err != nil {
		return err
	}

	if err := c.noteService.Delete(ctx.Context(), userId, id); err != nil {
		return err
	}

	c.log.Info("note", "note deleted", map[string]interface{}{
		"request_id": serverutils.RequestId(ctx),
		"user_id":    userId,
		"note_id":    id,
	})

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete note", nil))
}

func (c *noteController) Share(ctx *fiber.Ctx) error {
	userId := serverutils.UserId(ctx)

	id, err := noteIdParam(ctx)
	if err != nil {
		return err
	}

	var req dto.ShareNoteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.Validation("invalid request body")
	}
	req.Id = id

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.noteService.Share(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	c.log.Info("note", "note shared", map[string]interface{}{
		"request_id":      serverutils.RequestId(ctx),
		"user_id":         userId,
		"note_id":         id,
		"collaborator_id": res.CollaboratorId,
	})

	return ctx.JSON(serverutils.SuccessResponse("Success share note", res))
}
