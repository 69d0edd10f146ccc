package controller

import (
	"github.com/gofiber/fiber/v2"

	"notevault-be/internal/dto"
	"notevault-be/internal/pkg/serverutils"
	"notevault-be/internal/service"
)

type INoteController interface {
	RegisterRoutes(r fiber.Router, auth fiber.Handler)
	List(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	SetCategories(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	Publish(ctx *fiber.Ctx) error
	Unpublish(ctx *fiber.Ctx) error
}

type noteController struct {
	noteService service.INoteService
}

func NewNoteController(noteService service.INoteService) INoteController {
	return &noteController{
		noteService: noteService,
	}
}

func (c *noteController) RegisterRoutes(r fiber.Router, auth fiber.Handler) {
	h := r.Group("/note/v1")
	h.Use(auth)
	h.Get("", c.List)
	h.Post("", c.Create)
	h.Get(":id", c.Show)
	h.Put(":id", c.Update)
	h.Put(":id/categories", c.SetCategories)
	h.Post(":id/publish", c.Publish)
	h.Delete(":id/publish", c.Unpublish)
	h.Delete(":id", c.Delete)
}

func (c *noteController) List(ctx *fiber.Ctx) error {
	userId, _ := ctx.Locals("user_id").(string)

	res, err := c.noteService.List(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list notes", res))
}

func (c *noteController) Create(ctx *fiber.Ctx) error {
	userId, _ := ctx.Locals("user_id").(string)

	res, err := c.noteService.Create(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success create note", res))
}

func (c *noteController) Show(ctx *fiber.Ctx) error {
	userId, _ := ctx.Locals("user_id").(string)
	id := ctx.Params("id")

	res, err := c.noteService.Show(ctx.Context(), userId, id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show note", res))
}

func (c *noteController) Update(ctx *fiber.Ctx) error {
	userId, _ := ctx.Locals("user_id").(string)

	var req dto.UpdateNoteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = ctx.Params("id")

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.noteService.Update(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update note", res))
}

func (c *noteController) SetCategories(ctx *fiber.Ctx) error {
	userId, _ := ctx.Locals("user_id").(string)

	var req dto.SetNoteCategoriesRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = ctx.Params("id")

	res, err := c.noteService.SetCategories(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success set note categories", res))
}

func (c *noteController) Delete(ctx *fiber.Ctx) error {
	userId, _ := ctx.Locals("user_id").(string)
	id := ctx.Params("id")

	if err := c.noteService.Delete(ctx.Context(), userId, id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete note", nil))
}

func (c *noteController) Publish(ctx *fiber.Ctx) error {
	userId, _ := ctx.Locals("user_id").(string)
	id := ctx.Params("id")

	res, err := c.noteService.Publish(ctx.Context(), userId, id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success publish note", res))
}

func (c *noteController) Unpublish(ctx *fiber.Ctx) error {
	userId, _ := ctx.Locals("user_id").(string)
	id := ctx.Params("id")

	res, err := c.noteService.Unpublish(ctx.Context(), userId, id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success unpublish note", res))
}
