package controller

import (
	"github.com/gofiber/fiber/v2"

	"notevault-be/internal/pkg/serverutils"
	"notevault-be/internal/service"
)

// Blog routes are the public surface: no auth middleware.
type IBlogController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
}

type blogController struct {
	blogService service.IBlogService
}

func NewBlogController(blogService service.IBlogService) IBlogController {
	return &blogController{
		blogService: blogService,
	}
}

func (c *blogController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/blog/v1")
	h.Get("", c.List)
	h.Get(":id", c.Show)
}

func (c *blogController) List(ctx *fiber.Ctx) error {
	res, err := c.blogService.ListPublished(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list published notes", res))
}

func (c *blogController) Show(ctx *fiber.Ctx) error {
	id := ctx.Params("id")

	res, err := c.blogService.GetPublished(ctx.Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show published note", res))
}
