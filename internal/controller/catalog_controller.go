package controller

import (
	"buildchem-be/internal/pkg/apperror"
	"buildchem-be/internal/pkg/serverutils"
	"buildchem-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ICatalogController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
}

type catalogController struct {
	catalogService service.ICatalogService
}

func NewCatalogController(catalogService service.ICatalogService) ICatalogController {
	return &catalogController{
		catalogService: catalogService,
	}
}

func (c *catalogController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/solutions")
	h.Get("", c.List)
	h.Get(":id", c.Show)
}

func (c *catalogController) List(ctx *fiber.Ctx) error {
	res, err := c.catalogService.ListSolutions(ctx.UserContext())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Solutions", res))
}

func (c *catalogController) Show(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return apperror.NewNotFound("solution", ctx.Params("id"))
	}

	res, err := c.catalogService.GetSolution(ctx.UserContext(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Solution", res))
}
