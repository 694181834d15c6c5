package controller

import (
	"buildchem-be/internal/dto"
	"buildchem-be/internal/pkg/serverutils"
	"buildchem-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ISelectionController interface {
	RegisterRoutes(r fiber.Router, visitor fiber.Handler)
	Show(ctx *fiber.Ctx) error
	AddItem(ctx *fiber.Ctx) error
	RemoveItem(ctx *fiber.Ctx) error
	Clear(ctx *fiber.Ctx) error
	Submit(ctx *fiber.Ctx) error
}

type selectionController struct {
	selectionService      service.ISelectionService
	catalogRequestService service.ICatalogRequestService
}

func NewSelectionController(selectionService service.ISelectionService, catalogRequestService service.ICatalogRequestService) ISelectionController {
	return &selectionController{
		selectionService:      selectionService,
		catalogRequestService: catalogRequestService,
	}
}

func (c *selectionController) RegisterRoutes(r fiber.Router, visitor fiber.Handler) {
	h := r.Group("/selection", visitor)
	h.Get("", c.Show)
	h.Delete("", c.Clear)
	h.Post("items", c.AddItem)
	h.Delete("items/:productId", c.RemoveItem)
	h.Post("submit", c.Submit)
}

func (c *selectionController) Show(ctx *fiber.Ctx) error {
	res := c.selectionService.Show(ctx.UserContext(), serverutils.VisitorId(ctx))
	return ctx.JSON(serverutils.SuccessResponse("Selection", res))
}

func (c *selectionController) AddItem(ctx *fiber.Ctx) error {
	var req dto.AddSelectionItemRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.selectionService.AddProduct(ctx.UserContext(), serverutils.VisitorId(ctx), &req)
	if err != nil {
		return err
	}

	message := "Added to selection"
	if !res.Added {
		message = "Already in selection"
	}
	return ctx.JSON(serverutils.SuccessResponse(message, res))
}

func (c *selectionController) RemoveItem(ctx *fiber.Ctx) error {
	res := c.selectionService.RemoveProduct(ctx.UserContext(), serverutils.VisitorId(ctx), ctx.Params("productId"))
	return ctx.JSON(serverutils.SuccessResponse("Removed from selection", res))
}

func (c *selectionController) Clear(ctx *fiber.Ctx) error {
	res := c.selectionService.Clear(ctx.UserContext(), serverutils.VisitorId(ctx))
	return ctx.JSON(serverutils.SuccessResponse("Selection cleared", res))
}

func (c *selectionController) Submit(ctx *fiber.Ctx) error {
	var req dto.SubmitCatalogRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.catalogRequestService.Submit(ctx.UserContext(), serverutils.VisitorId(ctx), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Catalog request sent", res))
}
