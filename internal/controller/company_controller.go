package controller

import (
	"buildchem-be/internal/pkg/apperror"
	"buildchem-be/internal/pkg/serverutils"
	"buildchem-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ICompanyController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
}

type companyController struct {
	companyService service.ICompanyService
}

func NewCompanyController(companyService service.ICompanyService) ICompanyController {
	return &companyController{
		companyService: companyService,
	}
}

func (c *companyController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/companies")
	h.Get("", c.List)
	h.Get(":id", c.Show)
}

func (c *companyController) List(ctx *fiber.Ctx) error {
	res, err := c.companyService.ListCompanies(ctx.UserContext())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Companies", res))
}

func (c *companyController) Show(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return apperror.NewNotFound("company", ctx.Params("id"))
	}

	res, err := c.companyService.GetCompany(ctx.UserContext(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Company", res))
}
