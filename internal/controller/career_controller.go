package controller

import (
	"buildchem-be/internal/pkg/serverutils"
	"buildchem-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ICareerController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
}

type careerController struct {
	careerService service.ICareerService
}

func NewCareerController(careerService service.ICareerService) ICareerController {
	return &careerController{
		careerService: careerService,
	}
}

func (c *careerController) RegisterRoutes(r fiber.Router) {
	r.Get("/careers", c.List)
}

func (c *careerController) List(ctx *fiber.Ctx) error {
	res, err := c.careerService.ListOpenJobs(ctx.UserContext())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Open positions", res))
}
