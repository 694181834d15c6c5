package controller

import (
	"buildchem-be/internal/dto"
	"buildchem-be/internal/pkg/serverutils"
	"buildchem-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IContactController interface {
	RegisterRoutes(r fiber.Router)
	SubmitInquiry(ctx *fiber.Ctx) error
	SubmitApplication(ctx *fiber.Ctx) error
}

type contactController struct {
	contactService service.IContactService
}

func NewContactController(contactService service.IContactService) IContactController {
	return &contactController{
		contactService: contactService,
	}
}

func (c *contactController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/contact")
	h.Post("", c.SubmitInquiry)
	h.Post("apply", c.SubmitApplication)
}

func (c *contactController) SubmitInquiry(ctx *fiber.Ctx) error {
	var req dto.ContactInquiryRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.contactService.SubmitInquiry(ctx.UserContext(), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Message sent", res))
}

func (c *contactController) SubmitApplication(ctx *fiber.Ctx) error {
	var req dto.JobApplicationRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.contactService.SubmitApplication(ctx.UserContext(), &req); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Application submitted", nil))
}
