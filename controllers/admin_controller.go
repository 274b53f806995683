package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"salesdesk/models"
	"salesdesk/store"
	"salesdesk/utils"
)

// AdminController serves the user management and company settings
// screens. Every route behind it requires the admin role.
type AdminController struct {
	Users   *store.UserStore
	Company *store.CompanyStore
	Logger  *log.Logger
}

func NewAdminController(users *store.UserStore, company *store.CompanyStore, logger *log.Logger) *AdminController {
	return &AdminController{
		Users:   users,
		Company: company,
		Logger:  logger,
	}
}

func (ac *AdminController) ListUsers(c *fiber.Ctx) error {
	page, limit := pageQuery(c)
	filter := models.UserFilter{
		Page:   page,
		Limit:  limit,
		Search: c.Query("search"),
		Role:   c.Query("role"),
	}
	if err := ac.Users.FetchUsers(companyID(c), filter); err != nil {
		return storeError(c, err)
	}
	return c.JSON(utils.SuccessResponse(ac.Users.Snapshot()))
}

func (ac *AdminController) GetUser(c *fiber.Ctx) error {
	if err := ac.Users.FetchUser(companyID(c), c.Params("id")); err != nil {
		return storeError(c, err)
	}
	snap := ac.Users.Snapshot()
	return c.JSON(utils.SuccessResponse(snap.CurrentUser))
}

func (ac *AdminController) CreateUser(c *fiber.Ctx) error {
	var input models.UserInput
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if err := utils.ValidateStruct(input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", err)
	}

	if err := ac.Users.AddUser(companyID(c), input); err != nil {
		return storeError(c, err)
	}
	ac.Logger.Printf("user invited: %s (%s)", input.Email, input.Role)
	return c.Status(fiber.StatusCreated).JSON(utils.SuccessResponse(ac.Users.Snapshot()))
}

func (ac *AdminController) UpdateUser(c *fiber.Ctx) error {
	var input models.UserInput
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if err := utils.ValidateStruct(input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", err)
	}

	if err := ac.Users.UpdateUser(companyID(c), c.Params("id"), input); err != nil {
		return storeError(c, err)
	}
	return c.JSON(utils.SuccessResponse(ac.Users.Snapshot()))
}

// AssignManager links a member to a manager for team reporting.
func (ac *AdminController) AssignManager(c *fiber.Ctx) error {
	var input struct {
		ManagerID string `json:"managerId" validate:"required"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if err := utils.ValidateStruct(input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", err)
	}

	if err := ac.Users.AssignManager(companyID(c), c.Params("id"), input.ManagerID); err != nil {
		return storeError(c, err)
	}
	return c.JSON(utils.SuccessResponse(ac.Users.Snapshot()))
}

func (ac *AdminController) DeactivateUser(c *fiber.Ctx) error {
	if err := ac.Users.DeactivateUser(companyID(c), c.Params("id")); err != nil {
		return storeError(c, err)
	}
	return c.JSON(utils.SuccessResponse(ac.Users.Snapshot()))
}

func (ac *AdminController) DeleteUser(c *fiber.Ctx) error {
	if err := ac.Users.DeleteUser(companyID(c), c.Params("id")); err != nil {
		return storeError(c, err)
	}
	return c.JSON(utils.SuccessResponse(ac.Users.Snapshot()))
}

func (ac *AdminController) GetCompany(c *fiber.Ctx) error {
	if err := ac.Company.FetchCompany(companyID(c)); err != nil {
		return storeError(c, err)
	}
	return c.JSON(utils.SuccessResponse(ac.Company.Snapshot()))
}

func (ac *AdminController) UpdateCompany(c *fiber.Ctx) error {
	var input models.CompanyInput
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if err := utils.ValidateStruct(input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", err)
	}

	if err := ac.Company.UpdateCompany(companyID(c), input); err != nil {
		return storeError(c, err)
	}
	return c.JSON(utils.SuccessResponse(ac.Company.Snapshot()))
}
