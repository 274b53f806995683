package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"salesdesk/api"
	"salesdesk/models"
	"salesdesk/store"
	"salesdesk/utils"
)

type AuthController struct {
	Sessions *store.SessionStore
	API      *api.Client
	Logger   *log.Logger
}

func NewAuthController(sessions *store.SessionStore, client *api.Client, logger *log.Logger) *AuthController {
	return &AuthController{
		Sessions: sessions,
		API:      client,
		Logger:   logger,
	}
}

// Login signs the operator in and caches the session.
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var creds models.Credentials
	if err := c.BodyParser(&creds); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if err := utils.ValidateStruct(creds); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", err)
	}

	if err := ac.Sessions.Login(creds); err != nil {
		return storeError(c, err)
	}

	ac.Logger.Printf("operator signed in: %s", creds.Email)
	user, _ := ac.Sessions.CurrentUser()
	return c.JSON(utils.SuccessResponse(user))
}

// Logout revokes the refresh token and clears the cached session.
func (ac *AuthController) Logout(c *fiber.Ctx) error {
	ac.Sessions.Logout()
	return c.JSON(utils.SuccessResponse(fiber.Map{"signedOut": true}))
}

// Refresh exchanges the refresh token for a fresh bearer pair.
func (ac *AuthController) Refresh(c *fiber.Ctx) error {
	if err := ac.Sessions.Refresh(); err != nil {
		return storeError(c, err)
	}
	user, _ := ac.Sessions.CurrentUser()
	return c.JSON(utils.SuccessResponse(user))
}

// Me returns the signed-in operator.
func (ac *AuthController) Me(c *fiber.Ctx) error {
	user, ok := ac.Sessions.CurrentUser()
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Sign in required", nil)
	}
	return c.JSON(utils.SuccessResponse(user))
}

// RegisterDevice forwards a push delivery token to the backend.
func (ac *AuthController) RegisterDevice(c *fiber.Ctx) error {
	var reg models.DeviceRegistration
	if err := c.BodyParser(&reg); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if err := utils.ValidateStruct(reg); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", err)
	}

	if err := ac.API.RegisterDevice(companyID(c), reg); err != nil {
		return storeError(c, err)
	}
	return c.JSON(utils.SuccessResponse(fiber.Map{"registered": true}))
}
