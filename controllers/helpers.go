package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"salesdesk/api"
	"salesdesk/utils"
)

// companyID pulls the signed-in operator's company out of the request
// context. Guarded routes always have it set.
func companyID(c *fiber.Ctx) string {
	id, _ := c.Locals("companyID").(string)
	return id
}

// storeError maps a store failure onto the right HTTP status: backend
// envelope failures keep their status, everything else is a 502 since
// the backend could not be reached.
func storeError(c *fiber.Ctx, err error) error {
	var apiErr *api.APIError
	if errors.As(err, &apiErr) {
		return utils.ErrorResponse(c, apiErr.StatusCode, apiErr.Message, nil)
	}
	return utils.ErrorResponse(c, fiber.StatusBadGateway, "Upstream request failed", err)
}

// pageQuery reads the standard page/limit pair off the query string.
func pageQuery(c *fiber.Ctx) (int, int) {
	return utils.ParseInt(c.Query("page")), utils.ParseInt(c.Query("limit"))
}
