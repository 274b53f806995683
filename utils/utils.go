package utils

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/badoux/checkmail"
	"github.com/gofiber/fiber/v2"
)

// GenerateRateLimitKey creates a unique key for rate limiting
func GenerateRateLimitKey(companyID, path string) string {
	return fmt.Sprintf("rl:%s:%s", companyID, path)
}

// ValidateEmailAddress checks the syntactic shape of an address before
// it goes into a lead or user payload.
func ValidateEmailAddress(email string) error {
	return checkmail.ValidateFormat(strings.TrimSpace(email))
}

// Pointer returns a pointer to the given value
func Pointer[T any](v T) *T {
	return &v
}

// FormatAmount renders a cent amount as a display string, e.g. 2900
// USD -> "$29.00". Unknown currencies fall back to the ISO code.
func FormatAmount(cents int64, currency string) string {
	symbol := currency
	switch strings.ToUpper(currency) {
	case "USD", "":
		symbol = "$"
	case "EUR":
		symbol = "€"
	case "GBP":
		symbol = "£"
	default:
		symbol = strings.ToUpper(currency) + " "
	}
	return fmt.Sprintf("%s%.2f", symbol, float64(cents)/100)
}

// ErrorResponse creates a standardized error response
func ErrorResponse(c *fiber.Ctx, status int, message string, err error) error {
	response := fiber.Map{
		"success": false,
		"error":   message,
	}
	if err != nil {
		response["details"] = err.Error()
	}
	return c.Status(status).JSON(response)
}

// SuccessResponse creates a standardized success response
func SuccessResponse(data interface{}) fiber.Map {
	return fiber.Map{
		"success": true,
		"data":    data,
	}
}

// ParseInt safely parses a string to int, returning 0 on garbage.
func ParseInt(s string) int {
	i, _ := strconv.Atoi(s)
	return i
}
