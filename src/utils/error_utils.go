// error_utils.go
package utils

import (
	"student-portal/src/models"

	"github.com/gofiber/fiber/v2"
)

// HandleError ตอบกลับ error ในรูปแบบ {"error": message}
func HandleError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(models.ErrorResponse{
		Error: message,
	})
}
