package routes

import (
	"student-portal/src/controllers"

	"github.com/gofiber/fiber/v2"
)

// InitRoutes ผูก route ทั้งหมดของ API ไว้ใต้ /api
func InitRoutes(app *fiber.App, students *controllers.StudentController) {
	api := app.Group("/api")
	api.Get("/health", controllers.HealthCheck)
	studentRoutes(api, students)

	// Route เช็คว่า API ทำงานอยู่
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("API is running...")
	})
}
