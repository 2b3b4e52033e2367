package routes

import (
	"student-portal/src/controllers"

	"github.com/gofiber/fiber/v2"
)

// studentRoutes กำหนดเส้นทางสำหรับ Student API
func studentRoutes(router fiber.Router, sc *controllers.StudentController) {
	studentGroup := router.Group("/students")
	studentGroup.Get("/", sc.GetStudents)
	studentGroup.Post("/", sc.CreateStudent)
	studentGroup.Get("/search", sc.SearchStudents) // ต้องอยู่ก่อน /:id
	studentGroup.Get("/:id", sc.GetStudentByID)
	studentGroup.Put("/:id", sc.UpdateStudent)
	studentGroup.Delete("/:id", sc.DeleteStudent)
}
