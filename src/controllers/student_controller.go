package controllers

import (
	"errors"

	"student-portal/src/models"
	"student-portal/src/services/students"
	"student-portal/src/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const studentNotFound = "Student not found"

type StudentController struct {
	students *students.Service
	log      *zap.Logger
}

func NewStudentController(svc *students.Service, log *zap.Logger) *StudentController {
	return &StudentController{students: svc, log: log}
}

// GetStudents godoc
// @Summary Get students
// @Description Get every student in store order
// @Tags students
// @Produce json
// @Success 200 {array} models.Student
// @Failure 500 {object} models.ErrorResponse
// @Router /students [get]
func (sc *StudentController) GetStudents(c *fiber.Ctx) error {
	result, err := sc.students.ListStudents(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(result)
}

// GetStudentByID godoc
// @Summary Get student by id
// @Description Get a student by its id
// @Tags students
// @Produce json
// @Param id path string true "Student ID"
// @Success 200 {object} models.Student
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /students/{id} [get]
func (sc *StudentController) GetStudentByID(c *fiber.Ctx) error {
	student, err := sc.students.GetStudentByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return sc.handleError(c, err)
	}
	return c.JSON(student)
}

// CreateStudent godoc
// @Summary Create student
// @Description Create a student from any subset of fields
// @Tags students
// @Accept json
// @Produce json
// @Param student body models.StudentInput true "Student data"
// @Success 201 {object} models.Student
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /students [post]
func (sc *StudentController) CreateStudent(c *fiber.Ctx) error {
	var req models.StudentInput
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input")
	}

	student, err := sc.students.CreateStudent(c.UserContext(), req)
	if err != nil {
		return err
	}

	sc.log.Debug("student created", zap.String("id", student.ID.Hex()))
	return c.Status(fiber.StatusCreated).JSON(student)
}

// UpdateStudent godoc
// @Summary Update student
// @Description Overwrite the fields present in the body; null clears a field
// @Tags students
// @Accept json
// @Produce json
// @Param id path string true "Student ID"
// @Param student body models.StudentInput true "Fields to change"
// @Success 200 {object} models.Student
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /students/{id} [put]
func (sc *StudentController) UpdateStudent(c *fiber.Ctx) error {
	var req models.StudentInput
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input")
	}

	student, err := sc.students.UpdateStudent(c.UserContext(), c.Params("id"), req)
	if err != nil {
		return sc.handleError(c, err)
	}
	return c.JSON(student)
}

// DeleteStudent godoc
// @Summary Delete student
// @Description Delete a student by ID
// @Tags students
// @Produce json
// @Param id path string true "Student ID"
// @Success 200 {object} models.MessageResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /students/{id} [delete]
func (sc *StudentController) DeleteStudent(c *fiber.Ctx) error {
	if err := sc.students.DeleteStudent(c.UserContext(), c.Params("id")); err != nil {
		return sc.handleError(c, err)
	}

	return c.JSON(models.MessageResponse{
		Message: "Student deleted successfully",
	})
}

// SearchStudents godoc
// @Summary Search students
// @Description Case-insensitive substring match on firstName, lastName, email, studentId
// @Tags students
// @Produce json
// @Param q query string false "Search text"
// @Success 200 {array} models.Student
// @Failure 500 {object} models.ErrorResponse
// @Router /students/search [get]
func (sc *StudentController) SearchStudents(c *fiber.Ctx) error {
	result, err := sc.students.SearchStudents(c.UserContext(), c.Query("q"))
	if err != nil {
		return err
	}
	return c.JSON(result)
}

func (sc *StudentController) handleError(c *fiber.Ctx, err error) error {
	if errors.Is(err, students.ErrStudentNotFound) {
		return utils.HandleError(c, fiber.StatusNotFound, studentNotFound)
	}
	return err
}
