package routes

import (
	"student-portal/src/controllers"
	"student-portal/src/middleware"
	"student-portal/src/services/students"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

type AppOptions struct {
	AllowedOrigins string
	Students       *students.Service
	Logger         *zap.Logger
}

// NewApp สร้าง fiber app พร้อม middleware และ routes ทั้งหมด
func NewApp(opts AppOptions) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "student-portal",
		DisableStartupMessage: true,
		ErrorHandler:          middleware.ErrorHandler(opts.Logger),
	})

	app.Use(middleware.RequestID())
	app.Use(middleware.RequestLogger(opts.Logger))
	app.Use(recover.New())

	origins := opts.AllowedOrigins
	if origins == "" {
		origins = "*"
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, X-Request-ID",
		AllowCredentials: false, // ต้องเป็น false ถ้าใช้ "*"
	}))

	// เปิดใช้งาน Swagger ที่ URL /swagger
	app.Get("/swagger/*", swagger.HandlerDefault)

	InitRoutes(app, controllers.NewStudentController(opts.Students, opts.Logger))
	return app
}
