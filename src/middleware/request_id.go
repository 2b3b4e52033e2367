package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
)

// RequestIDKey key ใน c.Locals ที่เก็บ request id
const RequestIDKey = "requestid"

// RequestID ใช้ X-Request-ID ที่ client ส่งมา หรือสร้าง uuid ใหม่
func RequestID() fiber.Handler {
	return requestid.New(requestid.Config{
		Header:     fiber.HeaderXRequestID,
		Generator:  uuid.NewString,
		ContextKey: RequestIDKey,
	})
}

// GetRequestID อ่าน request id ของ request ปัจจุบัน
func GetRequestID(c *fiber.Ctx) string {
	id, _ := c.Locals(RequestIDKey).(string)
	return id
}
