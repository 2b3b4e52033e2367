package middleware

import (
	"errors"

	"student-portal/src/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const internalServerError = "Internal Server Error"

// ErrorHandler แปลง error ที่ handler คืนมาเป็น JSON {"error": ...}
//
// fiber.Error ต่ำกว่า 500 ส่งข้อความของมันกลับไป ส่วน 5xx ตอบข้อความคงที่
// และเก็บรายละเอียดไว้ใน log เท่านั้น
func ErrorHandler(log *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		var fe *fiber.Error
		if errors.As(err, &fe) {
			code = fe.Code
		}

		if code < fiber.StatusInternalServerError {
			return utils.HandleError(c, code, err.Error())
		}

		log.Error("request failed",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.String("requestId", GetRequestID(c)),
			zap.Error(err),
		)
		return utils.HandleError(c, code, internalServerError)
	}
}
