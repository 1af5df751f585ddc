package helper

import (
	"github.com/gofiber/fiber/v2"
)

// Success Response default 200
func Success(c *fiber.Ctx, message string, data interface{}) error {
	return SuccessWithCode(c, fiber.StatusOK, message, data)
}

func SuccessWithCode(c *fiber.Ctx, code int, message string, data interface{}) error {
	return c.Status(code).JSON(fiber.Map{
		"code":    code,
		"status":  "success",
		"message": message,
		"data":    data,
	})
}

// SuccessWithMeta untuk response list berpaginasi.
func SuccessWithMeta(c *fiber.Ctx, message string, data interface{}, meta Meta) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"code":    fiber.StatusOK,
		"status":  "success",
		"message": message,
		"data":    data,
		"meta":    meta,
	})
}

func Error(c *fiber.Ctx, code int, message string) error {
	return c.Status(code).JSON(fiber.Map{
		"code":    code,
		"status":  "error",
		"message": message,
	})
}

func ErrorWithDetails(c *fiber.Ctx, code int, message string, errors interface{}) error {
	return c.Status(code).JSON(fiber.Map{
		"code":    code,
		"status":  "error",
		"message": message,
		"errors":  errors,
	})
}

// ValidationError: detail per field jika err berasal dari validator.v10.
func ValidationError(c *fiber.Ctx, err error, message string) error {
	ve, ok := asValidationErrors(err)
	if !ok {
		return ErrorWithDetails(c, fiber.StatusBadRequest, message, err.Error())
	}

	errorsMap := make(map[string]string, len(ve))
	for _, fieldErr := range ve {
		errorsMap[fieldErr.Namespace()] = fieldErr.Tag()
	}
	return ErrorWithDetails(c, fiber.StatusBadRequest, message, errorsMap)
}
