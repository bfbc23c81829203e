package presenters

import "github.com/gofiber/fiber/v2"

type Response struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Count   *int   `json:"count,omitempty"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

func SuccessResponse(c *fiber.Ctx, data any, status int, message string) error {
	return c.Status(status).JSON(Response{
		Success: true,
		Data:    data,
		Message: message,
	})
}

// SuccessListResponse carries the row count alongside the data, which list
// endpoints expose for the dashboard counters.
func SuccessListResponse(c *fiber.Ctx, data any, count int, status int, message string) error {
	return c.Status(status).JSON(Response{
		Success: true,
		Data:    data,
		Count:   &count,
		Message: message,
	})
}

func ErrorResponse(c *fiber.Ctx, status int, message string, err error) error {
	response := Response{
		Success: false,
		Message: message,
	}
	if err != nil {
		response.Error = err.Error()
	}
	return c.Status(status).JSON(response)
}
