package handler

import "github.com/labstack/echo/v4"

// successResponse is the envelope for all 2xx responses:
// {"success": true, "data": ...} or {"success": true, "message": "..."}.
// The failure counterpart lives in the central HTTP error handler.
type successResponse struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

func respondData(c echo.Context, status int, data any) error {
	return c.JSON(status, successResponse{Success: true, Data: data})
}

func respondMessage(c echo.Context, status int, msg string) error {
	return c.JSON(status, successResponse{Success: true, Message: msg})
}
