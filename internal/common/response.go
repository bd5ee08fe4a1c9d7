package common

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// APIResponse is the uniform envelope returned by every handler. The original
// routes disagreed on which fields they carried; this shape unifies them.
type APIResponse struct {
	Success    bool        `json:"success"`
	Data       interface{} `json:"data,omitempty"`
	Message    string      `json:"message,omitempty"`
	Error      string      `json:"error,omitempty"`
	Details    string      `json:"details,omitempty"`
	TotalCount *int        `json:"totalCount,omitempty"`
	Timestamp  string      `json:"timestamp"`
}

func timestamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// SendSuccess sends a 200 envelope with an optional payload and message.
func SendSuccess(c echo.Context, data interface{}, message string) error {
	return c.JSON(http.StatusOK, APIResponse{
		Success:   true,
		Data:      data,
		Message:   message,
		Timestamp: timestamp(),
	})
}

// SendSuccessWithCount sends a 200 envelope carrying a totalCount.
func SendSuccessWithCount(c echo.Context, data interface{}, message string, totalCount int) error {
	return c.JSON(http.StatusOK, APIResponse{
		Success:    true,
		Data:       data,
		Message:    message,
		TotalCount: &totalCount,
		Timestamp:  timestamp(),
	})
}

// SendError sends a failure envelope with an error code and localized message.
func SendError(c echo.Context, status int, code, message string) error {
	return c.JSON(status, APIResponse{
		Success:   false,
		Error:     code,
		Message:   message,
		Timestamp: timestamp(),
	})
}

// SendErrorDetails sends a failure envelope with a nested detail string.
func SendErrorDetails(c echo.Context, status int, code, message, details string) error {
	return c.JSON(status, APIResponse{
		Success:   false,
		Error:     code,
		Message:   message,
		Details:   details,
		Timestamp: timestamp(),
	})
}

func SendUnauthorized(c echo.Context) error {
	return SendError(c, http.StatusUnauthorized, "UNAUTHORIZED", "Não autorizado")
}

func SendForbidden(c echo.Context) error {
	return SendError(c, http.StatusForbidden, "FORBIDDEN", "Acesso negado a este cliente")
}

func SendNotFound(c echo.Context, message string) error {
	return SendError(c, http.StatusNotFound, "NOT_FOUND", message)
}

func SendInternalError(c echo.Context) error {
	return SendError(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Erro interno do servidor")
}
