package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alexanderramin/studyplan/internal/app"
)

const MsgInternal = "internal error"

type APIError struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

func RespondError(c *gin.Context, status int, code string, err error) {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	RespondMessage(c, status, code, msg)
}

func RespondMessage(c *gin.Context, status int, code, message string) {
	c.JSON(status, ErrorEnvelope{
		Error: APIError{
			Message: message,
			Code:    code,
		},
	})
}

// RespondAppError renders a use-case error. Coded errors keep their message;
// anything internal is replaced by internalMsg.
func RespondAppError(c *gin.Context, err error, internalMsg string) {
	code := app.CodeOf(err)
	status := StatusFor(code)
	if status == http.StatusInternalServerError {
		RespondMessage(c, status, string(app.ErrInternal), internalMsg)
		return
	}
	var pe *app.PlanError
	errors.As(err, &pe)
	RespondMessage(c, status, string(code), pe.Message)
}

func StatusFor(code app.ErrorCode) int {
	switch code {
	case app.ErrInvalidInput:
		return http.StatusBadRequest
	case app.ErrNotFound:
		return http.StatusNotFound
	case app.ErrConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func RespondOK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}

func RespondCreated(c *gin.Context, payload any) {
	c.JSON(http.StatusCreated, payload)
}
