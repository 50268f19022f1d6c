package handlers

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/alexanderramin/studyplan/internal/app"
	"github.com/alexanderramin/studyplan/internal/http/middleware"
	"github.com/alexanderramin/studyplan/internal/http/response"
)

const MsgInvalidJSON = "Invalid JSON in request body"

// bindJSON decodes the request body into v. An empty body leaves v as is.
func bindJSON(c *gin.Context, v any) error {
	if err := c.ShouldBindJSON(v); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func respondInvalid(c *gin.Context, message string) {
	response.RespondMessage(c, http.StatusBadRequest, string(app.ErrInvalidInput), message)
}

// requireUser returns the authenticated user id or writes a 401.
func requireUser(c *gin.Context) (string, bool) {
	userID := middleware.UserID(c.Request.Context())
	if userID == "" {
		response.RespondMessage(c, http.StatusUnauthorized, "unauthorized", "missing or invalid token")
		return "", false
	}
	return userID, true
}

// queryBool parses an optional boolean query parameter.
func queryBool(c *gin.Context, name string) (bool, error) {
	raw := c.Query(name)
	if raw == "" {
		return false, nil
	}
	return strconv.ParseBool(raw)
}
