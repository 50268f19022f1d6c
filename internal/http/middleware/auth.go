package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/alexanderramin/studyplan/internal/http/response"
	"github.com/alexanderramin/studyplan/internal/platform/logger"
)

// AuthMiddleware accepts HS256 bearer tokens whose subject is the user id.
type AuthMiddleware struct {
	log    *logger.Logger
	secret []byte
}

func NewAuthMiddleware(log *logger.Logger, secret string) *AuthMiddleware {
	return &AuthMiddleware{log: log.With("middleware", "AuthMiddleware"), secret: []byte(secret)}
}

func (am *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := extractBearer(c)
		if tokenString == "" {
			response.RespondMessage(c, http.StatusUnauthorized, "unauthorized", "missing or invalid token")
			c.Abort()
			return
		}
		userID, err := am.subject(tokenString)
		if err != nil {
			am.log.Debug("rejected token", "error", err)
			response.RespondMessage(c, http.StatusUnauthorized, "unauthorized", "missing or invalid token")
			c.Abort()
			return
		}

		ctx := c.Request.Context()
		rd := GetRequestData(ctx)
		if rd == nil {
			rd = &RequestData{}
			ctx = WithRequestData(ctx, rd)
		}
		rd.UserID = userID
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

func (am *AuthMiddleware) subject(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return am.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", fmt.Errorf("parsing token: %w", err)
	}
	if !parsed.Valid {
		return "", fmt.Errorf("invalid or expired token")
	}
	sub := strings.TrimSpace(claims.Subject)
	if sub == "" {
		return "", fmt.Errorf("token has no subject")
	}
	return sub, nil
}

func extractBearer(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if len(authHeader) > 7 && strings.EqualFold(authHeader[:7], "Bearer ") {
		return strings.TrimSpace(authHeader[7:])
	}
	return ""
}
