package middleware

import (
	"strings"

	"ratecard/constants"
	"ratecard/errors"
	"ratecard/response"
	"ratecard/services"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware xử lý authentication, roles rỗng nghĩa là mọi role đều được
func AuthMiddleware(secret string, roles ...int) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		userID, userRole, err := services.GetUserIDFromToken(tokenString, secret)
		if err != nil {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		// Kiểm tra role nếu có yêu cầu
		if len(roles) > 0 {
			hasRole := false
			for _, role := range roles {
				if role == userRole {
					hasRole = true
					break
				}
			}
			if !hasRole {
				response.Forbidden(c)
				c.Abort()
				return
			}
		}

		c.Set(constants.CtxUserID, userID)
		c.Set(constants.CtxUserRole, userRole)
		c.Next()
	}
}

// ErrorHandler trả response cho lỗi được controller đẩy vào bằng c.Error
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 && !c.Writer.Written() {
			err := c.Errors.Last().Err
			if errors.IsAppError(err) {
				response.FromError(c, err)
				return
			}
			response.ServerError(c)
		}
	}
}
