package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Logger logs every request with zap.
func Logger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()

		fields := []zap.Field{
			zap.Int("status", status),
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.String("query", query),
			zap.String("ip", c.ClientIP()),
			zap.Duration("latency", latency),
			zap.String("request_id", c.GetString("request_id")),
		}

		if np, exists := c.Get("user_np"); exists {
			fields = append(fields, zap.String("user_np", np.(string)))
		}

		if status >= 500 {
			logger.Error("Server error", fields...)
		} else if status >= 400 {
			logger.Warn("Client error", fields...)
		} else {
			logger.Info("Request", fields...)
		}
	}
}

// CORS allows cross-origin requests from the SPA frontend.
func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With, X-Request-ID")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// RequestID tags each request for log correlation.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.Request.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set("request_id", requestID)
		c.Writer.Header().Set("X-Request-ID", requestID)
		c.Next()
	}
}

// JWTClaims carries the request identity.
type JWTClaims struct {
	UserID uint   `json:"uid"`
	NP     string `json:"np"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// TokenStore answers whether a token was revoked by logout. A nil
// store means tokens stay valid until expiry.
type TokenStore interface {
	IsRevoked(ctx context.Context, jti string) bool
}

// ActiveChecker reports whether the account behind a token is still
// active. An inactive account is treated as unauthenticated regardless
// of token validity.
type ActiveChecker interface {
	IsActive(ctx context.Context, userID uint) bool
}

// JWTAuth authenticates the bearer token and stores the identity in
// the request context.
func JWTAuth(secret string, store TokenStore, users ActiveChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		var tokenString string

		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) == 2 && parts[0] == "Bearer" {
				tokenString = parts[1]
			}
		}

		if tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Authorization is required",
			})
			c.Abort()
			return
		}

		token, err := jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		claims, ok := token.Claims.(*JWTClaims)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Invalid token claims",
			})
			c.Abort()
			return
		}

		if store != nil && store.IsRevoked(c.Request.Context(), claims.ID) {
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Token has been revoked",
			})
			c.Abort()
			return
		}

		if users != nil && !users.IsActive(c.Request.Context(), claims.UserID) {
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Account is inactive",
			})
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("user_np", claims.NP)
		c.Set("user_name", claims.Name)
		c.Set("user_role", claims.Role)
		c.Set("token_jti", claims.ID)
		c.Next()
	}
}

// AdminOnly gates mutation endpoints to administrators. Must run after
// JWTAuth. The response is a uniform forbidden, no detail leaks.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString("user_role") != "admin" {
			c.JSON(http.StatusForbidden, gin.H{
				"success": false,
				"message": "Forbidden",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
