package middleware

import (
  "net/http"
  "strings"
  "github.com/gin-gonic/gin"
  "github.com/google/uuid"
  "github.com/cmpd-nominations/nominations-backend/internal/logger"
  "github.com/cmpd-nominations/nominations-backend/internal/requestdata"
  "github.com/cmpd-nominations/nominations-backend/internal/services"
)

type AuthMiddleware struct {
  log      *logger.Logger
  verifier services.TokenVerifier
}

func NewAuthMiddleware(log *logger.Logger, verifier services.TokenVerifier) *AuthMiddleware {
  middlewareLog := log.With("middleware", "AuthMiddleware")
  return &AuthMiddleware{log: middlewareLog, verifier: verifier}
}

func (am *AuthMiddleware) RequireAuth() gin.HandlerFunc {
  return func(c *gin.Context) {
    tokenString := extractBearerToken(c)
    if tokenString == "" {
      c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing or invalid token"})
      return
    }
    ctx, err := am.verifier.SetContextFromToken(c.Request.Context(), tokenString)
    if err != nil {
      c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
      return
    }
    c.Request = c.Request.WithContext(ctx)
    rd := requestdata.GetRequestData(ctx)
    if rd == nil || rd.UserID == uuid.Nil {
      c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
      return
    }
    c.Next()
  }
}

func extractBearerToken(c *gin.Context) string {
  authHeader := c.GetHeader("Authorization")
  if len(authHeader) > 7 && strings.EqualFold(authHeader[:7], "Bearer ") {
    return authHeader[7:]
  }
  if qToken := c.Query("token"); qToken != "" {
    return qToken
  }
  return ""
}
