package services

import (
  "context"
  "fmt"
  "github.com/golang-jwt/jwt/v5"
  "github.com/google/uuid"
  "github.com/cmpd-nominations/nominations-backend/internal/logger"
  "github.com/cmpd-nominations/nominations-backend/internal/requestdata"
)

// TokenVerifier resolves a bearer token into the caller identity. The token
// itself is issued by the external identity provider; this service only
// verifies and unpacks it.
type TokenVerifier interface {
  SetContextFromToken(ctx context.Context, tokenString string) (context.Context, error)
}

type jwtVerifier struct {
  log          *logger.Logger
  jwtSecretKey string
}

func NewJWTVerifier(log *logger.Logger, jwtSecretKey string) TokenVerifier {
  serviceLog := log.With("service", "JWTVerifier")
  return &jwtVerifier{log: serviceLog, jwtSecretKey: jwtSecretKey}
}

func (jv *jwtVerifier) SetContextFromToken(ctx context.Context, tokenString string) (context.Context, error) {
  token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
    if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
      return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
    }
    return []byte(jv.jwtSecretKey), nil
  })
  if err != nil || !token.Valid {
    return ctx, fmt.Errorf("invalid token")
  }

  claims, ok := token.Claims.(jwt.MapClaims)
  if !ok {
    return ctx, fmt.Errorf("invalid token claims")
  }

  sub, _ := claims["sub"].(string)
  userID, err := uuid.Parse(sub)
  if err != nil {
    return ctx, fmt.Errorf("invalid token subject")
  }
  role, _ := claims["role"].(string)

  rd := &requestdata.RequestData{
    TokenString: tokenString,
    UserID:      userID,
    Role:        role,
  }
  return requestdata.WithRequestData(ctx, rd), nil
}
