package handlers

import (
  "errors"
  "net/http"
  "github.com/gin-gonic/gin"
  "github.com/cmpd-nominations/nominations-backend/internal/repos"
  "github.com/cmpd-nominations/nominations-backend/internal/services"
)

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
  c.JSON(status, ErrorEnvelope{
    Error: APIError{
      Message: msg,
      Code:    code,
    },
  })
}

func RespondOK(c *gin.Context, payload any) {
  c.JSON(http.StatusOK, payload)
}

// respondServiceError maps known service errors onto HTTP statuses. Anything
// unrecognized is a generic 500; the cause was already logged at the service
// boundary and is not leaked to the caller.
func respondServiceError(c *gin.Context, err error) {
  switch {
  case errors.Is(err, repos.ErrNotFound):
    RespondError(c, http.StatusNotFound, "not_found", err)
  case errors.Is(err, services.ErrUnauthorized):
    RespondError(c, http.StatusForbidden, "forbidden", err)
  case errors.Is(err, services.ErrLimitReached):
    RespondError(c, http.StatusUnprocessableEntity, "limit_reached", err)
  case errors.Is(err, services.ErrEmailTaken):
    RespondError(c, http.StatusBadRequest, "email_taken", err)
  default:
    RespondError(c, http.StatusInternalServerError, "internal", errors.New("internal error"))
  }
}
