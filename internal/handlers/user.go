package handlers

import (
  "net/http"
  "github.com/gin-gonic/gin"
  "github.com/google/uuid"
  "github.com/cmpd-nominations/nominations-backend/internal/logger"
  "github.com/cmpd-nominations/nominations-backend/internal/services"
)

type UserHandler struct {
  log    *logger.Logger
  users  services.UserService
  tables services.TableQueryService
}

func NewUserHandler(log *logger.Logger, users services.UserService, tables services.TableQueryService) *UserHandler {
  return &UserHandler{
    log:    log.With("handler", "UserHandler"),
    users:  users,
    tables: tables,
  }
}

type userListQuery struct {
  Search        string `form:"search"`
  AffiliationID string `form:"affiliation_id"`
  Page          int    `form:"page"`
  PageSize      int    `form:"pageSize"`
}

func (uh *UserHandler) List(c *gin.Context) {
  uh.list(c, false)
}

func (uh *UserHandler) ListPending(c *gin.Context) {
  uh.list(c, true)
}

func (uh *UserHandler) list(c *gin.Context, pendingOnly bool) {
  var query userListQuery
  if err := c.ShouldBindQuery(&query); err != nil {
    RespondError(c, http.StatusBadRequest, "bad_query", err)
    return
  }
  affiliationID := uuid.Nil
  if query.AffiliationID != "" {
    parsed, err := uuid.Parse(query.AffiliationID)
    if err != nil {
      RespondError(c, http.StatusBadRequest, "bad_query", err)
      return
    }
    affiliationID = parsed
  }
  page, err := uh.tables.ListUsers(c.Request.Context(), query.Search, affiliationID, pendingOnly, query.Page, query.PageSize)
  if err != nil {
    respondServiceError(c, err)
    return
  }
  RespondOK(c, page)
}

func (uh *UserHandler) Get(c *gin.Context) {
  id, err := uuid.Parse(c.Param("id"))
  if err != nil {
    RespondError(c, http.StatusBadRequest, "bad_id", err)
    return
  }
  user, err := uh.users.GetUser(c.Request.Context(), id)
  if err != nil {
    respondServiceError(c, err)
    return
  }
  RespondOK(c, gin.H{"data": user})
}

func (uh *UserHandler) Create(c *gin.Context) {
  var body struct {
    User services.UserInput `json:"user"`
  }
  if err := c.ShouldBindJSON(&body); err != nil {
    RespondError(c, http.StatusBadRequest, "bad_payload", err)
    return
  }
  id, err := uh.users.CreateUser(c.Request.Context(), body.User)
  if err != nil {
    respondServiceError(c, err)
    return
  }
  c.JSON(http.StatusCreated, gin.H{"data": gin.H{"user": gin.H{"id": id}}})
}

func (uh *UserHandler) Update(c *gin.Context) {
  id, err := uuid.Parse(c.Param("id"))
  if err != nil {
    RespondError(c, http.StatusBadRequest, "bad_id", err)
    return
  }
  var body struct {
    User services.UserInput `json:"user"`
  }
  if err := c.ShouldBindJSON(&body); err != nil {
    RespondError(c, http.StatusBadRequest, "bad_payload", err)
    return
  }
  if err := uh.users.UpdateUser(c.Request.Context(), id, body.User); err != nil {
    respondServiceError(c, err)
    return
  }
  RespondOK(c, gin.H{"data": true})
}
