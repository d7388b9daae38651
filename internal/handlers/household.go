package handlers

import (
  "net/http"
  "github.com/gin-gonic/gin"
  "github.com/google/uuid"
  "github.com/cmpd-nominations/nominations-backend/internal/logger"
  "github.com/cmpd-nominations/nominations-backend/internal/services"
)

type HouseholdHandler struct {
  log        *logger.Logger
  households services.HouseholdService
  tables     services.TableQueryService
  uploads    services.UploadService
}

func NewHouseholdHandler(log *logger.Logger, households services.HouseholdService, tables services.TableQueryService, uploads services.UploadService) *HouseholdHandler {
  return &HouseholdHandler{
    log:        log.With("handler", "HouseholdHandler"),
    households: households,
    tables:     tables,
    uploads:    uploads,
  }
}

func (hh *HouseholdHandler) List(c *gin.Context) {
  var query struct {
    Search   string `form:"search"`
    Page     int    `form:"page"`
    PageSize int    `form:"pageSize"`
  }
  if err := c.ShouldBindQuery(&query); err != nil {
    RespondError(c, http.StatusBadRequest, "bad_query", err)
    return
  }
  page, err := hh.tables.ListHouseholds(c.Request.Context(), query.Search, query.Page, query.PageSize)
  if err != nil {
    respondServiceError(c, err)
    return
  }
  RespondOK(c, page)
}

func (hh *HouseholdHandler) Get(c *gin.Context) {
  id, err := uuid.Parse(c.Param("id"))
  if err != nil {
    RespondError(c, http.StatusBadRequest, "bad_id", err)
    return
  }
  household, err := hh.households.GetHousehold(c.Request.Context(), id)
  if err != nil {
    respondServiceError(c, err)
    return
  }
  RespondOK(c, household)
}

func (hh *HouseholdHandler) Create(c *gin.Context) {
  var payload services.HouseholdPayload
  if err := c.ShouldBindJSON(&payload); err != nil {
    RespondError(c, http.StatusBadRequest, "bad_payload", err)
    return
  }
  if err := payload.Validate(true); err != nil {
    RespondError(c, http.StatusBadRequest, "validation_failed", err)
    return
  }
  id, err := hh.households.CreateHousehold(c.Request.Context(), payload)
  if err != nil {
    respondServiceError(c, err)
    return
  }
  c.JSON(http.StatusCreated, gin.H{"id": id})
}

func (hh *HouseholdHandler) Update(c *gin.Context) {
  id, err := uuid.Parse(c.Param("id"))
  if err != nil {
    RespondError(c, http.StatusBadRequest, "bad_id", err)
    return
  }
  var payload services.HouseholdPayload
  if err := c.ShouldBindJSON(&payload); err != nil {
    RespondError(c, http.StatusBadRequest, "bad_payload", err)
    return
  }
  if err := payload.Validate(false); err != nil {
    RespondError(c, http.StatusBadRequest, "validation_failed", err)
    return
  }
  if err := hh.households.UpdateHousehold(c.Request.Context(), id, payload); err != nil {
    respondServiceError(c, err)
    return
  }
  RespondOK(c, gin.H{"id": id})
}

func (hh *HouseholdHandler) Submit(c *gin.Context) {
  var body struct {
    ID uuid.UUID `json:"id" binding:"required"`
  }
  if err := c.ShouldBindJSON(&body); err != nil {
    RespondError(c, http.StatusBadRequest, "bad_payload", err)
    return
  }
  if err := hh.households.SubmitNomination(c.Request.Context(), body.ID); err != nil {
    respondServiceError(c, err)
    return
  }
  c.Status(http.StatusOK)
}

func (hh *HouseholdHandler) Upload(c *gin.Context) {
  id, err := uuid.Parse(c.Param("id"))
  if err != nil {
    RespondError(c, http.StatusBadRequest, "bad_id", err)
    return
  }
  // The household must exist and be visible to the caller before anything
  // lands on disk.
  if _, err := hh.households.GetHousehold(c.Request.Context(), id); err != nil {
    respondServiceError(c, err)
    return
  }
  form, err := c.MultipartForm()
  if err != nil {
    RespondError(c, http.StatusBadRequest, "bad_form", err)
    return
  }
  files := form.File["files"]
  if err := hh.uploads.SaveFiles(c.Request.Context(), id, files); err != nil {
    respondServiceError(c, err)
    return
  }
  c.Status(http.StatusOK)
}
