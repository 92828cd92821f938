package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"cloud.google.com/go/civil"
	"github.com/gin-gonic/gin"

	"github.com/KasumiMercury/primind-pantry-expiry/internal/domain"
	"github.com/KasumiMercury/primind-pantry-expiry/internal/service/evaluation"
)

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

type evaluationResponse struct {
	ItemID          *int64            `json:"item_id,omitempty"`
	AcquisitionType string            `json:"acquisition_type"`
	CategoryID      *int64            `json:"category_id"`
	StorageProfile  string            `json:"storage_profile"`
	OptimalDate     *civil.Date       `json:"optimal_date"`
	MaxDate         *civil.Date       `json:"max_date"`
	BestBeforeDate  *civil.Date       `json:"best_before_date"`
	Known           bool              `json:"known"`
	Status          string            `json:"status"`
	DaysRemaining   *int              `json:"days_remaining"`
	Thresholds      domain.Thresholds `json:"thresholds"`
	EvaluatedOn     civil.Date        `json:"evaluated_on"`
	Error           string            `json:"error,omitempty"`
}

func newEvaluationResponse(ev *evaluation.Evaluation) evaluationResponse {
	resp := evaluationResponse{
		AcquisitionType: ev.AcquisitionType.String(),
		CategoryID:      ev.CategoryID,
		StorageProfile:  ev.Profile.String(),
		OptimalDate:     ev.Result.OptimalDate,
		MaxDate:         ev.Result.MaxDate,
		BestBeforeDate:  ev.Result.BestBeforeDate,
		Known:           ev.Known(),
		Status:          ev.Status.String(),
		DaysRemaining:   ev.DaysRemaining,
		Thresholds:      ev.Thresholds,
		EvaluatedOn:     ev.EvaluatedOn,
		Error:           ev.Error,
	}
	if ev.ItemID != 0 {
		id := ev.ItemID
		resp.ItemID = &id
	}
	return resp
}

type expiryInfoResponse struct {
	ItemID         int64       `json:"item_id"`
	OptimalDate    *civil.Date `json:"optimal_date"`
	MaxDate        *civil.Date `json:"max_date"`
	BestBeforeDate *civil.Date `json:"best_before_date"`
}

type categoryResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Color     string `json:"color,omitempty"`
	SortOrder int    `json:"sort_order"`
}

func newCategoryResponse(c *domain.Category) categoryResponse {
	return categoryResponse{
		ID:        c.ID,
		Name:      c.Name,
		Color:     c.Color,
		SortOrder: c.SortOrder,
	}
}

type shelfLifeResponse struct {
	ID             int64  `json:"id"`
	CategoryID     int64  `json:"category_id"`
	StorageProfile string `json:"storage_profile"`
	MonthsMin      int    `json:"months_min"`
	MonthsMax      int    `json:"months_max"`
	SourceURL      string `json:"source_url,omitempty"`
}

func newShelfLifeResponse(w *domain.ShelfLifeWindow) shelfLifeResponse {
	return shelfLifeResponse{
		ID:             w.ID,
		CategoryID:     w.CategoryID,
		StorageProfile: w.Profile.String(),
		MonthsMin:      w.MonthsMin,
		MonthsMax:      w.MonthsMax,
		SourceURL:      w.SourceURL,
	}
}

func respondError(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, errorResponse{
		Error:   code,
		Message: message,
	})
}

// respondDomainError maps service errors onto HTTP statuses.
func respondDomainError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrMissingBaseDate):
		respondError(c, http.StatusUnprocessableEntity, "missing_base_date", err.Error())
	case errors.Is(err, domain.ErrInvalidItemDates):
		respondError(c, http.StatusUnprocessableEntity, "invalid_item_dates", err.Error())
	case errors.Is(err, domain.ErrItemNotFound),
		errors.Is(err, domain.ErrCategoryNotFound),
		errors.Is(err, domain.ErrShelfLifeNotFound):
		respondError(c, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, domain.ErrInvalidShelfLifeWindow),
		errors.Is(err, domain.ErrUnknownAcquisitionType),
		errors.Is(err, domain.ErrUnknownStorageProfile),
		errors.Is(err, domain.ErrInvalidPreferenceValue),
		errors.Is(err, domain.ErrInvalidCategory):
		respondError(c, http.StatusBadRequest, "validation_error", err.Error())
	case errors.Is(err, domain.ErrCategoryExists):
		respondError(c, http.StatusConflict, "conflict", err.Error())
	default:
		slog.ErrorContext(c.Request.Context(), "request failed",
			slog.String("path", c.Request.URL.Path),
			slog.String("error", err.Error()),
		)
		_ = c.Error(err)
		respondError(c, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func parseIDParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		respondError(c, http.StatusBadRequest, "validation_error", "invalid "+name)
		return 0, false
	}
	return id, true
}

// parseUserID reads the optional user_id query parameter.
func parseUserID(c *gin.Context) (*int64, bool) {
	raw := c.Query("user_id")
	if raw == "" {
		return nil, true
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		respondError(c, http.StatusBadRequest, "validation_error", "invalid user_id")
		return nil, false
	}
	return &id, true
}
