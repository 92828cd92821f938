package handler

import (
	"log/slog"
	"net/http"

	"cloud.google.com/go/civil"
	"github.com/gin-gonic/gin"

	"github.com/KasumiMercury/primind-pantry-expiry/internal/domain"
	"github.com/KasumiMercury/primind-pantry-expiry/internal/service/evaluation"
)

type ExpiryHandler struct {
	evaluationService *evaluation.Service
}

func NewExpiryHandler(evaluationService *evaluation.Service) *ExpiryHandler {
	return &ExpiryHandler{
		evaluationService: evaluationService,
	}
}

type evaluateRequest struct {
	AcquisitionType string      `json:"acquisition_type" binding:"required"`
	CategoryID      *int64      `json:"category_id"`
	BestBeforeDate  *civil.Date `json:"best_before_date"`
	FreezeDate      *civil.Date `json:"freeze_date"`
	UserID          *int64      `json:"user_id"`
}

func (h *ExpiryHandler) HandleItemExpiry(c *gin.Context) {
	ctx := c.Request.Context()

	itemID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	userID, ok := parseUserID(c)
	if !ok {
		return
	}

	ev, err := h.evaluationService.EvaluateItem(ctx, itemID, userID)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, newEvaluationResponse(ev))
}

func (h *ExpiryHandler) HandleItemExpiryInfo(c *gin.Context) {
	ctx := c.Request.Context()

	itemID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	result, err := h.evaluationService.ExpiryInfo(ctx, itemID)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, expiryInfoResponse{
		ItemID:         itemID,
		OptimalDate:    result.OptimalDate,
		MaxDate:        result.MaxDate,
		BestBeforeDate: result.BestBeforeDate,
	})
}

func (h *ExpiryHandler) HandleActiveExpiry(c *gin.Context) {
	ctx := c.Request.Context()

	userID, ok := parseUserID(c)
	if !ok {
		return
	}

	evs, err := h.evaluationService.EvaluateActive(ctx, userID)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	items := make([]evaluationResponse, 0, len(evs))
	for _, ev := range evs {
		items = append(items, newEvaluationResponse(ev))
	}

	c.JSON(http.StatusOK, gin.H{
		"items": items,
		"count": len(items),
	})
}

func (h *ExpiryHandler) HandleEvaluate(c *gin.Context) {
	ctx := c.Request.Context()

	var req evaluateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.WarnContext(ctx, "request validation failed",
			slog.String("error", err.Error()),
			slog.String("path", c.Request.URL.Path),
		)
		respondError(c, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	acquisitionType, err := domain.ParseAcquisitionType(req.AcquisitionType)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	in := evaluation.Input{
		AcquisitionType: acquisitionType,
		CategoryID:      req.CategoryID,
		Dates:           domain.ItemDates{FreezeDate: req.FreezeDate},
		UserID:          req.UserID,
	}
	if req.BestBeforeDate != nil {
		in.Dates.BestBeforeDate = *req.BestBeforeDate
	}

	ev, err := h.evaluationService.Evaluate(ctx, in)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, newEvaluationResponse(ev))
}
