package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KasumiMercury/primind-pantry-expiry/internal/domain"
	"github.com/KasumiMercury/primind-pantry-expiry/internal/service/shelflife"
)

type ShelfLifeHandler struct {
	shelfLifeService *shelflife.Service
}

func NewShelfLifeHandler(shelfLifeService *shelflife.Service) *ShelfLifeHandler {
	return &ShelfLifeHandler{
		shelfLifeService: shelfLifeService,
	}
}

type createCategoryRequest struct {
	Name      string `json:"name" binding:"required"`
	Color     string `json:"color"`
	SortOrder int    `json:"sort_order"`
}

type upsertShelfLifeRequest struct {
	MonthsMin int    `json:"months_min" binding:"required"`
	MonthsMax int    `json:"months_max" binding:"required"`
	SourceURL string `json:"source_url"`
}

func (h *ShelfLifeHandler) HandleListCategories(c *gin.Context) {
	categories, err := h.shelfLifeService.ListCategories(c.Request.Context())
	if err != nil {
		respondDomainError(c, err)
		return
	}

	resp := make([]categoryResponse, 0, len(categories))
	for _, category := range categories {
		resp = append(resp, newCategoryResponse(category))
	}

	c.JSON(http.StatusOK, gin.H{
		"categories": resp,
		"count":      len(resp),
	})
}

func (h *ShelfLifeHandler) HandleCreateCategory(c *gin.Context) {
	ctx := c.Request.Context()

	var req createCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.WarnContext(ctx, "request validation failed",
			slog.String("error", err.Error()),
			slog.String("path", c.Request.URL.Path),
		)
		respondError(c, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	created, err := h.shelfLifeService.CreateCategory(ctx, &domain.Category{
		Name:      req.Name,
		Color:     req.Color,
		SortOrder: req.SortOrder,
	})
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, newCategoryResponse(created))
}

func (h *ShelfLifeHandler) HandleList(c *gin.Context) {
	ctx := c.Request.Context()

	categoryID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	windows, err := h.shelfLifeService.List(ctx, categoryID)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	resp := make([]shelfLifeResponse, 0, len(windows))
	for _, w := range windows {
		resp = append(resp, newShelfLifeResponse(w))
	}

	c.JSON(http.StatusOK, gin.H{
		"category_id": categoryID,
		"shelf_lives": resp,
	})
}

func (h *ShelfLifeHandler) HandleUpsert(c *gin.Context) {
	ctx := c.Request.Context()

	categoryID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	profile, err := domain.ParseStorageProfile(c.Param("profile"))
	if err != nil {
		respondDomainError(c, err)
		return
	}

	var req upsertShelfLifeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.WarnContext(ctx, "request validation failed",
			slog.String("error", err.Error()),
			slog.String("path", c.Request.URL.Path),
		)
		respondError(c, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	saved, err := h.shelfLifeService.Upsert(ctx, &domain.ShelfLifeWindow{
		CategoryID: categoryID,
		Profile:    profile,
		MonthsMin:  req.MonthsMin,
		MonthsMax:  req.MonthsMax,
		SourceURL:  req.SourceURL,
	})
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, newShelfLifeResponse(saved))
}

func (h *ShelfLifeHandler) HandleDelete(c *gin.Context) {
	ctx := c.Request.Context()

	categoryID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	profile, err := domain.ParseStorageProfile(c.Param("profile"))
	if err != nil {
		respondDomainError(c, err)
		return
	}

	if err := h.shelfLifeService.Delete(ctx, categoryID, profile); err != nil {
		respondDomainError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
