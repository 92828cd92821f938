package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/KasumiMercury/primind-pantry-expiry/internal/domain"
	"github.com/KasumiMercury/primind-pantry-expiry/internal/service/threshold"
)

type SettingsHandler struct {
	settings   domain.SettingsRepository
	prefs      domain.PreferenceRepository
	thresholds *threshold.Resolver
}

func NewSettingsHandler(
	settings domain.SettingsRepository,
	prefs domain.PreferenceRepository,
	thresholds *threshold.Resolver,
) *SettingsHandler {
	return &SettingsHandler{
		settings:   settings,
		prefs:      prefs,
		thresholds: thresholds,
	}
}

type systemSettingRequest struct {
	Value string `json:"value"`
}

type userPreferenceRequest struct {
	Value *int `json:"value" binding:"required"`
}

func (h *SettingsHandler) HandleThresholds(c *gin.Context) {
	ctx := c.Request.Context()

	userID, ok := parseUserID(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, h.thresholds.Resolve(ctx, userID))
}

func (h *SettingsHandler) HandleSetSystemSetting(c *gin.Context) {
	ctx := c.Request.Context()

	key := strings.TrimSpace(c.Param("key"))
	if key == "" {
		respondError(c, http.StatusBadRequest, "validation_error", "setting key is required")
		return
	}

	var req systemSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	if err := h.settings.SetSystemSetting(ctx, key, req.Value); err != nil {
		respondDomainError(c, err)
		return
	}

	slog.InfoContext(ctx, "system setting updated",
		slog.String("key", key),
	)

	c.JSON(http.StatusOK, gin.H{"key": key, "value": req.Value})
}

func (h *SettingsHandler) HandleSetUserPreference(c *gin.Context) {
	ctx := c.Request.Context()

	userID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	key := strings.TrimSpace(c.Param("key"))
	if key == "" {
		respondError(c, http.StatusBadRequest, "validation_error", "preference key is required")
		return
	}

	var req userPreferenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "validation_error", err.Error())
		return
	}
	if *req.Value < 0 {
		respondError(c, http.StatusBadRequest, "validation_error", "value must not be negative")
		return
	}

	if err := h.prefs.SetUserPreference(ctx, userID, key, *req.Value); err != nil {
		respondDomainError(c, err)
		return
	}

	slog.InfoContext(ctx, "user preference updated",
		slog.Int64("user_id", userID),
		slog.String("key", key),
		slog.Int("value", *req.Value),
	)

	c.JSON(http.StatusOK, gin.H{"user_id": userID, "key": key, "value": *req.Value})
}
