package handler

import "github.com/gin-gonic/gin"

type Handlers struct {
	Expiry    *ExpiryHandler
	ShelfLife *ShelfLifeHandler
	Settings  *SettingsHandler
}

// Register mounts the API routes on group.
func (h Handlers) Register(group *gin.RouterGroup) {
	group.GET("/items/expiry", h.Expiry.HandleActiveExpiry)
	group.GET("/items/:id/expiry", h.Expiry.HandleItemExpiry)
	group.GET("/items/:id/expiry-info", h.Expiry.HandleItemExpiryInfo)
	group.POST("/expiry/evaluate", h.Expiry.HandleEvaluate)

	group.GET("/categories", h.ShelfLife.HandleListCategories)
	group.POST("/categories", h.ShelfLife.HandleCreateCategory)
	group.GET("/categories/:id/shelf-life", h.ShelfLife.HandleList)
	group.PUT("/categories/:id/shelf-life/:profile", h.ShelfLife.HandleUpsert)
	group.DELETE("/categories/:id/shelf-life/:profile", h.ShelfLife.HandleDelete)

	group.GET("/thresholds", h.Settings.HandleThresholds)
	group.PUT("/settings/:key", h.Settings.HandleSetSystemSetting)
	group.PUT("/users/:id/preferences/:key", h.Settings.HandleSetUserPreference)
}
