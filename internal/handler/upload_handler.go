package handler

import (
	"net/http"

	"petslife-service/internal/service"

	"github.com/gin-gonic/gin"
)

type UploadHandler struct {
	uploadService *service.UploadService
}

func NewUploadHandler(uploadService *service.UploadService) *UploadHandler {
	return &UploadHandler{uploadService: uploadService}
}

// GetStatus reports the phase of the most recent attachment task for the
// target entity (card or user).
func (h *UploadHandler) GetStatus(c *gin.Context) {
	task, ok := h.uploadService.Task(c.Param("targetId"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "no upload for this target"})
		return
	}
	c.JSON(http.StatusOK, task.Status())
}

// Register routes
func (h *UploadHandler) RegisterRoutes(r *gin.RouterGroup, auth gin.HandlerFunc) {
	uploads := r.Group("/uploads")
	{
		uploads.Use(auth)
		uploads.GET("/:targetId", h.GetStatus)
	}
}
