package handlers

import (
	"context"
	"net/http"

	"learning-service/internal/service"
	"learning-service/internal/utils"

	"github.com/gin-gonic/gin"
)

type ProgressHandler struct {
	Service *service.ProgressService
}

func NewProgressHandler(s *service.ProgressService) *ProgressHandler {
	return &ProgressHandler{Service: s}
}

type addProgressRequest struct {
	Subject   string `json:"subject" binding:"required"`
	Topic     string `json:"topic" binding:"required"`
	Score     int    `json:"score" binding:"gte=0,lte=100"`
	Completed bool   `json:"completed"`
}

func (h *ProgressHandler) Stats(c *gin.Context) {
	userID := c.GetString("userID")

	stats, err := h.Service.Stats(context.Background(), userID)
	if err != nil {
		utils.InternalErrorResponse(c, "Failed to compute progress stats", err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

func (h *ProgressHandler) Add(c *gin.Context) {
	var req addProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, err.Error())
		return
	}
	userID := c.GetString("userID")

	xpGained, err := h.Service.Add(context.Background(), userID, req.Subject, req.Topic, req.Score, req.Completed)
	if err != nil {
		utils.InternalErrorResponse(c, "Failed to record progress", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "xp_gained": xpGained})
}
