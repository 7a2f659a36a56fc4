package handlers

import (
	"context"
	"net/http"

	"learning-service/internal/service"
	"learning-service/internal/utils"

	"github.com/gin-gonic/gin"
)

type AIHandler struct {
	Service *service.ChatService
}

func NewAIHandler(s *service.ChatService) *AIHandler {
	return &AIHandler{Service: s}
}

type tutorRequest struct {
	Topic    string `json:"topic" binding:"required"`
	Language string `json:"language"`
}

type chatRequest struct {
	Message  string `json:"message" binding:"required"`
	Language string `json:"language"`
}

func (h *AIHandler) Tutor(c *gin.Context) {
	var req tutorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, err.Error())
		return
	}
	if req.Language == "" {
		req.Language = "English"
	}

	lesson, err := h.Service.Lesson(context.Background(), req.Topic, req.Language)
	if err != nil {
		utils.InternalErrorResponse(c, "AI generation failed", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"lesson": lesson})
}

func (h *AIHandler) Chat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, err.Error())
		return
	}
	if req.Language == "" {
		req.Language = "English"
	}
	userID := c.GetString("userID")

	reply, err := h.Service.Chat(context.Background(), userID, req.Message, req.Language)
	if err != nil {
		utils.InternalErrorResponse(c, "Chat failed", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"response": reply})
}
