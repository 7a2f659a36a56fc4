package handlers

import (
	"context"
	"errors"
	"net/http"

	"learning-service/internal/service"
	"learning-service/internal/utils"

	"github.com/gin-gonic/gin"
)

type QuizHandler struct {
	Service *service.QuizService
}

func NewQuizHandler(s *service.QuizService) *QuizHandler {
	return &QuizHandler{Service: s}
}

type generateQuizRequest struct {
	Topic        string `json:"topic" binding:"required"`
	NumQuestions int    `json:"num_questions"`
}

type submitQuizRequest struct {
	QuizID  string `json:"quiz_id" binding:"required"`
	Answers []int  `json:"answers"`
}

func (h *QuizHandler) Generate(c *gin.Context) {
	var req generateQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, err.Error())
		return
	}
	userID := c.GetString("userID")

	quiz, err := h.Service.Generate(context.Background(), userID, req.Topic, req.NumQuestions)
	if err != nil {
		utils.InternalErrorResponse(c, "Quiz generation failed", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"quiz_id": quiz.ID, "questions": quiz.Questions})
}

func (h *QuizHandler) Submit(c *gin.Context) {
	var req submitQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, err.Error())
		return
	}
	userID := c.GetString("userID")

	result, err := h.Service.Submit(context.Background(), userID, req.QuizID, req.Answers)
	if err != nil {
		if errors.Is(err, service.ErrQuizNotFound) {
			utils.NotFoundResponse(c, "Quiz not found")
			return
		}
		utils.InternalErrorResponse(c, "Quiz submission failed", err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *QuizHandler) List(c *gin.Context) {
	userID := c.GetString("userID")

	quizzes, err := h.Service.List(context.Background(), userID)
	if err != nil {
		utils.InternalErrorResponse(c, "Failed to list quizzes", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"quizzes": quizzes})
}
