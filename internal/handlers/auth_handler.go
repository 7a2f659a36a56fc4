package handlers

import (
	"context"
	"errors"
	"net/http"

	"learning-service/internal/service"
	"learning-service/internal/utils"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	Service *service.AuthService
}

func NewAuthHandler(s *service.AuthService) *AuthHandler {
	return &AuthHandler{Service: s}
}

type signupRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, err.Error())
		return
	}

	user, token, err := h.Service.Signup(context.Background(), req.Email, req.Name, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			utils.BadRequestResponse(c, "Email already registered")
			return
		}
		utils.InternalErrorResponse(c, "Signup failed", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "user": user.Public()})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, err.Error())
		return
	}

	user, token, err := h.Service.Login(context.Background(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			utils.UnauthorizedResponse(c, "Invalid credentials")
			return
		}
		utils.InternalErrorResponse(c, "Login failed", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "user": user.Public()})
}

func (h *AuthHandler) Me(c *gin.Context) {
	userID := c.GetString("userID")

	user, err := h.Service.GetUser(context.Background(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			utils.NotFoundResponse(c, "User not found")
			return
		}
		utils.InternalErrorResponse(c, "Failed to load user", err)
		return
	}

	c.JSON(http.StatusOK, user.Public())
}
