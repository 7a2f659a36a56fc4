package handlers

import (
	"errors"
	"net/http"

	"learning-service/internal/service"
	"learning-service/internal/utils"

	"github.com/gin-gonic/gin"
)

type ModuleHandler struct {
	Service *service.ModuleService
}

func NewModuleHandler(s *service.ModuleService) *ModuleHandler {
	return &ModuleHandler{Service: s}
}

func (h *ModuleHandler) List(c *gin.Context) {
	subject := c.Query("subject")
	c.JSON(http.StatusOK, gin.H{"modules": h.Service.List(subject)})
}

func (h *ModuleHandler) Get(c *gin.Context) {
	module, err := h.Service.Get(c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrModuleNotFound) {
			utils.NotFoundResponse(c, "Module not found")
			return
		}
		utils.InternalErrorResponse(c, "Failed to load module", err)
		return
	}
	c.JSON(http.StatusOK, module)
}
