package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/counselhub/counsel-api/internal/directory"
	"github.com/counselhub/counsel-api/internal/models"
	"github.com/counselhub/counsel-api/internal/utils"
)

func (h *Handler) CreateConsultant(c *gin.Context) {
	var req struct {
		FullName  string `json:"fullName" binding:"required"`
		Email     string `json:"email" binding:"required,email"`
		Specialty string `json:"specialty"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	consultant, err := h.Consultants.Create(c.Request.Context(), req.FullName, req.Email, req.Specialty)
	if err != nil {
		if errors.Is(err, directory.ErrDuplicateEmail) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		utils.GetLogger().Error("Failed to create consultant", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create consultant"})
		return
	}

	c.JSON(http.StatusCreated, consultant)
}

func (h *Handler) ListConsultants(c *gin.Context) {
	consultants, err := h.Consultants.List(c.Request.Context())
	if err != nil {
		utils.GetLogger().Error("Failed to list consultants", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve consultants"})
		return
	}

	if consultants == nil {
		consultants = make([]models.Consultant, 0)
	}

	c.JSON(http.StatusOK, consultants)
}

func (h *Handler) GetConsultant(c *gin.Context) {
	consultant, err := h.Consultants.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, directory.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Consultant not found"})
			return
		}
		utils.GetLogger().Error("Failed to fetch consultant", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve consultant"})
		return
	}

	c.JSON(http.StatusOK, consultant)
}

func (h *Handler) DeleteConsultant(c *gin.Context) {
	err := h.Consultants.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, directory.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Consultant not found"})
			return
		}
		utils.GetLogger().Error("Failed to delete consultant", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete consultant"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Consultant deleted successfully"})
}
