package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/counselhub/counsel-api/internal/models"
	"github.com/counselhub/counsel-api/internal/registry"
	"github.com/counselhub/counsel-api/internal/utils"
)

// --- CREATE SLOT ---
func (h *Handler) CreateSlot(c *gin.Context) {
	var req struct {
		ConsultantID string `json:"consultantId" binding:"required"`
		StartTime    string `json:"startTime" binding:"required"`
		EndTime      string `json:"endTime" binding:"required"`
		Status       string `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	startTime, err1 := time.Parse(time.RFC3339, req.StartTime)
	endTime, err2 := time.Parse(time.RFC3339, req.EndTime)
	if err1 != nil || err2 != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid time format, use RFC3339"})
		return
	}

	status := models.SlotStatusAvailable
	if req.Status != "" {
		parsed, err := models.ParseSlotStatus(req.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		status = parsed
	}

	// Consultant identity is owned by the directory, not the registry.
	exists, err := h.Consultants.Exists(c.Request.Context(), req.ConsultantID)
	if err != nil {
		utils.GetLogger().Error("Consultant lookup failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to verify consultant"})
		return
	}
	if !exists {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown consultant"})
		return
	}

	slot, err := h.Registry.Create(c.Request.Context(), req.ConsultantID, startTime, endTime, status)
	if err != nil {
		switch {
		case errors.Is(err, registry.ErrInvalidRange):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, registry.ErrDuplicateSlot):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			utils.GetLogger().Error("Failed to create slot", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create slot"})
		}
		return
	}

	c.JSON(http.StatusCreated, slot)
}

// --- LIST SLOTS FOR A CONSULTANT ---
func (h *Handler) ListSlots(c *gin.Context) {
	consultantID := c.Query("consultantId")
	if consultantID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing consultantId query parameter"})
		return
	}

	slots, err := h.Registry.ListByConsultant(c.Request.Context(), consultantID)
	if err != nil {
		utils.GetLogger().Error("Failed to list slots", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve slots"})
		return
	}

	// Return an empty array instead of nil when the consultant has no slots.
	if slots == nil {
		slots = make([]models.Slot, 0)
	}

	c.JSON(http.StatusOK, slots)
}

// --- FIND SLOT BY GRID CELL ---
// The calendar grid asks for one consultant/day/hour cell; day and hour are
// always derived from the slot's startTime, never stored.
func (h *Handler) FindSlot(c *gin.Context) {
	consultantID := c.Query("consultantId")
	dateStr := c.Query("date")
	hourStr := c.Query("hour")
	if consultantID == "" || dateStr == "" || hourStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "consultantId, date and hour are required"})
		return
	}

	day, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date, use YYYY-MM-DD"})
		return
	}
	hour, err := strconv.Atoi(hourStr)
	if err != nil || hour < 0 || hour > 23 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid hour, use 0-23"})
		return
	}

	slot, err := h.Registry.FindSlot(c.Request.Context(), consultantID, day, hour)
	if err != nil {
		if errors.Is(err, registry.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No slot in this cell"})
			return
		}
		utils.GetLogger().Error("Failed to find slot", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to find slot"})
		return
	}

	c.JSON(http.StatusOK, slot)
}

// --- UPDATE SLOT TIME WINDOW ---
func (h *Handler) UpdateSlot(c *gin.Context) {
	var req struct {
		StartTime *string `json:"startTime,omitempty"`
		EndTime   *string `json:"endTime,omitempty"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	var patch registry.SlotPatch
	if req.StartTime != nil {
		t, err := time.Parse(time.RFC3339, *req.StartTime)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid startTime, use RFC3339"})
			return
		}
		patch.StartTime = &t
	}
	if req.EndTime != nil {
		t, err := time.Parse(time.RFC3339, *req.EndTime)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid endTime, use RFC3339"})
			return
		}
		patch.EndTime = &t
	}
	if patch.StartTime == nil && patch.EndTime == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No fields to update"})
		return
	}

	slot, err := h.Registry.Update(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		switch {
		case errors.Is(err, registry.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Slot not found"})
		case errors.Is(err, registry.ErrInvalidRange):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			utils.GetLogger().Error("Failed to update slot", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update slot"})
		}
		return
	}

	c.JSON(http.StatusOK, slot)
}

// --- SET SLOT STATUS ---
// Driven both by admins editing the grid and by the external booking flow
// (booked on reservation, available or cancelled on cancellation). Any status
// may overwrite any other.
func (h *Handler) SetSlotStatus(c *gin.Context) {
	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	status, err := models.ParseSlotStatus(req.Status)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	slot, err := h.Registry.SetStatus(c.Request.Context(), c.Param("id"), status)
	if err != nil {
		if errors.Is(err, registry.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Slot not found"})
			return
		}
		utils.GetLogger().Error("Failed to set slot status", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to set slot status"})
		return
	}

	c.JSON(http.StatusOK, slot)
}

// --- DELETE SLOT ---
func (h *Handler) DeleteSlot(c *gin.Context) {
	err := h.Registry.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, registry.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Slot not found"})
			return
		}
		utils.GetLogger().Error("Failed to delete slot", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete slot"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Slot deleted successfully"})
}
