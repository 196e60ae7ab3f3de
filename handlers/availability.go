package handlers

import (
	"errors"
	"net/http"

	"ryori-backend/availability"
	"ryori-backend/models"
	"ryori-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AvailabilityHandler struct {
	DB *gorm.DB
}

// loadDocument reads the singleton schedule document. The bool is
// false when no schedule has ever been saved.
func (h *AvailabilityHandler) loadDocument() (models.AvailabilityDocument, bool, error) {
	var doc models.AvailabilityDocument
	err := h.DB.Where("id = ?", models.AvailabilityDocumentID).First(&doc).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return doc, false, nil
	}
	if err != nil {
		return doc, false, err
	}
	return doc, true, nil
}

// GetAvailability serves the public weekly schedule. Until the admin
// saves a schedule there is nothing to show; the form must not invent
// default hours.
func (h *AvailabilityHandler) GetAvailability(c *gin.Context) {
	doc, found, err := h.loadDocument()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch schedule"})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Schedule unavailable"})
		return
	}

	c.JSON(http.StatusOK, doc)
}

// GetSchedule serves the admin editor. When nothing has been saved yet
// it returns a disabled seven-day skeleton so the editor has rows to
// edit; the skeleton is not persisted until the first save.
func (h *AvailabilityHandler) GetSchedule(c *gin.Context) {
	doc, found, err := h.loadDocument()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch schedule"})
		return
	}
	if !found {
		c.JSON(http.StatusOK, gin.H{
			"id":     models.AvailabilityDocumentID,
			"days":   availability.DefaultWeek(),
			"exists": false,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":     doc.ID,
		"days":   doc.Days,
		"exists": true,
	})
}

// UpdateSchedule replaces the whole document. This is the validation
// layer the generator relies on: a schedule that fails these checks
// never reaches storage. Saves are last-writer-wins; there is no
// version check because the panel has a single administrator.
func (h *AvailabilityHandler) UpdateSchedule(c *gin.Context) {
	var req struct {
		Days availability.Week `json:"days" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.SanitizeValidationError(err)})
		return
	}

	if err := availability.Validate(req.Days); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	doc := models.AvailabilityDocument{
		ID:   models.AvailabilityDocumentID,
		Days: req.Days,
	}
	err := h.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"days", "updated_at"}),
	}).Create(&doc).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save schedule"})
		return
	}

	c.JSON(http.StatusOK, doc)
}

// CopyDay applies one day's configuration to the six others and
// persists the result, giving copied ranges fresh ids so the days can
// be edited independently afterwards.
func (h *AvailabilityHandler) CopyDay(c *gin.Context) {
	var req struct {
		SourceID string `json:"source_id" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.SanitizeValidationError(err)})
		return
	}

	doc, found, err := h.loadDocument()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch schedule"})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Schedule unavailable"})
		return
	}

	days, err := availability.CopyToAllDays(doc.Days, req.SourceID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.DB.Model(&doc).Update("days", days).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save schedule"})
		return
	}

	doc.Days = days
	c.JSON(http.StatusOK, doc)
}
