package handlers

import (
	"errors"
	"net/http"
	"os"
	"time"

	"ryori-backend/availability"
	"ryori-backend/models"
	"ryori-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ReservationHandler struct {
	DB *gorm.DB
}

const dateLayout = "2006-01-02"

func (h *ReservationHandler) loadWeek() (availability.Week, bool, error) {
	var doc models.AvailabilityDocument
	err := h.DB.Where("id = ?", models.AvailabilityDocumentID).First(&doc).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return doc.Days, true, nil
}

// GetSlots returns the bookable start times for a calendar date. An
// empty slot list is a normal answer (closed day), not an error; only
// a missing schedule document is.
func (h *ReservationHandler) GetSlots(c *gin.Context) {
	rawDate := c.Query("date")
	date, err := time.Parse(dateLayout, rawDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date, expected YYYY-MM-DD"})
		return
	}

	week, found, err := h.loadWeek()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch schedule"})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Schedule unavailable"})
		return
	}

	dayID := availability.WeekdayID(date)
	c.JSON(http.StatusOK, gin.H{
		"date":   date.Format(dateLayout),
		"day_id": dayID,
		"slots":  availability.SlotsForWeekday(week, dayID),
	})
}

// CreateInquiry composes the WhatsApp reservation message. The
// requested time must be one of the generated slots for that date, but
// nothing is persisted or held: this is an inquiry, the restaurant
// confirms over chat.
func (h *ReservationHandler) CreateInquiry(c *gin.Context) {
	var req struct {
		Name      string `json:"name" binding:"required"`
		Date      string `json:"date" binding:"required"`
		Time      string `json:"time" binding:"required"`
		PartySize int    `json:"party_size" binding:"required,min=1"`
		Notes     string `json:"notes"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.SanitizeValidationError(err)})
		return
	}

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date, expected YYYY-MM-DD"})
		return
	}

	week, found, err := h.loadWeek()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch schedule"})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Schedule unavailable"})
		return
	}

	slots := availability.SlotsForWeekday(week, availability.WeekdayID(date))
	if !containsSlot(slots, req.Time) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Selected time is not available on that date"})
		return
	}

	phone := os.Getenv("WHATSAPP_PHONE")
	if phone == "" {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Reservation contact is not configured"})
		return
	}

	message := utils.ComposeReservationMessage(
		req.Name,
		date.Format("Monday, 2 January 2006"),
		req.Time,
		req.PartySize,
		req.Notes,
	)

	c.JSON(http.StatusOK, gin.H{
		"url":     utils.BuildWhatsAppLink(phone, message),
		"message": message,
	})
}

func containsSlot(slots []string, want string) bool {
	for _, s := range slots {
		if s == want {
			return true
		}
	}
	return false
}
