package models

import (
	"time"

	"ryori-backend/availability"
)

// AvailabilityDocumentID is the singleton key for the restaurant's
// weekly schedule. The document is read whole and overwritten whole on
// every save; there is no partial patching and no version check, so
// two concurrent admin saves are last-writer-wins.
const AvailabilityDocumentID = "default"

type AvailabilityDocument struct {
	ID        string            `gorm:"primaryKey" json:"id"`
	Days      availability.Week `gorm:"type:text" json:"days"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}
