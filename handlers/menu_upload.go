package handlers

import (
	"fmt"
	"net/http"

	"ryori-backend/extraction"
	"ryori-backend/models"
	"ryori-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MenuUploadHandler runs the menu import pipeline: store the photo,
// hand its URL to the extraction service, and create draft items from
// whatever comes back.
type MenuUploadHandler struct {
	*MenuHandler
	Extractor extraction.MenuExtractor
}

func (h *MenuUploadHandler) UploadMenuPhoto(c *gin.Context) {
	fileHeader, err := c.FormFile("photo")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Photo file is required"})
		return
	}

	if err := utils.ValidateFileUpload(fileHeader); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Extracted items land in the requested category, or a dedicated
	// "Imported" category the admin can sort out afterwards.
	categoryID, err := h.resolveTargetCategory(c.PostForm("category_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read uploaded file"})
		return
	}
	defer file.Close()

	imageURL, err := h.Storage.UploadMenuPhoto(file, fileHeader.Filename, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to store menu photo"})
		return
	}

	upload := models.MenuUpload{
		ID:         uuid.New(),
		ImageURL:   imageURL,
		Status:     models.UploadStatusPending,
		CategoryID: categoryID,
	}
	if err := h.DB.Create(&upload).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record upload"})
		return
	}

	items, err := h.Extractor.ExtractItems(c.Request.Context(), imageURL)
	if err != nil {
		h.DB.Model(&upload).Updates(map[string]interface{}{
			"status": models.UploadStatusFailed,
			"error":  err.Error(),
		})
		c.JSON(http.StatusBadGateway, gin.H{"error": "Menu extraction failed", "upload_id": upload.ID})
		return
	}

	created := 0
	for i, extracted := range items {
		if extracted.Name == "" {
			continue
		}
		item := models.MenuItem{
			ID:          uuid.New(),
			CategoryID:  categoryID,
			Name:        extracted.Name,
			Description: extracted.Description,
			Price:       extracted.Price,
			Position:    i,
			Available:   false,
		}
		if err := h.DB.Create(&item).Error; err != nil {
			continue
		}
		// Drafts stay hidden from the public menu until reviewed. GORM
		// skips the zero-value bool on insert and the column default
		// would flip the draft public, so force it off explicitly.
		h.DB.Model(&item).Update("available", false)
		created++
	}

	h.DB.Model(&upload).Updates(map[string]interface{}{
		"status":     models.UploadStatusProcessed,
		"item_count": created,
	})

	upload.Status = models.UploadStatusProcessed
	upload.ItemCount = created
	c.JSON(http.StatusCreated, upload)
}

func (h *MenuUploadHandler) ListUploads(c *gin.Context) {
	var uploads []models.MenuUpload
	if err := h.DB.Order("created_at DESC").Find(&uploads).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch uploads"})
		return
	}

	c.JSON(http.StatusOK, uploads)
}

func (h *MenuUploadHandler) resolveTargetCategory(raw string) (uuid.UUID, error) {
	if raw != "" {
		categoryID, err := uuid.Parse(raw)
		if err != nil {
			return uuid.Nil, fmt.Errorf("Invalid category id")
		}
		var category models.MenuCategory
		if err := h.DB.Where("id = ?", categoryID).First(&category).Error; err != nil {
			return uuid.Nil, fmt.Errorf("Category not found")
		}
		return categoryID, nil
	}

	var category models.MenuCategory
	if err := h.DB.Where("name = ?", importedCategoryName).First(&category).Error; err == nil {
		return category.ID, nil
	}

	category = models.MenuCategory{
		ID:       uuid.New(),
		Name:     importedCategoryName,
		Position: 999,
	}
	if err := h.DB.Create(&category).Error; err != nil {
		return uuid.Nil, err
	}
	return category.ID, nil
}

const importedCategoryName = "Imported"
