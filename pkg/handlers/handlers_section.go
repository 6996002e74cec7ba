package handlers

import (
	"net/http"

	"github.com/AfzalHossan-2005021/routine-scheduler-api-go/pkg/database"
	"github.com/gin-gonic/gin"
)

// SectionRequest is the create/update payload for a section
type SectionRequest struct {
	Batch      int    `json:"batch" binding:"required"`
	Section    string `json:"section" binding:"required,alphanum,uppercase,max=2"`
	Department string `json:"department" binding:"required"`
	Room       string `json:"room"`
	Session    string `json:"session"`
	LevelTerm  string `json:"level_term" binding:"omitempty,levelterm"`
}

// CreateSection adds a section
func (h *Handler) CreateSection(c *gin.Context) {
	var req SectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	section := database.Section{
		Batch:      req.Batch,
		Section:    req.Section,
		Department: req.Department,
		Room:       req.Room,
		Session:    req.Session,
		LevelTerm:  req.LevelTerm,
	}
	if err := h.DB.Create(&section).Error; err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Section already exists for this batch and department"})
		return
	}
	c.JSON(http.StatusCreated, section)
}

// ListSections returns all sections
func (h *Handler) ListSections(c *gin.Context) {
	var sections []database.Section
	query := h.DB.Order("batch desc, section asc")
	if batch := c.Query("batch"); batch != "" {
		query = query.Where("batch = ?", batch)
	}
	if err := query.Find(&sections).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch sections"})
		return
	}
	c.JSON(http.StatusOK, sections)
}

// UpdateSection replaces a section's record
func (h *Handler) UpdateSection(c *gin.Context) {
	var req SectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var section database.Section
	if err := h.DB.First(&section, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Section not found"})
		return
	}

	section.Batch = req.Batch
	section.Section = req.Section
	section.Department = req.Department
	section.Room = req.Room
	section.Session = req.Session
	section.LevelTerm = req.LevelTerm
	if err := h.DB.Save(&section).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not update section"})
		return
	}
	c.JSON(http.StatusOK, section)
}

// DeleteSection removes a section
func (h *Handler) DeleteSection(c *gin.Context) {
	result := h.DB.Delete(&database.Section{}, c.Param("id"))
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not delete section"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Section not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Section deleted"})
}
