package handlers

import (
	"net/http"
	"strconv"

	"github.com/AfzalHossan-2005021/routine-scheduler-api-go/pkg/database"
	"github.com/AfzalHossan-2005021/routine-scheduler-api-go/pkg/models"
	"github.com/AfzalHossan-2005021/routine-scheduler-api-go/pkg/schedule"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// TheoryCell is one cell of the theory-schedule save payload
type TheoryCell struct {
	Day      string `json:"day" binding:"required,weekday"`
	Time     int    `json:"time" binding:"required,gridtime"`
	CourseID string `json:"course_id" binding:"required"`
}

// GetFullSchedule returns every filled theory cell plus the committed lab
// allocation, the dashboard's landing view
func (h *Handler) GetFullSchedule(c *gin.Context) {
	var slots []database.TheorySlot
	if err := h.DB.Order("batch desc, section asc, day asc, time asc").Find(&slots).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch schedule"})
		return
	}

	var labs []database.LabAssignment
	if err := h.DB.Order("course_id asc, section asc").Find(&labs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch lab assignments"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"theory": slots, "labs": labs})
}

// GetTheorySchedule returns the filled cells for one batch+section
func (h *Handler) GetTheorySchedule(c *gin.Context) {
	batch, err := strconv.Atoi(c.Param("batch"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid batch"})
		return
	}

	var slots []database.TheorySlot
	if err := h.DB.Where("batch = ? AND section = ?", batch, c.Param("section")).
		Order("day asc, time asc").Find(&slots).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch schedule"})
		return
	}
	c.JSON(http.StatusOK, slots)
}

// SetTheorySchedule replaces the grid for one batch+section and responds with
// the advisory conflict warnings. Warnings never block the save.
func (h *Handler) SetTheorySchedule(c *gin.Context) {
	batch, err := strconv.Atoi(c.Param("batch"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid batch"})
		return
	}
	section := c.Param("section")

	var cells []TheoryCell
	if err := c.ShouldBindJSON(&cells); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Grid of every other section, for the cross-section advisory check
	var others []database.TheorySlot
	if err := h.DB.Where("batch != ? OR section != ?", batch, section).Find(&others).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch schedule"})
		return
	}

	var courses []database.Course
	h.DB.Find(&courses)
	courseByID := make(map[string]database.Course, len(courses))
	for _, course := range courses {
		courseByID[course.CourseID] = course
	}

	grid := make([]schedule.Entry, 0, len(others))
	for _, slot := range others {
		grid = append(grid, schedule.Entry{
			Day: slot.Day, Time: slot.Time,
			CourseID: slot.CourseID, Batch: slot.Batch, Section: slot.Section,
		})
	}

	var warnings []schedule.Warning
	slots := make([]database.TheorySlot, 0, len(cells))
	for _, cell := range cells {
		course := courseByID[cell.CourseID]
		warnings = append(warnings, schedule.Check(grid, models.Course{
			CourseID:     cell.CourseID,
			ClassPerWeek: course.ClassPerWeek,
		}, section, cell.Day, cell.Time)...)

		grid = append(grid, schedule.Entry{
			Day: cell.Day, Time: cell.Time,
			CourseID: cell.CourseID, Batch: batch, Section: section,
		})
		slots = append(slots, database.TheorySlot{
			Day: cell.Day, Time: cell.Time,
			Batch: batch, Section: section, CourseID: cell.CourseID,
		})
	}

	err = h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("batch = ? AND section = ?", batch, section).
			Delete(&database.TheorySlot{}).Error; err != nil {
			return err
		}
		if len(slots) == 0 {
			return nil
		}
		return tx.Create(&slots).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not save schedule"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"saved":    len(slots),
		"warnings": warnings,
	})
}
