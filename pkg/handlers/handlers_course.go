package handlers

import (
	"net/http"

	"github.com/AfzalHossan-2005021/routine-scheduler-api-go/pkg/database"
	"github.com/AfzalHossan-2005021/routine-scheduler-api-go/pkg/models"
	"github.com/gin-gonic/gin"
)

// CourseRequest is the create/update payload for a course offering
type CourseRequest struct {
	CourseID     string   `json:"course_id" binding:"required"`
	Name         string   `json:"name" binding:"required"`
	Type         string   `json:"type" binding:"required,oneof=theory sessional"`
	Batch        int      `json:"batch" binding:"required"`
	From         string   `json:"from" binding:"required"`
	To           string   `json:"to" binding:"required"`
	Sections     []string `json:"sections" binding:"required,min=1,dive,alphanum,uppercase,max=2"`
	ClassPerWeek float64  `json:"class_per_week" binding:"required,gt=0"`
	LevelTerm    string   `json:"level_term" binding:"required,levelterm"`
}

// CreateCourse adds a course offering
func (h *Handler) CreateCourse(c *gin.Context) {
	var req CourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	course := database.Course{
		CourseID:     req.CourseID,
		Name:         req.Name,
		Type:         req.Type,
		Batch:        req.Batch,
		FromDept:     req.From,
		ToDept:       req.To,
		Sections:     req.Sections,
		ClassPerWeek: req.ClassPerWeek,
		LevelTerm:    req.LevelTerm,
	}
	if err := h.DB.Create(&course).Error; err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Course already exists"})
		return
	}
	c.JSON(http.StatusCreated, course)
}

// ListCourses returns all course offerings
func (h *Handler) ListCourses(c *gin.Context) {
	var courses []database.Course
	query := h.DB.Order("course_id asc")
	if batch := c.Query("batch"); batch != "" {
		query = query.Where("batch = ?", batch)
	}
	if courseID := c.Query("course_id"); courseID != "" {
		query = query.Where("course_id = ?", courseID)
	}
	if err := query.Find(&courses).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch courses"})
		return
	}
	c.JSON(http.StatusOK, courses)
}

// ListLabCourses returns the sessional course offerings, the ones needing
// lab-room assignment
func (h *Handler) ListLabCourses(c *gin.Context) {
	var courses []database.Course
	if err := h.DB.Where("type = ?", models.CourseTypeSessional).
		Order("level_term asc, course_id asc").Find(&courses).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch lab courses"})
		return
	}
	c.JSON(http.StatusOK, courses)
}

// UpdateCourse replaces a course offering
func (h *Handler) UpdateCourse(c *gin.Context) {
	var req CourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var course database.Course
	if err := h.DB.Where("course_id = ?", c.Param("id")).First(&course).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Course not found"})
		return
	}

	course.CourseID = req.CourseID
	course.Name = req.Name
	course.Type = req.Type
	course.Batch = req.Batch
	course.FromDept = req.From
	course.ToDept = req.To
	course.Sections = req.Sections
	course.ClassPerWeek = req.ClassPerWeek
	course.LevelTerm = req.LevelTerm
	if err := h.DB.Save(&course).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not update course"})
		return
	}
	c.JSON(http.StatusOK, course)
}

// DeleteCourse removes a course offering
func (h *Handler) DeleteCourse(c *gin.Context) {
	result := h.DB.Where("course_id = ?", c.Param("id")).Delete(&database.Course{})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not delete course"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Course not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Course deleted"})
}
