package handlers

import (
	"net/http"

	"github.com/AfzalHossan-2005021/routine-scheduler-api-go/pkg/database"
	"github.com/gin-gonic/gin"
)

// TeacherRequest is the create/update payload for an instructor
type TeacherRequest struct {
	Initial     string `json:"initial" binding:"required,uppercase,alpha,min=2,max=4"`
	Name        string `json:"name" binding:"required"`
	Surname     string `json:"surname"`
	Email       string `json:"email" binding:"required,email"`
	Designation string `json:"designation"`
	Seniority   int    `json:"seniority"`
	Active      *bool  `json:"active"`
}

// CreateTeacher adds an instructor
func (h *Handler) CreateTeacher(c *gin.Context) {
	var req TeacherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	teacher := database.Teacher{
		Initial:     req.Initial,
		Name:        req.Name,
		Surname:     req.Surname,
		Email:       req.Email,
		Designation: req.Designation,
		Seniority:   req.Seniority,
		Active:      req.Active == nil || *req.Active,
	}
	if err := h.DB.Create(&teacher).Error; err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Teacher with this initial or email already exists"})
		return
	}
	c.JSON(http.StatusCreated, teacher)
}

// ListTeachers returns all instructors ordered by seniority
func (h *Handler) ListTeachers(c *gin.Context) {
	var teachers []database.Teacher
	if err := h.DB.Order("seniority asc, initial asc").Find(&teachers).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch teachers"})
		return
	}
	c.JSON(http.StatusOK, teachers)
}

// GetTeacher returns one instructor by initial
func (h *Handler) GetTeacher(c *gin.Context) {
	var teacher database.Teacher
	if err := h.DB.Where("initial = ?", c.Param("initial")).First(&teacher).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Teacher not found"})
		return
	}
	c.JSON(http.StatusOK, teacher)
}

// UpdateTeacher replaces an instructor's record
func (h *Handler) UpdateTeacher(c *gin.Context) {
	var req TeacherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var teacher database.Teacher
	if err := h.DB.Where("initial = ?", c.Param("initial")).First(&teacher).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Teacher not found"})
		return
	}

	teacher.Initial = req.Initial
	teacher.Name = req.Name
	teacher.Surname = req.Surname
	teacher.Email = req.Email
	teacher.Designation = req.Designation
	teacher.Seniority = req.Seniority
	if req.Active != nil {
		teacher.Active = *req.Active
	}
	if err := h.DB.Save(&teacher).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not update teacher"})
		return
	}
	c.JSON(http.StatusOK, teacher)
}

// DeleteTeacher removes an instructor
func (h *Handler) DeleteTeacher(c *gin.Context) {
	result := h.DB.Where("initial = ?", c.Param("initial")).Delete(&database.Teacher{})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not delete teacher"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Teacher not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Teacher deleted"})
}
