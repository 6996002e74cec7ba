package handlers

import (
	"encoding/csv"
	"net/http"
	"strconv"
	"strings"

	"github.com/AfzalHossan-2005021/routine-scheduler-api-go/pkg/assign"
	"github.com/AfzalHossan-2005021/routine-scheduler-api-go/pkg/database"
	"github.com/AfzalHossan-2005021/routine-scheduler-api-go/pkg/models"
	"github.com/gin-gonic/gin"
)

// loadAssignInput assembles the assigner input from the persisted lab
// schedules, sessional rooms, pins and the previously saved allocation.
func (h *Handler) loadAssignInput() (*models.AssignInput, error) {
	var courses []database.Course
	if err := h.DB.Where("type = ?", models.CourseTypeSessional).Find(&courses).Error; err != nil {
		return nil, err
	}

	courseByID := make(map[string]database.Course, len(courses))
	for _, course := range courses {
		courseByID[course.CourseID] = course
	}

	var slots []database.TheorySlot
	if err := h.DB.Find(&slots).Error; err != nil {
		return nil, err
	}

	// Scheduled lab sessions are the grid cells holding a sessional course
	var sessions []models.ScheduledSession
	for _, slot := range slots {
		course, ok := courseByID[slot.CourseID]
		if !ok {
			continue
		}
		sessions = append(sessions, models.ScheduledSession{
			CourseID:  slot.CourseID,
			Batch:     slot.Batch,
			Section:   slot.Section,
			Day:       slot.Day,
			Time:      slot.Time,
			LevelTerm: course.LevelTerm,
		})
	}

	var rooms []database.Room
	if err := h.DB.Where("type = ? AND active = ?", models.RoomTypeSessional, true).
		Order("name asc").Find(&rooms).Error; err != nil {
		return nil, err
	}
	roomNames := make([]string, 0, len(rooms))
	for _, room := range rooms {
		roomNames = append(roomNames, room.Name)
	}

	var pinRows []database.CourseRoomPin
	if err := h.DB.Order("course_id asc, priority asc").Find(&pinRows).Error; err != nil {
		return nil, err
	}
	pins := make(map[string][]string)
	for _, pin := range pinRows {
		pins[pin.CourseID] = append(pins[pin.CourseID], pin.Room)
	}

	var saved []database.LabAssignment
	if err := h.DB.Find(&saved).Error; err != nil {
		return nil, err
	}
	prior := make([]models.AllocationEntry, 0, len(saved))
	for _, entry := range saved {
		prior = append(prior, models.AllocationEntry{
			CourseID: entry.CourseID,
			Batch:    entry.Batch,
			Section:  entry.Section,
			Room:     entry.Room,
		})
	}

	return &models.AssignInput{
		Sessions: sessions,
		Rooms:    roomNames,
		Pins:     pins,
		Prior:    prior,
	}, nil
}

// GenerateAssignments runs the greedy assigner and returns the proposed
// allocation without committing it. The caller may Save or discard it.
// A request body overrides the persisted input for what-if runs.
func (h *Handler) GenerateAssignments(c *gin.Context) {
	var input *models.AssignInput

	if c.Request.ContentLength > 0 {
		var body models.AssignInput
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		input = &body
	} else {
		loaded, err := h.loadAssignInput()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not load scheduling data"})
			return
		}
		input = loaded
	}

	result := assign.New(input.Sessions, input.Rooms, input.Pins, input.Prior).Run()

	h.RecordUsage(c, len(input.Sessions), len(input.Rooms))

	c.JSON(http.StatusOK, models.AssignResponse{
		Assignments: result.Assignments,
		Rooms:       assign.RoomView(input.Rooms, result.Assignments),
		LevelTerms:  assign.LevelTermView(result.Assignments),
		Unassigned:  result.Unassigned,
	})
}

// SaveAssignments replaces the committed allocation wholesale
func (h *Handler) SaveAssignments(c *gin.Context) {
	var entries []models.AllocationEntry
	if err := c.ShouldBindJSON(&entries); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rows := make([]database.LabAssignment, 0, len(entries))
	for _, entry := range entries {
		rows = append(rows, database.LabAssignment{
			CourseID: entry.CourseID,
			Batch:    entry.Batch,
			Section:  entry.Section,
			Room:     entry.Room,
		})
	}

	if err := database.ReplaceLabAssignments(h.DB, rows); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not save assignment"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"saved": len(rows)})
}

// GetAssignments returns the committed allocation in room -> courses and
// course -> room shapes
func (h *Handler) GetAssignments(c *gin.Context) {
	var saved []database.LabAssignment
	if err := h.DB.Order("room asc, course_id asc").Find(&saved).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch assignments"})
		return
	}

	byRoom := make(map[string][]database.LabAssignment)
	roomOrder := []string{}
	for _, entry := range saved {
		if _, ok := byRoom[entry.Room]; !ok {
			roomOrder = append(roomOrder, entry.Room)
		}
		byRoom[entry.Room] = append(byRoom[entry.Room], entry)
	}

	rooms := make([]gin.H, 0, len(roomOrder))
	for _, room := range roomOrder {
		rooms = append(rooms, gin.H{
			"room":    room,
			"count":   len(byRoom[room]),
			"courses": byRoom[room],
		})
	}

	c.JSON(http.StatusOK, gin.H{"rooms": rooms, "courses": saved})
}

// OverrideRoomRequest is the manual reassignment payload
type OverrideRoomRequest struct {
	CourseID string `json:"course_id" binding:"required"`
	Batch    int    `json:"batch" binding:"required"`
	Section  string `json:"section" binding:"required"`
	Room     string `json:"room" binding:"required"`
}

// OverrideRoom moves a course+section into another room. No (day, time)
// conflict check is performed; an administrator override can double-book.
func (h *Handler) OverrideRoom(c *gin.Context) {
	var req OverrideRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result := h.DB.Model(&database.LabAssignment{}).
		Where("course_id = ? AND batch = ? AND section = ?", req.CourseID, req.Batch, req.Section).
		Update("room", req.Room)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not update assignment"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Assignment not found"})
		return
	}

	// Recompute counts so the caller can audit the move
	type roomCount struct {
		Room  string `json:"room"`
		Count int    `json:"count"`
	}
	var counts []roomCount
	h.DB.Model(&database.LabAssignment{}).
		Select("room, count(*) as count").Group("room").Order("room asc").Scan(&counts)

	c.JSON(http.StatusOK, gin.H{"moved": result.RowsAffected, "counts": counts})
}

// ExportAssignmentsCSV writes the committed allocation as a spreadsheet
func (h *Handler) ExportAssignmentsCSV(c *gin.Context) {
	var saved []database.LabAssignment
	if err := h.DB.Order("room asc, course_id asc").Find(&saved).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch assignments"})
		return
	}

	var out strings.Builder
	writer := csv.NewWriter(&out)
	writer.Write([]string{"room", "course_id", "batch", "section"})
	for _, entry := range saved {
		writer.Write([]string{entry.Room, entry.CourseID, strconv.Itoa(entry.Batch), entry.Section})
	}
	writer.Flush()

	c.Header("Content-Disposition", `attachment; filename="lab-assignments.csv"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(out.String()))
}

// GetCoursePins returns the pinned rooms for one course, in pin order
func (h *Handler) GetCoursePins(c *gin.Context) {
	var pins []database.CourseRoomPin
	if err := h.DB.Where("course_id = ?", c.Param("id")).
		Order("priority asc").Find(&pins).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch pins"})
		return
	}

	rooms := make([]string, 0, len(pins))
	for _, pin := range pins {
		rooms = append(rooms, pin.Room)
	}
	c.JSON(http.StatusOK, gin.H{"course_id": c.Param("id"), "rooms": rooms})
}

// SetCoursePins replaces the pinned rooms for one course
func (h *Handler) SetCoursePins(c *gin.Context) {
	var req struct {
		Rooms []string `json:"rooms" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := database.ReplaceCoursePins(h.DB, c.Param("id"), req.Rooms); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not save pins"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"course_id": c.Param("id"), "rooms": req.Rooms})
}
