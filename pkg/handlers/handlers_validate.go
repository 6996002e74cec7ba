package handlers

import (
	"net/http"
	"strconv"

	"github.com/AfzalHossan-2005021/routine-scheduler-api-go/pkg/models"
	"github.com/gin-gonic/gin"
)

// ValidateInput handles the JSON-based validation request for assigner input
func (h *Handler) ValidateInput(c *gin.Context) {
	var input models.AssignInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"valid": false,
			"error": err.Error(),
		})
		return
	}

	if len(input.Sessions) == 0 {
		c.JSON(http.StatusOK, gin.H{
			"valid": false,
			"error": "At least one scheduled session is required",
		})
		return
	}

	if len(input.Rooms) == 0 {
		c.JSON(http.StatusOK, gin.H{
			"valid": false,
			"error": "At least one room is required",
		})
		return
	}

	// Check for duplicate rooms
	roomSeen := make(map[string]bool)
	for _, room := range input.Rooms {
		if roomSeen[room] {
			c.JSON(http.StatusOK, gin.H{"valid": false, "error": "Duplicate room: " + room})
			return
		}
		roomSeen[room] = true
	}

	// Check for duplicate sessions and out-of-grid cells
	sessionSeen := make(map[string]bool)
	for _, s := range input.Sessions {
		key := assignKey(s)
		if sessionSeen[key] {
			c.JSON(http.StatusOK, gin.H{"valid": false, "error": "Duplicate session: " + key})
			return
		}
		sessionSeen[key] = true

		if !isWorkingDay(s.Day) {
			c.JSON(http.StatusOK, gin.H{"valid": false, "error": "Session " + key + " is not on a working day"})
			return
		}
		if !isGridTime(s.Time) {
			c.JSON(http.StatusOK, gin.H{"valid": false, "error": "Session " + key + " is outside the schedule grid"})
			return
		}
	}

	// Pins must reference known rooms
	for courseID, rooms := range input.Pins {
		for _, room := range rooms {
			if !roomSeen[room] {
				c.JSON(http.StatusOK, gin.H{
					"valid": false,
					"error": "Pin for " + courseID + " references unknown room " + room,
				})
				return
			}
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"valid": true,
		"stats": gin.H{
			"session_count": len(input.Sessions),
			"room_count":    len(input.Rooms),
		},
	})
}

func assignKey(s models.ScheduledSession) string {
	return s.CourseID + "/" + s.Section + "@" + s.Day + "/" + strconv.Itoa(s.Time)
}
