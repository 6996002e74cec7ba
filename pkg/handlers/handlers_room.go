package handlers

import (
	"net/http"

	"github.com/AfzalHossan-2005021/routine-scheduler-api-go/pkg/database"
	"github.com/AfzalHossan-2005021/routine-scheduler-api-go/pkg/models"
	"github.com/gin-gonic/gin"
)

// RoomRequest is the create/update payload for a room
type RoomRequest struct {
	Name   string `json:"room" binding:"required"`
	Type   string `json:"type" binding:"required,oneof=theory sessional"`
	Active *bool  `json:"active"`
}

// CreateRoom adds a room
func (h *Handler) CreateRoom(c *gin.Context) {
	var req RoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	room := database.Room{
		Name:   req.Name,
		Type:   req.Type,
		Active: req.Active == nil || *req.Active,
	}
	if err := h.DB.Create(&room).Error; err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Room already exists"})
		return
	}
	c.JSON(http.StatusCreated, room)
}

// ListRooms returns all rooms, optionally filtered by ?type=
func (h *Handler) ListRooms(c *gin.Context) {
	query := h.DB.Order("name asc")
	if t := c.Query("type"); t == models.RoomTypeTheory || t == models.RoomTypeSessional {
		query = query.Where("type = ?", t)
	}

	var rooms []database.Room
	if err := query.Find(&rooms).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch rooms"})
		return
	}
	c.JSON(http.StatusOK, toRoomList(rooms))
}

// ListLabRooms returns the active sessional rooms, the candidate pool for
// lab-room assignment
func (h *Handler) ListLabRooms(c *gin.Context) {
	var rooms []database.Room
	if err := h.DB.Where("type = ? AND active = ?", models.RoomTypeSessional, true).
		Order("name asc").Find(&rooms).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch lab rooms"})
		return
	}
	c.JSON(http.StatusOK, toRoomList(rooms))
}

func toRoomList(rooms []database.Room) []models.Room {
	list := make([]models.Room, 0, len(rooms))
	for _, room := range rooms {
		list = append(list, models.Room{Name: room.Name, Type: room.Type, Active: room.Active})
	}
	return list
}

// UpdateRoom replaces a room's record
func (h *Handler) UpdateRoom(c *gin.Context) {
	var req RoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var room database.Room
	if err := h.DB.Where("name = ?", c.Param("name")).First(&room).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Room not found"})
		return
	}

	room.Name = req.Name
	room.Type = req.Type
	if req.Active != nil {
		room.Active = *req.Active
	}
	if err := h.DB.Save(&room).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not update room"})
		return
	}
	c.JSON(http.StatusOK, room)
}

// DeleteRoom removes a room
func (h *Handler) DeleteRoom(c *gin.Context) {
	result := h.DB.Where("name = ?", c.Param("name")).Delete(&database.Room{})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not delete room"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Room not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Room deleted"})
}
