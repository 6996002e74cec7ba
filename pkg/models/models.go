package models

// Room types as stored by the dashboard.
const (
	RoomTypeTheory    = "theory"
	RoomTypeSessional = "sessional"
)

// Course types. They share the room-type wire values: a sessional course
// needs a sessional room.
const (
	CourseTypeTheory    = "theory"
	CourseTypeSessional = "sessional"
)

// Days of the working week, Saturday first.
var Days = []string{"Saturday", "Sunday", "Monday", "Tuesday", "Wednesday"}

// LabTimes are the hour slots a sessional class can start at.
var LabTimes = []int{8, 11, 2}

// TheoryTimes are the hour slots of the theory-schedule grid.
var TheoryTimes = []int{8, 9, 10, 11, 12, 1, 2, 3, 4}

// Room represents a class or lab room
type Room struct {
	Name   string `json:"room"`
	Type   string `json:"type"`
	Active bool   `json:"active"`
}

// Course represents a course offering in the running session
type Course struct {
	CourseID     string   `json:"course_id"`
	Name         string   `json:"name"`
	Type         string   `json:"type"`
	Batch        int      `json:"batch"`
	From         string   `json:"from"`
	To           string   `json:"to"`
	Sections     []string `json:"sections"`
	ClassPerWeek float64  `json:"class_per_week"`
	LevelTerm    string   `json:"level_term"`
}

// ScheduledSession is one weekly occurrence of a course+section at a day/time
type ScheduledSession struct {
	CourseID  string `json:"course_id"`
	Batch     int    `json:"batch"`
	Section   string `json:"section"`
	Day       string `json:"day"`
	Time      int    `json:"time"`
	LevelTerm string `json:"level_term"`
}

// AllocationEntry is one committed course+section -> room record,
// the unit of the wholesale save payload
type AllocationEntry struct {
	CourseID string `json:"course_id"`
	Batch    int    `json:"batch"`
	Section  string `json:"section"`
	Room     string `json:"room"`
}

// Assignment pairs a scheduled session with the room it received
type Assignment struct {
	CourseID  string `json:"course_id"`
	Batch     int    `json:"batch"`
	Section   string `json:"section"`
	Day       string `json:"day"`
	Time      int    `json:"time"`
	LevelTerm string `json:"level_term"`
	Room      string `json:"room"`
}

// UnassignedSession records a session no room could be found for, and why
type UnassignedSession struct {
	Session ScheduledSession `json:"session"`
	Reason  string           `json:"reason"`
}

// RoomAllocation is the room -> courses view shown on the dashboard
type RoomAllocation struct {
	Room    string       `json:"room"`
	Count   int          `json:"count"`
	Courses []Assignment `json:"courses"`
}

// LevelTermRooms is the level-term -> rooms view shown on the dashboard
type LevelTermRooms struct {
	LevelTerm string   `json:"level_term"`
	Rooms     []string `json:"rooms"`
}

// AssignInput is the data structure for the assignment endpoint
type AssignInput struct {
	Sessions []ScheduledSession  `json:"sessions"`
	Rooms    []string            `json:"rooms"`
	Pins     map[string][]string `json:"pins,omitempty"`
	Prior    []AllocationEntry   `json:"prior,omitempty"`
}

// AssignResponse is the data structure for the assignment result
type AssignResponse struct {
	Assignments []Assignment        `json:"assignments"`
	Rooms       []RoomAllocation    `json:"rooms"`
	LevelTerms  []LevelTermRooms    `json:"level_terms"`
	Unassigned  []UnassignedSession `json:"unassigned,omitempty"`
}
