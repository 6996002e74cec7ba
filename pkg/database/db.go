package database

import (
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Teacher represents the teachers table (instructors, not a DB account)
type Teacher struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Initial     string    `gorm:"unique;not null" json:"initial"`
	Name        string    `gorm:"not null" json:"name"`
	Surname     string    `json:"surname"`
	Email       string    `gorm:"unique;not null" json:"email"`
	Designation string    `json:"designation"`
	Seniority   int       `gorm:"default:0" json:"seniority"`
	Active      bool      `gorm:"default:true" json:"active"`
	CreatedAt   time.Time `json:"created_at"`
}

// Room represents the rooms table
type Room struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	Name   string `gorm:"unique;not null" json:"room"`
	Type   string `gorm:"not null" json:"type"`
	Active bool   `gorm:"default:true" json:"active"`
}

// Section represents the sections table; (batch, section, department) is the
// natural key
type Section struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	Batch      int    `gorm:"uniqueIndex:idx_batch_section_dept;not null" json:"batch"`
	Section    string `gorm:"uniqueIndex:idx_batch_section_dept;not null" json:"section"`
	Department string `gorm:"uniqueIndex:idx_batch_section_dept;not null" json:"department"`
	Room       string `json:"room"`
	Session    string `json:"session"`
	LevelTerm  string `json:"level_term"`
}

// Course represents the courses table. Sections is the list of section
// labels the offering runs for, stored as a JSON column.
type Course struct {
	ID           uint     `gorm:"primaryKey" json:"id"`
	CourseID     string   `gorm:"unique;not null" json:"course_id"`
	Name         string   `gorm:"not null" json:"name"`
	Type         string   `gorm:"not null" json:"type"`
	Batch        int      `json:"batch"`
	FromDept     string   `gorm:"column:from_dept" json:"from"`
	ToDept       string   `gorm:"column:to_dept" json:"to"`
	Sections     []string `gorm:"serializer:json" json:"sections"`
	ClassPerWeek float64  `json:"class_per_week"`
	LevelTerm    string   `json:"level_term"`
}

// TheorySlot represents one filled cell of the theory-schedule grid
type TheorySlot struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Day      string `gorm:"uniqueIndex:idx_cell;not null" json:"day"`
	Time     int    `gorm:"uniqueIndex:idx_cell;not null" json:"time"`
	Batch    int    `gorm:"uniqueIndex:idx_cell;not null" json:"batch"`
	Section  string `gorm:"uniqueIndex:idx_cell;not null" json:"section"`
	CourseID string `gorm:"not null" json:"course_id"`
}

// LabAssignment represents the committed lab-room allocation, replaced
// wholesale on every save
type LabAssignment struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	CourseID string `gorm:"not null" json:"course_id"`
	Batch    int    `gorm:"not null" json:"batch"`
	Section  string `gorm:"not null" json:"section"`
	Room     string `gorm:"not null" json:"room"`
}

// CourseRoomPin represents an administrator "must use" room pin
type CourseRoomPin struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	CourseID string `gorm:"uniqueIndex:idx_course_room;not null" json:"course_id"`
	Room     string `gorm:"uniqueIndex:idx_course_room;not null" json:"room"`
	Priority int    `gorm:"default:0" json:"priority"`
}

// APIKey represents the api_keys table
type APIKey struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	Key        string     `gorm:"unique;not null" json:"key"`
	Name       string     `gorm:"not null" json:"name"`
	KeyPreview string     `json:"key_preview"`
	RateLimit  int        `gorm:"default:10000" json:"rate_limit"`
	CreatedAt  time.Time  `json:"created_at"`
	LastUsed   *time.Time `json:"last_used"`
}

// APIUsage represents the api_usage table
type APIUsage struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	KeyID         uint   `gorm:"uniqueIndex:idx_key_date;not null" json:"key_id"`
	Date          string `gorm:"uniqueIndex:idx_key_date;not null" json:"date"`
	RequestCount  int    `gorm:"default:0" json:"request_count"`
	TotalSessions int    `gorm:"default:0" json:"total_sessions"`
	TotalRooms    int    `gorm:"default:0" json:"total_rooms"`
}

// AdminUser represents the admin_users table
type AdminUser struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"unique;not null" json:"username"`
	PasswordHash string    `gorm:"not null" json:"password_hash"`
	CreatedAt    time.Time `json:"created_at"`
}

// InitDB initializes the database connection and migrates the schema
func InitDB() *gorm.DB {
	var db *gorm.DB
	var err error

	dsn := os.Getenv("DATABASE_URL")
	if dsn != "" {
		db, err = gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), &gorm.Config{
			PrepareStmt: false,
		})
	} else {
		dbPath := os.Getenv("DATA_PATH")
		if dbPath == "" {
			dbPath = "routine.db"
		}
		db, err = gorm.Open(sqlite.Open(dbPath), &gorm.Config{})
	}

	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	// Auto Migration
	db.AutoMigrate(
		&Teacher{}, &Room{}, &Section{}, &Course{},
		&TheorySlot{}, &LabAssignment{}, &CourseRoomPin{},
		&APIKey{}, &APIUsage{}, &AdminUser{},
	)

	return db
}

// ReplaceLabAssignments replaces the committed allocation wholesale inside a
// transaction; the save protocol has no partial update.
func ReplaceLabAssignments(db *gorm.DB, assignments []LabAssignment) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&LabAssignment{}).Error; err != nil {
			return err
		}
		if len(assignments) == 0 {
			return nil
		}
		return tx.Create(&assignments).Error
	})
}

// ReplaceCoursePins replaces the pin set for one course
func ReplaceCoursePins(db *gorm.DB, courseID string, rooms []string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("course_id = ?", courseID).Delete(&CourseRoomPin{}).Error; err != nil {
			return err
		}
		for i, room := range rooms {
			pin := CourseRoomPin{CourseID: courseID, Room: room, Priority: i}
			if err := tx.Create(&pin).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
