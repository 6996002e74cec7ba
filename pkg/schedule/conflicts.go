package schedule

import (
	"fmt"

	"github.com/AfzalHossan-2005021/routine-scheduler-api-go/pkg/models"
)

// Warning kinds raised while filling the theory-schedule grid.
const (
	WarnSameDay      = "same-course-same-day"
	WarnWeeklyQuota  = "weekly-quota-exceeded"
	WarnOtherSection = "same-slot-other-section"
)

// Warning is an advisory conflict raised while placing a course into a grid
// cell. Warnings never block a save; the dashboard shows them as toasts.
type Warning struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// Entry is one filled cell of the theory-schedule grid
type Entry struct {
	Day      string `json:"day"`
	Time     int    `json:"time"`
	CourseID string `json:"course_id"`
	Batch    int    `json:"batch"`
	Section  string `json:"section"`
}

// Check inspects placing course into the (day, time) cell for a section
// against the already filled grid and returns any advisory warnings.
func Check(grid []Entry, course models.Course, section, day string, time int) []Warning {
	var warnings []Warning

	sameDay := 0
	weekly := 1 // the cell being placed
	for _, e := range grid {
		if e.CourseID != course.CourseID {
			continue
		}
		if e.Section == section {
			weekly++
			if e.Day == day {
				sameDay++
			}
		} else if e.Day == day && e.Time == time {
			warnings = append(warnings, Warning{
				Kind:    WarnOtherSection,
				Message: fmt.Sprintf("%s is already scheduled at %s/%d for section %s", course.CourseID, day, time, e.Section),
			})
		}
	}

	if sameDay > 0 {
		warnings = append(warnings, Warning{
			Kind:    WarnSameDay,
			Message: fmt.Sprintf("%s already has a class on %s for section %s", course.CourseID, day, section),
		})
	}
	if course.ClassPerWeek > 0 && float64(weekly) > course.ClassPerWeek {
		warnings = append(warnings, Warning{
			Kind:    WarnWeeklyQuota,
			Message: fmt.Sprintf("%s section %s now has %d slots per week, declared %g", course.CourseID, section, weekly, course.ClassPerWeek),
		})
	}

	return warnings
}
