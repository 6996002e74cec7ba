package schedule

import (
	"testing"

	"github.com/AfzalHossan-2005021/routine-scheduler-api-go/pkg/models"
)

func course(id string, perWeek float64) models.Course {
	return models.Course{CourseID: id, Batch: 21, ClassPerWeek: perWeek}
}

func TestCheck_NoConflict(t *testing.T) {
	grid := []Entry{
		{Day: "Saturday", Time: 8, CourseID: "CSE201", Batch: 21, Section: "A"},
	}

	warnings := Check(grid, course("CSE203", 3), "A", "Saturday", 9)

	if len(warnings) != 0 {
		t.Errorf("Expected no warnings, got %v", warnings)
	}
}

func TestCheck_SameCourseSameDay(t *testing.T) {
	grid := []Entry{
		{Day: "Saturday", Time: 8, CourseID: "CSE201", Batch: 21, Section: "A"},
	}

	warnings := Check(grid, course("CSE201", 3), "A", "Saturday", 10)

	if len(warnings) != 1 || warnings[0].Kind != WarnSameDay {
		t.Errorf("Expected a %s warning, got %v", WarnSameDay, warnings)
	}
}

func TestCheck_WeeklyQuotaExceeded(t *testing.T) {
	grid := []Entry{
		{Day: "Saturday", Time: 8, CourseID: "CSE201", Batch: 21, Section: "A"},
		{Day: "Sunday", Time: 9, CourseID: "CSE201", Batch: 21, Section: "A"},
		{Day: "Monday", Time: 10, CourseID: "CSE201", Batch: 21, Section: "A"},
	}

	warnings := Check(grid, course("CSE201", 3), "A", "Tuesday", 11)

	found := false
	for _, w := range warnings {
		if w.Kind == WarnWeeklyQuota {
			found = true
		}
	}
	if !found {
		t.Errorf("Expected a %s warning, got %v", WarnWeeklyQuota, warnings)
	}
}

func TestCheck_SameSlotOtherSection(t *testing.T) {
	grid := []Entry{
		{Day: "Saturday", Time: 8, CourseID: "CSE201", Batch: 21, Section: "B"},
	}

	warnings := Check(grid, course("CSE201", 3), "A", "Saturday", 8)

	if len(warnings) != 1 || warnings[0].Kind != WarnOtherSection {
		t.Errorf("Expected a %s warning, got %v", WarnOtherSection, warnings)
	}
}

func TestCheck_AdvisoryOnly(t *testing.T) {
	// Every conflict at once still just returns warnings
	grid := []Entry{
		{Day: "Saturday", Time: 8, CourseID: "CSE201", Batch: 21, Section: "B"},
		{Day: "Saturday", Time: 9, CourseID: "CSE201", Batch: 21, Section: "A"},
	}

	warnings := Check(grid, course("CSE201", 1), "A", "Saturday", 8)

	if len(warnings) != 3 {
		t.Errorf("Expected 3 warnings, got %d: %v", len(warnings), warnings)
	}
}
