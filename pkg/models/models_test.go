package models

import "testing"

// The assignment pipeline matches sessional courses with sessional rooms by
// these wire values; the DB queries break silently if they drift.
func TestTypeConstantWireValues(t *testing.T) {
	if RoomTypeTheory != "theory" || RoomTypeSessional != "sessional" {
		t.Errorf("Unexpected room type values: %q, %q", RoomTypeTheory, RoomTypeSessional)
	}
	if CourseTypeTheory != RoomTypeTheory {
		t.Errorf("Course and room theory types diverged: %q vs %q", CourseTypeTheory, RoomTypeTheory)
	}
	if CourseTypeSessional != RoomTypeSessional {
		t.Errorf("Course and room sessional types diverged: %q vs %q", CourseTypeSessional, RoomTypeSessional)
	}
}

func TestScheduleGridConstants(t *testing.T) {
	if len(Days) != 5 || Days[0] != "Saturday" || Days[4] != "Wednesday" {
		t.Errorf("Unexpected working week: %v", Days)
	}
	if len(TheoryTimes) != 9 {
		t.Errorf("Unexpected theory grid slots: %v", TheoryTimes)
	}
	for _, labTime := range LabTimes {
		found := false
		for _, gridTime := range TheoryTimes {
			if labTime == gridTime {
				found = true
			}
		}
		if !found {
			t.Errorf("Lab slot %d is not a grid slot", labTime)
		}
	}
}
