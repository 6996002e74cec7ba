package assign

import (
	"reflect"
	"testing"

	"github.com/AfzalHossan-2005021/routine-scheduler-api-go/pkg/models"
)

func session(courseID, section, day string, time int, levelTerm string) models.ScheduledSession {
	return models.ScheduledSession{
		CourseID:  courseID,
		Batch:     21,
		Section:   section,
		Day:       day,
		Time:      time,
		LevelTerm: levelTerm,
	}
}

func TestRun_NoDoubleBooking(t *testing.T) {
	sessions := []models.ScheduledSession{
		session("CSE102", "A", "Saturday", 8, "L-1 T-1"),
		session("CSE104", "B", "Saturday", 8, "L-1 T-1"),
		session("CSE206", "A", "Saturday", 8, "L-2 T-1"),
		session("CSE102", "B", "Sunday", 8, "L-1 T-1"),
	}
	rooms := []string{"R1", "R2", "R3"}

	result := New(sessions, rooms, nil, nil).Run()

	if len(result.Assignments) != 4 {
		t.Fatalf("Expected 4 assignments, got %d", len(result.Assignments))
	}

	seen := make(map[string]bool)
	for _, asgn := range result.Assignments {
		key := asgn.Day + "/" + asgn.Room
		if asgn.Time == 8 && seen[key] {
			t.Errorf("Room %s double-booked at %s/8", asgn.Room, asgn.Day)
		}
		seen[key] = true
	}
}

func TestRun_PinnedRoomPreferred(t *testing.T) {
	sessions := []models.ScheduledSession{
		session("CSE101", "A", "Saturday", 8, "L-1 T-1"),
	}
	rooms := []string{"R1", "R2"}
	pins := map[string][]string{"CSE101": {"R2"}}

	result := New(sessions, rooms, pins, nil).Run()

	if len(result.Assignments) != 1 {
		t.Fatalf("Expected 1 assignment, got %d", len(result.Assignments))
	}
	if result.Assignments[0].Room != "R2" {
		t.Errorf("Expected pinned room R2, got %s", result.Assignments[0].Room)
	}
}

func TestRun_PinnedRoomBookedFallsBack(t *testing.T) {
	sessions := []models.ScheduledSession{
		session("CSE102", "A", "Saturday", 8, "L-1 T-1"),
		session("CSE202", "A", "Saturday", 8, "L-2 T-1"),
	}
	rooms := []string{"R1", "R2"}
	// Both courses pinned to R2; the lower level-term takes it first
	pins := map[string][]string{"CSE102": {"R2"}, "CSE202": {"R2"}}

	result := New(sessions, rooms, pins, nil).Run()

	got := make(map[string]string)
	for _, asgn := range result.Assignments {
		got[asgn.CourseID] = asgn.Room
	}
	if got["CSE102"] != "R2" {
		t.Errorf("Expected CSE102 in pinned R2, got %s", got["CSE102"])
	}
	if got["CSE202"] != "R1" {
		t.Errorf("Expected CSE202 to fall back to R1, got %s", got["CSE202"])
	}
}

func TestRun_LevelTermOrdering(t *testing.T) {
	// "L-2 T-1" (2.1) is scheduled after "L-1 T-2" (1.2) even though it
	// comes first in the input
	sessions := []models.ScheduledSession{
		session("CSE201", "A", "Monday", 11, "L-2 T-1"),
		session("CSE106", "A", "Monday", 11, "L-1 T-2"),
	}
	rooms := []string{"R1", "R2"}

	result := New(sessions, rooms, nil, nil).Run()

	if len(result.Assignments) != 2 {
		t.Fatalf("Expected 2 assignments, got %d", len(result.Assignments))
	}
	if result.Assignments[0].CourseID != "CSE106" {
		t.Errorf("Expected CSE106 (1.2) first, got %s", result.Assignments[0].CourseID)
	}
	if result.Assignments[0].Room != "R1" {
		t.Errorf("Expected first-priority session in R1, got %s", result.Assignments[0].Room)
	}
}

func TestRun_Deterministic(t *testing.T) {
	sessions := []models.ScheduledSession{
		session("CSE208", "B", "Tuesday", 2, "L-2 T-2"),
		session("CSE102", "A", "Tuesday", 2, "L-1 T-1"),
		session("CSE302", "A", "Tuesday", 2, "L-3 T-1"),
		session("CSE102", "B", "Wednesday", 8, "L-1 T-1"),
	}
	rooms := []string{"R1", "R2", "R3"}
	pins := map[string][]string{"CSE302": {"R1"}}

	first := New(sessions, rooms, pins, nil).Run()
	second := New(sessions, rooms, pins, nil).Run()

	if !reflect.DeepEqual(first.Assignments, second.Assignments) {
		t.Errorf("Re-run produced a different allocation:\n%v\n%v", first.Assignments, second.Assignments)
	}
}

func TestRun_FullSlotDropsSession(t *testing.T) {
	sessions := []models.ScheduledSession{
		session("CSE102", "A", "Saturday", 8, "L-1 T-1"),
		session("CSE104", "A", "Saturday", 8, "L-1 T-1"),
		session("CSE202", "A", "Saturday", 8, "L-2 T-1"),
	}
	rooms := []string{"R1", "R2"}

	result := New(sessions, rooms, nil, nil).Run()

	if len(result.Assignments) != 2 {
		t.Fatalf("Expected 2 assignments, got %d", len(result.Assignments))
	}
	if len(result.Unassigned) != 1 {
		t.Fatalf("Expected 1 unassigned session, got %d", len(result.Unassigned))
	}
	if result.Unassigned[0].Session.CourseID != "CSE202" {
		t.Errorf("Expected the lowest-priority CSE202 to be dropped, got %s", result.Unassigned[0].Session.CourseID)
	}
	if result.Unassigned[0].Reason == "" {
		t.Error("Expected a reason on the unassigned session")
	}

	view := RoomView(rooms, result.Assignments)
	for _, room := range view {
		for _, asgn := range room.Courses {
			if asgn.CourseID == "CSE202" {
				t.Errorf("Dropped session leaked into room view for %s", room.Room)
			}
		}
	}
}

func TestRun_PriorAllocationSeedsFixedRooms(t *testing.T) {
	sessions := []models.ScheduledSession{
		session("CSE102", "A", "Saturday", 8, "L-1 T-1"),
	}
	rooms := []string{"R1", "R2", "R3"}
	prior := []models.AllocationEntry{
		{CourseID: "CSE102", Batch: 21, Section: "A", Room: "R3"},
	}

	result := New(sessions, rooms, nil, prior).Run()

	if result.Assignments[0].Room != "R3" {
		t.Errorf("Expected previously saved R3 to be reused, got %s", result.Assignments[0].Room)
	}
}

func TestRun_PinOverridesPrior(t *testing.T) {
	sessions := []models.ScheduledSession{
		session("CSE102", "A", "Saturday", 8, "L-1 T-1"),
	}
	rooms := []string{"R1", "R2", "R3"}
	prior := []models.AllocationEntry{
		{CourseID: "CSE102", Batch: 21, Section: "A", Room: "R3"},
	}
	pins := map[string][]string{"CSE102": {"R2"}}

	result := New(sessions, rooms, pins, prior).Run()

	if result.Assignments[0].Room != "R2" {
		t.Errorf("Expected pin R2 to override prior R3, got %s", result.Assignments[0].Room)
	}
}

func TestRun_UnknownDayGoesUnassigned(t *testing.T) {
	sessions := []models.ScheduledSession{
		session("CSE102", "A", "Friday", 8, "L-1 T-1"),
		session("CSE104", "A", "Saturday", 8, "L-1 T-1"),
	}
	rooms := []string{"R1", "R2"}

	result := New(sessions, rooms, nil, nil).Run()

	if len(result.Assignments) != 1 || result.Assignments[0].CourseID != "CSE104" {
		t.Fatalf("Expected only the Saturday session assigned, got %v", result.Assignments)
	}
	if len(result.Unassigned) != 1 {
		t.Fatalf("Expected 1 unassigned session, got %d", len(result.Unassigned))
	}
	if result.Unassigned[0].Session.Day != "Friday" {
		t.Errorf("Expected the Friday session reported, got %+v", result.Unassigned[0])
	}
	if result.Unassigned[0].Reason == "" {
		t.Error("Expected a reason on the unassigned session")
	}
}

func TestRun_OffGridTimeStillBooks(t *testing.T) {
	// A sessional class sitting at a theory hour slot still gets a room,
	// and the slot exclusivity still holds there
	sessions := []models.ScheduledSession{
		session("CSE102", "A", "Saturday", 9, "L-1 T-1"),
		session("CSE104", "A", "Saturday", 9, "L-1 T-1"),
	}
	rooms := []string{"R1"}

	result := New(sessions, rooms, nil, nil).Run()

	if len(result.Assignments) != 1 {
		t.Fatalf("Expected 1 assignment, got %d", len(result.Assignments))
	}
	if result.Assignments[0].Room != "R1" {
		t.Errorf("Expected R1, got %s", result.Assignments[0].Room)
	}
	if len(result.Unassigned) != 1 {
		t.Errorf("Expected the second session unassigned, got %d", len(result.Unassigned))
	}
}

func TestRun_UnparsableLevelTermKeepsPosition(t *testing.T) {
	sessions := []models.ScheduledSession{
		session("CSE202", "A", "Saturday", 8, "L-2 T-1"),
		session("CSE999", "A", "Sunday", 8, "junk"),
	}
	rooms := []string{"R1"}

	result := New(sessions, rooms, nil, nil).Run()

	if len(result.Assignments) != 2 {
		t.Fatalf("Expected 2 assignments, got %d", len(result.Assignments))
	}
	if result.Assignments[0].CourseID != "CSE202" {
		t.Errorf("Unparsable level-term jumped ahead: got %s first", result.Assignments[0].CourseID)
	}
}

func TestLevelTermValue(t *testing.T) {
	cases := []struct {
		in    string
		value float64
		ok    bool
	}{
		{"L-1 T-2", 1.2, true},
		{"L-2 T-1", 2.1, true},
		{"L-4 T-2", 4.2, true},
		{"", 0, false},
		{"Level 2", 0, false},
		{"L-x T-1", 0, false},
	}
	for _, c := range cases {
		value, ok := LevelTermValue(c.in)
		if value != c.value || ok != c.ok {
			t.Errorf("LevelTermValue(%q) = (%v, %v), expected (%v, %v)", c.in, value, ok, c.value, c.ok)
		}
	}
}

func TestUpdateCourseRoom(t *testing.T) {
	asgn := models.Assignment{
		CourseID: "CSE102", Batch: 21, Section: "A",
		Day: "Saturday", Time: 8, LevelTerm: "L-1 T-1", Room: "R1",
	}
	view := []models.RoomAllocation{
		{Room: "R1", Count: 1, Courses: []models.Assignment{asgn}},
		{Room: "R2", Count: 0},
	}

	view = UpdateCourseRoom(view, "CSE102", 21, "A", "R2")

	if view[0].Count != 0 || len(view[0].Courses) != 0 {
		t.Errorf("Expected R1 emptied, got count %d", view[0].Count)
	}
	if view[1].Count != 1 || len(view[1].Courses) != 1 {
		t.Fatalf("Expected R2 to hold 1 course, got count %d", view[1].Count)
	}
	if view[1].Courses[0].Room != "R2" {
		t.Errorf("Moved assignment still names room %s", view[1].Courses[0].Room)
	}
}

func TestUpdateCourseRoom_NewRoomBucket(t *testing.T) {
	asgn := models.Assignment{CourseID: "CSE102", Batch: 21, Section: "A", Room: "R1"}
	view := []models.RoomAllocation{
		{Room: "R1", Count: 1, Courses: []models.Assignment{asgn}},
	}

	view = UpdateCourseRoom(view, "CSE102", 21, "A", "R9")

	if len(view) != 2 || view[1].Room != "R9" || view[1].Count != 1 {
		t.Errorf("Expected a new R9 bucket with 1 course, got %+v", view)
	}
}

func TestLevelTermView(t *testing.T) {
	assignments := []models.Assignment{
		{CourseID: "CSE202", LevelTerm: "L-2 T-1", Room: "R2"},
		{CourseID: "CSE102", LevelTerm: "L-1 T-2", Room: "R1"},
		{CourseID: "CSE104", LevelTerm: "L-1 T-2", Room: "R1"},
	}

	view := LevelTermView(assignments)

	if len(view) != 2 {
		t.Fatalf("Expected 2 level-terms, got %d", len(view))
	}
	if view[0].LevelTerm != "L-1 T-2" {
		t.Errorf("Expected L-1 T-2 first, got %s", view[0].LevelTerm)
	}
	if len(view[0].Rooms) != 1 {
		t.Errorf("Expected R1 listed once, got %v", view[0].Rooms)
	}
}
