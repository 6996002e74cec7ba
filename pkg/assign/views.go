package assign

import (
	"sort"

	"github.com/AfzalHossan-2005021/routine-scheduler-api-go/pkg/models"
)

// RoomView reshapes assignments into the room -> courses view, in room-list
// order. Rooms that received nothing still appear with a zero count.
func RoomView(rooms []string, assignments []models.Assignment) []models.RoomAllocation {
	index := make(map[string]int, len(rooms))
	view := make([]models.RoomAllocation, 0, len(rooms))
	for _, room := range rooms {
		index[room] = len(view)
		view = append(view, models.RoomAllocation{Room: room})
	}

	for _, asgn := range assignments {
		i, ok := index[asgn.Room]
		if !ok {
			// Pinned room outside the supplied list
			i = len(view)
			index[asgn.Room] = i
			view = append(view, models.RoomAllocation{Room: asgn.Room})
		}
		view[i].Courses = append(view[i].Courses, asgn)
		view[i].Count++
	}

	return view
}

// LevelTermView reshapes assignments into the level-term -> rooms view,
// ordered by level-term priority. Each room is listed once per level-term.
func LevelTermView(assignments []models.Assignment) []models.LevelTermRooms {
	roomsByLT := make(map[string][]string)
	for _, asgn := range assignments {
		if !contains(roomsByLT[asgn.LevelTerm], asgn.Room) {
			roomsByLT[asgn.LevelTerm] = append(roomsByLT[asgn.LevelTerm], asgn.Room)
		}
	}

	view := make([]models.LevelTermRooms, 0, len(roomsByLT))
	for lt, rooms := range roomsByLT {
		view = append(view, models.LevelTermRooms{LevelTerm: lt, Rooms: rooms})
	}
	sort.SliceStable(view, func(i, j int) bool {
		vi, _ := LevelTermValue(view[i].LevelTerm)
		vj, _ := LevelTermValue(view[j].LevelTerm)
		if vi != vj {
			return vi < vj
		}
		return view[i].LevelTerm < view[j].LevelTerm
	})
	return view
}

// UpdateCourseRoom moves a course+section out of whichever room currently
// holds it and into newRoom, recomputing both counts. No (day, time) conflict
// check is performed; an administrator override can double-book a room.
func UpdateCourseRoom(view []models.RoomAllocation, courseID string, batch int, section, newRoom string) []models.RoomAllocation {
	var moved []models.Assignment

	for i := range view {
		kept := view[i].Courses[:0]
		for _, asgn := range view[i].Courses {
			if asgn.CourseID == courseID && asgn.Batch == batch && asgn.Section == section {
				moved = append(moved, asgn)
				continue
			}
			kept = append(kept, asgn)
		}
		view[i].Courses = kept
		view[i].Count = len(kept)
	}

	target := -1
	for i := range view {
		if view[i].Room == newRoom {
			target = i
			break
		}
	}
	if target == -1 {
		view = append(view, models.RoomAllocation{Room: newRoom})
		target = len(view) - 1
	}

	for _, asgn := range moved {
		asgn.Room = newRoom
		view[target].Courses = append(view[target].Courses, asgn)
	}
	view[target].Count = len(view[target].Courses)

	return view
}
