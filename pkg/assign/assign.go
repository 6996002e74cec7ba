package assign

import (
	"fmt"
	"log"
	"sort"
	"strconv"
	"strings"

	"github.com/AfzalHossan-2005021/routine-scheduler-api-go/pkg/models"
)

// Assigner handles the logic of assigning lab rooms to scheduled sessions
type Assigner struct {
	Sessions []models.ScheduledSession
	Rooms    []string
	Pins     map[string][]string
	Prior    []models.AllocationEntry
}

// Result is the outcome of one assignment run
type Result struct {
	Assignments []models.Assignment
	Unassigned  []models.UnassignedSession
}

// New creates a new assigner instance
func New(sessions []models.ScheduledSession, rooms []string, pins map[string][]string, prior []models.AllocationEntry) *Assigner {
	return &Assigner{
		Sessions: sessions,
		Rooms:    rooms,
		Pins:     pins,
		Prior:    prior,
	}
}

// LevelTermValue parses a level-term string like "L-2 T-1" into its numeric
// priority (level + term/10). Unparsable strings report ok=false and sort as 0.
func LevelTermValue(lt string) (float64, bool) {
	fields := strings.Fields(lt)
	if len(fields) != 2 {
		return 0, false
	}
	level, err1 := strconv.Atoi(strings.TrimPrefix(fields[0], "L-"))
	term, err2 := strconv.Atoi(strings.TrimPrefix(fields[1], "T-"))
	if err1 != nil || err2 != nil {
		return 0, false
	}
	return float64(level) + float64(term)/10, true
}

// SessionKey is the course+section lookup key used for fixed-room seeding
func SessionKey(courseID string, batch int, section string) string {
	return fmt.Sprintf("%s-%d-%s", courseID, batch, section)
}

// sortedSessions returns the sessions ordered by level-term priority.
// A session with an unparsable level-term compares equal to everything, so
// it keeps its input position instead of sorting ahead of the whole list.
func (a *Assigner) sortedSessions() []models.ScheduledSession {
	sessions := make([]models.ScheduledSession, len(a.Sessions))
	copy(sessions, a.Sessions)
	sort.SliceStable(sessions, func(i, j int) bool {
		vi, oki := LevelTermValue(sessions[i].LevelTerm)
		vj, okj := LevelTermValue(sessions[j].LevelTerm)
		if !oki || !okj {
			return false
		}
		return vi < vj
	})
	return sessions
}

// fixedRooms builds the course+section -> preferred rooms lookup, seeded from
// the previously saved allocation and then overwritten by administrator pins.
// Pins are keyed per course and apply to every section of that course.
func (a *Assigner) fixedRooms() map[string][]string {
	fixed := make(map[string][]string)
	for _, entry := range a.Prior {
		key := SessionKey(entry.CourseID, entry.Batch, entry.Section)
		fixed[key] = append(fixed[key], entry.Room)
	}
	for _, session := range a.Sessions {
		if rooms, ok := a.Pins[session.CourseID]; ok {
			key := SessionKey(session.CourseID, session.Batch, session.Section)
			fixed[key] = append([]string(nil), rooms...)
		}
	}
	return fixed
}

// Run performs a single greedy pass over the sessions in level-term order,
// booking at most one session per room per (day, time). Sessions with no free
// room are reported in Unassigned and omitted from the assignment list.
func (a *Assigner) Run() *Result {
	bookings := make(map[string]map[int][]string, len(models.Days))
	for _, day := range models.Days {
		bookings[day] = make(map[int][]string, len(models.LabTimes))
		for _, t := range models.LabTimes {
			bookings[day][t] = nil
		}
	}

	fixed := a.fixedRooms()
	result := &Result{}

	for _, session := range a.sortedSessions() {
		dayBookings, ok := bookings[session.Day]
		if !ok {
			log.Printf("unknown day %q for %s section %s", session.Day, session.CourseID, session.Section)
			result.Unassigned = append(result.Unassigned, models.UnassignedSession{
				Session: session,
				Reason:  fmt.Sprintf("%q is not a working day", session.Day),
			})
			continue
		}
		booked := dayBookings[session.Time]

		room := ""
		for _, candidate := range fixed[SessionKey(session.CourseID, session.Batch, session.Section)] {
			if !contains(booked, candidate) {
				room = candidate
				break
			}
		}
		if room == "" {
			for _, candidate := range a.Rooms {
				if !contains(booked, candidate) {
					room = candidate
					break
				}
			}
		}

		if room == "" {
			log.Printf("no free room for %s section %s at %s/%d", session.CourseID, session.Section, session.Day, session.Time)
			result.Unassigned = append(result.Unassigned, models.UnassignedSession{
				Session: session,
				Reason:  fmt.Sprintf("all %d rooms are booked at %s/%d", len(a.Rooms), session.Day, session.Time),
			})
			continue
		}

		dayBookings[session.Time] = append(dayBookings[session.Time], room)
		result.Assignments = append(result.Assignments, models.Assignment{
			CourseID:  session.CourseID,
			Batch:     session.Batch,
			Section:   session.Section,
			Day:       session.Day,
			Time:      session.Time,
			LevelTerm: session.LevelTerm,
			Room:      room,
		})
	}

	return result
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
