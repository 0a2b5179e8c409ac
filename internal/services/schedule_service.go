package services

import (
	"slices"
	"strings"

	"github.com/Isaiahshap/pulse/internal/catalog"
	"github.com/Isaiahshap/pulse/internal/models"
)

type scheduleSource interface {
	Schedule() models.WeekSchedule
}

// ScheduleService answers day/slot lookups against a snapshot of the weekly
// grid taken at construction. Missing keys are never an error.
type ScheduleService struct {
	week models.WeekSchedule
}

func NewScheduleService(source scheduleSource) *ScheduleService {
	return &ScheduleService{week: source.Schedule()}
}

func (s *ScheduleService) Days() []string  { return slices.Clone(catalog.Days) }
func (s *ScheduleService) Slots() []string { return slices.Clone(catalog.Slots) }

// CanonicalDay resolves raw case-insensitively to one of the seven day
// literals.
func CanonicalDay(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	for _, day := range catalog.Days {
		if strings.EqualFold(day, raw) {
			return day, true
		}
	}
	return "", false
}

func CanonicalSlot(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	for _, slot := range catalog.Slots {
		if strings.EqualFold(slot, raw) {
			return slot, true
		}
	}
	return "", false
}

// Lookup returns the classes for day and slot as authored, or an empty slice.
func (s *ScheduleService) Lookup(day, slot string) []models.ScheduleClass {
	slots, ok := s.week[day]
	if !ok {
		return []models.ScheduleClass{}
	}
	classes, ok := slots[slot]
	if !ok {
		return []models.ScheduleClass{}
	}
	return slices.Clone(classes)
}

// Day lists every slot of day in display order; slots of an unknown day are
// empty.
func (s *ScheduleService) Day(day string) models.DaySchedule {
	schedule := models.DaySchedule{
		Day:   day,
		Slots: make([]models.SlotSchedule, 0, len(catalog.Slots)),
	}
	for _, slot := range catalog.Slots {
		schedule.Slots = append(schedule.Slots, models.SlotSchedule{
			Slot:    slot,
			Classes: s.Lookup(day, slot),
		})
	}
	return schedule
}

func (s *ScheduleService) Week() []models.DaySchedule {
	week := make([]models.DaySchedule, 0, len(catalog.Days))
	for _, day := range catalog.Days {
		week = append(week, s.Day(day))
	}
	return week
}
