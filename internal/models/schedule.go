package models

type ScheduleClass struct {
	Time     string `json:"time"`
	Name     string `json:"name"`
	Trainer  string `json:"trainer"`
	Duration string `json:"duration"`
	Level    string `json:"level"`
}

// WeekSchedule is keyed by day name, then by time-slot name.
type WeekSchedule map[string]map[string][]ScheduleClass

type SlotSchedule struct {
	Slot    string          `json:"slot"`
	Classes []ScheduleClass `json:"classes"`
}

type DaySchedule struct {
	Day   string         `json:"day"`
	Slots []SlotSchedule `json:"slots"`
}
