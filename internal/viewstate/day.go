package viewstate

import "github.com/Isaiahshap/pulse/internal/catalog"

const DefaultDay = "Monday"

type DaySelector struct {
	day string
}

func NewDaySelector() DaySelector {
	return DaySelector{day: DefaultDay}
}

// Select switches to day when it is one of the seven day literals and reports
// whether the selection changed.
func (d *DaySelector) Select(day string) bool {
	for _, known := range catalog.Days {
		if known == day {
			changed := d.Day() != day
			d.day = day
			return changed
		}
	}
	return false
}

func (d DaySelector) Day() string {
	if d.day == "" {
		return DefaultDay
	}
	return d.day
}
