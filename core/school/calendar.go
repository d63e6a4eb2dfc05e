package school

import (
	"time"

	"github.com/rickar/cal/v2"
)

// Guinean public holidays with a fixed date, plus Easter Monday.
var guineaHolidays = []*cal.Holiday{
	fixedHoliday("Jour de l'an", time.January, 1),
	fixedHoliday("Jour de la Deuxième République", time.April, 3),
	{Name: "Lundi de Pâques", Type: cal.ObservancePublic, Offset: 1, Func: cal.CalcEasterOffset},
	fixedHoliday("Fête du Travail", time.May, 1),
	fixedHoliday("Journée de l'Afrique", time.May, 25),
	fixedHoliday("Assomption", time.August, 15),
	fixedHoliday("Fête de l'Indépendance", time.October, 2),
	fixedHoliday("Toussaint", time.November, 1),
	fixedHoliday("Noël", time.December, 25),
}

func fixedHoliday(name string, month time.Month, day int) *cal.Holiday {
	return &cal.Holiday{
		Name:  name,
		Type:  cal.ObservancePublic,
		Month: month,
		Day:   day,
		Func:  cal.CalcDayOfMonth,
	}
}

// NewSchoolCalendar returns a Monday to Friday calendar, closed on public holidays when holidays is set.
func NewSchoolCalendar(holidays bool) *cal.BusinessCalendar {
	c := cal.NewBusinessCalendar()
	c.Name = "Calendrier scolaire"
	c.Description = "Jours de classe"
	if holidays {
		c.AddHoliday(guineaHolidays...)
	}
	return c
}

// schoolMonths lists the teaching months of the year starting at start (September to June).
func schoolMonths(start time.Time) []time.Time {
	months := make([]time.Time, 0, 10)
	for i := 0; i < 10; i++ {
		months = append(months, start.AddDate(0, i, 0))
	}
	return months
}

// schoolDays counts the workdays of the month starting at first.
func schoolDays(c *cal.BusinessCalendar, first time.Time) int {
	var n int
	for d := first; d.Month() == first.Month(); d = d.AddDate(0, 0, 1) {
		if c.IsWorkday(d) {
			n++
		}
	}
	return n
}
