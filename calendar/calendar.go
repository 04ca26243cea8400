// Package calendar renders a decoded gradebook as an iCalendar feed of
// assignment due dates.
package calendar

import (
	"fmt"

	ics "github.com/arran4/golang-ical"

	"github.com/rvue/rvue/gradebook"
)

// DueDates builds a calendar with one all-day event per assignment,
// across every course and mark in gb, and returns it serialized.
// Event identifiers reuse the portal's stable gradebook IDs, so
// regenerating the feed from a newer snapshot updates events in place.
func DueDates(gb *gradebook.Gradebook) string {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//rvue//gradewatch//EN")
	for _, course := range gb.Courses {
		for _, mark := range course.Marks {
			for _, a := range mark.Assignments {
				ev := cal.AddEvent(fmt.Sprintf("%s@rvue", a.GradebookID))
				ev.SetSummary(fmt.Sprintf("%s: %s", course.Title, a.Measure))
				ev.SetAllDayStartAt(a.DueDate)
				ev.SetAllDayEndAt(a.DueDate.AddDate(0, 0, 1))
				if a.Notes != "" {
					ev.SetDescription(a.Notes)
				}
			}
		}
	}
	return cal.Serialize()
}
