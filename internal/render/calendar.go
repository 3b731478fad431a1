package render

import (
	"fmt"
	"strings"

	ics "github.com/arran4/golang-ical"

	"github.com/Freeeeeet/class_highlighter/internal/model"
)

const calendarProductID = "-//class-highlighter//today//EN"

// Calendar выгружает занятия дня в iCalendar
func Calendar(result model.ScanResult) []byte {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(calendarProductID)

	for _, row := range result.Rows {
		event := cal.AddEvent(eventID(row))
		event.SetDtStampTime(result.Now)
		event.SetStartAt(row.Start)
		event.SetEndAt(row.End)
		event.SetSummary(row.Entry.Course())
		if row.Entry.Location != "" {
			event.SetLocation(row.Entry.Location)
		}
		event.SetDescription(row.Status.DisplayText)
	}

	return []byte(cal.Serialize())
}

// eventID стабилен в пределах дня: строка таблицы и момент начала
func eventID(row model.RowStatus) string {
	course := strings.Join(strings.Fields(strings.ToLower(row.Entry.Course())), "-")
	return fmt.Sprintf("%s-%d-%s@class-highlighter", row.Start.Format("20060102T1504"), row.Entry.RowIndex, course)
}
