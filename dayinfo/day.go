// Package dayinfo renders yesterday, today and tomorrow with weekday and
// holiday annotations.
package dayinfo

import (
	"fmt"
	"time"

	"github.com/va6996/dateaware/holiday"
)

// Relative labels, in rendering order
const (
	LabelYesterday = "昨天"
	LabelToday     = "今天"
	LabelTomorrow  = "明天"
)

// weekdays is Monday-first
var weekdays = [7]string{"星期一", "星期二", "星期三", "星期四", "星期五", "星期六", "星期日"}

// Day is one annotated calendar day
type Day struct {
	Label   string `json:"label,omitempty"`
	Date    string `json:"date"`
	Short   string `json:"short"`
	Weekday string `json:"weekday"`
	Holiday string `json:"holiday,omitempty"`
}

// WeekdayName returns the localized weekday of t
func WeekdayName(t time.Time) string {
	return weekdays[(int(t.Weekday())+6)%7]
}

// ShortDate formats t as 1月2日
func ShortDate(t time.Time) string {
	return fmt.Sprintf("%d月%d日", int(t.Month()), t.Day())
}

// DayFor builds the record for t, annotated from m
func DayFor(t time.Time, m holiday.Map) Day {
	date := t.Format(time.DateOnly)
	return Day{
		Date:    date,
		Short:   ShortDate(t),
		Weekday: WeekdayName(t),
		Holiday: holiday.Annotation(date, m),
	}
}

// ThreeDays returns yesterday, today and tomorrow relative to now.
// All three are annotated from the same map.
func ThreeDays(now time.Time, m holiday.Map) []Day {
	days := []Day{
		DayFor(now.AddDate(0, 0, -1), m),
		DayFor(now, m),
		DayFor(now.AddDate(0, 0, 1), m),
	}
	days[0].Label = LabelYesterday
	days[1].Label = LabelToday
	days[2].Label = LabelTomorrow
	return days
}

// Line renders the day as "<label> | <short> <weekday>【<holiday>】"
func (d Day) Line() string {
	line := fmt.Sprintf("%s | %s %s", d.Label, d.Short, d.Weekday)
	if d.Holiday != "" {
		line += "【" + d.Holiday + "】"
	}
	return line
}
