package domain

import (
	"math"
	"strconv"
	"time"
)

const (
	// DailyNormalHours is the daily cap; hours beyond it are daily overtime.
	DailyNormalHours = 8

	// DateFormat is the month/day/year form used on rendered time cards.
	DateFormat = "01/02/06"

	noHoursWorked = "OFF"
)

// DailyRecord accumulates the shifts worked on one calendar day.
type DailyRecord struct {
	Date       time.Time
	Intervals  []ShiftInterval
	TotalHours float64
}

func NewDailyRecord(date time.Time) *DailyRecord {
	return &DailyRecord{Date: date}
}

// AddShift parses the token, adds its duration to the day total, and returns
// the hours added. When the new interval starts exactly where the previous
// one ended the two are coalesced into a single wider interval, so the
// displayed list carries no spurious gaps; the total is accumulated from the
// pre-merge durations and is unaffected.
func (d *DailyRecord) AddShift(token string) (float64, error) {
	iv, err := ParseShiftInterval(token)
	if err != nil {
		return 0, err
	}
	hours := iv.Hours
	d.TotalHours += hours
	if n := len(d.Intervals); n > 0 {
		last := d.Intervals[n-1]
		if last.End.Equal(iv.Start) {
			merged, err := ParseShiftInterval(last.StartStr + TimeSeparator + iv.EndStr)
			if err != nil {
				return 0, err
			}
			d.Intervals[n-1] = merged
			return hours, nil
		}
	}
	d.Intervals = append(d.Intervals, iv)
	return hours, nil
}

func (d *DailyRecord) HasOvertime() bool {
	return d.TotalHours > DailyNormalHours
}

func (d *DailyRecord) OvertimeHours() float64 {
	if d.HasOvertime() {
		return d.TotalHours - DailyNormalHours
	}
	return 0
}

// RegularHours is the day total capped at the daily threshold.
func (d *DailyRecord) RegularHours() float64 {
	return d.TotalHours - d.OvertimeHours()
}

// HoursWorkedString renders the day total: "OFF" for an empty day, a bare
// number otherwise, and "8 + X" when the day has overtime.
func (d *DailyRecord) HoursWorkedString() string {
	if d.TotalHours == 0 {
		return noHoursWorked
	}
	if ot := d.OvertimeHours(); ot > 0 {
		return strconv.Itoa(DailyNormalHours) + " + " + FormatHours(ot)
	}
	return FormatHours(d.TotalHours)
}

// DateString is the date in time-card form, e.g. "09/18/23".
func (d *DailyRecord) DateString() string {
	return d.Date.Format(DateFormat)
}

// DayName is the full weekday name, e.g. "Monday".
func (d *DailyRecord) DayName() string {
	return d.Date.Weekday().String()
}

// FormatHours renders whole-number hours without a decimal part.
func FormatHours(h float64) string {
	if h == math.Trunc(h) {
		return strconv.FormatInt(int64(h), 10)
	}
	return strconv.FormatFloat(h, 'g', -1, 64)
}
