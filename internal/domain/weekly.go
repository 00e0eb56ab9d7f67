package domain

import (
	"strings"
	"time"
)

const (
	// DaysInWeek is the fixed Monday..Sunday span of a weekly record.
	DaysInWeek = 7

	// WeeklyNormalHours is the weekly cap; hours beyond it are weekly overtime.
	WeeklyNormalHours = 40

	dateSeparator = "-"
)

// weekDateFormats are tried in order until one parses.
var weekDateFormats = []string{"010206", "01/02/06", "01/02/2006"}

// WeeklyRecord holds one employee's shifts for one Monday-Sunday span.
type WeeklyRecord struct {
	Employee   Employee
	SpanStr    string
	Days       [DaysInWeek]*DailyRecord
	TotalHours float64

	// extraOvertime, when set, supersedes the computed weekly overtime.
	// It carries this facility's share after multi-facility reconciliation.
	extraOvertime *float64
}

// NewWeeklyRecord validates the week-span string and builds the 7 daily
// records. The span must split into exactly two dates, the first a Monday,
// the second a Sunday, exactly six days apart.
func NewWeeklyRecord(spanStr string, emp Employee) (*WeeklyRecord, error) {
	parts := strings.Split(spanStr, dateSeparator)
	if len(parts) != 2 {
		return nil, formatErrorf("week span %q: start and end date must be separated by %q", spanStr, dateSeparator)
	}
	start, err := parseWeekDate(parts[0])
	if err != nil {
		return nil, err
	}
	if start.Weekday() != time.Monday {
		return nil, formatErrorf("week span %q: start date must be a Monday", spanStr)
	}
	end, err := parseWeekDate(parts[1])
	if err != nil {
		return nil, err
	}
	if end.Weekday() != time.Sunday {
		return nil, formatErrorf("week span %q: end date must be a Sunday", spanStr)
	}
	if end.Sub(start) != (DaysInWeek-1)*24*time.Hour {
		return nil, formatErrorf("week span %q: dates must span a single week", spanStr)
	}

	w := &WeeklyRecord{Employee: emp, SpanStr: strings.TrimSpace(spanStr)}
	for i := range w.Days {
		w.Days[i] = NewDailyRecord(start.AddDate(0, 0, i))
	}
	return w, nil
}

func parseWeekDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range weekDateFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, formatErrorf("date %q: no known date format matched", s)
}

// AddTimeIncrement adds a shift token to the given day (0 = Monday) and rolls
// its hours into the weekly total. An out-of-range index is reported as a
// LookupError and the increment is dropped.
func (w *WeeklyRecord) AddTimeIncrement(dayIdx int, token string) error {
	if dayIdx < 0 || dayIdx >= DaysInWeek {
		return lookupErrorf("day index %d is out of bounds", dayIdx)
	}
	hours, err := w.Days[dayIdx].AddShift(token)
	if err != nil {
		return err
	}
	w.TotalHours += hours
	return nil
}

// HasOvertime reports whether the week crosses the weekly cap or any single
// day crosses the daily cap.
func (w *WeeklyRecord) HasOvertime() bool {
	if w.TotalHours > WeeklyNormalHours {
		return true
	}
	for _, d := range w.Days {
		if d.HasOvertime() {
			return true
		}
	}
	return false
}

// DailyAllocation is one day's split between regular and overtime hours under
// the combined daily-cap and weekly-cap rules.
type DailyAllocation struct {
	Day      *DailyRecord
	Regular  float64
	Overtime float64
}

// DailyAllocations walks the 7 days in order with a running regular-hours
// counter. A day's overtime is its own daily overtime plus whatever part of
// its regular hours pushes the running regular total past the weekly cap, so
// no hour is counted as overtime under both rules.
func (w *WeeklyRecord) DailyAllocations() []DailyAllocation {
	out := make([]DailyAllocation, 0, DaysInWeek)
	var runningRegular float64
	for _, day := range w.Days {
		ot := day.OvertimeHours()
		regular := day.TotalHours - ot
		if spill := runningRegular + regular - WeeklyNormalHours; spill > 0 {
			if spill > regular {
				spill = regular
			}
			ot += spill
			regular -= spill
		}
		runningRegular += regular
		out = append(out, DailyAllocation{Day: day, Regular: regular, Overtime: ot})
	}
	return out
}

// OvertimeHours is the weekly overtime figure. An injected extra-overtime
// value from reconciliation supersedes the computation.
func (w *WeeklyRecord) OvertimeHours() float64 {
	if w.extraOvertime != nil {
		return *w.extraOvertime
	}
	var ot float64
	for _, alloc := range w.DailyAllocations() {
		ot += alloc.Overtime
	}
	return ot
}

func (w *WeeklyRecord) RegularHours() float64 {
	return w.TotalHours - w.OvertimeHours()
}

// SetExtraOvertime overrides the weekly overtime with this facility's share
// of a multi-facility week. Setting it again replaces the previous value.
func (w *WeeklyRecord) SetExtraOvertime(hours float64) {
	w.extraOvertime = &hours
}

// ExtraOvertime returns the injected override, if any.
func (w *WeeklyRecord) ExtraOvertime() (float64, bool) {
	if w.extraOvertime == nil {
		return 0, false
	}
	return *w.extraOvertime, true
}

// Clone returns a deep copy; mutating the copy leaves the original intact.
func (w *WeeklyRecord) Clone() *WeeklyRecord {
	c := &WeeklyRecord{
		Employee:   w.Employee,
		SpanStr:    w.SpanStr,
		TotalHours: w.TotalHours,
	}
	for i, d := range w.Days {
		c.Days[i] = &DailyRecord{
			Date:       d.Date,
			Intervals:  append([]ShiftInterval(nil), d.Intervals...),
			TotalHours: d.TotalHours,
		}
	}
	if w.extraOvertime != nil {
		v := *w.extraOvertime
		c.extraOvertime = &v
	}
	return c
}

// StartDate is the Monday the week begins on.
func (w *WeeklyRecord) StartDate() time.Time {
	return w.Days[0].Date
}
