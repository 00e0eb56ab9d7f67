package extract

import (
	"fmt"
	"strings"

	"github.com/staffgrid/timecard/internal/domain"
	"github.com/staffgrid/timecard/internal/port"
)

const (
	weekSpanPrefix = "for the week of"
	weekSpanRow    = 1

	staffLandmark      = "staff"
	totalHoursLandmark = "total hours"
	hoursLandmark      = "hours"
)

var dayNames = map[string]bool{
	"monday":    true,
	"tuesday":   true,
	"wednesday": true,
	"thursday":  true,
	"friday":    true,
	"saturday":  true,
	"sunday":    true,
}

// Timesheet is the structured result of scanning one schedule grid: one
// weekly record per employee, indexed by id and by display name.
type Timesheet struct {
	EntityFacility string
	WeekSpan       string
	ByID           map[string]*domain.WeeklyRecord
	ByName         map[string]*domain.WeeklyRecord

	// Warnings collects the recoverable problems hit during the scan:
	// missing landmarks, unknown employee ids, malformed shift tokens.
	Warnings []string
}

// ReadTimesheet recovers schedule data from a grid whose layout is known only
// by content landmarks. A malformed week span or employee record is fatal;
// missing landmarks degrade to empty output and are reported as warnings.
func ReadTimesheet(g port.Grid) (*Timesheet, error) {
	ts := &Timesheet{
		ByID:   make(map[string]*domain.WeeklyRecord),
		ByName: make(map[string]*domain.WeeklyRecord),
	}
	ts.EntityFacility = entityFacilityName(g)
	ts.WeekSpan = weekSpan(g)

	if ts.WeekSpan == "" {
		ts.warnf("week span header %q not found; no records built", weekSpanPrefix)
	} else if err := ts.scanEmployees(g); err != nil {
		return nil, err
	}

	timeRows, timeLabels := scanTimeBand(g)
	if len(timeRows) == 0 {
		ts.warn(&domain.LayoutError{Landmark: "Hours"})
		return ts, nil
	}

	buckets := scanDayBuckets(g, timeRows[0]-1)
	if len(buckets) == 0 {
		ts.warn(&domain.LayoutError{Landmark: "day-name row"})
		return ts, nil
	}

	ts.fillCells(g, buckets, timeRows, timeLabels)
	return ts, nil
}

// entityFacilityName is the trimmed top-left cell.
func entityFacilityName(g port.Grid) string {
	if name := g.Cell(0, 0); name != "" {
		return name
	}
	return "No Entity Name Found"
}

// weekSpan finds the header cell starting with the week-span prefix and
// returns the remainder after stripping it.
func weekSpan(g port.Grid) string {
	for col := 0; col < g.Cols(); col++ {
		cell := g.Cell(weekSpanRow, col)
		if cell == "" {
			continue
		}
		lower := strings.ToLower(cell)
		if strings.HasPrefix(lower, weekSpanPrefix) {
			return strings.TrimSpace(lower[len(weekSpanPrefix):])
		}
	}
	return ""
}

type scanState int

const (
	seekingLandmark scanState = iota
	collecting
)

// scanEmployees collects (id, name) pairs from columns 0 and 1 between the
// "Staff" and "Total Hours" landmarks. A row with a missing name is skipped
// without terminating the scan.
func (ts *Timesheet) scanEmployees(g port.Grid) error {
	state := seekingLandmark
	for row := 0; row < g.Rows(); row++ {
		cell := g.Cell(row, 0)
		switch state {
		case seekingLandmark:
			if matchesText(cell, staffLandmark) {
				state = collecting
			}
		case collecting:
			if matchesText(cell, totalHoursLandmark) {
				return nil
			}
			name := g.Cell(row, 1)
			if cell == "" || name == "" {
				continue
			}
			emp := domain.NewEmployee(cell, name, ts.EntityFacility)
			wtc, err := domain.NewWeeklyRecord(ts.WeekSpan, emp)
			if err != nil {
				return fmt.Errorf("employee %s (%s): %w", name, cell, err)
			}
			ts.ByID[cell] = wtc
			ts.ByName[name] = wtc
		}
	}
	if state == seekingLandmark {
		ts.warn(&domain.LayoutError{Landmark: "Staff"})
	}
	return nil
}

// scanTimeBand finds the "Hours" landmark in column 0 and collects the rows
// below it, while non-empty, as the ordered shift-increment slots.
func scanTimeBand(g port.Grid) (rows []int, labels []string) {
	state := seekingLandmark
	for row := 0; row < g.Rows(); row++ {
		cell := g.Cell(row, 0)
		switch state {
		case seekingLandmark:
			if matchesText(cell, hoursLandmark) {
				state = collecting
			}
		case collecting:
			if cell == "" {
				return rows, labels
			}
			rows = append(rows, row)
			labels = append(labels, cell)
		}
	}
	return rows, labels
}

// scanDayBuckets groups consecutive columns of the day-name row into one
// bucket per day. A day name starts a bucket, an empty cell extends the
// current one, and any other text after the first bucket ends the scan
// (guards against a trailing header section).
func scanDayBuckets(g port.Grid, dayRow int) [][]int {
	if dayRow < 0 {
		return nil
	}
	var buckets [][]int
	for col := 0; col < g.Cols(); col++ {
		cell := g.Cell(dayRow, col)
		switch {
		case dayNames[strings.ToLower(cell)]:
			buckets = append(buckets, []int{col})
		case cell == "":
			if n := len(buckets); n > 0 {
				buckets[n-1] = append(buckets[n-1], col)
			}
		case len(buckets) > 0:
			return buckets
		}
	}
	return buckets
}

// fillCells reads every (time row, day column) cell; a cell holding a known
// employee id adds that time slot to the employee's weekly record.
func (ts *Timesheet) fillCells(g port.Grid, buckets [][]int, timeRows []int, timeLabels []string) {
	for dayIdx, bucket := range buckets {
		for _, col := range bucket {
			for i, row := range timeRows {
				id := g.Cell(row, col)
				if id == "" {
					continue
				}
				wtc, ok := ts.ByID[id]
				if !ok {
					ts.warn(&domain.LookupError{Msg: fmt.Sprintf("employee id %q not found", id)})
					continue
				}
				if err := wtc.AddTimeIncrement(dayIdx, timeLabels[i]); err != nil {
					ts.warnf("cell (%d,%d): %v", row, col, err)
				}
			}
		}
	}
}

func (ts *Timesheet) warn(err error) {
	ts.Warnings = append(ts.Warnings, err.Error())
}

func (ts *Timesheet) warnf(format string, args ...any) {
	ts.Warnings = append(ts.Warnings, fmt.Sprintf(format, args...))
}

func matchesText(cell, want string) bool {
	return strings.EqualFold(strings.TrimSpace(cell), want)
}
