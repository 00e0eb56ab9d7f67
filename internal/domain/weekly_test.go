package domain

import (
	"errors"
	"testing"
	"time"
)

func testEmployee() Employee {
	return NewEmployee("A", "Cal Ochoa", "Cal Workouts dba Taconic")
}

func newTestWeek(t *testing.T, span string) *WeeklyRecord {
	t.Helper()
	w, err := NewWeeklyRecord(span, testEmployee())
	if err != nil {
		t.Fatalf("NewWeeklyRecord(%q): %v", span, err)
	}
	return w
}

func TestNewWeeklyRecordSpanFormats(t *testing.T) {
	for _, span := range []string{
		"09/18/23-09/24/23",
		"091823-092423",
		"09/18/2023-09/24/2023",
		" 052923 - 060423 ",
	} {
		w, err := NewWeeklyRecord(span, testEmployee())
		if err != nil {
			t.Errorf("NewWeeklyRecord(%q): %v", span, err)
			continue
		}
		if w.Days[0].Date.Weekday() != time.Monday {
			t.Errorf("%q: first day is %s, want Monday", span, w.Days[0].Date.Weekday())
		}
		if w.Days[6].Date.Weekday() != time.Sunday {
			t.Errorf("%q: last day is %s, want Sunday", span, w.Days[6].Date.Weekday())
		}
	}
}

func TestNewWeeklyRecordValidation(t *testing.T) {
	cases := []struct {
		name string
		span string
	}{
		{"starts on Tuesday", "09/19/23-09/25/23"},
		{"ends on Saturday", "09/18/23-09/23/23"},
		{"spans two weeks", "09/18/23-10/01/23"},
		{"missing end date", "091823"},
		{"unparseable date", "09.18.23-09.24.23"},
	}
	for _, c := range cases {
		_, err := NewWeeklyRecord(c.span, testEmployee())
		if err == nil {
			t.Errorf("%s (%q): want error, got nil", c.name, c.span)
			continue
		}
		var fe *FormatError
		if !errors.As(err, &fe) {
			t.Errorf("%s (%q): want FormatError, got %T", c.name, c.span, err)
		}
	}
}

func TestAddTimeIncrement(t *testing.T) {
	w := newTestWeek(t, "09/18/23-09/24/23")
	if err := w.AddTimeIncrement(0, "9am-5pm"); err != nil {
		t.Fatalf("AddTimeIncrement: %v", err)
	}
	if w.TotalHours != 8 {
		t.Errorf("weekly total: got %v, want 8", w.TotalHours)
	}
	if w.Days[0].TotalHours != 8 {
		t.Errorf("Monday total: got %v, want 8", w.Days[0].TotalHours)
	}

	err := w.AddTimeIncrement(7, "9am-5pm")
	if err == nil {
		t.Fatal("want error for out-of-range day index")
	}
	var le *LookupError
	if !errors.As(err, &le) {
		t.Errorf("want LookupError, got %T", err)
	}
	if w.TotalHours != 8 {
		t.Errorf("dropped increment must not change total: got %v", w.TotalHours)
	}
}

func TestWeeklyOvertimeCrossingMidWeek(t *testing.T) {
	w := newTestWeek(t, "09/18/23-09/24/23")
	for day := 0; day < 5; day++ {
		if err := w.AddTimeIncrement(day, "9am-5pm"); err != nil {
			t.Fatalf("day %d: %v", day, err)
		}
	}
	if err := w.AddTimeIncrement(5, "9am-11am"); err != nil {
		t.Fatalf("saturday: %v", err)
	}

	if w.TotalHours != 42 {
		t.Fatalf("total: got %v, want 42", w.TotalHours)
	}
	if got := w.OvertimeHours(); got != 2 {
		t.Errorf("overtime: got %v, want 2", got)
	}
	if got := w.RegularHours(); got != 40 {
		t.Errorf("regular: got %v, want 40", got)
	}

	allocs := w.DailyAllocations()
	for day := 0; day < 5; day++ {
		if allocs[day].Overtime != 0 {
			t.Errorf("day %d: overtime %v, want 0", day, allocs[day].Overtime)
		}
	}
	if allocs[5].Overtime != 2 || allocs[5].Regular != 0 {
		t.Errorf("saturday allocation: got regular=%v overtime=%v, want 0/2", allocs[5].Regular, allocs[5].Overtime)
	}
}

func TestWeeklyOvertimeDailyOnly(t *testing.T) {
	// One 12 hour day, three 8 hour days: under the weekly cap, so only the
	// daily rule bites.
	w := newTestWeek(t, "09/18/23-09/24/23")
	if err := w.AddTimeIncrement(0, "6am-6pm"); err != nil {
		t.Fatal(err)
	}
	for day := 1; day < 4; day++ {
		if err := w.AddTimeIncrement(day, "9am-5pm"); err != nil {
			t.Fatal(err)
		}
	}
	if w.TotalHours != 36 {
		t.Fatalf("total: got %v, want 36", w.TotalHours)
	}
	if got := w.OvertimeHours(); got != 4 {
		t.Errorf("overtime: got %v, want 4", got)
	}
	if !w.HasOvertime() {
		t.Error("daily overtime alone must flag the week")
	}
}

func TestWeeklyOvertimeBothRules(t *testing.T) {
	// A 12 hour Monday plus five 8 hour days: 4 daily overtime hours, and the
	// remaining 48 regular hours spill 8 past the weekly cap. No hour counts
	// under both rules.
	w := newTestWeek(t, "09/18/23-09/24/23")
	if err := w.AddTimeIncrement(0, "6am-6pm"); err != nil {
		t.Fatal(err)
	}
	for day := 1; day < 6; day++ {
		if err := w.AddTimeIncrement(day, "9am-5pm"); err != nil {
			t.Fatal(err)
		}
	}
	if w.TotalHours != 52 {
		t.Fatalf("total: got %v, want 52", w.TotalHours)
	}
	if got := w.OvertimeHours(); got != 12 {
		t.Errorf("overtime: got %v, want 12", got)
	}
	if got := w.RegularHours(); got != 40 {
		t.Errorf("regular: got %v, want 40", got)
	}
}

func TestExtraOvertimeOverride(t *testing.T) {
	w := newTestWeek(t, "09/18/23-09/24/23")
	if err := w.AddTimeIncrement(0, "6am-6pm"); err != nil {
		t.Fatal(err)
	}
	if got := w.OvertimeHours(); got != 4 {
		t.Fatalf("computed overtime: got %v, want 4", got)
	}

	w.SetExtraOvertime(1.5)
	if got := w.OvertimeHours(); got != 1.5 {
		t.Errorf("override overtime: got %v, want 1.5", got)
	}
	if got := w.RegularHours(); got != 10.5 {
		t.Errorf("override regular: got %v, want 10.5", got)
	}
	if extra, ok := w.ExtraOvertime(); !ok || extra != 1.5 {
		t.Errorf("ExtraOvertime: got %v/%v", extra, ok)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	w := newTestWeek(t, "09/18/23-09/24/23")
	if err := w.AddTimeIncrement(0, "9am-5pm"); err != nil {
		t.Fatal(err)
	}
	c := w.Clone()
	c.SetExtraOvertime(2)
	if err := c.AddTimeIncrement(1, "9am-1pm"); err != nil {
		t.Fatal(err)
	}

	if _, ok := w.ExtraOvertime(); ok {
		t.Error("clone mutation leaked extra overtime into original")
	}
	if w.TotalHours != 8 {
		t.Errorf("original total changed: got %v, want 8", w.TotalHours)
	}
	if len(w.Days[1].Intervals) != 0 {
		t.Error("clone mutation leaked intervals into original")
	}
}

func TestSplitEntityFacility(t *testing.T) {
	entity, facility := SplitEntityFacility("Cal Workouts dba Taconic")
	if entity != "Cal Workouts" || facility != "Taconic" {
		t.Errorf("got %q/%q", entity, facility)
	}
	entity, facility = SplitEntityFacility("Cal Workouts")
	if entity != "Cal Workouts" || facility != UnspecifiedFacility {
		t.Errorf("no separator: got %q/%q", entity, facility)
	}
}
