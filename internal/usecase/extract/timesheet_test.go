package extract

import (
	"strings"
	"testing"
)

// fakeGrid backs a port.Grid with literal rows.
type fakeGrid struct {
	rows [][]string
}

func (g *fakeGrid) Rows() int { return len(g.rows) }

func (g *fakeGrid) Cols() int {
	cols := 0
	for _, r := range g.rows {
		if len(r) > cols {
			cols = len(r)
		}
	}
	return cols
}

func (g *fakeGrid) Cell(row, col int) string {
	if row < 0 || row >= len(g.rows) {
		return ""
	}
	r := g.rows[row]
	if col < 0 || col >= len(r) {
		return ""
	}
	return strings.TrimSpace(r[col])
}

func scheduleGrid() *fakeGrid {
	return &fakeGrid{rows: [][]string{
		{"Cal Workouts dba Taconic"},
		{"", "", "For the week of 09/18/23-09/24/23"},
		{},
		{"Staff"},
		{"A", "Alice Monroe"},
		{"B", "Bob Turner"},
		{"X", ""}, // no name: skipped
		{"Total Hours"},
		{},
		{"Hours", "Monday", "", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"},
		{"10am-11am", "A", "B", "A"},
		{"11am-12pm", "A", "", "Z"},
		{},
	}}
}

func TestReadTimesheet(t *testing.T) {
	ts, err := ReadTimesheet(scheduleGrid())
	if err != nil {
		t.Fatalf("ReadTimesheet: %v", err)
	}

	if ts.EntityFacility != "Cal Workouts dba Taconic" {
		t.Errorf("entity: got %q", ts.EntityFacility)
	}
	if ts.WeekSpan != "09/18/23-09/24/23" {
		t.Errorf("week span: got %q", ts.WeekSpan)
	}
	if len(ts.ByID) != 2 {
		t.Fatalf("employees: got %d, want 2 (row without a name is skipped)", len(ts.ByID))
	}

	alice := ts.ByID["A"]
	if alice == nil {
		t.Fatal("employee A missing")
	}
	if alice.Employee.Entity != "Cal Workouts" || alice.Employee.Facility != "Taconic" {
		t.Errorf("employee identity: %+v", alice.Employee)
	}
	if ts.ByName["Alice Monroe"] != alice {
		t.Error("by-name index must point at the same record")
	}

	// Monday 10-11 and 11-12 coalesce into one interval; Tuesday stays apart.
	if alice.TotalHours != 3 {
		t.Errorf("alice total: got %v, want 3", alice.TotalHours)
	}
	if got := len(alice.Days[0].Intervals); got != 1 {
		t.Errorf("alice monday intervals: got %d, want 1 (merged)", got)
	}
	if alice.Days[1].TotalHours != 1 {
		t.Errorf("alice tuesday: got %v, want 1", alice.Days[1].TotalHours)
	}

	bob := ts.ByID["B"]
	if bob == nil || bob.TotalHours != 1 {
		t.Fatalf("bob total: got %+v", bob)
	}
	// B's cell is in Monday's second column, so it lands on Monday.
	if bob.Days[0].TotalHours != 1 {
		t.Errorf("bob monday: got %v, want 1", bob.Days[0].TotalHours)
	}

	if !hasWarning(ts, `"Z"`) {
		t.Errorf("unknown id must be warned about, got %v", ts.Warnings)
	}
}

func TestReadTimesheetMissingStaff(t *testing.T) {
	g := scheduleGrid()
	g.rows[3] = []string{"Crew"} // no Staff landmark
	ts, err := ReadTimesheet(g)
	if err != nil {
		t.Fatalf("ReadTimesheet: %v", err)
	}
	if len(ts.ByID) != 0 {
		t.Errorf("want empty employee table, got %d", len(ts.ByID))
	}
	if !hasWarning(ts, "Staff") {
		t.Errorf("want Staff landmark warning, got %v", ts.Warnings)
	}
}

func TestReadTimesheetMissingHours(t *testing.T) {
	g := scheduleGrid()
	g.rows[9][0] = "Slots"
	ts, err := ReadTimesheet(g)
	if err != nil {
		t.Fatalf("ReadTimesheet: %v", err)
	}
	if ts.ByID["A"].TotalHours != 0 {
		t.Errorf("no time band: want 0 hours, got %v", ts.ByID["A"].TotalHours)
	}
	if !hasWarning(ts, "Hours") {
		t.Errorf("want Hours landmark warning, got %v", ts.Warnings)
	}
}

func TestReadTimesheetMissingWeekSpan(t *testing.T) {
	g := scheduleGrid()
	g.rows[1] = []string{}
	ts, err := ReadTimesheet(g)
	if err != nil {
		t.Fatalf("ReadTimesheet: %v", err)
	}
	if len(ts.ByID) != 0 {
		t.Errorf("no week span: want no records, got %d", len(ts.ByID))
	}
	if !hasWarning(ts, weekSpanPrefix) {
		t.Errorf("want week span warning, got %v", ts.Warnings)
	}
}

func TestReadTimesheetBadSpanIsFatal(t *testing.T) {
	g := scheduleGrid()
	g.rows[1] = []string{"", "", "For the week of 09/19/23-09/25/23"} // Tuesday start
	if _, err := ReadTimesheet(g); err == nil {
		t.Fatal("malformed week span must fail the sheet")
	}
}

func TestReadTimesheetMalformedTokenIsWarning(t *testing.T) {
	g := scheduleGrid()
	g.rows[11][0] = "lunch" // band label that is not a shift token
	ts, err := ReadTimesheet(g)
	if err != nil {
		t.Fatalf("ReadTimesheet: %v", err)
	}
	// the 10-11 cells still land; the bad label only drops its own cells
	if ts.ByID["A"].TotalHours != 2 {
		t.Errorf("alice total: got %v, want 2", ts.ByID["A"].TotalHours)
	}
	if !hasWarning(ts, "lunch") {
		t.Errorf("want malformed token warning, got %v", ts.Warnings)
	}
}

func TestDayBucketsStopAtTrailingHeader(t *testing.T) {
	g := scheduleGrid()
	// a trailing non-day header after Sunday must end the scan, and content
	// under it must be ignored
	g.rows[9] = append(g.rows[9], "Notes")
	g.rows[10] = append(make([]string, 0, 10), g.rows[10]...)
	for len(g.rows[10]) < 9 {
		g.rows[10] = append(g.rows[10], "")
	}
	g.rows[10] = append(g.rows[10], "A")

	ts, err := ReadTimesheet(g)
	if err != nil {
		t.Fatalf("ReadTimesheet: %v", err)
	}
	if ts.ByID["A"].TotalHours != 3 {
		t.Errorf("trailing header column leaked into totals: got %v, want 3", ts.ByID["A"].TotalHours)
	}
}

func hasWarning(ts *Timesheet, substr string) bool {
	for _, w := range ts.Warnings {
		if strings.Contains(w, substr) {
			return true
		}
	}
	return false
}
