package domain

import "testing"

func TestPayPeriodSummary(t *testing.T) {
	w1 := newTestWeek(t, "09/18/23-09/24/23")
	for day := 0; day < 5; day++ {
		if err := w1.AddTimeIncrement(day, "9am-5pm"); err != nil {
			t.Fatal(err)
		}
	}
	if err := w1.AddTimeIncrement(5, "9am-11am"); err != nil {
		t.Fatal(err)
	}

	w2 := newTestWeek(t, "09/25/23-10/01/23")
	if err := w2.AddTimeIncrement(0, "9am-1pm"); err != nil {
		t.Fatal(err)
	}

	p := &PayPeriod{EmployeeName: "Cal Ochoa", Facility: "Taconic", Week1: w1, Week2: w2}
	s := p.Summary()
	if s.Week1Regular != 40 || s.Week1Overtime != 2 {
		t.Errorf("week 1: got %v/%v, want 40/2", s.Week1Regular, s.Week1Overtime)
	}
	if s.Week2Regular != 4 || s.Week2Overtime != 0 {
		t.Errorf("week 2: got %v/%v, want 4/0", s.Week2Regular, s.Week2Overtime)
	}
	if s.TotalRegular != 44 || s.TotalOvertime != 2 || s.Total != 46 {
		t.Errorf("totals: got %v/%v/%v, want 44/2/46", s.TotalRegular, s.TotalOvertime, s.Total)
	}
}

func TestPayPeriodSummarySingleWeek(t *testing.T) {
	w2 := newTestWeek(t, "09/25/23-10/01/23")
	if err := w2.AddTimeIncrement(2, "9am-5pm"); err != nil {
		t.Fatal(err)
	}
	p := &PayPeriod{EmployeeName: "Cal Ochoa", Facility: "Taconic", Week2: w2}
	s := p.Summary()
	if s.Week1Regular != 0 || s.Week1Overtime != 0 {
		t.Errorf("missing week 1 must contribute zero, got %v/%v", s.Week1Regular, s.Week1Overtime)
	}
	if s.Total != 8 {
		t.Errorf("total: got %v, want 8", s.Total)
	}
}
