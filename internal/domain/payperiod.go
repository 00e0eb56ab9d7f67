package domain

import "time"

// PayPeriod pairs an employee's week-1 and week-2 records at one facility for
// combined reporting. Either week may be nil when the employee worked only
// one of the two weeks.
type PayPeriod struct {
	EmployeeName string
	Facility     string
	Week1        *WeeklyRecord
	Week2        *WeeklyRecord
}

// SummaryHours are the regular/overtime totals for a pay period.
type SummaryHours struct {
	Week1Regular  float64
	Week1Overtime float64
	Week2Regular  float64
	Week2Overtime float64
	TotalRegular  float64
	TotalOvertime float64
	Total         float64
}

func (p *PayPeriod) Summary() SummaryHours {
	s := SummaryHours{}
	if p.Week1 != nil {
		s.Week1Regular = p.Week1.RegularHours()
		s.Week1Overtime = p.Week1.OvertimeHours()
	}
	if p.Week2 != nil {
		s.Week2Regular = p.Week2.RegularHours()
		s.Week2Overtime = p.Week2.OvertimeHours()
	}
	s.TotalRegular = s.Week1Regular + s.Week2Regular
	s.TotalOvertime = s.Week1Overtime + s.Week2Overtime
	s.Total = s.TotalRegular + s.TotalOvertime
	return s
}

// Batch is one generation run: the ordered week spans it covered and the pay
// periods produced, one per employee per facility.
type Batch struct {
	ID         string
	CreatedAt  time.Time
	WeekSpans  []string
	PayPeriods []*PayPeriod
}
