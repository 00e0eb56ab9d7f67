// Package reconcile merges the two weekly records an employee accrues when
// scheduled at two facilities over the same week, so the combined daily and
// weekly overtime is computed once and each facility is credited only its
// fair share.
package reconcile

import (
	"fmt"

	"github.com/staffgrid/timecard/internal/domain"
)

const facilityJoin = " / "

// Result carries the reconciled copies of both input records, their
// per-facility extra-overtime figures, and the combined record used for
// whole-week reporting. The inputs are never mutated.
type Result struct {
	First       *domain.WeeklyRecord
	Second      *domain.WeeklyRecord
	FirstExtra  float64
	SecondExtra float64
	Combined    *domain.WeeklyRecord
}

// Weeks reconciles two same-week, same-employee records. For every interval,
// taken across both facilities in start-time order, the overtime increment is
// the part of its hours past the daily cap plus the part of its remaining
// regular hours past the weekly cap; the increment is credited to the
// facility the interval came from. Re-running Weeks on its own outputs yields
// the same figures.
func Weeks(a, b *domain.WeeklyRecord) (*Result, error) {
	if a.SpanStr != b.SpanStr {
		return nil, fmt.Errorf("reconcile: week spans differ (%q vs %q)", a.SpanStr, b.SpanStr)
	}
	if a.Employee.Name != b.Employee.Name {
		return nil, fmt.Errorf("reconcile: employee names differ (%q vs %q)", a.Employee.Name, b.Employee.Name)
	}

	combinedEmp := a.Employee
	combinedEmp.Facility = a.Employee.Facility + facilityJoin + b.Employee.Facility
	combined, err := domain.NewWeeklyRecord(a.SpanStr, combinedEmp)
	if err != nil {
		return nil, err
	}

	var extras [2]float64
	var runningRegular float64
	for dayIdx := 0; dayIdx < domain.DaysInWeek; dayIdx++ {
		var runningDay float64
		merge := newMerger(a.Days[dayIdx].Intervals, b.Days[dayIdx].Intervals)
		for {
			iv, src, ok := merge.next()
			if !ok {
				break
			}
			dailyInc := overflow(runningDay, iv.Hours, domain.DailyNormalHours)
			regular := iv.Hours - dailyInc
			weeklyInc := overflow(runningRegular, regular, domain.WeeklyNormalHours)
			extras[src] += dailyInc + weeklyInc
			runningDay += iv.Hours
			runningRegular += regular - weeklyInc
			if err := combined.AddTimeIncrement(dayIdx, iv.String()); err != nil {
				return nil, err
			}
		}
	}

	first := a.Clone()
	first.SetExtraOvertime(extras[0])
	second := b.Clone()
	second.SetExtraOvertime(extras[1])

	return &Result{
		First:       first,
		Second:      second,
		FirstExtra:  extras[0],
		SecondExtra: extras[1],
		Combined:    combined,
	}, nil
}

// overflow is the part of add that lands past cap given running hours
// already accrued, clamped to [0, add].
func overflow(running, add, cap float64) float64 {
	over := running + add - cap
	if over <= 0 {
		return 0
	}
	if over > add {
		over = add
	}
	return over
}

// merger is a stable two-pointer merge over two chronologically ordered
// interval lists; ties go to the first list.
type merger struct {
	a, b []domain.ShiftInterval
	i, j int
}

func newMerger(a, b []domain.ShiftInterval) *merger {
	return &merger{a: a, b: b}
}

func (m *merger) next() (domain.ShiftInterval, int, bool) {
	switch {
	case m.i < len(m.a) && m.j < len(m.b):
		if m.b[m.j].Start.Before(m.a[m.i].Start) {
			iv := m.b[m.j]
			m.j++
			return iv, 1, true
		}
		iv := m.a[m.i]
		m.i++
		return iv, 0, true
	case m.i < len(m.a):
		iv := m.a[m.i]
		m.i++
		return iv, 0, true
	case m.j < len(m.b):
		iv := m.b[m.j]
		m.j++
		return iv, 1, true
	}
	return domain.ShiftInterval{}, 0, false
}
