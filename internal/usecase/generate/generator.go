// Package generate drives a full run: extract every configured sheet,
// reconcile employees scheduled at two facilities in the same week, and pair
// each employee's two weeks into pay periods.
package generate

import (
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/staffgrid/timecard/internal/domain"
	"github.com/staffgrid/timecard/internal/port"
	"github.com/staffgrid/timecard/internal/usecase/extract"
	"github.com/staffgrid/timecard/internal/usecase/reconcile"
)

// maxWeekSpans is the two-week pay period the summary reports over.
const maxWeekSpans = 2

type Generator struct {
	Source port.GridSource
	Logger *log.Logger

	// Sheets restricts the run to these sheet names; empty means all sheets.
	Sheets []string
}

// sheetResult ties an extracted timesheet back to its sheet name.
type sheetResult struct {
	sheet string
	ts    *extract.Timesheet
}

// Run extracts, reconciles, and pairs. The returned batch holds one pay
// period per employee per facility, with week spans in chronological order.
func (g *Generator) Run() (*domain.Batch, error) {
	results, err := g.extractSheets()
	if err != nil {
		return nil, err
	}

	bySpan := make(map[string][]*sheetResult)
	for _, r := range results {
		if r.ts.WeekSpan == "" {
			g.Logger.Printf("sheet %q: no week span, skipping", r.sheet)
			continue
		}
		bySpan[r.ts.WeekSpan] = append(bySpan[r.ts.WeekSpan], r)
	}

	spans := orderedSpans(bySpan)
	if len(spans) > maxWeekSpans {
		return nil, fmt.Errorf("a pay period covers at most %d week spans, workbook has %d", maxWeekSpans, len(spans))
	}

	for _, span := range spans {
		if err := g.reconcileSpan(span, bySpan[span]); err != nil {
			return nil, err
		}
	}

	return &domain.Batch{
		CreatedAt:  time.Now(),
		WeekSpans:  spans,
		PayPeriods: buildPayPeriods(spans, bySpan),
	}, nil
}

func (g *Generator) extractSheets() ([]*sheetResult, error) {
	sheets := g.Sheets
	if len(sheets) == 0 {
		sheets = g.Source.SheetNames()
	}
	var results []*sheetResult
	for _, sheet := range sheets {
		grid, err := g.Source.Grid(sheet)
		if err != nil {
			return nil, fmt.Errorf("sheet %q: %w", sheet, err)
		}
		ts, err := extract.ReadTimesheet(grid)
		if err != nil {
			return nil, fmt.Errorf("sheet %q: %w", sheet, err)
		}
		for _, w := range ts.Warnings {
			g.Logger.Printf("sheet %q: %s", sheet, w)
		}
		g.Logger.Printf("sheet %q: %s, week of %s, %d employees",
			sheet, ts.EntityFacility, ts.WeekSpan, len(ts.ByID))
		results = append(results, &sheetResult{sheet: sheet, ts: ts})
	}
	return results, nil
}

// reconcileSpan resolves employees who appear in two sibling grids for the
// same week, replacing both records with reconciled copies.
func (g *Generator) reconcileSpan(span string, results []*sheetResult) error {
	if len(results) < 2 {
		return nil
	}
	if len(results) > 2 {
		return fmt.Errorf("week of %s appears in %d sheets; at most two facilities per week are supported", span, len(results))
	}
	first, second := results[0].ts, results[1].ts
	for name, w1 := range first.ByName {
		w2, ok := second.ByName[name]
		if !ok {
			continue
		}
		res, err := reconcile.Weeks(w1, w2)
		if err != nil {
			return fmt.Errorf("week of %s, employee %s: %w", span, name, err)
		}
		replaceRecord(first, w1, res.First)
		replaceRecord(second, w2, res.Second)
		g.Logger.Printf("week of %s: reconciled %s across %s and %s (overtime %s + %s)",
			span, name, w1.Employee.Facility, w2.Employee.Facility,
			domain.FormatHours(res.FirstExtra), domain.FormatHours(res.SecondExtra))
	}
	return nil
}

// replaceRecord swaps a reconciled copy into both timesheet indexes, so the
// shared underlying record is never aliased before and after reconciliation.
func replaceRecord(ts *extract.Timesheet, old, updated *domain.WeeklyRecord) {
	ts.ByName[old.Employee.Name] = updated
	ts.ByID[old.Employee.ID] = updated
}

func orderedSpans(bySpan map[string][]*sheetResult) []string {
	spans := make([]string, 0, len(bySpan))
	for span := range bySpan {
		spans = append(spans, span)
	}
	starts := make(map[string]time.Time, len(spans))
	for _, span := range spans {
		results := bySpan[span]
		for _, r := range results {
			for _, w := range r.ts.ByName {
				starts[span] = w.StartDate()
				break
			}
			if _, ok := starts[span]; ok {
				break
			}
		}
	}
	sort.Slice(spans, func(i, j int) bool {
		si, iok := starts[spans[i]]
		sj, jok := starts[spans[j]]
		if iok && jok {
			return si.Before(sj)
		}
		if iok != jok {
			return iok
		}
		return spans[i] < spans[j]
	})
	return spans
}

// buildPayPeriods pairs each (employee, facility) record from the first span
// with its counterpart from the second, keeping a stable name order.
func buildPayPeriods(spans []string, bySpan map[string][]*sheetResult) []*domain.PayPeriod {
	type key struct{ name, facility string }
	periods := make(map[key]*domain.PayPeriod)
	var order []key

	for weekIdx, span := range spans {
		for _, r := range bySpan[span] {
			for name, w := range r.ts.ByName {
				k := key{name: name, facility: w.Employee.Facility}
				p, ok := periods[k]
				if !ok {
					p = &domain.PayPeriod{EmployeeName: name, Facility: k.facility}
					periods[k] = p
					order = append(order, k)
				}
				if weekIdx == 0 {
					p.Week1 = w
				} else {
					p.Week2 = w
				}
			}
		}
	}

	sort.Slice(order, func(i, j int) bool {
		if order[i].name != order[j].name {
			return order[i].name < order[j].name
		}
		return order[i].facility < order[j].facility
	})
	out := make([]*domain.PayPeriod, 0, len(order))
	for _, k := range order {
		out = append(out, periods[k])
	}
	return out
}
