// Package jsonfile persists generation batches as JSON files, one per batch,
// so a run can be re-inspected without the source workbook.
package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/staffgrid/timecard/internal/domain"
)

type persistedInterval struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type persistedDay struct {
	Intervals  []persistedInterval `json:"intervals,omitempty"`
	TotalHours float64             `json:"total_hours"`
}

type persistedEmployee struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Entity   string `json:"entity"`
	Facility string `json:"facility"`
	Position string `json:"position"`
}

type persistedWeek struct {
	Employee      persistedEmployee               `json:"employee"`
	Span          string                          `json:"span"`
	Days          [domain.DaysInWeek]persistedDay `json:"days"`
	TotalHours    float64                         `json:"total_hours"`
	ExtraOvertime *float64                        `json:"extra_overtime,omitempty"`
}

type persistedPayPeriod struct {
	EmployeeName string         `json:"employee_name"`
	Facility     string         `json:"facility"`
	Week1        *persistedWeek `json:"week_1,omitempty"`
	Week2        *persistedWeek `json:"week_2,omitempty"`
}

type persistedBatch struct {
	ID         string               `json:"id"`
	CreatedAt  time.Time            `json:"created_at"`
	WeekSpans  []string             `json:"week_spans"`
	PayPeriods []persistedPayPeriod `json:"pay_periods"`
}

// Store keeps each batch in <dir>/<id>.json.
type Store struct {
	mu  sync.Mutex
	dir string
}

func New(dir string) *Store {
	return &Store{dir: dir}
}

func (s *Store) Save(ctx context.Context, batch *domain.Batch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if batch.ID == "" {
		batch.ID = uuid.New().String()
	}
	if batch.CreatedAt.IsZero() {
		batch.CreatedAt = time.Now()
	}

	pb := persistedBatch{
		ID:        batch.ID,
		CreatedAt: batch.CreatedAt,
		WeekSpans: batch.WeekSpans,
	}
	for _, p := range batch.PayPeriods {
		pb.PayPeriods = append(pb.PayPeriods, persistedPayPeriod{
			EmployeeName: p.EmployeeName,
			Facility:     p.Facility,
			Week1:        persistWeek(p.Week1),
			Week2:        persistWeek(p.Week2),
		})
	}

	data, err := json.MarshalIndent(pb, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return err
	}
	return os.WriteFile(s.path(batch.ID), data, 0644)
}

func (s *Store) Load(ctx context.Context, id string) (*domain.Batch, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path(id))
	if err != nil {
		return nil, err
	}
	var pb persistedBatch
	if err := json.Unmarshal(data, &pb); err != nil {
		return nil, fmt.Errorf("batch %s: %w", id, err)
	}

	batch := &domain.Batch{
		ID:        pb.ID,
		CreatedAt: pb.CreatedAt,
		WeekSpans: pb.WeekSpans,
	}
	for _, pp := range pb.PayPeriods {
		w1, err := restoreWeek(pp.Week1)
		if err != nil {
			return nil, fmt.Errorf("batch %s, employee %s: %w", id, pp.EmployeeName, err)
		}
		w2, err := restoreWeek(pp.Week2)
		if err != nil {
			return nil, fmt.Errorf("batch %s, employee %s: %w", id, pp.EmployeeName, err)
		}
		batch.PayPeriods = append(batch.PayPeriods, &domain.PayPeriod{
			EmployeeName: pp.EmployeeName,
			Facility:     pp.Facility,
			Week1:        w1,
			Week2:        w2,
		})
	}
	return batch, nil
}

func (s *Store) List(ctx context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := os.ReadDir(s.dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var ids []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		ids = append(ids, strings.TrimSuffix(e.Name(), ".json"))
	}
	return ids, nil
}

func (s *Store) path(id string) string {
	return filepath.Join(s.dir, id+".json")
}

func persistWeek(w *domain.WeeklyRecord) *persistedWeek {
	if w == nil {
		return nil
	}
	pw := &persistedWeek{
		Employee: persistedEmployee{
			ID:       w.Employee.ID,
			Name:     w.Employee.Name,
			Entity:   w.Employee.Entity,
			Facility: w.Employee.Facility,
			Position: w.Employee.Position,
		},
		Span:       w.SpanStr,
		TotalHours: w.TotalHours,
	}
	if extra, ok := w.ExtraOvertime(); ok {
		pw.ExtraOvertime = &extra
	}
	for i, d := range w.Days {
		pw.Days[i].TotalHours = d.TotalHours
		for _, iv := range d.Intervals {
			pw.Days[i].Intervals = append(pw.Days[i].Intervals, persistedInterval{
				Start: iv.StartStr,
				End:   iv.EndStr,
			})
		}
	}
	return pw
}

// restoreWeek rebuilds the weekly record, re-parsing each interval's
// canonical form and restoring the stored totals as-is (a coalesced overnight
// interval's duration is not re-derivable from its endpoints alone).
func restoreWeek(pw *persistedWeek) (*domain.WeeklyRecord, error) {
	if pw == nil {
		return nil, nil
	}
	w, err := domain.NewWeeklyRecord(pw.Span, domain.Employee{
		ID:       pw.Employee.ID,
		Name:     pw.Employee.Name,
		Entity:   pw.Employee.Entity,
		Facility: pw.Employee.Facility,
		Position: pw.Employee.Position,
	})
	if err != nil {
		return nil, err
	}
	for i, pd := range pw.Days {
		for _, piv := range pd.Intervals {
			iv, err := domain.ParseShiftInterval(piv.Start + domain.TimeSeparator + piv.End)
			if err != nil {
				return nil, err
			}
			w.Days[i].Intervals = append(w.Days[i].Intervals, iv)
		}
		w.Days[i].TotalHours = pd.TotalHours
	}
	w.TotalHours = pw.TotalHours
	if pw.ExtraOvertime != nil {
		w.SetExtraOvertime(*pw.ExtraOvertime)
	}
	return w, nil
}
