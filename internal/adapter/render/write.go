package render

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/staffgrid/timecard/internal/domain"
)

// WriteFiles writes one time-card HTML file per weekly record plus the
// summary report into dir, creating it if needed. It returns the paths
// written.
func WriteFiles(batch *domain.Batch, dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create output dir %s: %w", dir, err)
	}

	var paths []string
	writeCard := func(w *domain.WeeklyRecord, week int) error {
		name := fmt.Sprintf("%s - %s - week %d.html", w.Employee.Name, w.Employee.Facility, week)
		path := filepath.Join(dir, sanitizeFilename(name))
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := WriteWeeklyTimeCard(f, w); err != nil {
			return fmt.Errorf("render %s: %w", path, err)
		}
		paths = append(paths, path)
		return nil
	}

	for _, p := range batch.PayPeriods {
		if p.Week1 != nil {
			if err := writeCard(p.Week1, 1); err != nil {
				return nil, err
			}
		}
		if p.Week2 != nil {
			if err := writeCard(p.Week2, 2); err != nil {
				return nil, err
			}
		}
	}

	summaryPath := filepath.Join(dir, "summary.html")
	f, err := os.Create(summaryPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	if err := WriteSummary(f, batch); err != nil {
		return nil, fmt.Errorf("render %s: %w", summaryPath, err)
	}
	paths = append(paths, summaryPath)
	return paths, nil
}

// sanitizeFilename drops characters that are unsafe in file names.
func sanitizeFilename(name string) string {
	replacer := strings.NewReplacer("/", "-", "\\", "-", ":", "-", "*", "", "?", "", "\"", "", "<", "", ">", "", "|", "")
	return replacer.Replace(name)
}
