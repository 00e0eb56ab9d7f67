package domain

import (
	"strings"
	"time"
)

const (
	// TimeSeparator splits the start and end sides of a shift token.
	TimeSeparator = "-"

	hourFormat       = "3PM"
	hourMinuteFormat = "3:04PM"
)

// ShiftInterval is one contiguous clocked-in-to-clocked-out span on a single
// day, parsed from a token like "10am-11am" or "3pm-7:30pm".
type ShiftInterval struct {
	StartStr string // canonical form: trimmed, uppercased ("3:45PM")
	EndStr   string
	Start    time.Time
	End      time.Time
	Hours    float64
}

// ParseShiftInterval parses a "start-end" shift token. Each side is a clock
// time with or without minutes, detected independently. The duration is
// end - start, wrapped by +24h when end <= start (overnight shifts).
func ParseShiftInterval(token string) (ShiftInterval, error) {
	parts := strings.Split(token, TimeSeparator)
	if len(parts) != 2 {
		return ShiftInterval{}, formatErrorf("shift token %q: start and end time must be separated by %q", token, TimeSeparator)
	}
	startStr := cleanTimeStr(parts[0])
	endStr := cleanTimeStr(parts[1])
	start, err := parseClockTime(startStr)
	if err != nil {
		return ShiftInterval{}, formatErrorf("shift token %q: invalid start time %q", token, startStr)
	}
	end, err := parseClockTime(endStr)
	if err != nil {
		return ShiftInterval{}, formatErrorf("shift token %q: invalid end time %q", token, endStr)
	}
	hours := end.Sub(start).Hours()
	if !end.After(start) {
		hours += 24
	}
	return ShiftInterval{
		StartStr: startStr,
		EndStr:   endStr,
		Start:    start,
		End:      end,
		Hours:    hours,
	}, nil
}

// String returns the canonical "START-END" form; re-parsing it yields the
// same start and end times.
func (si ShiftInterval) String() string {
	return si.StartStr + TimeSeparator + si.EndStr
}

func cleanTimeStr(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// parseClockTime picks the time layout by checking for minutes in the string.
func parseClockTime(s string) (time.Time, error) {
	layout := hourFormat
	if strings.Contains(s, ":") {
		layout = hourMinuteFormat
	}
	return time.Parse(layout, s)
}
