// Package timeclock holds the pure clock-in/clock-out rules: status
// derivation against the fixed workday thresholds and worked-hours math.
// All wall-clock comparisons use the server's local timezone.
package timeclock

import "time"

// Status is the per-day attendance outcome. The record carries a single
// status slot, so late takes precedence over early leave.
type Status string

const (
	StatusPresent    Status = "present"
	StatusAbsent     Status = "absent"
	StatusLate       Status = "late"
	StatusEarlyLeave Status = "early_leave"
)

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusPresent, StatusAbsent, StatusLate, StatusEarlyLeave:
		return true
	}
	return false
}

const (
	workdayStartHour = 9
	workdayEndHour   = 18

	// DefaultBreakMinutes applies at clock-out when a record carries no
	// explicit break.
	DefaultBreakMinutes = 60
)

// DateOf returns the calendar day of t as YYYY-MM-DD.
func DateOf(t time.Time) string { return t.Format("2006-01-02") }

// ClockInStatus marks a clock-in late when it lands after 09:00 on its own day.
func ClockInStatus(now time.Time) Status {
	start := time.Date(now.Year(), now.Month(), now.Day(), workdayStartHour, 0, 0, 0, now.Location())
	if now.After(start) {
		return StatusLate
	}
	return StatusPresent
}

// ClockOutStatus flags an early leave before 18:00 unless the day already
// counts as late.
func ClockOutStatus(prior Status, out time.Time) Status {
	end := time.Date(out.Year(), out.Month(), out.Day(), workdayEndHour, 0, 0, 0, out.Location())
	if out.Before(end) && prior != StatusLate {
		return StatusEarlyLeave
	}
	return prior
}

// TotalHours converts a stamped interval into worked hours: whole minutes
// between the stamps, minus the break, floored at zero.
func TotalHours(in, out time.Time, breakMinutes int) float64 {
	worked := int(out.Sub(in).Minutes())
	if breakMinutes > 0 {
		worked -= breakMinutes
	}
	if worked < 0 {
		worked = 0
	}
	return float64(worked) / 60
}
