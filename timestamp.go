package main

import (
	"fmt"
	"time"
)

// TimestampRequest carries the raw /timestamp options. A nil field
// means the option was not supplied; zero is a real value, never
// "absent".
type TimestampRequest struct {
	Year    *int
	Month   *int
	Day     *int
	Hour    *int
	Minute  *int
	Second  *int
	Country string
}

// TimestampResult is the output of a successful calculation. All
// fields are views of the same instant.
type TimestampResult struct {
	Unix        int64
	UTCString   string
	LocalString string
	Timezone    string
	Time        time.Time
}

// InputError is a user-caused failure: missing mode fields, an unknown
// country code, or calendar values that don't name a real local time.
type InputError struct {
	Reason string
}

func (e *InputError) Error() string { return e.Reason }

// CalculationError is an unexpected failure while constructing or
// formatting the instant. Rare; worth a log line when it happens.
type CalculationError struct {
	Reason string
}

func (e *CalculationError) Error() string { return e.Reason }

const (
	utcLayout   = "2006-01-02T15:04:05.000Z07:00"
	localLayout = "2006-01-02 15:04:05 -0700"
)

// calculateTimestamp converts civil date/time fields and a country
// code into a TimestampResult. Two input modes are accepted:
//
//   - full date: year, month, and day all supplied; hour/minute/second
//     default to midnight
//   - time only: hour, minute, and second all supplied, applied to
//     today's date in the resolved zone; a supplied day overrides the
//     current day of month
//
// When every field is supplied, full-date mode wins. now is only
// consulted in time-only mode, so the function stays a pure function
// of its arguments.
func calculateTimestamp(req TimestampRequest, now time.Time) (*TimestampResult, error) {
	hasFullDate := req.Year != nil && req.Month != nil && req.Day != nil
	hasTime := req.Hour != nil && req.Minute != nil && req.Second != nil

	if !hasFullDate && !hasTime {
		return nil, &InputError{Reason: "You must provide either:\n• Year, Month, and Day (full date mode)\n• Hour, Minute, and Second (time-only mode)"}
	}

	zone, ok := resolveTimezone(req.Country)
	if !ok {
		return nil, &InputError{Reason: fmt.Sprintf("Invalid country code: **%s**\nPlease use a valid country code (e.g., US, GB, JP, CA, AU)", req.Country)}
	}

	loc, err := time.LoadLocation(zone)
	if err != nil {
		return nil, &CalculationError{Reason: fmt.Sprintf("timezone %s is not available: %v", zone, err)}
	}

	var year, month, day, hour, minute, second int
	if hasFullDate {
		year, month, day = *req.Year, *req.Month, *req.Day
		hour = intOrZero(req.Hour)
		minute = intOrZero(req.Minute)
		second = intOrZero(req.Second)
	} else {
		local := now.In(loc)
		year, month = local.Year(), int(local.Month())
		day = local.Day()
		if req.Day != nil {
			day = *req.Day
		}
		hour, minute, second = *req.Hour, *req.Minute, *req.Second
	}

	if err := validateCivilFields(year, month, day, hour, minute, second); err != nil {
		return nil, err
	}

	t := time.Date(year, time.Month(month), day, hour, minute, second, 0, loc)
	// time.Date silently normalizes values that don't name a real local
	// time, e.g. an hour skipped by a spring-forward transition. A
	// changed component after construction means the input was invalid.
	if t.Year() != year || int(t.Month()) != month || t.Day() != day ||
		t.Hour() != hour || t.Minute() != minute || t.Second() != second {
		return nil, &InputError{Reason: fmt.Sprintf(
			"Invalid date/time: %04d-%02d-%02d %02d:%02d:%02d does not exist in %s\nThe closest real local time is %s",
			year, month, day, hour, minute, second, zone, t.Format(localLayout))}
	}

	return &TimestampResult{
		Unix:        t.Unix(),
		UTCString:   t.UTC().Format(utcLayout),
		LocalString: t.Format(localLayout),
		Timezone:    zone,
		Time:        t,
	}, nil
}

func validateCivilFields(year, month, day, hour, minute, second int) error {
	switch {
	case month < 1 || month > 12:
		return &InputError{Reason: fmt.Sprintf("Invalid date/time: month %d is out of range (1-12)", month)}
	case hour < 0 || hour > 23:
		return &InputError{Reason: fmt.Sprintf("Invalid date/time: hour %d is out of range (0-23)", hour)}
	case minute < 0 || minute > 59:
		return &InputError{Reason: fmt.Sprintf("Invalid date/time: minute %d is out of range (0-59)", minute)}
	case second < 0 || second > 59:
		return &InputError{Reason: fmt.Sprintf("Invalid date/time: second %d is out of range (0-59)", second)}
	}
	if max := daysInMonth(year, time.Month(month)); day < 1 || day > max {
		return &InputError{Reason: fmt.Sprintf("Invalid date/time: day %d is out of range for %04d-%02d (1-%d)", day, year, month, max)}
	}
	return nil
}

// daysInMonth returns the number of days in the month, leap years
// included. Day 0 of the next month is the last day of this one.
func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func intOrZero(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}
