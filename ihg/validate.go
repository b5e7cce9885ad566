package ihg

import (
	"fmt"
	"math"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	dayLayout = "2006-01-02"

	// MaxCalendarDays is the inclusive day-count ceiling for calendar queries
	MaxCalendarDays = 62
	// MaxRadius is the largest accepted area search radius
	MaxRadius = 100
)

// now is swapped out in tests that exercise the date defaults.
var now = time.Now

func today() time.Time {
	t := now()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// parseDay parses a strict YYYY-MM-DD calendar date. time.Parse alone is too
// lenient (it accepts unpadded parts), so the result is formatted back and
// compared.
func parseDay(field, value string) (time.Time, error) {
	t, err := time.Parse(dayLayout, value)
	if err != nil || t.Format(dayLayout) != value {
		return time.Time{}, &ValidationError{Field: field, Reason: fmt.Sprintf("%q is not a YYYY-MM-DD date", value)}
	}
	return t, nil
}

func validateHotelCode(code string) error {
	if strings.TrimSpace(code) == "" {
		return &ValidationError{Field: "hotel code", Reason: "is required"}
	}
	return nil
}

// resolveCalendarRange applies defaults and enforces the ordering and
// day-count invariants. It returns the parsed endpoints and the inclusive
// day count.
func resolveCalendarRange(q CalendarQuery) (start, end time.Time, days int, err error) {
	if q.StartDate == "" {
		start = today()
	} else if start, err = parseDay("start date", q.StartDate); err != nil {
		return
	}
	if q.EndDate == "" {
		end = start.AddDate(0, 0, MaxCalendarDays-1)
	} else if end, err = parseDay("end date", q.EndDate); err != nil {
		return
	}
	if end.Before(start) {
		err = &ValidationError{Field: "end date", Reason: "must not be before start date"}
		return
	}
	days = int(end.Sub(start).Hours()/24) + 1
	if days > MaxCalendarDays {
		err = &ValidationError{Field: "date range", Reason: fmt.Sprintf("spans %d days, maximum is %d", days, MaxCalendarDays)}
	}
	return
}

// resolveStay applies defaults and validates a stay window plus guest counts.
func resolveStay(checkIn, checkOut string, adults, children int) (in, out time.Time, a, c int, err error) {
	if checkIn == "" {
		in = today()
	} else if in, err = parseDay("check-in", checkIn); err != nil {
		return
	}
	if checkOut == "" {
		out = in.AddDate(0, 0, 1)
	} else if out, err = parseDay("check-out", checkOut); err != nil {
		return
	}
	if !out.After(in) {
		err = &ValidationError{Field: "check-out", Reason: "must be after check-in"}
		return
	}
	a, c = adults, children
	if a == 0 {
		a = 1
	}
	if a < 1 {
		err = &ValidationError{Field: "adults", Reason: "must be at least 1"}
		return
	}
	if c < 0 {
		err = &ValidationError{Field: "children", Reason: "must not be negative"}
	}
	return
}

func validateCoordinates(coords []float64) error {
	if len(coords) != 2 {
		return &ValidationError{Field: "coordinates", Reason: "must be a [longitude, latitude] pair"}
	}
	for _, v := range coords {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return &ValidationError{Field: "coordinates", Reason: "must be finite numbers"}
		}
	}
	if coords[0] < -180 || coords[0] > 180 {
		return &ValidationError{Field: "coordinates", Reason: "longitude out of range"}
	}
	if coords[1] < -90 || coords[1] > 90 {
		return &ValidationError{Field: "coordinates", Reason: "latitude out of range"}
	}
	return nil
}

// normalizeUnit maps the accepted spellings onto the two wire units.
func normalizeUnit(unit string) (DistanceUnit, error) {
	switch strings.ToLower(strings.TrimSpace(unit)) {
	case "", "mi", "mile", "miles":
		return UnitMiles, nil
	case "km", "kilometer", "kilometers", "kilometre", "kilometres":
		return UnitKilometers, nil
	}
	return "", &ValidationError{Field: "unit", Reason: fmt.Sprintf("%q is not one of mi, km", unit)}
}

func validateRadius(radius float64) (float64, error) {
	if radius == 0 {
		return MaxRadius, nil
	}
	if radius < 0 || radius > MaxRadius {
		return 0, &ValidationError{Field: "radius", Reason: fmt.Sprintf("must be between 0 and %d", MaxRadius)}
	}
	return radius, nil
}

func validateDestinationQuery(query string) error {
	// Count characters, not bytes, so multibyte input is measured the same
	// way a user typed it.
	if utf8.RuneCountInString(strings.TrimSpace(query)) < 3 {
		return &ValidationError{Field: "query", Reason: "must be at least 3 characters"}
	}
	return nil
}

// upstreamDate renders a calendar day the way the API expects it, with the
// fixed midnight UTC suffix.
func upstreamDate(t time.Time) string {
	return t.Format(dayLayout) + "T00:00:00Z"
}
