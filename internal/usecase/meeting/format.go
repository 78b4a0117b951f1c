package meeting

import (
	"fmt"
	"time"

	"gorm.io/datatypes"
)

const (
	dateLayout      = "2006-01-02"
	clockLayout     = "15:04"
	clockLayoutLong = "15:04:05"
)

// parseClock accepts HH:MM and HH:MM:SS wall-clock values
func parseClock(value string) (time.Time, error) {
	t, err := time.Parse(clockLayout, value)
	if err == nil {
		return t, nil
	}
	return time.Parse(clockLayoutLong, value)
}

func toClock(t time.Time) datatypes.Time {
	return datatypes.NewTime(t.Hour(), t.Minute(), t.Second(), 0)
}

// formatClock renders a stored wall-clock value as HH:MM, or HH:MM:SS when
// seconds are present
func formatClock(t datatypes.Time) string {
	d := time.Duration(t)
	h := int(d / time.Hour)
	m := int(d % time.Hour / time.Minute)
	sec := int(d % time.Minute / time.Second)
	if sec != 0 {
		return fmt.Sprintf("%02d:%02d:%02d", h, m, sec)
	}
	return fmt.Sprintf("%02d:%02d", h, m)
}

func formatDate(d datatypes.Date) string {
	t := time.Time(d)
	if t.IsZero() {
		return ""
	}
	return t.Format(dateLayout)
}

func formatOptionalDate(d *datatypes.Date) *string {
	if d == nil || time.Time(*d).IsZero() {
		return nil
	}
	s := formatDate(*d)
	return &s
}
