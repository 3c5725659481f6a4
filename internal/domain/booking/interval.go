package booking

import (
	"errors"
	"fmt"
	"math"
	"time"
)

const (
	MinHours = 1
	MaxHours = 8

	secondsPerHour = 3600
)

var (
	ErrInvalidDate  = errors.New("invalid booking date")
	ErrInvalidClock = errors.New("invalid start time")
	ErrInvalidHours = errors.New("hours must be an integer between 1 and 8")
)

const dateLayout = "2006-01-02"

func ParseDate(value string) (time.Time, error) {
	d, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return d, nil
}

func FormatDate(d time.Time) string {
	return d.Format(dateLayout)
}

// ParseClock accepts a 24-hour time at minute or second precision and
// normalizes it to second precision ("09:00" -> "09:00:00").
func ParseClock(value string) (string, int, error) {
	normalized := value
	if len(value) == len("15:04") {
		normalized = value + ":00"
	}
	t, err := time.Parse("15:04:05", normalized)
	if err != nil {
		return "", 0, ErrInvalidClock
	}
	seconds := t.Hour()*secondsPerHour + t.Minute()*60 + t.Second()
	return normalized, seconds, nil
}

// FormatClock renders seconds-since-midnight as HH:MM. An end time past
// midnight keeps counting upward (25:00) because intervals never wrap.
func FormatClock(seconds int) string {
	return fmt.Sprintf("%02d:%02d", seconds/secondsPerHour, seconds%secondsPerHour/60)
}

// NewHours rejects fractional values and anything outside [MinHours, MaxHours].
func NewHours(value float64) (int, error) {
	if value != math.Trunc(value) {
		return 0, ErrInvalidHours
	}
	hours := int(value)
	if hours < MinHours || hours > MaxHours {
		return 0, ErrInvalidHours
	}
	return hours, nil
}

// Interval is a half-open range [StartSec, EndSec) in seconds since midnight
// on a single calendar date. The end is computed by straight addition and is
// deliberately not wrapped to the next day.
type Interval struct {
	StartSec int
	EndSec   int
}

func NewInterval(startSec, hours int) Interval {
	return Interval{
		StartSec: startSec,
		EndSec:   startSec + hours*secondsPerHour,
	}
}

// Overlaps is the standard half-open overlap test: touching endpoints do not
// conflict.
func (iv Interval) Overlaps(other Interval) bool {
	return iv.StartSec < other.EndSec && other.StartSec < iv.EndSec
}

func (iv Interval) StartClock() string {
	return fmt.Sprintf("%02d:%02d:%02d",
		iv.StartSec/secondsPerHour, iv.StartSec%secondsPerHour/60, iv.StartSec%60)
}

func (iv Interval) EndClock() string {
	return FormatClock(iv.EndSec)
}
