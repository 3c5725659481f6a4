//go:build unit

package booking_test

import (
	"testing"

	"facility-booking/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	t.Run("normalizes minute precision to second precision", func(t *testing.T) {
		normalized, seconds, err := booking.ParseClock("09:00")
		require.NoError(t, err)
		assert.Equal(t, "09:00:00", normalized)
		assert.Equal(t, 9*3600, seconds)
	})

	t.Run("accepts second precision as is", func(t *testing.T) {
		normalized, seconds, err := booking.ParseClock("14:30:15")
		require.NoError(t, err)
		assert.Equal(t, "14:30:15", normalized)
		assert.Equal(t, 14*3600+30*60+15, seconds)
	})

	t.Run("rejects malformed values", func(t *testing.T) {
		for _, value := range []string{"", "9:00", "25:00", "09-00", "09:60", "noon"} {
			_, _, err := booking.ParseClock(value)
			assert.ErrorIs(t, err, booking.ErrInvalidClock, "value %q", value)
		}
	})
}

func TestParseDate(t *testing.T) {
	t.Run("accepts ISO dates", func(t *testing.T) {
		d, err := booking.ParseDate("2026-09-15")
		require.NoError(t, err)
		assert.Equal(t, "2026-09-15", booking.FormatDate(d))
	})

	t.Run("rejects other layouts", func(t *testing.T) {
		for _, value := range []string{"", "15/09/2026", "2026-9-15", "2026-13-01", "tomorrow"} {
			_, err := booking.ParseDate(value)
			assert.ErrorIs(t, err, booking.ErrInvalidDate, "value %q", value)
		}
	})
}

func TestNewHours(t *testing.T) {
	tests := []struct {
		name    string
		value   float64
		want    int
		wantErr bool
	}{
		{name: "minimum", value: 1, want: 1},
		{name: "maximum", value: 8, want: 8},
		{name: "zero", value: 0, wantErr: true},
		{name: "above maximum", value: 9, wantErr: true},
		{name: "negative", value: -2, wantErr: true},
		{name: "fractional", value: 1.5, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := booking.NewHours(tt.value)
			if tt.wantErr {
				assert.ErrorIs(t, err, booking.ErrInvalidHours)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIntervalOverlaps(t *testing.T) {
	at := func(startHour, hours int) booking.Interval {
		return booking.NewInterval(startHour*3600, hours)
	}

	tests := []struct {
		name string
		a, b booking.Interval
		want bool
	}{
		{name: "identical", a: at(9, 2), b: at(9, 2), want: true},
		{name: "contained", a: at(9, 4), b: at(10, 1), want: true},
		{name: "partial overlap", a: at(9, 2), b: at(10, 2), want: true},
		{name: "touching endpoints do not conflict", a: at(9, 2), b: at(11, 2), want: false},
		{name: "disjoint", a: at(9, 1), b: at(14, 1), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Overlaps(tt.b))
			assert.Equal(t, tt.want, tt.b.Overlaps(tt.a), "overlap must be symmetric")
		})
	}
}

func TestIntervalPastMidnight(t *testing.T) {
	// A late start plus the maximum duration runs past midnight; the end keeps
	// counting upward instead of wrapping to the next day.
	iv := booking.NewInterval(23*3600, 8)
	assert.Equal(t, 31*3600, iv.EndSec)
	assert.Equal(t, "31:00", iv.EndClock())

	early := booking.NewInterval(1*3600, 2)
	assert.False(t, iv.Overlaps(early), "a spill past midnight stays on its own date")
}

func TestClockFormatting(t *testing.T) {
	iv := booking.NewInterval(9*3600+30*60, 3)
	assert.Equal(t, "09:30:00", iv.StartClock())
	assert.Equal(t, "12:30", iv.EndClock())
}
