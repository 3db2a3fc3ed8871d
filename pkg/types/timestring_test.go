package types

import (
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"00:00", false},
		{"09:30", false},
		{"23:59", false},
		{"24:00", true},
		{"9:30", true}, // leading zero required
		{"09:60", true},
		{"0930", true},
		{"", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			ts, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTimeString)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.input, ts.String())
			}
		})
	}
}

func TestTimeString_LexicographicOrderIsChronological(t *testing.T) {
	times := []TimeString{"18:00", "02:00", "09:30", "22:00", "00:00"}

	sort.Slice(times, func(i, j int) bool {
		return times[i].IsBefore(times[j])
	})

	assert.Equal(t, []TimeString{"00:00", "02:00", "09:30", "18:00", "22:00"}, times)
}

func TestTimeString_OnDate(t *testing.T) {
	loc, err := time.LoadLocation("America/Argentina/Buenos_Aires")
	require.NoError(t, err)

	date := time.Date(2026, 9, 7, 0, 0, 0, 0, loc)
	instant, err := TimeString("14:30").OnDate(date)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2026, 9, 7, 14, 30, 0, 0, loc), instant)

	_, err = TimeString("zz:zz").OnDate(date)
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestNewTimeString_DropsSeconds(t *testing.T) {
	ts := NewTimeString(time.Date(2026, 9, 7, 8, 5, 59, 0, time.UTC))
	assert.Equal(t, TimeString("08:05"), ts)
}
