package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSlotTime(t *testing.T) {
	ts := time.Date(2026, 3, 14, 8, 0, 0, 0, time.UTC)
	assert.Equal(t, SlotTime("8-00"), NewSlotTime(ts))

	ts = time.Date(2026, 3, 14, 17, 20, 0, 0, time.UTC)
	assert.Equal(t, SlotTime("17-20"), NewSlotTime(ts))
}

func TestNewSlotTimeFromString(t *testing.T) {
	tests := []struct {
		input   string
		want    SlotTime
		wantErr bool
	}{
		{"8-00", "8-00", false},
		{"14-40", "14-40", false},
		{"18-00", "18-00", false},
		{"8:00", "", true},
		{"25-00", "", true},
		{"8-61", "", true},
		{"", "", true},
		{"abc", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := NewSlotTimeFromString(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidSlotTime)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSlotTime_Clock(t *testing.T) {
	h, m := SlotTime("9-20").Clock()
	assert.Equal(t, 9, h)
	assert.Equal(t, 20, m)
}

func TestSlotTime_MinutesFromMidnight(t *testing.T) {
	assert.Equal(t, 8*60, SlotTime("8-00").MinutesFromMidnight())
	assert.Equal(t, 17*60+20, SlotTime("17-20").MinutesFromMidnight())
}

func TestSlotTime_Ordering(t *testing.T) {
	// Лексикографическое сравнение строк дало бы обратный порядок
	assert.True(t, SlotTime("8-00").IsBefore("10-00"))
	assert.True(t, SlotTime("10-00").IsAfter("8-00"))
	assert.False(t, SlotTime("8-00").IsBefore("8-00"))
}

func TestSlotTime_Label(t *testing.T) {
	assert.Equal(t, "8:00", SlotTime("8-00").Label())
	assert.Equal(t, "17:20", SlotTime("17-20").Label())
}

func TestSlotTime_At(t *testing.T) {
	day := time.Date(2026, 3, 14, 23, 45, 0, 0, time.UTC)
	got := SlotTime("8-40").At(day)
	assert.Equal(t, time.Date(2026, 3, 14, 8, 40, 0, 0, time.UTC), got)
}
