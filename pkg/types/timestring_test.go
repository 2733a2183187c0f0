package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMinutesFromMidnight(t *testing.T) {
	tests := []struct {
		name    string
		input   TimeString
		want    int
		wantErr bool
	}{
		{name: "morning", input: "10:00 AM", want: 600},
		{name: "midnight is zero", input: "12:00 AM", want: 0},
		{name: "noon stays twelve", input: "12:00 PM", want: 720},
		{name: "afternoon adds twelve", input: "2:30 PM", want: 870},
		{name: "just before midnight", input: "11:59 PM", want: 1439},
		{name: "lowercase marker", input: "9:15 am", want: 555},
		{name: "missing marker", input: "10:00", wantErr: true},
		{name: "unknown marker", input: "10:00 XM", wantErr: true},
		{name: "hour out of range", input: "13:00 PM", wantErr: true},
		{name: "zero hour", input: "0:30 AM", wantErr: true},
		{name: "minute out of range", input: "10:60 AM", wantErr: true},
		{name: "single digit minute", input: "10:5 AM", wantErr: true},
		{name: "empty string", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.input.MinutesFromMidnight()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTimeFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewTimeString(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want TimeString
	}{
		{name: "morning", in: time.Date(2025, 4, 15, 10, 0, 0, 0, time.Local), want: "10:00 AM"},
		{name: "midnight", in: time.Date(2025, 4, 15, 0, 5, 0, 0, time.Local), want: "12:05 AM"},
		{name: "noon", in: time.Date(2025, 4, 15, 12, 0, 0, 0, time.Local), want: "12:00 PM"},
		{name: "evening", in: time.Date(2025, 4, 15, 19, 45, 0, 0, time.Local), want: "7:45 PM"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewTimeString(tt.in))
		})
	}
}

func TestCompare(t *testing.T) {
	assert.True(t, TimeString("10:00 AM").IsBefore("2:00 PM"))
	assert.False(t, TimeString("2:00 PM").IsBefore("10:00 AM"))
	assert.False(t, TimeString("10:00 AM").IsBefore("10:00 AM"))

	assert.True(t, TimeString("2:00 PM").IsAfter("10:00 AM"))
	assert.False(t, TimeString("10:00 AM").IsAfter("10:00 AM"))

	// Невалидные значения не сравниваются
	assert.False(t, TimeString("garbage").IsBefore("10:00 AM"))
	assert.False(t, TimeString("10:00 AM").IsAfter("garbage"))
}

func TestAddMinutes(t *testing.T) {
	tests := []struct {
		name    string
		input   TimeString
		minutes int
		want    TimeString
	}{
		{name: "within hour", input: "10:00 AM", minutes: 30, want: "10:30 AM"},
		{name: "cross noon", input: "11:30 AM", minutes: 60, want: "12:30 PM"},
		{name: "cross midnight wraps", input: "11:30 PM", minutes: 60, want: "12:30 AM"},
		{name: "negative shift", input: "12:30 AM", minutes: -60, want: "11:30 PM"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.input.AddMinutes(tt.minutes)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := TimeString("bad").AddMinutes(10)
	assert.ErrorIs(t, err, ErrInvalidTimeFormat)
}
