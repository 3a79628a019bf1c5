package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRealClock_Now(t *testing.T) {
	clock := NewRealClock()

	before := time.Now()
	now := clock.Now()
	after := time.Now()

	assert.False(t, now.Before(before), "clock time should not be before start")
	assert.False(t, now.After(after), "clock time should not be after end")
}

func TestMockClock(t *testing.T) {
	fixedTime := time.Date(2025, 6, 1, 10, 30, 0, 0, time.UTC)
	clock := NewMockClock(fixedTime)

	assert.Equal(t, fixedTime, clock.Now())

	clock.Advance(90 * time.Second)
	assert.Equal(t, fixedTime.Add(90*time.Second), clock.Now())

	other := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	clock.Set(other)
	assert.Equal(t, other, clock.Now())
}

func TestNewMockClockFromString(t *testing.T) {
	clock := NewMockClockFromString("2025-06-01T08:00:00Z")
	assert.Equal(t, time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC), clock.Now())

	assert.Panics(t, func() { NewMockClockFromString("not-a-time") })
}

func TestAgeSeconds(t *testing.T) {
	start := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	clock := NewMockClock(start)

	assert.Equal(t, 0, AgeSeconds(clock, start))

	clock.Advance(61500 * time.Millisecond)
	assert.Equal(t, 61, AgeSeconds(clock, start))

	assert.Equal(t, 0, AgeSeconds(clock, start.Add(time.Hour)), "future timestamps clamp to zero")
}
