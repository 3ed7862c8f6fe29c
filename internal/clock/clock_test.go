package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRealClock_Now(t *testing.T) {
	c := RealClock{}

	before := time.Now().UTC()
	got := c.Now()
	after := time.Now().UTC()

	assert.False(t, got.Before(before), "clock.Now() should not return time before actual time.Now()")
	assert.False(t, got.After(after), "clock.Now() should not return time after actual time.Now()")
	assert.Equal(t, time.UTC, got.Location(), "clock.Now() should return UTC")
}

func TestFixed_Now(t *testing.T) {
	at := time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)
	c := Fixed{At: at}

	assert.Equal(t, at, c.Now())

	// Repeated calls return the same instant.
	assert.Equal(t, at, c.Now())
	assert.Equal(t, at, c.Now())
}
