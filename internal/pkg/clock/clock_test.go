package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFunc(t *testing.T) {
	fixed := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	var c Clocker = Func(func() time.Time { return fixed })

	assert.Equal(t, fixed, c.Now())
}

func TestSystem(t *testing.T) {
	before := time.Now()

	got := New().Now()

	assert.False(t, got.Before(before))
}
