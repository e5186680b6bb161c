package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocationFallsBack(t *testing.T) {
	assert.Equal(t, "UTC", Location("UTC").String())
	assert.Equal(t, DefaultTimezone, Location("Not/AZone").String())
	assert.Equal(t, DefaultTimezone, Location("").String())
}

func TestSameCivilDay(t *testing.T) {
	loc := time.UTC
	a := time.Date(2026, 3, 2, 0, 0, 0, 0, loc)
	b := time.Date(2026, 3, 2, 23, 59, 0, 0, loc)
	c := time.Date(2026, 3, 3, 0, 0, 0, 0, loc)

	assert.True(t, SameCivilDay(a, b, loc))
	assert.False(t, SameCivilDay(b, c, loc))
	// within 24h but a different date
	assert.False(t, SameCivilDay(b, c.Add(time.Minute), loc))
}

func TestParseDateTime(t *testing.T) {
	loc := time.UTC
	got, err := ParseDateTime("2026-03-02", "08:30", loc)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 2, 8, 30, 0, 0, loc), got)

	_, err = ParseDateTime("2026-03-02", "8h30", loc)
	assert.Error(t, err)
}

func TestStartOfDay(t *testing.T) {
	loc := time.UTC
	at := time.Date(2026, 3, 2, 17, 45, 12, 0, loc)
	assert.Equal(t, time.Date(2026, 3, 2, 0, 0, 0, 0, loc), StartOfDay(at, loc))
}
