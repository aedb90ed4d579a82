package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMinutesToClock(t *testing.T) {
	assert.Equal(t, "08:00", MinutesToClock(480))
	assert.Equal(t, "00:00", MinutesToClock(0))
	assert.Equal(t, "20:00", MinutesToClock(1200))
	assert.Equal(t, "09:45", MinutesToClock(585))
}

func TestClockToMinutes(t *testing.T) {
	m, err := ClockToMinutes("08:00")
	require.NoError(t, err)
	assert.Equal(t, 480, m)

	m, err = ClockToMinutes("23:59")
	require.NoError(t, err)
	assert.Equal(t, 1439, m)

	for _, bad := range []string{"8", "24:00", "10:60", "ab:cd", ""} {
		_, err := ClockToMinutes(bad)
		assert.Error(t, err, bad)
	}
}

func TestFormatXAF(t *testing.T) {
	assert.Equal(t, "21 000 FCFA", FormatXAF(21000))
	assert.Equal(t, "500 FCFA", FormatXAF(500))
	assert.Equal(t, "1 250 000 FCFA", FormatXAF(1250000))
	assert.Equal(t, "0 FCFA", FormatXAF(0))
	assert.Equal(t, "-5 000 FCFA", FormatXAF(-5000))
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "45min", FormatDuration(45))
	assert.Equal(t, "1h", FormatDuration(60))
	assert.Equal(t, "1h30", FormatDuration(90))
	assert.Equal(t, "2h05", FormatDuration(125))
}
