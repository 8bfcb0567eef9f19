package timezone_test

import (
	"testing"
	"time"

	"borrowdung/shared/timezone"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup(t *testing.T) {
	timezone.Setup("Asia/Jakarta")
	defer timezone.Setup("UTC")

	assert.Equal(t, "Asia/Jakarta", timezone.GetLocation().String())
	assert.False(t, timezone.Now().IsZero())
}

func TestSetupUnknownKeepsPrevious(t *testing.T) {
	timezone.Setup("UTC")
	timezone.Setup("Mars/Olympus_Mons")

	assert.Equal(t, time.UTC, timezone.GetLocation())
}

func TestParseAPI(t *testing.T) {
	timezone.Setup("UTC")

	tests := []struct {
		name     string
		value    string
		expected time.Time
	}{
		{
			name:     "rfc3339 with offset",
			value:    "2025-03-10T09:00:00+07:00",
			expected: time.Date(2025, 3, 10, 2, 0, 0, 0, time.UTC),
		},
		{
			name:     "server timestamp without offset",
			value:    "2025-03-10T09:00:00",
			expected: time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC),
		},
		{
			name:     "fractional seconds",
			value:    "2025-03-10T09:00:00.1234567",
			expected: time.Date(2025, 3, 10, 9, 0, 0, 123456700, time.UTC),
		},
		{
			name:     "datetime-local input",
			value:    "2025-03-10T09:30",
			expected: time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := timezone.ParseAPI(tt.value)
			require.NoError(t, err)
			assert.True(t, tt.expected.Equal(got), "expected %s, got %s", tt.expected, got)
		})
	}
}

func TestParseAPIInvalid(t *testing.T) {
	_, err := timezone.ParseAPI("kemarin")

	assert.ErrorIs(t, err, timezone.ErrUnparsable)
}
