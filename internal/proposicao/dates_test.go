package proposicao

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInstant(t *testing.T) {
	t.Run("Should parse the live API timestamp shape", func(t *testing.T) {
		got := ParseInstant("2024-05-02T14:30")
		require.NotNil(t, got)
		assert.Equal(t, 2024, got.Year())
		assert.Equal(t, time.May, got.Month())
		assert.Equal(t, 2, got.Day())
		assert.Equal(t, 14, got.Hour())
	})

	t.Run("Should parse a plain date", func(t *testing.T) {
		got := ParseInstant("2024-01-10")
		require.NotNil(t, got)
		assert.Equal(t, 10, got.Day())
	})

	t.Run("Should parse day-first dates from bulk files", func(t *testing.T) {
		got := ParseInstant("02/05/2024")
		require.NotNil(t, got)
		assert.Equal(t, time.May, got.Month())
		assert.Equal(t, 2, got.Day())
	})

	t.Run("Should pass through time.Time values", func(t *testing.T) {
		now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.Local)
		got := ParseInstant(now)
		require.NotNil(t, got)
		assert.True(t, got.Equal(now))
	})

	t.Run("Should return nil for nil, empty, and garbage", func(t *testing.T) {
		assert.Nil(t, ParseInstant(nil))
		assert.Nil(t, ParseInstant(""))
		assert.Nil(t, ParseInstant("   "))
		assert.Nil(t, ParseInstant("not-a-date"))
		assert.Nil(t, ParseInstant(time.Time{}))
		assert.Nil(t, ParseInstant((*time.Time)(nil)))
	})
}

func TestDaysSinceAt(t *testing.T) {
	today := time.Date(2024, 1, 15, 10, 30, 0, 0, time.Local)

	t.Run("Should count whole days regardless of time of day", func(t *testing.T) {
		got := DaysSinceAt("2024-01-10", today)
		require.NotNil(t, got)
		assert.Equal(t, 5, *got)
	})

	t.Run("Should accept an already-parsed instant", func(t *testing.T) {
		parsed := ParseInstant("2024-01-10")
		require.NotNil(t, parsed)
		got := DaysSinceAt(parsed, today)
		require.NotNil(t, got)
		assert.Equal(t, 5, *got)
	})

	t.Run("Should return zero for the same day", func(t *testing.T) {
		got := DaysSinceAt("2024-01-15", today)
		require.NotNil(t, got)
		assert.Equal(t, 0, *got)
	})

	t.Run("Should go negative for future-dated status", func(t *testing.T) {
		got := DaysSinceAt("2024-02-01", today)
		require.NotNil(t, got)
		assert.Equal(t, -17, *got)
	})

	t.Run("Should return nil for unreadable values", func(t *testing.T) {
		assert.Nil(t, DaysSinceAt("not-a-date", today))
		assert.Nil(t, DaysSinceAt(nil, today))
		assert.Nil(t, DaysSinceAt("", today))
	})
}
