package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	t.Run("plain date", func(t *testing.T) {
		parsed, err := ParseDate("2026-03-15")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), parsed)
	})

	t.Run("rfc3339", func(t *testing.T) {
		parsed, err := ParseDate("2026-03-15T09:30:00Z")
		require.NoError(t, err)
		assert.Equal(t, 9, parsed.Hour())
		assert.Equal(t, 30, parsed.Minute())
	})

	t.Run("rfc3339 with offset", func(t *testing.T) {
		parsed, err := ParseDate("2026-03-15T09:30:00+03:00")
		require.NoError(t, err)
		_, offset := parsed.Zone()
		assert.Equal(t, 3*3600, offset)
	})

	t.Run("unsupported format", func(t *testing.T) {
		_, err := ParseDate("15/03/2026")
		assert.Error(t, err)
	})

	t.Run("empty string", func(t *testing.T) {
		_, err := ParseDate("")
		assert.Error(t, err)
	})
}
