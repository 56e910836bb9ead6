package reqcode

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	now := time.Date(2026, 8, 30, 14, 5, 6, 123*1e6, time.UTC)

	t.Run("service request", func(t *testing.T) {
		code := Generate(1, now)
		require.Regexp(t, regexp.MustCompile(`^IT\d{9}$`), code)
		require.Equal(t, "IT260830123", code)
	})

	t.Run("information system request", func(t *testing.T) {
		require.Equal(t, "IS260830123", Generate(2, now))
	})

	t.Run("development request", func(t *testing.T) {
		require.Equal(t, "DEV260830123", Generate(3, now))
	})

	t.Run("unknown type", func(t *testing.T) {
		require.Equal(t, "UNK260830123", Generate(99, now))
	})

	t.Run("millisecond padding", func(t *testing.T) {
		early := time.Date(2026, 1, 2, 0, 0, 0, 7*1e6, time.UTC)
		require.Equal(t, "IT260102007", Generate(1, early))
	})
}
