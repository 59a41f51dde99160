package connection

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithRetry(t *testing.T) {
	retryDelay = 0

	t.Run("succeeds after failures", func(t *testing.T) {
		calls := 0
		err := withRetry("dial", 3, func() error {
			calls++
			if calls < 3 {
				return errors.New("refused")
			}
			return nil
		})
		assert.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("gives up", func(t *testing.T) {
		boom := errors.New("refused")
		calls := 0
		err := withRetry("dial", 2, func() error {
			calls++
			return boom
		})
		assert.ErrorIs(t, err, boom)
		assert.Contains(t, err.Error(), "dial failed after 2 retries")
		assert.Equal(t, 2, calls)
	})
}
