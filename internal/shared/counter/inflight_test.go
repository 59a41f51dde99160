package counter_test

import (
	"sync"
	"testing"

	"hris-console/internal/shared/counter"

	"github.com/stretchr/testify/assert"
)

func TestInFlight(t *testing.T) {
	t.Run("begin and done balance", func(t *testing.T) {
		c := counter.NewInFlight()
		assert.False(t, c.Active())

		done1 := c.Begin()
		done2 := c.Begin()
		assert.Equal(t, int64(2), c.Count())
		assert.True(t, c.Active())

		done1()
		done1()
		assert.Equal(t, int64(1), c.Count())

		done2()
		assert.False(t, c.Active())
	})

	t.Run("concurrent requests", func(t *testing.T) {
		c := counter.NewInFlight()
		var wg sync.WaitGroup
		for i := 0; i < 50; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				done := c.Begin()
				done()
			}()
		}
		wg.Wait()
		assert.Equal(t, int64(0), c.Count())
	})

	t.Run("counters are independent", func(t *testing.T) {
		a := counter.NewInFlight()
		b := counter.NewInFlight()
		done := a.Begin()
		defer done()
		assert.True(t, a.Active())
		assert.False(t, b.Active())
	})
}
