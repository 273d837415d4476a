package counter

import (
	"sync"
	"testing"
)

func TestCounter(t *testing.T) {
	t.Run("InitialCountIsZero", func(t *testing.T) {
		counter := NewCounter()
		if got := counter.Count(); got != 0 {
			t.Errorf("Expected initial count to be 0, got %d", got)
		}
	})

	t.Run("AddsAccumulate", func(t *testing.T) {
		counter := NewCounter()
		counter.Add(1)
		counter.Add(4)
		if got := counter.Count(); got != 5 {
			t.Errorf("Expected count to be 5, got %d", got)
		}
	})

	t.Run("ConcurrentAdds", func(t *testing.T) {
		counter := NewCounter()
		const goroutines = 8
		const addsPerGoroutine = 100

		var wg sync.WaitGroup
		for i := 0; i < goroutines; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for j := 0; j < addsPerGoroutine; j++ {
					counter.Add(1)
				}
			}()
		}
		wg.Wait()

		if got := counter.Count(); got != goroutines*addsPerGoroutine {
			t.Errorf("Expected count to be %d after concurrent adds, got %d", goroutines*addsPerGoroutine, got)
		}
	})
}
