package resilience

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestSingleFlight_CollapsesConcurrentReads(t *testing.T) {
	var g SingleFlight
	var executions int32

	const readers = 25
	start := make(chan struct{})
	var shared int32
	var wg sync.WaitGroup
	wg.Add(readers)

	for i := 0; i < readers; i++ {
		go func() {
			defer wg.Done()
			<-start
			value, err, wasShared := g.Do("points-table:1", func() (any, error) {
				atomic.AddInt32(&executions, 1)
				time.Sleep(20 * time.Millisecond)
				return "standings", nil
			})
			if err != nil {
				t.Errorf("singleflight call failed: %v", err)
			}
			if value != "standings" {
				t.Errorf("unexpected shared value: %v", value)
			}
			if wasShared {
				atomic.AddInt32(&shared, 1)
			}
		}()
	}

	close(start)
	wg.Wait()

	if got := atomic.LoadInt32(&executions); got != 1 {
		t.Fatalf("expected function to run once, got %d", got)
	}
	if got := atomic.LoadInt32(&shared); got != readers-1 {
		t.Fatalf("expected %d shared results, got %d", readers-1, got)
	}
}

func TestSingleFlight_PropagatesErrorToAllCallers(t *testing.T) {
	var g SingleFlight
	wantErr := errors.New("table load failed")

	_, err, _ := g.Do("points-table:2", func() (any, error) {
		return nil, wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected load error, got %v", err)
	}

	// The failed call must not stay registered for the key.
	value, err, _ := g.Do("points-table:2", func() (any, error) {
		return 7, nil
	})
	if err != nil {
		t.Fatalf("second call failed: %v", err)
	}
	if value != 7 {
		t.Fatalf("unexpected value after failed call: %v", value)
	}
}
