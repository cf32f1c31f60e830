package scheduler

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestHost_RegisterRejectsMalformedSpec(t *testing.T) {
	h := NewHost(zap.NewNop())
	err := h.Register("bad", "not a cron spec", func(ctx context.Context) {})
	assert.Error(t, err)
}

func TestHost_StartStop_NoJobsRegistered(t *testing.T) {
	h := NewHost(zap.NewNop())
	h.Start(context.Background())

	done := make(chan struct{})
	go func() {
		h.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Stop did not return; host may be blocked waiting on in-flight ticks that never started")
	}
}

func TestGuard_DropsOverlappingTick(t *testing.T) {
	var concurrent int32
	var maxConcurrent int32
	var calls int32

	release := make(chan struct{})
	slow := func(ctx context.Context) {
		atomic.AddInt32(&calls, 1)
		n := atomic.AddInt32(&concurrent, 1)
		for {
			old := atomic.LoadInt32(&maxConcurrent)
			if n <= old || atomic.CompareAndSwapInt32(&maxConcurrent, old, n) {
				break
			}
		}
		<-release
		atomic.AddInt32(&concurrent, -1)
	}

	guarded := guard("slow-job", zap.NewNop(), slow)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		guarded(context.Background())
	}()

	// Give the first tick time to acquire the guard before firing a second.
	time.Sleep(20 * time.Millisecond)
	guarded(context.Background())

	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&calls), "the overlapping tick must be dropped, not queued")
	assert.Equal(t, int32(1), atomic.LoadInt32(&maxConcurrent))
}

func TestGuard_RunsSequentialTicks(t *testing.T) {
	var calls int32
	guarded := guard("job", zap.NewNop(), func(ctx context.Context) {
		atomic.AddInt32(&calls, 1)
	})

	guarded(context.Background())
	guarded(context.Background())
	guarded(context.Background())

	require.Equal(t, int32(3), atomic.LoadInt32(&calls))
}
