package timer

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func waitDone(t *testing.T, o *OneShot) {
	t.Helper()
	select {
	case <-o.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("timer never finished")
	}
}

func TestOneShot_Fires(t *testing.T) {
	var calls int32
	o := Start(context.Background(), 5*time.Millisecond, func() { atomic.AddInt32(&calls, 1) })

	waitDone(t, o)
	assert.Eventually(t, func() bool { return atomic.LoadInt32(&calls) == 1 }, time.Second, time.Millisecond)
	assert.True(t, o.Fired())
	assert.False(t, o.Stop())
}

func TestOneShot_StopPreventsCall(t *testing.T) {
	var calls int32
	o := Start(context.Background(), 20*time.Millisecond, func() { atomic.AddInt32(&calls, 1) })

	require.True(t, o.Stop())
	assert.False(t, o.Stop())

	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, int32(0), atomic.LoadInt32(&calls))
	assert.False(t, o.Fired())
	assert.True(t, o.Stopped())
	waitDone(t, o)
}

func TestOneShot_ContextCancelStops(t *testing.T) {
	var calls int32
	ctx, cancel := context.WithCancel(context.Background())
	o := Start(ctx, 20*time.Millisecond, func() { atomic.AddInt32(&calls, 1) })

	cancel()
	waitDone(t, o)

	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, int32(0), atomic.LoadInt32(&calls))
	assert.True(t, o.Stopped())
}

func TestOneShot_NilFunc(t *testing.T) {
	o := Start(context.Background(), time.Millisecond, nil)
	waitDone(t, o)
	assert.True(t, o.Fired())
}
