package core

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Event and input systems are process-wide singletons; set them up once for
// the whole package.
func TestMain(m *testing.M) {
	EventSystemInitialize()
	if err := InputInitialize(); err != nil {
		os.Exit(1)
	}
	go ProcessEvents()
	os.Exit(m.Run())
}

// User event codes live above MAX_EVENT_CODE.
const (
	testEventCodeBase EventCode = MAX_EVENT_CODE + 0x10
)

// flushEventQueue blocks until every event enqueued before the call has been
// dispatched. The queue is FIFO, so observing a sentinel event proves
// everything ahead of it was drained. Tests that register handlers for codes
// other tests also fire use this to start from a quiet queue.
func flushEventQueue(t *testing.T) {
	t.Helper()
	const sentinel = testEventCodeBase + 0xFF
	drained := make(chan struct{}, 1)
	handle, err := EventRegister(sentinel, func(EventContext) bool {
		drained <- struct{}{}
		return true
	})
	require.NoError(t, err)
	defer EventUnregister(sentinel, handle)

	EventFire(EventContext{Type: sentinel})
	select {
	case <-drained:
	case <-time.After(2 * time.Second):
		t.Fatal("event queue was never drained")
	}
}

func TestEventSystemInitializeOnce(t *testing.T) {
	// Already initialized by TestMain.
	assert.False(t, EventSystemInitialize())
}

func TestEventDispatchOrder(t *testing.T) {
	code := testEventCodeBase + 1
	var order []int

	h1, err := EventRegister(code, func(EventContext) bool {
		order = append(order, 1)
		return false
	})
	require.NoError(t, err)
	h2, err := EventRegister(code, func(EventContext) bool {
		order = append(order, 2)
		return false
	})
	require.NoError(t, err)
	defer func() {
		assert.NoError(t, EventUnregister(code, h1))
		assert.NoError(t, EventUnregister(code, h2))
	}()

	consumed := EventFireImmediate(EventContext{Type: code})
	assert.False(t, consumed)
	assert.Equal(t, []int{1, 2}, order)
}

func TestEventConsumptionStopsPropagation(t *testing.T) {
	code := testEventCodeBase + 2
	secondRan := false

	h1, err := EventRegister(code, func(EventContext) bool { return true })
	require.NoError(t, err)
	h2, err := EventRegister(code, func(EventContext) bool {
		secondRan = true
		return false
	})
	require.NoError(t, err)
	defer func() {
		assert.NoError(t, EventUnregister(code, h1))
		assert.NoError(t, EventUnregister(code, h2))
	}()

	assert.True(t, EventFireImmediate(EventContext{Type: code}))
	assert.False(t, secondRan)
}

func TestEventUnregister(t *testing.T) {
	code := testEventCodeBase + 3
	ran := false

	handle, err := EventRegister(code, func(EventContext) bool {
		ran = true
		return false
	})
	require.NoError(t, err)
	require.NoError(t, EventUnregister(code, handle))

	EventFireImmediate(EventContext{Type: code})
	assert.False(t, ran)

	// Unregistering twice fails.
	assert.Error(t, EventUnregister(code, handle))
}

func TestEventFireQueued(t *testing.T) {
	code := testEventCodeBase + 4
	received := make(chan EventContext, 1)

	handle, err := EventRegister(code, func(ctx EventContext) bool {
		received <- ctx
		return true
	})
	require.NoError(t, err)
	defer EventUnregister(code, handle)

	EventFire(EventContext{Type: code, Data: &SystemEvent{WindowWidth: 640}})

	select {
	case ctx := <-received:
		se, ok := ctx.Data.(*SystemEvent)
		require.True(t, ok)
		assert.Equal(t, uint32(640), se.WindowWidth)
	case <-time.After(2 * time.Second):
		t.Fatal("queued event was never dispatched")
	}
}

func TestEventQueuedOrdering(t *testing.T) {
	code := testEventCodeBase + 5
	received := make(chan int, 16)

	handle, err := EventRegister(code, func(ctx EventContext) bool {
		received <- ctx.Data.(int)
		return true
	})
	require.NoError(t, err)
	defer EventUnregister(code, handle)

	for i := 0; i < 5; i++ {
		EventFire(EventContext{Type: code, Data: i})
	}

	for want := 0; want < 5; want++ {
		select {
		case got := <-received:
			assert.Equal(t, want, got)
		case <-time.After(2 * time.Second):
			t.Fatalf("event %d was never dispatched", want)
		}
	}
}
