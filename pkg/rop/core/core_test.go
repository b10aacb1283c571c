package core

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocomotive_ProcessesInOrder(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	inbox := make(chan int)
	var got []int
	wg := &sync.WaitGroup{}
	wg.Add(1)
	go Locomotive(ctx, inbox, func(ctx context.Context, msg int) {
		got = append(got, msg)
	}, nil, wg)

	for i := range 10 {
		inbox <- i
	}
	close(inbox)
	wg.Wait()

	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, got)
}

func TestLocomotive_NeverOverlaps(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	inbox := make(chan int, 8)
	var mu sync.Mutex
	active, maxActive := 0, 0

	wg := &sync.WaitGroup{}
	wg.Add(1)
	go Locomotive(ctx, inbox, func(ctx context.Context, msg int) {
		mu.Lock()
		active++
		if active > maxActive {
			maxActive = active
		}
		mu.Unlock()
		time.Sleep(time.Millisecond)
		mu.Lock()
		active--
		mu.Unlock()
	}, nil, wg)

	senders := &sync.WaitGroup{}
	for i := range 4 {
		senders.Add(1)
		go func() {
			defer senders.Done()
			for j := range 5 {
				inbox <- i*10 + j
			}
		}()
	}
	senders.Wait()
	close(inbox)
	wg.Wait()

	assert.Equal(t, 1, maxActive)
}

func TestLocomotive_OnStopGetsQueuedMessages(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	inbox := make(chan int, 3)
	inbox <- 1
	inbox <- 2
	inbox <- 3
	cancel()

	var stopped []int
	wg := &sync.WaitGroup{}
	wg.Add(1)
	Locomotive(ctx, inbox, func(ctx context.Context, msg int) {
		t.Errorf("engine must not run after cancel, got %d", msg)
	}, func(ctx context.Context, msg int) {
		stopped = append(stopped, msg)
	}, wg)

	assert.Equal(t, []int{1, 2, 3}, stopped)
}

func TestToChan_StoppedAndCancelled(t *testing.T) {
	t.Parallel()

	stopped := make(chan struct{})
	close(stopped)
	err := ToChan(context.Background(), make(chan int), 1, stopped)
	assert.ErrorIs(t, err, ErrStopped)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err = ToChan(ctx, make(chan int, 1), 1, nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFromChanFirst(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	out := make(chan string, 1)
	stopped := make(chan struct{})
	out <- "reply"
	close(stopped)
	v, err := FromChanFirst(ctx, out, stopped)
	require.NoError(t, err)
	assert.Equal(t, "reply", v)

	_, err = FromChanFirst(ctx, make(chan string), stopped)
	assert.ErrorIs(t, err, ErrStopped)

	timeoutCtx, cancel := context.WithTimeout(ctx, 10*time.Millisecond)
	defer cancel()
	_, err = FromChanFirst(timeoutCtx, make(chan string), nil)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestWorkerOptions(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	assert.Equal(t, 3, GetInboxSize(ctx, 3))
	assert.Equal(t, 16, GetInboxSize(WithWorkerOptions(ctx, 16), 3))
	assert.Equal(t, 3, GetInboxSize(WithWorkerOptions(ctx, -1), 3))
}

func TestFromChanMany(t *testing.T) {
	t.Parallel()

	out := make(chan int, 3)
	out <- 1
	out <- 2
	close(out)
	assert.Equal(t, []int{1, 2}, FromChanMany(context.Background(), out))
}
