package workerpool

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

func TestPoolRunsAllTasks(t *testing.T) {
	pool := New(4, 16)
	results := pool.Run(context.Background())

	var ran atomic.Int64
	for i := 0; i < 20; i++ {
		if !pool.Submit(context.Background(), func(ctx context.Context) error {
			ran.Add(1)
			return nil
		}) {
			t.Fatal("submit rejected")
		}
	}
	pool.Close()

	var got int
	for r := range results {
		if r.Err != nil {
			t.Errorf("unexpected error: %v", r.Err)
		}
		got++
	}
	if got != 20 {
		t.Errorf("results = %d, want 20", got)
	}
	if ran.Load() != 20 {
		t.Errorf("ran = %d, want 20", ran.Load())
	}
}

func TestPoolReportsTaskErrors(t *testing.T) {
	errBoom := errors.New("boom")
	pool := New(2, 4)
	results := pool.Run(context.Background())

	pool.Submit(context.Background(), func(ctx context.Context) error { return errBoom })
	pool.Submit(context.Background(), func(ctx context.Context) error { return nil })
	pool.Close()

	var failed int
	for r := range results {
		if errors.Is(r.Err, errBoom) {
			failed++
		}
	}
	if failed != 1 {
		t.Errorf("failed = %d, want 1", failed)
	}
}

func TestPoolHandlesMoreTasksThanResultBuffer(t *testing.T) {
	pool := New(2, 2)
	results := pool.Run(context.Background())

	const tasks = 20000
	go func() {
		defer pool.Close()
		for i := 0; i < tasks; i++ {
			pool.Submit(context.Background(), func(ctx context.Context) error { return nil })
		}
	}()

	done := make(chan int)
	go func() {
		var got int
		for range results {
			got++
		}
		done <- got
	}()

	select {
	case got := <-done:
		if got != tasks {
			t.Errorf("results = %d, want %d", got, tasks)
		}
	case <-time.After(10 * time.Second):
		t.Fatal("pool did not finish draining")
	}
}

func TestPoolSubmitUnblocksOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	pool := New(1, 0)

	// No workers running, so the unbuffered task channel can never accept.
	cancel()
	ok := pool.Submit(ctx, func(ctx context.Context) error { return nil })
	if ok {
		t.Error("submit accepted after cancel")
	}
}

func TestPoolStopsOnContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	pool := New(1, 0)
	results := pool.Run(ctx)

	cancel()

	select {
	case _, open := <-results:
		if open {
			t.Error("expected closed result channel after cancel")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("result channel not closed after cancel")
	}
}
