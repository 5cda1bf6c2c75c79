// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package nativeshell

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"
)

// Loop is the UI task queue. Post may be called from any goroutine; tasks run
// in FIFO order on the goroutine that bound the loop, which is locked to its
// OS thread for the loop's lifetime.
type Loop struct {
	mu    sync.Mutex
	tasks []func()
	wake  chan struct{}
	owner atomic.Int64
}

// NewLoop returns an unbound loop.
func NewLoop() *Loop {
	return &Loop{wake: make(chan struct{}, 1)}
}

// Post queues fn for the UI loop.
func (l *Loop) Post(fn func()) {
	if fn == nil {
		return
	}
	l.mu.Lock()
	l.tasks = append(l.tasks, fn)
	l.mu.Unlock()
	select {
	case l.wake <- struct{}{}:
	default:
	}
}

// Do runs fn immediately when called on the loop thread, otherwise posts it.
func (l *Loop) Do(fn func()) {
	if l.OnLoop() {
		fn()
		return
	}
	l.Post(fn)
}

// Bind makes the calling goroutine the loop thread and locks it to its OS
// thread. The returned func undoes both and must run on the same goroutine.
func (l *Loop) Bind() (unbind func()) {
	runtime.LockOSThread()
	l.owner.Store(threadID())
	return func() {
		l.owner.Store(0)
		runtime.UnlockOSThread()
	}
}

// OnLoop reports whether the caller runs on the loop thread.
func (l *Loop) OnLoop() bool {
	owner := l.owner.Load()
	return owner != 0 && owner == threadID()
}

// Drain runs the tasks queued so far and returns how many ran. Tasks posted
// while draining wait for the next call. Drain does not bind the loop.
func (l *Loop) Drain() int {
	l.mu.Lock()
	tasks := l.tasks
	l.tasks = nil
	l.mu.Unlock()
	for _, fn := range tasks {
		fn()
	}
	return len(tasks)
}

func (l *Loop) pending() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.tasks)
}

// Run binds the loop to the calling goroutine and drains tasks until ctx is
// done.
func (l *Loop) Run(ctx context.Context) error {
	defer l.Bind()()
	for {
		l.Drain()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-l.wake:
		}
	}
}
