// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package nativeshell

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"testing"
)

// recordingSession records every entry-point call in order.
type recordingSession struct {
	mu     sync.Mutex
	calls  []string
	texts  []TextEvent
	closed bool
}

func (s *recordingSession) record(c string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, c)
}

func (s *recordingSession) Advance() { s.record("advance") }

func (s *recordingSession) Pointer(ev PointerEvent) {
	s.record(fmt.Sprintf("%s(%g,%g)", ev.Phase, ev.X, ev.Y))
}

func (s *recordingSession) Text(ev TextEvent) {
	s.mu.Lock()
	s.texts = append(s.texts, ev)
	s.mu.Unlock()
	s.record(ev.String())
}

func (s *recordingSession) Close() error {
	s.closed = true
	return nil
}

func (s *recordingSession) Calls() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.calls...)
}

func (s *recordingSession) count(c string) int {
	n := 0
	for _, got := range s.Calls() {
		if got == c {
			n++
		}
	}
	return n
}

type fakeEngine struct {
	creates int
	desc    SurfaceDescriptor
	cb      Callbacks
	session *recordingSession
	err     error
}

func (e *fakeEngine) CreateApp(desc SurfaceDescriptor, cb Callbacks) (Session, error) {
	e.creates++
	if e.err != nil {
		return nil, e.err
	}
	e.desc = desc
	e.cb = cb
	e.session = &recordingSession{}
	return e.session, nil
}

// manualLink is a display link driven by the test.
type manualLink struct {
	target func()
	paused bool
	fired  int
}

func (l *manualLink) SetTarget(fn func())   { l.target = fn }
func (l *manualLink) SetPaused(paused bool) { l.paused = paused }

func (l *manualLink) tick(n int) {
	for range n {
		if l.paused || l.target == nil {
			continue
		}
		l.fired++
		l.target()
	}
}

type staticSurface struct {
	desc SurfaceDescriptor
}

func (s *staticSurface) Descriptor() SurfaceDescriptor { return s.desc }

func readySurface() *staticSurface {
	return &staticSurface{desc: SurfaceDescriptor{
		View: 0x1000, Layer: 0x2000, Width: 390, Height: 844,
		MaxFrameRate: 120, PixelScale: 3,
	}}
}

var errNoWindowFocus = errors.New("no window focus")

// fakeFocus reports, for each focus change, whether it ran on the loop thread.
type fakeFocus struct {
	loop    *Loop
	fail    bool
	focused bool
	changes chan bool
}

func newFakeFocus(loop *Loop) *fakeFocus {
	return &fakeFocus{loop: loop, changes: make(chan bool, 8)}
}

func (f *fakeFocus) Focus() error {
	f.changes <- f.loop.OnLoop()
	if f.fail {
		return errNoWindowFocus
	}
	f.focused = true
	return nil
}

func (f *fakeFocus) Blur() {
	f.changes <- f.loop.OnLoop()
	f.focused = false
}

func (f *fakeFocus) Focused() bool { return f.focused }

type fixture struct {
	engine  *fakeEngine
	surface *staticSurface
	link    *manualLink
	focus   *fakeFocus
	loop    *Loop
	shell   *Shell
}

func newFixture() *fixture {
	f := &fixture{
		engine:  &fakeEngine{},
		surface: readySurface(),
		link:    &manualLink{},
		loop:    NewLoop(),
	}
	f.focus = newFakeFocus(f.loop)
	f.shell = NewShell(f.engine, f.surface, f.link, f.focus, f.loop)
	return f
}

// captureLogs routes package logs into a buffer for the duration of the test.
func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	return &buf
}
