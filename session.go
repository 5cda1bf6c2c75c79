// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package nativeshell

import (
	"fmt"
	"io"
)

// SurfaceProvider exposes the drawable the engine renders into.
type SurfaceProvider interface {
	Descriptor() SurfaceDescriptor
}

// Shell is the host context: it owns the current-session slot, the frame
// clock and the input and text bridges. Every method except the engine
// callbacks must be called on the UI loop.
type Shell struct {
	engine  Engine
	surface SurfaceProvider
	loop    *Loop
	clock   *FrameClock

	session Session
	visible bool

	Input *InputForwarder
	Text  *TextBridge
}

// NewShell wires a shell. The loop carries engine callbacks back to the UI
// thread; pass the same loop the host drains.
func NewShell(engine Engine, surface SurfaceProvider, link DisplayLink, focus FocusTarget, loop *Loop) *Shell {
	s := &Shell{
		engine:  engine,
		surface: surface,
		loop:    loop,
		clock:   NewFrameClock(link),
	}
	s.Input = &InputForwarder{current: s.Session}
	s.Text = &TextBridge{current: s.Session, loop: loop, focus: focus}
	return s
}

// Session returns the live session or nil.
func (s *Shell) Session() Session {
	return s.session
}

// Clock returns the frame clock.
func (s *Shell) Clock() *FrameClock {
	return s.clock
}

// Visible reports whether the surface is on screen.
func (s *Shell) Visible() bool {
	return s.visible
}

// ViewLoaded arms the frame clock.
func (s *Shell) ViewLoaded() {
	s.clock.Arm(s.AdvanceFrame)
}

// BecomeVisible creates the session on first use and starts the clock.
// With zero surface handles creation is deferred and ErrSurfaceNotReady
// returned; the next call tries again.
func (s *Shell) BecomeVisible() error {
	s.visible = true
	s.ViewLoaded()
	if s.session == nil {
		if err := s.createSession(); err != nil {
			return err
		}
	}
	s.clock.Start()
	return nil
}

// BecomeHidden pauses the clock. The session stays resident.
func (s *Shell) BecomeHidden() {
	s.visible = false
	s.clock.Pause()
}

func (s *Shell) createSession() error {
	desc := s.surface.Descriptor()
	if !desc.Ready() {
		Logger().Debug("session creation deferred", "view", desc.View, "layer", desc.Layer)
		return ErrSurfaceNotReady
	}
	session, err := s.engine.CreateApp(desc, s.callbacks())
	if err != nil {
		return fmt.Errorf("create app: %w", err)
	}
	if session == nil {
		return ErrCreateFailed
	}
	s.session = session
	Logger().Info("session created",
		"width", desc.Width, "height", desc.Height,
		"max_frame_rate", desc.MaxFrameRate, "pixel_scale", desc.PixelScale)
	return nil
}

func (s *Shell) callbacks() Callbacks {
	return Callbacks{
		ShowKeyboard: s.Text.RequestFocus,
		HideKeyboard: s.Text.ReleaseFocus,
		Lifecycle:    s.notifyLifecycle,
	}
}

// notifyLifecycle logs known codes on the UI loop. Engines usually notify
// from inside draw_frame, which already runs there.
func (s *Shell) notifyLifecycle(code int32) {
	s.loop.Do(func() {
		name, ok := lifecycleName(code)
		if !ok {
			return
		}
		Logger().Info("engine lifecycle", "code", code, "event", name)
	})
}

// AdvanceFrame renders one frame. It does nothing before the session exists.
func (s *Shell) AdvanceFrame() {
	if s.session == nil {
		return
	}
	s.session.Advance()
}

// Close pauses the clock and releases the session if it supports it.
func (s *Shell) Close() error {
	s.BecomeHidden()
	session := s.session
	s.session = nil
	if c, ok := session.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
