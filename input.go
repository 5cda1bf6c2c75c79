// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package nativeshell

// InputForwarder delivers pointer events to the current session. Events that
// arrive before the session exists are dropped, never buffered.
type InputForwarder struct {
	current func() Session
}

// Forward delivers ev and reports whether a session received it.
func (f *InputForwarder) Forward(ev PointerEvent) bool {
	s := f.current()
	if s == nil {
		Logger().Debug("pointer event dropped", "phase", ev.Phase, "reason", ErrNoSession)
		return false
	}
	s.Pointer(ev)
	return true
}

func (f *InputForwarder) Down(x, y float32) bool {
	return f.Forward(PointerEvent{X: x, Y: y, Phase: PhaseBegin})
}

func (f *InputForwarder) Move(x, y float32) bool {
	return f.Forward(PointerEvent{X: x, Y: y, Phase: PhaseMove})
}

func (f *InputForwarder) Up(x, y float32) bool {
	return f.Forward(PointerEvent{X: x, Y: y, Phase: PhaseEnd})
}

// PointerTracker reduces raw contacts to a single tracked pointer: the first
// contact that goes down is followed until it lifts, others are ignored.
type PointerTracker struct {
	active bool
	id     int
	x, y   float32
}

// Begin starts tracking id unless another contact is already tracked.
func (t *PointerTracker) Begin(id int, x, y float32) (PointerEvent, bool) {
	if t.active {
		return PointerEvent{}, false
	}
	t.active, t.id, t.x, t.y = true, id, x, y
	return PointerEvent{X: x, Y: y, Phase: PhaseBegin}, true
}

// Move reports a move of the tracked contact when its position changed.
func (t *PointerTracker) Move(id int, x, y float32) (PointerEvent, bool) {
	if !t.active || t.id != id || (x == t.x && y == t.y) {
		return PointerEvent{}, false
	}
	t.x, t.y = x, y
	return PointerEvent{X: x, Y: y, Phase: PhaseMove}, true
}

// End stops tracking id.
func (t *PointerTracker) End(id int, x, y float32) (PointerEvent, bool) {
	if !t.active || t.id != id {
		return PointerEvent{}, false
	}
	t.active = false
	return PointerEvent{X: x, Y: y, Phase: PhaseEnd}, true
}

// Contact is a pressed contact as reported by the host.
type Contact struct {
	ID   int
	X, Y float32
}

// Next starts tracking the first of pressed when no contact is tracked. The
// host calls it every tick, so a finger still down when the tracked one lifts
// takes over.
func (t *PointerTracker) Next(pressed []Contact) (PointerEvent, bool) {
	if t.active || len(pressed) == 0 {
		return PointerEvent{}, false
	}
	c := pressed[0]
	return t.Begin(c.ID, c.X, c.Y)
}

// Tracking returns the tracked contact id.
func (t *PointerTracker) Tracking() (int, bool) {
	return t.id, t.active
}
