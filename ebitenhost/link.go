// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package ebitenhost

// displayLink turns Ebiten updates into display ticks. The host runs with
// ebiten.SyncWithFPS, so one update is one display refresh.
type displayLink struct {
	target func()
	paused bool
}

func (l *displayLink) SetTarget(fn func()) {
	l.target = fn
}

func (l *displayLink) SetPaused(paused bool) {
	l.paused = paused
}

// fire runs the target unless paused and reports whether it ran.
func (l *displayLink) fire() bool {
	if l.paused || l.target == nil {
		return false
	}
	l.target()
	return true
}
