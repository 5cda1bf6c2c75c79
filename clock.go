// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package nativeshell

// DisplayLink is the host's display-refresh signal. A paused link must not
// invoke its target at all.
type DisplayLink interface {
	SetTarget(fn func())
	SetPaused(paused bool)
}

// ClockState is the frame clock state.
type ClockState uint8

const (
	ClockStopped ClockState = iota
	ClockArmed
	ClockRunning
)

func (s ClockState) String() string {
	switch s {
	case ClockArmed:
		return "armed"
	case ClockRunning:
		return "running"
	default:
		return "stopped"
	}
}

// FrameClock drives one tick per display refresh while running. Pausing is
// delegated to the DisplayLink; there is no pacing or catch-up here.
type FrameClock struct {
	link  DisplayLink
	state ClockState
}

func NewFrameClock(link DisplayLink) *FrameClock {
	return &FrameClock{link: link}
}

// Arm registers tick with the display link and leaves it paused.
// Arming an armed or running clock does nothing.
func (c *FrameClock) Arm(tick func()) {
	if c.state != ClockStopped {
		return
	}
	c.link.SetTarget(tick)
	c.link.SetPaused(true)
	c.state = ClockArmed
}

// Start resumes an armed clock. It reports whether the clock is running.
func (c *FrameClock) Start() bool {
	if c.state == ClockArmed {
		c.link.SetPaused(false)
		c.state = ClockRunning
	}
	return c.state == ClockRunning
}

// Pause returns a running clock to armed.
func (c *FrameClock) Pause() {
	if c.state != ClockRunning {
		return
	}
	c.link.SetPaused(true)
	c.state = ClockArmed
}

func (c *FrameClock) State() ClockState {
	return c.state
}
