// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package ebitenhost

import (
	"errors"

	"github.com/YindSoft/nativeshell"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// mouseID is the tracker id of the mouse, which stands in for a touch on
// desktop. Touch ids are never negative.
const mouseID = -1

const defaultMaxFrameRate = 60

// Options for creating the host. All fields are optional.
type Options struct {
	MaxFrameRate int32   // Reported to the engine. Defaults to 60.
	PixelScale   float64 // Backing-store scale. Defaults to the monitor's device scale factor.
}

// Host runs a Shell inside Ebitengine. It implements ebiten.Game: Update is
// the UI loop, the display refresh and the input source.
type Host struct {
	shell   *nativeshell.Shell
	loop    *nativeshell.Loop
	link    *displayLink
	surface *PixelSurface
	keys    *keyInput

	tracker  nativeshell.PointerTracker
	touchIDs []ebiten.TouchID
	contacts []nativeshell.Contact
	visible  bool
	dirty    bool
	bound    bool

	// createErr stops creation attempts after the engine refused a session.
	createErr error
}

// New creates a host for engine. The frame clock is armed immediately.
func New(engine nativeshell.Engine, opts *Options) *Host {
	maxFrameRate := int32(defaultMaxFrameRate)
	scale := 0.0
	if opts != nil {
		if opts.MaxFrameRate > 0 {
			maxFrameRate = opts.MaxFrameRate
		}
		scale = opts.PixelScale
	}
	h := &Host{
		loop:    nativeshell.NewLoop(),
		link:    &displayLink{},
		surface: newPixelSurface(maxFrameRate, scale),
		keys:    newKeyInput(),
	}
	h.shell = nativeshell.NewShell(engine, h.surface, h.link, h.keys, h.loop)
	h.shell.ViewLoaded()
	return h
}

// Shell returns the wrapped shell.
func (h *Host) Shell() *nativeshell.Shell {
	return h.shell
}

// Run configures Ebiten for display-synchronised updates and runs the host.
func (h *Host) Run() error {
	ebiten.SetTPS(ebiten.SyncWithFPS)
	ebiten.SetRunnableOnUnfocused(true)
	return ebiten.RunGame(h)
}

func (h *Host) Update() error {
	if !h.bound {
		// The update goroutine is the UI thread for the rest of the game.
		h.loop.Bind()
		h.bound = true
	}
	h.loop.Drain()
	h.syncVisibility(!ebiten.IsWindowMinimized())
	h.forwardPointer()
	h.keys.poll(h.shell.Text)
	if h.link.fire() {
		h.dirty = true
	}
	return nil
}

func (h *Host) Draw(screen *ebiten.Image) {
	if h.dirty {
		h.surface.present()
		h.dirty = false
	}
	h.surface.draw(screen)
}

func (h *Host) Layout(outsideWidth, outsideHeight int) (int, int) {
	scale := 1.0
	if m := ebiten.Monitor(); m != nil {
		scale = m.DeviceScaleFactor()
	}
	h.surface.allocate(outsideWidth, outsideHeight, scale)
	return outsideWidth, outsideHeight
}

// syncVisibility applies visibility transitions. While visible without a
// session it calls BecomeVisible again each tick until the surface handles
// are ready.
func (h *Host) syncVisibility(visible bool) {
	waiting := h.shell.Session() == nil && h.createErr == nil
	switch {
	case visible && (!h.visible || waiting):
		err := h.shell.BecomeVisible()
		if err != nil && !errors.Is(err, nativeshell.ErrSurfaceNotReady) {
			h.createErr = err
			nativeshell.Logger().Error("session creation failed", "error", err)
		}
	case !visible && h.visible:
		h.shell.BecomeHidden()
	}
	h.visible = visible
}

func (h *Host) forwardPointer() {
	if id, ok := h.tracker.Tracking(); ok {
		h.trackPointer(id)
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		h.forward(h.tracker.Begin(mouseID, float32(x), float32(y)))
	}
	h.touchIDs = ebiten.AppendTouchIDs(h.touchIDs[:0])
	h.contacts = h.contacts[:0]
	for _, id := range h.touchIDs {
		x, y := ebiten.TouchPosition(id)
		h.contacts = append(h.contacts, nativeshell.Contact{ID: int(id), X: float32(x), Y: float32(y)})
	}
	h.forward(h.tracker.Next(h.contacts))
}

// trackPointer emits the move or end of the tracked contact.
func (h *Host) trackPointer(id int) {
	if id == mouseID {
		x, y := ebiten.CursorPosition()
		if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
			h.forward(h.tracker.End(id, float32(x), float32(y)))
			return
		}
		h.forward(h.tracker.Move(id, float32(x), float32(y)))
		return
	}
	tid := ebiten.TouchID(id)
	if inpututil.IsTouchJustReleased(tid) {
		x, y := inpututil.TouchPositionInPreviousTick(tid)
		h.forward(h.tracker.End(id, float32(x), float32(y)))
		return
	}
	x, y := ebiten.TouchPosition(tid)
	h.forward(h.tracker.Move(id, float32(x), float32(y)))
}

func (h *Host) forward(ev nativeshell.PointerEvent, ok bool) {
	if ok {
		h.shell.Input.Forward(ev)
	}
}

// Close releases the session and the surface.
func (h *Host) Close() error {
	err := h.shell.Close()
	h.surface.release()
	return err
}
