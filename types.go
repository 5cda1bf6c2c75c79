// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package nativeshell

import "fmt"

// SurfaceDescriptor describes the drawable handed to the engine at creation.
// It is read once; later resizes are not propagated to a live session.
type SurfaceDescriptor struct {
	View         uintptr // drawable handle (pixel buffer for the Ebiten host)
	Layer        uintptr // layer handle (layer record for the Ebiten host)
	Width        int32
	Height       int32
	MaxFrameRate int32
	PixelScale   float64
}

// Ready reports whether both handles are set. Session creation is deferred
// until it is.
func (d SurfaceDescriptor) Ready() bool {
	return d.View != 0 && d.Layer != 0
}

// Phase is the stage of a single-pointer contact.
type Phase uint8

const (
	PhaseBegin Phase = iota
	PhaseMove
	PhaseEnd
)

func (p Phase) String() string {
	switch p {
	case PhaseBegin:
		return "begin"
	case PhaseMove:
		return "move"
	case PhaseEnd:
		return "end"
	default:
		return fmt.Sprintf("Phase(%d)", uint8(p))
	}
}

// PointerEvent is a contact location in surface-local coordinates.
type PointerEvent struct {
	X, Y  float32
	Phase Phase
}

// TextEvent is either committed UTF-8 text or a backspace.
type TextEvent struct {
	Bytes     []byte
	Backspace bool
}

// Count is the number of bytes forwarded to the engine. It never includes a
// terminator.
func (e TextEvent) Count() int32 {
	return int32(len(e.Bytes))
}

func (e TextEvent) String() string {
	if e.Backspace {
		return "backspace"
	}
	return fmt.Sprintf("text(%q, %d)", e.Bytes, e.Count())
}

// KeyboardRequest is an engine request to show or hide the software keyboard.
type KeyboardRequest uint8

const (
	KeyboardShow KeyboardRequest = iota
	KeyboardHide
)

func (r KeyboardRequest) String() string {
	if r == KeyboardShow {
		return "show"
	}
	return "hide"
}

// Lifecycle codes sent by the engine through the notify callback.
const (
	LifecycleSurfaceCreated int32 = 0
	LifecycleFrameEntered   int32 = 1
)

// lifecycleName returns a label for known codes and false for the rest.
func lifecycleName(code int32) (string, bool) {
	switch code {
	case LifecycleSurfaceCreated:
		return "surface created", true
	case LifecycleFrameEntered:
		return "frame entered", true
	}
	return "", false
}
