// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package nativeshell

// Session is the engine-owned application instance bound to one surface.
// The host only calls its entry points; it never touches engine state.
type Session interface {
	// Advance renders one frame to the drawable.
	Advance()
	// Pointer forwards a single-pointer contact.
	Pointer(ev PointerEvent)
	// Text forwards committed text or a backspace.
	Text(ev TextEvent)
}

// Callbacks are the host entry points handed to the engine at creation.
// The engine may invoke them from any thread.
type Callbacks struct {
	ShowKeyboard func()
	HideKeyboard func()
	Lifecycle    func(code int32)
}

// Engine creates sessions. NativeEngine is the implementation backed by the
// engine shared library.
type Engine interface {
	CreateApp(desc SurfaceDescriptor, cb Callbacks) (Session, error)
}
