// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

// Package nativeshell drives a natively compiled application engine from a Go
// host: it hands the engine a drawable surface, pumps a display-synchronised
// frame clock, and forwards pointer and text input into the engine's opaque
// application handle.
//
// The engine renders, runs app logic and handles text. This package never
// interprets event payloads; it transports them in order.
//
// Basic usage with the Ebitengine host:
//
//	import (
//	    "github.com/YindSoft/nativeshell"
//	    "github.com/YindSoft/nativeshell/ebitenhost"
//	)
//
//	engine, err := nativeshell.NewNativeEngine(nil) // loads libinvapp next to the executable
//	if err != nil { ... }
//	host := ebitenhost.New(engine, nil)
//	defer host.Close()
//	if err := host.Run(); err != nil { ... }
//
// Lifecycle:
//
//   - [Shell.ViewLoaded] arms the [FrameClock] (registered, paused).
//   - [Shell.BecomeVisible] creates the session once, as soon as the surface
//     has non-zero handles, and starts the clock.
//   - [Shell.BecomeHidden] pauses the clock; the session stays resident.
//
// Pointer and text events that arrive before the session exists are dropped.
// Keyboard show/hide requests from the engine may come from any thread; they
// are posted to the UI [Loop] and applied there.
//
// Engine library ABI (resolved with purego, no cgo):
//
//	void *create_app(void *view, void *layer, int32_t max_frames,
//	                 void (*lifecycle)(int32_t), void (*show_keyboard)(void),
//	                 void (*hide_keyboard)(void));
//	void draw_frame(void *app);
//	void event_touch_begin(void *app, float x, float y);
//	void event_touch_move(void *app, float x, float y);
//	void event_touch_end(void *app, float x, float y);
//	void event_text_input(void *app, const char *bytes, int32_t count);
//	void event_key_typed_backspace(void *app);
//
// Text is passed NUL-terminated, but count is the UTF-8 byte length without
// the terminator.
//
// Requirements: the engine shared library (invapp.dll on Windows,
// libinvapp.so on Linux, libinvapp.dylib on macOS) must be present next to the
// executable or in the directory specified by [Options.BaseDir].
package nativeshell
