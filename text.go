// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package nativeshell

import (
	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// FocusTarget is the invisible element that receives keyboard input. Acquiring
// focus is what brings up a software keyboard on platforms that have one.
type FocusTarget interface {
	Focus() error
	Blur()
	Focused() bool
}

// TextBridge forwards committed text and backspaces to the session and
// carries out the engine's keyboard requests on the UI loop.
type TextBridge struct {
	current func() Session
	loop    *Loop
	focus   FocusTarget
}

// Insert forwards text as UTF-8 bytes with its byte count. Text that is not
// valid UTF-8 is dropped and a *TextEncodingError returned.
func (b *TextBridge) Insert(text string) error {
	buf, n, err := transform.Bytes(encoding.UTF8Validator, []byte(text))
	if err != nil {
		encErr := &TextEncodingError{Offset: n, Err: err}
		Logger().Warn("text insertion dropped", "error", encErr)
		return encErr
	}
	s := b.current()
	if s == nil {
		Logger().Debug("text dropped", "bytes", len(buf), "reason", ErrNoSession)
		return nil
	}
	if buf == nil {
		buf = []byte{}
	}
	s.Text(TextEvent{Bytes: buf})
	return nil
}

// DeleteBackward forwards a backspace. The engine decides what it deletes.
func (b *TextBridge) DeleteBackward() {
	s := b.current()
	if s == nil {
		Logger().Debug("backspace dropped", "reason", ErrNoSession)
		return
	}
	s.Text(TextEvent{Backspace: true})
}

// RequestFocus asks for the software keyboard. Safe to call from any thread;
// the focus change always runs on the UI loop.
func (b *TextBridge) RequestFocus() {
	b.Handle(KeyboardShow)
}

// ReleaseFocus hides the software keyboard. Safe to call from any thread.
func (b *TextBridge) ReleaseFocus() {
	b.Handle(KeyboardHide)
}

// Handle posts req to the UI loop.
func (b *TextBridge) Handle(req KeyboardRequest) {
	b.loop.Post(func() {
		switch req {
		case KeyboardShow:
			if b.focus.Focused() {
				return
			}
			if err := b.focus.Focus(); err != nil {
				Logger().Warn("keyboard focus failed", "error", err)
				return
			}
			Logger().Debug("keyboard focus acquired")
		case KeyboardHide:
			b.focus.Blur()
			Logger().Debug("keyboard focus released")
		}
	})
}
