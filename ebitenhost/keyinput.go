// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package ebitenhost

import (
	"errors"

	"github.com/YindSoft/nativeshell"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var errWindowUnfocused = errors.New("window does not have input focus")

// keyInput is the invisible text element. It only reads keyboard input while
// focused. A show request made while the window lacks input focus stays
// pending and is applied once the window gets it back.
type keyInput struct {
	focused    bool
	pending    bool
	hasFocus   func() bool
	charBuffer []rune
}

func newKeyInput() *keyInput {
	return &keyInput{hasFocus: ebiten.IsFocused}
}

func (k *keyInput) Focus() error {
	if !k.hasFocus() {
		k.pending = true
		return errWindowUnfocused
	}
	k.focused = true
	k.pending = false
	return nil
}

func (k *keyInput) Blur() {
	k.focused = false
	k.pending = false
}

func (k *keyInput) Focused() bool {
	return k.focused
}

// poll forwards this tick's characters, one commit per rune, then a
// backspace if one was pressed or is repeating.
func (k *keyInput) poll(text *nativeshell.TextBridge) {
	k.applyPending()
	if !k.focused {
		return
	}
	k.charBuffer = ebiten.AppendInputChars(k.charBuffer[:0])
	for _, r := range k.charBuffer {
		_ = text.Insert(string(r))
	}
	if repeating(inpututil.KeyPressDuration(ebiten.KeyBackspace)) {
		text.DeleteBackward()
	}
}

// applyPending focuses a pending request once the window has input focus.
func (k *keyInput) applyPending() {
	if !k.pending || !k.hasFocus() {
		return
	}
	k.focused = true
	k.pending = false
	nativeshell.Logger().Debug("pending keyboard focus applied")
}

// repeating reports whether a key held for d ticks should fire this tick.
func repeating(d int) bool {
	const (
		delay    = 30
		interval = 3
	)
	if d == 1 {
		return true
	}
	return d >= delay && (d-delay)%interval == 0
}
