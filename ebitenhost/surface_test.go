// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package ebitenhost

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSurfaceNotReadyBeforeAllocate(t *testing.T) {
	s := newPixelSurface(60, 0)
	d := s.Descriptor()
	assert.False(t, d.Ready())
	assert.Equal(t, int32(60), d.MaxFrameRate)
}

func TestSurfaceAllocateOnce(t *testing.T) {
	s := newPixelSurface(60, 0)
	t.Cleanup(s.release)

	s.allocate(0, 10, 2)
	assert.False(t, s.Descriptor().Ready())

	s.allocate(10, 5, 2)
	d := s.Descriptor()
	require.True(t, d.Ready())
	assert.Equal(t, int32(20), d.Width)
	assert.Equal(t, int32(10), d.Height)
	assert.Equal(t, 2.0, d.PixelScale)

	assert.Equal(t, uintptr(unsafe.Pointer(s.layer)), d.Layer)
	layer := s.layer
	assert.Equal(t, int32(80), layer.Stride)
	assert.Equal(t, formatBGRA8, layer.Format)
	assert.Equal(t, float32(2), layer.Scale)
	assert.Len(t, s.pixels, 20*10*4)

	s.allocate(400, 400, 1)
	assert.Equal(t, d, s.Descriptor(), "resizes are not propagated")
}

func TestSurfaceConfiguredScaleWins(t *testing.T) {
	s := newPixelSurface(60, 1.5)
	t.Cleanup(s.release)
	s.allocate(3, 3, 3)
	d := s.Descriptor()
	assert.Equal(t, 1.5, d.PixelScale)
	assert.Equal(t, int32(5), d.Width)
}

func TestBGRAToRGBA(t *testing.T) {
	src := []byte{1, 2, 3, 4, 10, 20, 30, 40}
	dst := make([]byte, len(src))
	bgraToRGBA(dst, src)
	assert.Equal(t, []byte{3, 2, 1, 4, 30, 20, 10, 40}, dst)
}

func TestDisplayLinkPause(t *testing.T) {
	l := &displayLink{}
	assert.False(t, l.fire(), "no target")

	n := 0
	l.SetTarget(func() { n++ })
	assert.True(t, l.fire())
	l.SetPaused(true)
	assert.False(t, l.fire())
	l.SetPaused(false)
	assert.True(t, l.fire())
	assert.Equal(t, 2, n)
}

func TestKeyInputFocus(t *testing.T) {
	windowFocused := false
	k := &keyInput{hasFocus: func() bool { return windowFocused }}

	assert.ErrorIs(t, k.Focus(), errWindowUnfocused)
	assert.False(t, k.Focused())

	windowFocused = true
	require.NoError(t, k.Focus())
	assert.True(t, k.Focused())

	k.Blur()
	assert.False(t, k.Focused())
}

func TestKeyInputPendingFocusAppliedLater(t *testing.T) {
	windowFocused := false
	k := &keyInput{hasFocus: func() bool { return windowFocused }}

	assert.ErrorIs(t, k.Focus(), errWindowUnfocused)
	k.applyPending()
	assert.False(t, k.Focused(), "window still unfocused")

	windowFocused = true
	k.applyPending()
	assert.True(t, k.Focused())

	k.Blur()
	windowFocused = false
	assert.Error(t, k.Focus())
	k.Blur()
	windowFocused = true
	k.applyPending()
	assert.False(t, k.Focused(), "a hide cancels the pending show")
}

func TestBackspaceRepeat(t *testing.T) {
	assert.False(t, repeating(0))
	assert.True(t, repeating(1))
	assert.False(t, repeating(2))
	assert.False(t, repeating(29))
	assert.True(t, repeating(30))
	assert.False(t, repeating(31))
	assert.True(t, repeating(33))
}
