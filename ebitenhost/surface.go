// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package ebitenhost

import (
	"math"
	"runtime"
	"unsafe"

	"github.com/YindSoft/nativeshell"
	"github.com/hajimehoshi/ebiten/v2"
)

// Pixel formats understood by the layer record.
const (
	formatBGRA8 int32 = 0
)

// layerRecord is what the Layer handle points to. The engine reads it once at
// creation; its layout is part of the engine ABI.
type layerRecord struct {
	Width  int32
	Height int32
	Stride int32
	Format int32
	Scale  float32
}

// PixelSurface is a software drawable: the engine renders BGRA pixels into a
// pinned buffer and the host uploads it to an Ebiten texture.
type PixelSurface struct {
	pinner  runtime.Pinner
	pixels  []byte
	rgba    []byte
	layer   *layerRecord
	texture *ebiten.Image

	maxFrameRate int32
	scale        float64
}

func newPixelSurface(maxFrameRate int32, scale float64) *PixelSurface {
	return &PixelSurface{maxFrameRate: maxFrameRate, scale: scale}
}

// allocate sizes the buffer for a logical size once. Later calls are ignored:
// a live session keeps the descriptor it was created with.
func (s *PixelSurface) allocate(logicalW, logicalH int, scale float64) {
	if s.layer != nil || logicalW <= 0 || logicalH <= 0 {
		return
	}
	if s.scale <= 0 {
		s.scale = scale
	}
	if s.scale <= 0 {
		s.scale = 1
	}
	w := int(math.Ceil(float64(logicalW) * s.scale))
	h := int(math.Ceil(float64(logicalH) * s.scale))
	s.pixels = make([]byte, w*h*4)
	s.rgba = make([]byte, w*h*4)
	s.layer = &layerRecord{
		Width:  int32(w),
		Height: int32(h),
		Stride: int32(w * 4),
		Format: formatBGRA8,
		Scale:  float32(s.scale),
	}
	s.pinner.Pin(&s.pixels[0])
	s.pinner.Pin(s.layer)
}

// Descriptor returns zero handles until the buffer is allocated.
func (s *PixelSurface) Descriptor() nativeshell.SurfaceDescriptor {
	d := nativeshell.SurfaceDescriptor{
		MaxFrameRate: s.maxFrameRate,
		PixelScale:   s.scale,
	}
	if s.layer == nil {
		return d
	}
	d.View = uintptr(unsafe.Pointer(&s.pixels[0]))
	d.Layer = uintptr(unsafe.Pointer(s.layer))
	d.Width = s.layer.Width
	d.Height = s.layer.Height
	return d
}

// present uploads the engine's pixels to the texture.
func (s *PixelSurface) present() {
	if s.layer == nil {
		return
	}
	if s.texture == nil {
		s.texture = ebiten.NewImage(int(s.layer.Width), int(s.layer.Height))
	}
	bgraToRGBA(s.rgba, s.pixels)
	s.texture.WritePixels(s.rgba)
}

// draw scales the texture back to logical size.
func (s *PixelSurface) draw(screen *ebiten.Image) {
	if s.texture == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(1/s.scale, 1/s.scale)
	screen.DrawImage(s.texture, op)
}

func (s *PixelSurface) release() {
	s.pinner.Unpin()
	if s.texture != nil {
		s.texture.Deallocate()
	}
}

func bgraToRGBA(dst, src []byte) {
	for i := 0; i+3 < len(src) && i+3 < len(dst); i += 4 {
		dst[i+0] = src[i+2]
		dst[i+1] = src[i+1]
		dst[i+2] = src[i+0]
		dst[i+3] = src[i+3]
	}
}
