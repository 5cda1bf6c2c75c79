// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package nativeshell

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"sync/atomic"
	"unsafe"

	"github.com/ebitengine/purego"
)

var (
	appCreate     func(view, layer uintptr, maxFrames int32, lifecycle, showKeyboard, hideKeyboard uintptr) uintptr
	appDrawFrame  func(app uintptr)
	appTouchBegin func(app uintptr, x, y float32)
	appTouchMove  func(app uintptr, x, y float32)
	appTouchEnd   func(app uintptr, x, y float32)
	appTextInput  func(app uintptr, bytes uintptr, count int32)
	appBackspace  func(app uintptr)
)

var (
	bridgeOnce sync.Once
	initErr    error

	trampolineOnce sync.Once
	showTramp      uintptr
	hideTramp      uintptr
	lifecycleTramp uintptr

	// C function pointers carry no context, so the trampolines read the
	// callbacks of the most recently created session from here.
	activeCallbacks atomic.Pointer[Callbacks]
)

// Options for loading the engine library. All fields are optional.
type Options struct {
	BaseDir     string // Directory containing the engine library. Defaults to the working directory, then the executable's directory.
	LibraryName string // File name of the engine library. Defaults to libinvapp.so, libinvapp.dylib or invapp.dll.
}

func initBridge(path string) error {
	bridgeOnce.Do(func() {
		initErr = doInitBridge(path)
	})
	return initErr
}

func resolveAllSymbols(handle uintptr) error {
	for _, reg := range []struct {
		fptr any
		name string
	}{
		{&appCreate, "create_app"},
		{&appDrawFrame, "draw_frame"},
		{&appTouchBegin, "event_touch_begin"},
		{&appTouchMove, "event_touch_move"},
		{&appTouchEnd, "event_touch_end"},
		{&appTextInput, "event_text_input"},
		{&appBackspace, "event_key_typed_backspace"},
	} {
		if err := registerSymbol(reg.fptr, handle, reg.name); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrBridgeLoad, reg.name, err)
		}
	}
	return nil
}

func registerSymbol(fptr any, handle uintptr, name string) error {
	sym, err := getSymbolAddr(handle, name)
	if err != nil {
		return err
	}
	purego.RegisterFunc(fptr, sym)
	return nil
}

func installTrampolines() {
	trampolineOnce.Do(func() {
		showTramp = purego.NewCallback(func() uintptr {
			if cb := activeCallbacks.Load(); cb != nil && cb.ShowKeyboard != nil {
				cb.ShowKeyboard()
			}
			return 0
		})
		hideTramp = purego.NewCallback(func() uintptr {
			if cb := activeCallbacks.Load(); cb != nil && cb.HideKeyboard != nil {
				cb.HideKeyboard()
			}
			return 0
		})
		lifecycleTramp = purego.NewCallback(func(code uintptr) uintptr {
			if cb := activeCallbacks.Load(); cb != nil && cb.Lifecycle != nil {
				cb.Lifecycle(int32(code))
			}
			return 0
		})
	})
}

func resolveLibraryPath(opts *Options) string {
	name := defaultLibraryName()
	baseDir := ""
	if opts != nil {
		baseDir = opts.BaseDir
		if opts.LibraryName != "" {
			name = opts.LibraryName
		}
	}
	if baseDir == "" {
		baseDir, _ = os.Getwd()
		if _, err := os.Stat(filepath.Join(baseDir, name)); err != nil {
			if exe, _ := os.Executable(); exe != "" {
				baseDir = filepath.Dir(exe)
			}
		}
	}
	return filepath.Join(baseDir, name)
}

// NativeEngine creates sessions through the engine shared library.
type NativeEngine struct {
	path string
}

// NewNativeEngine loads the engine library and resolves its entry points.
// The library is loaded once per process.
func NewNativeEngine(opts *Options) (*NativeEngine, error) {
	path := resolveLibraryPath(opts)
	if err := initBridge(path); err != nil {
		return nil, err
	}
	installTrampolines()
	return &NativeEngine{path: path}, nil
}

// Path returns the path the library was loaded from.
func (e *NativeEngine) Path() string {
	return e.path
}

// CreateApp calls create_app with the surface handles and the callback
// trampolines.
func (e *NativeEngine) CreateApp(desc SurfaceDescriptor, cb Callbacks) (Session, error) {
	if !desc.Ready() {
		return nil, ErrSurfaceNotReady
	}
	activeCallbacks.Store(&cb)
	app := appCreate(desc.View, desc.Layer, desc.MaxFrameRate, lifecycleTramp, showTramp, hideTramp)
	if app == 0 {
		activeCallbacks.Store(nil)
		return nil, ErrCreateFailed
	}
	return &nativeSession{app: app}, nil
}

// nativeSession holds the foreign application handle. It is the only place
// that calls into the engine's per-frame and event entry points.
type nativeSession struct {
	app uintptr
}

func (s *nativeSession) Advance() {
	if s.app == 0 {
		return
	}
	appDrawFrame(s.app)
}

func (s *nativeSession) Pointer(ev PointerEvent) {
	if s.app == 0 {
		return
	}
	switch ev.Phase {
	case PhaseBegin:
		appTouchBegin(s.app, ev.X, ev.Y)
	case PhaseMove:
		appTouchMove(s.app, ev.X, ev.Y)
	case PhaseEnd:
		appTouchEnd(s.app, ev.X, ev.Y)
	}
}

func (s *nativeSession) Text(ev TextEvent) {
	if s.app == 0 {
		return
	}
	if ev.Backspace {
		appBackspace(s.app)
		return
	}
	// The engine gets a NUL-terminated buffer but the count excludes the NUL.
	buf := cString(ev.Bytes)
	appTextInput(s.app, uintptr(unsafe.Pointer(&buf[0])), ev.Count())
	runtime.KeepAlive(buf)
}

// Close drops the handle. The library exports no destroy entry point; the
// engine state is released when the process exits.
func (s *nativeSession) Close() error {
	s.app = 0
	activeCallbacks.Store(nil)
	return nil
}

func cString(b []byte) []byte {
	buf := make([]byte, len(b)+1)
	copy(buf, b)
	return buf
}
