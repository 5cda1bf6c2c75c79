// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package nativeshell

import (
	"errors"
	"fmt"
)

var (
	// ErrNoSession is reported when an entry point runs before the session exists.
	ErrNoSession = errors.New("nativeshell: no active session")

	// ErrSurfaceNotReady means the surface handles are still zero.
	ErrSurfaceNotReady = errors.New("nativeshell: surface handles not ready")

	// ErrCreateFailed means the engine returned a null application handle.
	ErrCreateFailed = errors.New("nativeshell: create_app returned null")

	// ErrBridgeLoad wraps failures loading the engine library or its symbols.
	ErrBridgeLoad = errors.New("nativeshell: loading engine library")
)

// TextEncodingError is returned when host text cannot be converted to UTF-8.
// The insertion is dropped.
type TextEncodingError struct {
	Offset int
	Err    error
}

func (e *TextEncodingError) Error() string {
	return fmt.Sprintf("nativeshell: invalid UTF-8 at byte %d: %v", e.Offset, e.Err)
}

func (e *TextEncodingError) Unwrap() error { return e.Err }
