// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

//go:build !linux && !windows

package nativeshell

import (
	"bytes"
	"runtime"
	"strconv"
)

// threadID falls back to the goroutine id. The loop goroutine is locked to
// its thread, so the two identify the same execution context.
func threadID() int64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	b := bytes.TrimPrefix(buf[:n], []byte("goroutine "))
	if i := bytes.IndexByte(b, ' '); i > 0 {
		b = b[:i]
	}
	id, _ := strconv.ParseInt(string(b), 10, 64)
	return id
}
