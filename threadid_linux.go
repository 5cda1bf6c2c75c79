// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

//go:build linux

package nativeshell

import "golang.org/x/sys/unix"

func threadID() int64 {
	return int64(unix.Gettid())
}
