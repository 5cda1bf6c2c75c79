// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

//go:build linux || darwin

package nativeshell

import (
	"fmt"
	"path/filepath"
	"runtime"

	"github.com/ebitengine/purego"
)

func doInitBridge(libPath string) error {
	absPath, err := filepath.Abs(libPath)
	if err != nil {
		absPath = libPath
	}
	handle, err := purego.Dlopen(absPath, purego.RTLD_NOW|purego.RTLD_GLOBAL)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrBridgeLoad, absPath, err)
	}
	return resolveAllSymbols(handle)
}

func getSymbolAddr(handle uintptr, name string) (uintptr, error) {
	return purego.Dlsym(handle, name)
}

func defaultLibraryName() string {
	if runtime.GOOS == "darwin" {
		return "libinvapp.dylib"
	}
	return "libinvapp.so"
}
