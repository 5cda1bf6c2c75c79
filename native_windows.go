// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

//go:build windows

package nativeshell

import (
	"fmt"
	"path/filepath"
	"syscall"
)

func doInitBridge(libPath string) error {
	absPath, err := filepath.Abs(libPath)
	if err != nil {
		absPath = libPath
	}
	lib, err := syscall.LoadLibrary(absPath)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrBridgeLoad, absPath, err)
	}
	return resolveAllSymbols(uintptr(lib))
}

func getSymbolAddr(handle uintptr, name string) (uintptr, error) {
	sym, err := syscall.GetProcAddress(syscall.Handle(handle), name)
	if err != nil {
		return 0, err
	}
	if sym == 0 {
		return 0, fmt.Errorf("symbol %q not found in DLL", name)
	}
	return sym, nil
}

func defaultLibraryName() string {
	return "invapp.dll"
}
