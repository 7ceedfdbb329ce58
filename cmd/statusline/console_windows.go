//go:build windows

package main

import (
	"os"

	"golang.org/x/sys/windows"
)

// consoleInitializedEnv marks a console already switched to UTF-8 and VT mode
const consoleInitializedEnv = "CLAUDE_CONSOLE_INITIALIZED"

const cpUTF8 = 65001

// initConsole switches the console to UTF-8 and enables ANSI escape sequences
func initConsole() {
	if os.Getenv(consoleInitializedEnv) == "1" {
		return
	}

	_ = windows.SetConsoleOutputCP(cpUTF8)
	_ = windows.SetConsoleCP(cpUTF8)

	if h, err := windows.GetStdHandle(windows.STD_OUTPUT_HANDLE); err == nil && h != windows.InvalidHandle {
		var mode uint32
		if windows.GetConsoleMode(h, &mode) == nil {
			_ = windows.SetConsoleMode(h, mode|windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING)
		}
	}

	os.Setenv(consoleInitializedEnv, "1")
}
