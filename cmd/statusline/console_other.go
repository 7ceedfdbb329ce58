//go:build !windows

package main

// initConsole is a no-op outside Windows
func initConsole() {}
