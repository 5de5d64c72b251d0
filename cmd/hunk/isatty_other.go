//go:build !linux
// +build !linux

package main

// isatty reports false off Linux; diagnostics are then written without colour
func isatty(fd uintptr) bool {
	return false
}
