// Package common provides shared constants used across the winposix
// command-line interface and library.
package common

// Environment variable names for configuration.
const (
	// DLLEnv is the environment variable overriding the compatibility
	// layer runtime that gets loaded. Useful for pointing at an MSYS2
	// runtime (msys-2.0.dll) or a Cygwin install that is not on PATH.
	DLLEnv = "WINPOSIX_DLL"

	// DebugEnv is the environment variable to enable debug logging.
	DebugEnv = "WINPOSIX_DEBUG"

	// ModeEnv is the environment variable supplying the default convert
	// mode when the -m flag is not given.
	ModeEnv = "WINPOSIX_MODE"
)
