package config

import (
	"os"
	"runtime"
)

// PlatformProvider abstracts the OS queries that path resolution depends on
type PlatformProvider interface {
	// GetOS returns the operating system name ("windows", "darwin", "linux")
	GetOS() string
	GetEnv(key string) string
	UserHomeDir() (string, error)
}

// osPlatform answers from the running process
type osPlatform struct{}

func (osPlatform) GetOS() string                { return runtime.GOOS }
func (osPlatform) GetEnv(key string) string     { return os.Getenv(key) }
func (osPlatform) UserHomeDir() (string, error) { return os.UserHomeDir() }

// DefaultPlatform is the provider used by the package-level helpers
var DefaultPlatform PlatformProvider = osPlatform{}
