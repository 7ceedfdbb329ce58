package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// AppName names the per-user cache directory
const AppName = "cc-sakura-line"

// ClaudeDir returns ~/.claude, where Claude Code keeps per-user settings
func ClaudeDir() string {
	return ClaudeDirWithPlatform(DefaultPlatform)
}

// ClaudeDirWithPlatform allows injecting a custom platform provider for testing
func ClaudeDirWithPlatform(platform PlatformProvider) string {
	home, err := platform.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".claude")
}

// UserCacheDir returns the application cache directory
func UserCacheDir() string {
	return UserCacheDirWithPlatform(DefaultPlatform)
}

// UserCacheDirWithPlatform allows injecting a custom platform provider for testing
func UserCacheDirWithPlatform(platform PlatformProvider) string {
	switch platform.GetOS() {
	case "windows":
		// %LOCALAPPDATA%\cc-sakura-line\
		if localAppData := platform.GetEnv("LOCALAPPDATA"); localAppData != "" {
			return filepath.Join(localAppData, AppName)
		}
		home, _ := platform.UserHomeDir()
		return filepath.Join(home, "."+AppName)
	case "darwin":
		// ~/Library/Caches/cc-sakura-line/
		home, _ := platform.UserHomeDir()
		return filepath.Join(home, "Library", "Caches", AppName)
	default:
		// $XDG_CACHE_HOME/cc-sakura-line/ or ~/.cache/cc-sakura-line/
		if xdg := platform.GetEnv("XDG_CACHE_HOME"); filepath.IsAbs(xdg) {
			return filepath.Join(xdg, AppName)
		}
		home, _ := platform.UserHomeDir()
		return filepath.Join(home, ".cache", AppName)
	}
}

// CacheDBPath returns the path to the SQLite counter cache, creating its
// directory when needed
func CacheDBPath() (string, error) {
	return CacheDBPathWithPlatform(DefaultPlatform)
}

// CacheDBPathWithPlatform allows injecting a custom platform provider for testing
func CacheDBPathWithPlatform(platform PlatformProvider) (string, error) {
	cacheDir := UserCacheDirWithPlatform(platform)
	if err := os.MkdirAll(cacheDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create cache dir: %w", err)
	}
	return filepath.Join(cacheDir, "cache.db"), nil
}
