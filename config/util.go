package config

import (
	"os"
	"os/user"
	"path/filepath"
	"runtime"
	"strings"
	"unicode"
)

// appDataDir returns the per-user data directory of appName on goos.
func appDataDir(goos, appName string) string {
	if appName == "" || appName == "." {
		return "."
	}
	appName = strings.TrimPrefix(appName, ".")
	upper := string(unicode.ToUpper(rune(appName[0]))) + appName[1:]
	lower := string(unicode.ToLower(rune(appName[0]))) + appName[1:]

	homeDir := os.Getenv("HOME")
	if usr, err := user.Current(); err == nil && usr.HomeDir != "" {
		homeDir = usr.HomeDir
	}

	switch goos {
	case "windows":
		if appData := os.Getenv("LOCALAPPDATA"); appData != "" {
			return filepath.Join(appData, upper)
		}
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, upper)
		}
	case "darwin":
		if homeDir != "" {
			return filepath.Join(homeDir, "Library", "Application Support", upper)
		}
	default:
		if homeDir != "" {
			return filepath.Join(homeDir, "."+lower)
		}
	}
	return "."
}

// AppDataDir returns an operating system specific directory for the data of
// appName, such as ~/.shadigest on POSIX systems.
func AppDataDir(appName string) string {
	return appDataDir(runtime.GOOS, appName)
}
