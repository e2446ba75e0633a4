// This file is part of twitchnotifier.
//
// twitchnotifier is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// twitchnotifier is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with twitchnotifier.  If not, see <https://www.gnu.org/licenses/>.

// Package homedir finds where twitchnotifier keeps its files.
package homedir

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"
)

const appName = "twitchnotifier"

var cache string
var rw sync.RWMutex

// Dir gives the user's home directory
func Dir() (dir string, err error) {
	rw.RLock()
	c := cache
	rw.RUnlock()

	if c != "" {
		return c, nil
	}

	// HOME always wins so tests and sandboxes can move us
	if dir = os.Getenv("HOME"); dir != "" {
		return
	}

	if dir, err = lookup(); err != nil {
		return
	}

	rw.Lock()
	cache = dir
	rw.Unlock()

	return
}

// Expand tilde in a path
func Expand(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}

	if len(path) > 1 && path[1] != '/' && path[1] != '\\' {
		return "", fmt.Errorf("homedir.Expand: cannot expand path: '%s'", path)
	}

	dir, err := Dir()
	if err != nil {
		return "", err
	}

	return filepath.Join(dir, path[1:]), nil
}

// ConfigDir is where the config file lives
func ConfigDir() (string, error) {
	if runtime.GOOS == "windows" {
		return Expand(filepath.Join("~", "AppData", "Roaming", appName))
	}

	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appName), nil
	}

	return Expand(filepath.Join("~", ".config", appName))
}

// CacheDir is where downloaded channel logos are kept
func CacheDir() (string, error) {
	if runtime.GOOS == "windows" {
		return Expand(filepath.Join("~", "AppData", "Local", appName))
	}

	if xdg := os.Getenv("XDG_CACHE_HOME"); xdg != "" {
		return filepath.Join(xdg, appName), nil
	}

	return Expand(filepath.Join("~", ".cache", appName))
}
