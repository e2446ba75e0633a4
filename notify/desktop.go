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

package notify

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"time"
)

const (
	appName       = "twitchnotifier"
	defaultSender = "notify-send"
	iconTimeout   = 5 * time.Second
)

// Desktop shows notifications with notify-send
type Desktop struct {
	// Command defaults to notify-send
	Command string
	// CacheDir keeps downloaded channel logos
	CacheDir string

	http *http.Client
}

// NewDesktop notifier caching logos in cacheDir
func NewDesktop(cacheDir string) *Desktop {
	return &Desktop{
		Command:  defaultSender,
		CacheDir: cacheDir,
		http:     &http.Client{Timeout: iconTimeout},
	}
}

// Display a desktop notification
// if the logo cannot be fetched we show the notification without it
func (d *Desktop) Display(ctx context.Context, title, body, iconURL string) error {
	app, err := exec.LookPath(d.Command)
	if err != nil {
		return fmt.Errorf("notify.Display: could not find %s: %s", d.Command, err)
	}

	args := []string{"-a", appName}
	if iconURL != "" {
		icon, err := d.fetchIcon(ctx, iconURL)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Got %s while trying to download %s; trying to show without a picture\n", err, iconURL)
		} else {
			args = append(args, "-i", icon)
		}
	}
	args = append(args, "--", title, body)

	out, err := exec.CommandContext(ctx, app, args...).CombinedOutput()
	if err != nil {
		return fmt.Errorf("notify.Display: %s: %s", err, out)
	}

	return nil
}

// fetchIcon downloads the logo once and returns the cached path
func (d *Desktop) fetchIcon(ctx context.Context, iconURL string) (string, error) {
	sum := sha1.Sum([]byte(iconURL))
	p := filepath.Join(d.CacheDir, hex.EncodeToString(sum[:]))
	if _, err := os.Stat(p); err == nil {
		return p, nil
	}

	ctx, cancel := context.WithTimeout(ctx, iconTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, iconURL, nil)
	if err != nil {
		return "", err
	}

	client := d.http
	if client == nil {
		client = http.DefaultClient
	}
	res, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return "", fmt.Errorf("bad status %d", res.StatusCode)
	}

	if err := os.MkdirAll(d.CacheDir, 0700); err != nil {
		return "", err
	}

	f, err := os.CreateTemp(d.CacheDir, "icon-*")
	if err != nil {
		return "", err
	}
	defer os.Remove(f.Name())

	if _, err := io.Copy(f, res.Body); err != nil {
		f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", err
	}

	if err := os.Rename(f.Name(), p); err != nil {
		return "", err
	}
	log.Println("notify.fetchIcon:", iconURL, "->", p)

	return p, nil
}
