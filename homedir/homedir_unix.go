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

//go:build !windows

package homedir

import (
	"bytes"
	"errors"
	"os"
	"os/exec"
	"strconv"
	"strings"
)

func lookup() (string, error) {
	var stdout bytes.Buffer

	// try getent
	cmd := exec.Command("getent", "passwd", strconv.Itoa(os.Getuid()))
	cmd.Stdout = &stdout
	if err := cmd.Run(); err == nil {
		// username:password:uid:gid:gecos:home:shell
		if sp := strings.SplitN(strings.TrimSpace(stdout.String()), ":", 7); len(sp) > 5 && sp[5] != "" {
			return sp[5], nil
		}
	}

	// fallback to shell
	stdout.Reset()
	cmd = exec.Command("sh", "-c", "cd && pwd")
	cmd.Stdout = &stdout
	if err := cmd.Run(); err == nil {
		if dir := strings.TrimSpace(stdout.String()); dir != "" {
			return dir, nil
		}
	}

	return "", errors.New("homedir.Dir: could not find home directory")
}
