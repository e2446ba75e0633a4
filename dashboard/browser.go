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

package dashboard

import (
	"fmt"
	"os/exec"
	"runtime"
	"strings"
)

// browserCommand opens link in the default browser
func browserCommand(goos, link string) (app string, args []string) {
	switch goos {
	case "windows":
		r := strings.NewReplacer("&", "^&")
		return "cmd", []string{"/c", "start", r.Replace(link)}
	case "darwin":
		return "open", []string{link}
	default:
		return "xdg-open", []string{link}
	}
}

func openLink(link string) error {
	app, args := browserCommand(runtime.GOOS, link)

	path, err := exec.LookPath(app)
	if err != nil {
		return fmt.Errorf("dashboard.openLink: could not find: %s: %s", app, err)
	}

	// the browser outlives us
	return exec.Command(path, args...).Start()
}
