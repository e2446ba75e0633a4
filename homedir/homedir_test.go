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

package homedir

import (
	"path/filepath"
	"runtime"
	"testing"
)

func TestExpand(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := Expand("~/x/y")
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(home, "x", "y"); got != want {
		t.Error("want", want, "got", got)
	}

	if got, _ := Expand("/abs"); got != "/abs" {
		t.Error("want /abs got", got)
	}

	if _, err := Expand("~bob/x"); err == nil {
		t.Error("want error")
	}
}

func TestConfigDirXDG(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("no xdg on windows")
	}
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)

	got, err := ConfigDir()
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(xdg, "twitchnotifier"); got != want {
		t.Error("want", want, "got", got)
	}
}
