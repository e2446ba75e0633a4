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
	"testing"

	"github.com/bobbytrapz/twitchnotifier/track"
	"github.com/jroimartin/gocui"
)

func TestRowAt(t *testing.T) {
	d := track.DisplayTable{
		Live:    []track.DisplayRow{{Name: "a"}, {Name: "b"}},
		Offline: []track.DisplayRow{{Name: "c"}},
		Unknown: []track.DisplayRow{{Name: "d"}},
	}

	// a b _ c _ d
	want := []string{"a", "b", "", "c", "", "d", ""}
	for line, name := range want {
		row, ok := rowAt(d, line)
		if ok != (name != "") || row.Name != name {
			t.Error("line", line, "want", name, "got", row.Name, ok)
		}
	}

	if n := numLines(d); n != 6 {
		t.Error("want", 6, "got", n)
	}
}

func TestRowAtOfflineOnly(t *testing.T) {
	d := track.DisplayTable{
		Offline: []track.DisplayRow{{Name: "c"}, {Name: "e"}},
	}

	if row, ok := rowAt(d, 1); !ok || row.Name != "e" {
		t.Error("want e got", row.Name)
	}
	if numLines(d) != 2 {
		t.Error("want no separators got", numLines(d))
	}
}

func TestColorFromString(t *testing.T) {
	if colorFromString(" White") != gocui.ColorWhite {
		t.Error("want white")
	}
	if colorFromString("plaid") != gocui.ColorDefault {
		t.Error("want default")
	}
}

func TestBrowserCommand(t *testing.T) {
	app, args := browserCommand("windows", "https://www.twitch.tv/a?b=1&c=2")
	if app != "cmd" || args[2] != "https://www.twitch.tv/a?b=1^&c=2" {
		t.Error("got", app, args)
	}

	if app, _ := browserCommand("linux", "x"); app != "xdg-open" {
		t.Error("want xdg-open got", app)
	}
}
