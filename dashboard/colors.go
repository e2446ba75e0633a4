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
	"strings"

	"github.com/jroimartin/gocui"
)

var colors = map[string]gocui.Attribute{
	"black":   gocui.ColorBlack,
	"red":     gocui.ColorRed,
	"green":   gocui.ColorGreen,
	"yellow":  gocui.ColorYellow,
	"blue":    gocui.ColorBlue,
	"magenta": gocui.ColorMagenta,
	"cyan":    gocui.ColorCyan,
	"white":   gocui.ColorWhite,
}

func colorFromString(c string) gocui.Attribute {
	if attr, ok := colors[strings.ToLower(strings.TrimSpace(c))]; ok {
		return attr
	}

	return gocui.ColorDefault
}
