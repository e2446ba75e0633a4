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

// Package dashboard shows a running twitchnotifier in the terminal.
package dashboard

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/bobbytrapz/twitchnotifier/ipc"
	"github.com/bobbytrapz/twitchnotifier/options"
	"github.com/bobbytrapz/twitchnotifier/track"
	"github.com/jroimartin/gocui"
)

const channelURL = "https://www.twitch.tv/"

var m sync.Mutex
var remote *ipc.Client
var selectedName = "?"
var res ipc.Dashboard

var shouldColorLogo = false

var logoHeight = 2

var logo = `
 twitchnotifier   [r] check now  [o] open  [q] quit
`

var colorLogo = "\n \x1b[0;1;35;95mtwitchnotifier\x1b[0m   [r] check now  [o] open  [q] quit\n"

// Run the dashboard against the server at addr
func Run(addr string, bColor bool) error {
	shouldColorLogo = bColor
	// connect to server
	var err error
	remote, err = ipc.Dial(addr)
	if err != nil {
		fmt.Println("We cannot connect to the server. Is 'twitchnotifier' running with listen_on set?")
		return err
	}
	defer remote.Close()

	// ask where we left off
	if err := call(remote.Status); err != nil {
		return err
	}

	// initialize tui
	g, err := gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		return fmt.Errorf("dashboard.Run: %s", err)
	}
	defer g.Close()

	g.Mouse = true
	g.Highlight = true

	g.SetManagerFunc(layout)

	if err := keys(g); err != nil {
		return fmt.Errorf("dashboard.Run: %s", err)
	}

	// poll server for dashboard updates
	done := make(chan struct{})
	defer close(done)
	go func() {
		poll := time.NewTicker(1 * time.Second)
		defer poll.Stop()
		for {
			select {
			case <-done:
				return
			case <-poll.C:
				redraw(g)
			}
		}
	}()

	// loop
	if err := g.MainLoop(); err != nil && err != gocui.ErrQuit {
		return fmt.Errorf("dashboard.Run: %s", err)
	}

	return nil
}

func redraw(g *gocui.Gui) {
	if err := call(remote.Status); err != nil {
		g.Update(func(g *gocui.Gui) error {
			return gocui.ErrQuit
		})
		return
	}

	g.Update(func(g *gocui.Gui) error {
		if v := g.CurrentView(); v != nil {
			switch v.Name() {
			case "channel-list":
				drawChannelList(v)
				// fix cursor
				_, cy := v.Cursor()
				if l, err := v.Line(cy); err == nil && strings.TrimSpace(l) == "" {
					return moveUp(g, v)
				}
			}
		}

		return nil
	})
}

func drawLogo(v *gocui.View) {
	v.Clear()

	if shouldColorLogo {
		fmt.Fprint(v, colorLogo)
	} else {
		fmt.Fprint(v, logo)
	}
}

func drawChannelList(v *gocui.View) {
	m.Lock()
	defer m.Unlock()

	v.Clear()
	v.SelBgColor = 0
	v.SelFgColor = 0

	if numRows(res.TrackTable) == 0 {
		fmt.Fprintln(v, "No channels yet.")
		fmt.Fprintln(v, "twitchnotifier shows the channels you follow after the first check.")

		return
	}
	v.SelBgColor = colorFromString(options.Get("dashboard.select_bg_color"))
	v.SelFgColor = colorFromString(options.Get("dashboard.select_fg_color"))

	// write display to view
	res.TrackTable.Output(v)
}

func layout(g *gocui.Gui) error {
	w, h := g.Size()
	if v, err := g.SetView("logo", -1, -1, w, logoHeight); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}

		drawLogo(v)
	}

	if v, err := g.SetView("channel-list", -1, logoHeight, w, h); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}

		v.Highlight = true

		drawChannelList(v)
	}

	if _, err := g.SetCurrentView("channel-list"); err != nil {
		return err
	}

	return nil
}

func keys(g *gocui.Gui) (err error) {
	// quit
	if err = g.SetKeybinding("", 'q', gocui.ModNone, quit); err != nil {
		return
	}

	if err = g.SetKeybinding("", gocui.KeyCtrlC, gocui.ModNone, quit); err != nil {
		return
	}

	if err = g.SetKeybinding("", gocui.KeyCtrlD, gocui.ModNone, quit); err != nil {
		return
	}

	// cursor select
	if err = g.SetKeybinding("channel-list", gocui.KeyArrowUp, gocui.ModNone, moveUp); err != nil {
		return
	}

	if err = g.SetKeybinding("channel-list", gocui.KeyArrowDown, gocui.ModNone, moveDown); err != nil {
		return
	}

	// command
	if err = g.SetKeybinding("channel-list", 'r', gocui.ModNone, checkNow); err != nil {
		return
	}

	if err = g.SetKeybinding("channel-list", 'o', gocui.ModNone, openChannel); err != nil {
		return
	}

	// mouse
	if err = g.SetKeybinding("channel-list", gocui.MouseRight, gocui.ModNone, openChannel); err != nil {
		return
	}

	return
}

func call(method func(string) (ipc.Dashboard, error)) error {
	m.Lock()
	sel := selectedName
	m.Unlock()

	got, err := method(sel)
	if err != nil {
		return fmt.Errorf("dashboard.call: %s", err)
	}

	m.Lock()
	res = got
	if sel == "?" {
		selectedName = got.Selected
	}
	m.Unlock()

	return nil
}

func quit(g *gocui.Gui, v *gocui.View) error {
	return gocui.ErrQuit
}

func numRows(d track.DisplayTable) int {
	return len(d.Live) + len(d.Offline) + len(d.Unknown)
}

// numLines in the view including the blank separators
func numLines(d track.DisplayTable) int {
	n := numRows(d)
	if len(d.Live) > 0 {
		n++
	}
	if len(d.Offline) > 0 && len(d.Unknown) > 0 {
		n++
	}

	return n
}

// rowAt gives the row drawn on line
// ok is false for separators and lines past the end
func rowAt(d track.DisplayTable, line int) (row track.DisplayRow, ok bool) {
	groups := [][]track.DisplayRow{d.Live, d.Offline, d.Unknown}
	for ndx, g := range groups {
		if line < len(g) {
			return g[line], true
		}
		line -= len(g)

		// separators follow the same rules as DisplayTable.Output
		sep := (ndx == 0 && len(d.Live) > 0) || (ndx == 1 && len(d.Offline) > 0 && len(d.Unknown) > 0)
		if sep {
			if line == 0 {
				return
			}
			line--
		}
	}

	return
}

func moveUp(g *gocui.Gui, v *gocui.View) error {
	if v == nil {
		return nil
	}

	ox, oy := v.Origin()
	cx, cy := v.Cursor()
	if oy+cy == 0 {
		return nil
	}
	if err := v.SetCursor(cx, cy-1); err != nil && oy > 0 {
		if err := v.SetOrigin(ox, oy-1); err != nil {
			return err
		}
	}
	if l, err := v.Line(cy - 1); err == nil && strings.TrimSpace(l) == "" {
		return moveUp(g, v)
	}
	remember(v)

	return nil
}

func moveDown(g *gocui.Gui, v *gocui.View) error {
	if v == nil {
		return nil
	}

	m.Lock()
	n := numLines(res.TrackTable)
	m.Unlock()

	ox, oy := v.Origin()
	cx, cy := v.Cursor()
	if oy+cy+1 >= n {
		return nil
	}

	if err := v.SetCursor(cx, cy+1); err != nil {
		if err := v.SetOrigin(ox, oy+1); err != nil {
			return err
		}
	}
	if l, err := v.Line(cy + 1); err == nil && strings.TrimSpace(l) == "" {
		return moveDown(g, v)
	}
	remember(v)

	return nil
}

func selected(v *gocui.View) (row track.DisplayRow, ok bool) {
	_, oy := v.Origin()
	_, cy := v.Cursor()

	m.Lock()
	defer m.Unlock()

	return rowAt(res.TrackTable, oy+cy)
}

// remember the selection so the server can give it back next time
func remember(v *gocui.View) {
	if row, ok := selected(v); ok {
		m.Lock()
		selectedName = row.Name
		m.Unlock()
	}
}

func openChannel(g *gocui.Gui, v *gocui.View) error {
	row, ok := selected(v)
	if !ok {
		return nil
	}

	return openLink(channelURL + row.Name)
}

func checkNow(g *gocui.Gui, v *gocui.View) error {
	if err := call(remote.CheckNow); err != nil {
		return fmt.Errorf("dashboard.checkNow: %s", err)
	}
	redraw(g)
	return nil
}
