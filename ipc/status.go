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

package ipc

import (
	"log"
	"sync"

	"github.com/bobbytrapz/twitchnotifier/track"
)

// Dashboard represents a connected dashboard
type Dashboard struct {
	// Selected channel in the dashboard
	// "?" asks for the last selection
	Selected   string
	TrackTable track.DisplayTable
}

// Command to perform
type Command struct {
	tracker *track.Tracker

	mu       sync.Mutex
	selected string
}

func (c *Command) replicate(req *Dashboard, res *Dashboard) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if req.Selected == "?" {
		res.Selected = c.selected
	} else {
		c.selected = req.Selected
		res.Selected = req.Selected
	}

	res.TrackTable = c.tracker.Display()
}

// Status for the dashboard
func (c *Command) Status(req *Dashboard, res *Dashboard) error {
	c.replicate(req, res)

	return nil
}

// CheckNow forces a poll attempt
func (c *Command) CheckNow(req *Dashboard, res *Dashboard) error {
	c.replicate(req, res)
	log.Println("ipc.CheckNow")
	track.CheckNow()

	return nil
}
