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

package track

import (
	"sort"
	"time"

	"github.com/bobbytrapz/twitchnotifier/stream"
)

// Info about one channel for display
type Info struct {
	Name   stream.Name
	Status stream.Status
	// Since is when we saw the channel go online
	Since time.Time
}

// IsLive is true if the channel is confirmed online
func (i Info) IsLive() bool {
	on, ok := i.Status.Confirmed()
	return on && ok
}

// IsOffline is true if the channel is confirmed offline
func (i Info) IsOffline() bool {
	on, ok := i.Status.Confirmed()
	return !on && ok
}

// Infos of every channel in snap sorted by urgency
func Infos(snap stream.Snapshot, since map[stream.Name]time.Time) []Info {
	lst := make([]Info, 0, len(snap))
	for name, status := range snap {
		lst = append(lst, Info{Name: name, Status: status, Since: since[name]})
	}
	sort.Sort(ByUrgency(lst))

	return lst
}

// ByUrgency puts live channels first, then offline, then unknown
type ByUrgency []Info

func (s ByUrgency) Len() int {
	return len(s)
}

func (s ByUrgency) Swap(a, b int) {
	s[a], s[b] = s[b], s[a]
}

func (s ByUrgency) Less(a, b int) bool {
	if s[a].IsLive() && !s[b].IsLive() {
		return true
	}

	if !s[a].IsLive() && s[b].IsLive() {
		return false
	}

	if s[a].IsLive() && s[b].IsLive() && !s[a].Since.Equal(s[b].Since) {
		return s[a].Since.Before(s[b].Since)
	}

	if s[a].IsOffline() && !s[b].IsOffline() {
		return true
	}

	if !s[a].IsOffline() && s[b].IsOffline() {
		return false
	}

	return s[a].Name < s[b].Name
}
