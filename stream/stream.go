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

// Package stream holds the data passed between the api client, the tracker
// and the message templates.
package stream

import (
	"sort"
	"strings"
)

// Name of a channel
// names are case-insensitive so always build them with Normalize
type Name string

// Normalize a channel name
func Normalize(s string) Name {
	return Name(strings.ToLower(strings.TrimSpace(s)))
}

// Names normalizes every name and drops empty ones
func Names(lst []string) (names []Name) {
	for _, s := range lst {
		n := Normalize(s)
		if n == "" {
			continue
		}
		names = append(names, n)
	}

	return
}

func (n Name) String() string {
	return string(n)
}

// Metadata describes a live stream
// every field is optional since the api may leave any of them out
type Metadata struct {
	Game       *string
	Viewers    *int64
	Status     *string
	Language   *string
	AverageFPS *float64
	Followers  *int64
	Views      *int64
	Logo       *string
}

// Icon is the channel logo url or an empty string
func (m *Metadata) Icon() string {
	if m == nil || m.Logo == nil {
		return ""
	}

	return *m.Logo
}

type state int

const (
	unknown state = iota
	offline
	online
)

// Status of a channel for one poll
// the zero value is Unknown
type Status struct {
	state state
	meta  *Metadata
}

// Online status carrying the stream metadata
func Online(meta *Metadata) Status {
	if meta == nil {
		meta = &Metadata{}
	}

	return Status{state: online, meta: meta}
}

// Offline status
func Offline() Status {
	return Status{state: offline}
}

// Unknown status is used when we could not find out
func Unknown() Status {
	return Status{}
}

// Confirmed reports whether the channel is online
// ok is false when the status is Unknown
func (s Status) Confirmed() (isOnline bool, ok bool) {
	switch s.state {
	case online:
		return true, true
	case offline:
		return false, true
	}

	return false, false
}

// IsUnknown is true if the status could not be determined
func (s Status) IsUnknown() bool {
	return s.state == unknown
}

// Metadata is nil unless the channel is online
func (s Status) Metadata() *Metadata {
	if s.state != online {
		return nil
	}

	return s.meta
}

func (s Status) String() string {
	switch s.state {
	case online:
		return "online"
	case offline:
		return "offline"
	}

	return "unknown"
}

// Snapshot of every followed channel for one poll
type Snapshot map[Name]Status

// Sorted names in the snapshot
func (s Snapshot) Sorted() []Name {
	names := make([]Name, 0, len(s))
	for n := range s {
		names = append(names, n)
	}
	sort.Slice(names, func(a, b int) bool {
		return names[a] < names[b]
	})

	return names
}
